package controllerImp

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"agriedu/config"
	"agriedu/entities"
	"agriedu/pkg/ai"
	"agriedu/pkg/catalog"
)

// InfoCtrl serves the constant reference payloads and the training trigger.
type InfoCtrl struct {
	trainer *ai.Trainer
	// baseCtx outlives requests so training survives the response.
	baseCtx context.Context
	now     func() time.Time
}

func NewInfoCtrl(baseCtx context.Context, trainer *ai.Trainer) *InfoCtrl {
	return &InfoCtrl{trainer: trainer, baseCtx: baseCtx, now: time.Now}
}

func (h *InfoCtrl) Regions(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string][]entities.Region{"regions": catalog.Regions()})
}

func (h *InfoCtrl) DashboardStats(c echo.Context) error {
	return c.JSON(http.StatusOK, struct {
		entities.DashboardStats
		LastUpdated string `json:"last_updated"`
	}{catalog.Dashboard(), h.now().Format(time.RFC3339)})
}

func (h *InfoCtrl) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message":   "AgriEdu API is working!",
		"timestamp": h.now().Format(time.RFC3339),
		"try":       "Visit /api/health for service status",
	})
}

func (h *InfoCtrl) Info(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"name":       config.ServiceName,
		"purpose":    "AI-powered agricultural assistant (demonstration: diagnoses are simulated)",
		"tech_stack": []string{"Go", "Echo", "GORM", "SQLite", "Prometheus"},
		"crops":      catalog.Plants(),
		"team":       "AgriEdu AI Team",
		"contact":    "support@agriedu.kg",
		"website":    "https://kthi.mlg.expert",
	})
}

func (h *InfoCtrl) TrainModel(c echo.Context) error {
	id := "TRAIN_" + h.now().Format("20060102_150405")
	h.trainer.Start(h.baseCtx, id)
	return c.JSON(http.StatusOK, echo.Map{
		"status":         "training_started",
		"message":        "Model training started in the background",
		"estimated_time": "5-10 minutes",
		"training_id":    id,
	})
}
