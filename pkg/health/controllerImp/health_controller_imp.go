package controllerImp

import (
	"context"
	"net/http"
	"runtime"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"agriedu/config"
	"agriedu/pkg/ai"
)

var appStart = time.Now()

type HealthCtrl struct {
	db      *gorm.DB
	advisor ai.Advisor
	trainer *ai.Trainer
	env     string
}

func NewHealthCtrl(db *gorm.DB, advisor ai.Advisor, trainer *ai.Trainer, env string) *HealthCtrl {
	return &HealthCtrl{db: db, advisor: advisor, trainer: trainer, env: env}
}

type sub struct {
	OK  bool   `json:"ok"`
	Err string `json:"err,omitempty"`
}

func (h *HealthCtrl) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 800*time.Millisecond)
	defer cancel()

	db := h.checkDB(ctx)
	model := sub{OK: h.advisor != nil && h.advisor.Ready()}
	if !model.OK {
		model.Err = "advisor not ready"
	}

	allOK := db.OK && model.OK
	status, label := http.StatusOK, "healthy"
	if !allOK {
		status, label = http.StatusServiceUnavailable, "unhealthy"
	}

	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)
	training := 0
	if h.trainer != nil {
		training = h.trainer.Running()
	}

	c.Response().Header().Set("X-Health-Check", "AgriEdu-AI-2.0")
	return c.JSON(status, map[string]any{
		"status":      label,
		"service":     config.ServiceName,
		"version":     config.Version,
		"timestamp":   time.Now().Format(time.RFC3339),
		"environment": h.env,
		"uptime_sec":  int(time.Since(appStart).Seconds()),
		"checks": map[string]any{
			"database": db,
			"model":    model,
		},
		"system": map[string]any{
			"go_version":    runtime.Version(),
			"platform":      runtime.GOOS + "/" + runtime.GOARCH,
			"num_cpu":       runtime.NumCPU(),
			"goroutines":    runtime.NumGoroutine(),
			"heap_alloc_mb": float64(mem.HeapAlloc>>10) / 1024,
			"training_jobs": training,
		},
		"features": map[string]bool{
			"plant_disease_detection": true,
			"yield_prediction":        true,
			"soil_analysis":           true,
			"weather_integration":     false,
		},
		"project": map[string]any{
			"name":        config.ServiceName,
			"institution": "KNU named after J. Balasagyn",
			"event":       "Hackathon 'Zabe Technologies' 2026",
			"partners":    []string{"KTHI", "MLG Expert"},
		},
	})
}

func (h *HealthCtrl) checkDB(ctx context.Context) sub {
	if h.db == nil {
		return sub{Err: "gorm db is nil"}
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return sub{Err: "db.DB(): " + err.Error()}
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return sub{Err: "ping: " + err.Error()}
	}
	return sub{OK: true}
}
