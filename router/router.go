package router

import (
	"fmt"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"agriedu/config"
	"agriedu/pkg/metrics"
	"agriedu/pkg/middleware"
)

func New(
	e *echo.Echo,
	cfg config.AppConfig,
	analysisCtrl interface {
		AnalyzePlant(echo.Context) error
		PredictYield(echo.Context) error
	},
	lessonCtrl interface {
		List(echo.Context) error
		Export(echo.Context) error
	},
	journalCtrl interface{ History(echo.Context) error },
	infoCtrl interface {
		Home(echo.Context) error
		Regions(echo.Context) error
		DashboardStats(echo.Context) error
		Test(echo.Context) error
		Info(echo.Context) error
		TrainModel(echo.Context) error
	},
	healthCtrl interface{ Health(echo.Context) error },
) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.RequestID())
	e.Use(middleware.RequestLog())
	e.Use(metrics.Middleware())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins:     cfg.CORSOrigins,
		AllowCredentials: len(cfg.CORSOrigins) > 0 && cfg.CORSOrigins[0] != "*",
	}))

	e.GET("/", infoCtrl.Home)
	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")
	api.GET("/health", healthCtrl.Health)
	api.GET("/test", infoCtrl.Test)
	api.GET("/info", infoCtrl.Info)

	// multipart framing needs headroom above the file limit itself
	bodyLimit := echoMiddleware.BodyLimit(fmt.Sprintf("%dM", cfg.MaxUploadMB+1))
	api.POST("/analyze-plant", analysisCtrl.AnalyzePlant, bodyLimit)
	api.GET("/predict-yield", analysisCtrl.PredictYield)

	api.GET("/lessons", lessonCtrl.List)
	api.GET("/lessons/export.xlsx", lessonCtrl.Export)

	api.GET("/regions", infoCtrl.Regions)
	api.GET("/dashboard/stats", infoCtrl.DashboardStats)
	api.GET("/history", journalCtrl.History)
	api.POST("/train-model", infoCtrl.TrainModel)
	return e
}
