package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"agriedu/config"
	"agriedu/database"
	"agriedu/pkg/ai"
	"agriedu/pkg/logger"
	"agriedu/router"

	// Analysis
	analysisCtrlImp "agriedu/pkg/analysis/controllerImp"
	analysisSvcImp "agriedu/pkg/analysis/serviceImp"

	// Lessons
	lessonCtrlImp "agriedu/pkg/lesson/controllerImp"
	lessonSvcImp "agriedu/pkg/lesson/serviceImp"

	// Journal
	journalCtrlImp "agriedu/pkg/journal/controllerImp"
	journalRepoImp "agriedu/pkg/journal/repositoryImp"

	// Info + Health
	healthCtrlImp "agriedu/pkg/health/controllerImp"
	infoCtrlImp "agriedu/pkg/info/controllerImp"
)

func main() {
	// 1) Config + logging
	cfg := config.Load()
	logger.Init(config.ServiceName, cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 2) DB (sqlite journal)
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}

	// 3) Advisor + background trainer
	advisor := ai.NewMock()
	trainer := ai.NewTrainer(cfg.TrainingDelay)

	// 4) Repos/Services/Controllers
	jRepo := journalRepoImp.New(db)
	aCtrl := analysisCtrlImp.New(analysisSvcImp.NewAnalysisService(advisor, jRepo), cfg.MaxUploadBytes())
	lCtrl := lessonCtrlImp.New(lessonSvcImp.NewLessonService())
	jCtrl := journalCtrlImp.New(jRepo)
	iCtrl := infoCtrlImp.NewInfoCtrl(ctx, trainer)
	hCtrl := healthCtrlImp.NewHealthCtrl(db, advisor, trainer, cfg.Env)

	// 5) Router
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	r := router.New(e, cfg, aCtrl, lCtrl, jCtrl, iCtrl, hCtrl)

	// 6) Start
	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("listening")
		if err := r.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := r.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	trainer.Wait()
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
