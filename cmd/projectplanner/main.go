package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project-planner/internal/config"
	"project-planner/internal/logger"
	"project-planner/internal/recurrence"
	"project-planner/internal/repository"
	"project-planner/internal/service"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("config")
	}
	logger.Setup(cfg.LogLevel)

	db, err := repository.NewDB(cfg.DatabaseURL)
	if err != nil {
		logger.Log.Fatal().Err(err).Msg("db")
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)

	engine := recurrence.New()
	generationSvc := service.NewGenerationService(projectRepo, taskRepo, engine)

	runBackfill := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		created, err := generationSvc.GenerateAll(jobCtx, cfg.DaysAhead)
		if err != nil {
			logger.Log.Error().Err(err).Msg("instance backfill failed")
			return
		}
		logger.Log.Info().Int("instances", created).Msg("instance backfill finished")
	}

	scheduler := service.NewSchedulerService(time.Local)
	if _, err := scheduler.ScheduleInterval(cfg.GenerateInterval, runBackfill); err != nil {
		logger.Log.Fatal().Err(err).Msg("schedule backfill")
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Catch up immediately on start instead of waiting a full interval.
	runBackfill()

	logger.Log.Info().
		Dur("interval", cfg.GenerateInterval).
		Int("days_ahead", cfg.DaysAhead).
		Msg("project planner started")

	<-ctx.Done()
	logger.Log.Info().Msg("shutdown complete")
}
