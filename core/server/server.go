package server

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"bookpicker/core/config"
	"bookpicker/core/constants"
	"bookpicker/core/database"
	"bookpicker/core/logger"
	"bookpicker/core/middleware"
	"bookpicker/modules/club"
	"bookpicker/modules/insights"

	"github.com/hibiken/asynq"
	"github.com/labstack/echo/v4"
)

// Run wires the whole process: configuration, database, insights client,
// background task processing and the HTTP surface. Dependencies are built
// once here and passed down explicitly.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Init(cfg.LogLevel)

	db, err := database.InitDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer db.Close()

	insightsClient := insights.NewHTTPClient(cfg.InsightsAddress)

	redisOpt := asynq.RedisClientOpt{Addr: cfg.RedisAddr}
	taskClient := asynq.NewClient(redisOpt)
	defer taskClient.Close()

	taskServer := asynq.NewServer(redisOpt, asynq.Config{Concurrency: 5})
	mux := asynq.NewServeMux()
	insights.NewWorker(insightsClient).Register(mux)

	e := echo.New()
	e.HideBanner = true
	mw := middleware.NewMiddleware()
	e.Use(mw.RequestID(), mw.RequestLogger())

	club.Init(e, db, insightsClient, taskClient)

	errCh := make(chan error, 2)
	go func() {
		if err := taskServer.Run(mux); err != nil {
			errCh <- fmt.Errorf("task server: %w", err)
		}
	}()
	go func() {
		if err := e.Start(fmt.Sprintf(":%d", cfg.ServerPort)); err != nil {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	logger.Info("server started", "port", cfg.ServerPort)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), constants.ShutdownGracePeriod)
	defer cancel()

	taskServer.Shutdown()
	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}
	return nil
}
