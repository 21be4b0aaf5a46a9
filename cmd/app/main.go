package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"taskwarrior_web/internal/config"
	httpServer "taskwarrior_web/internal/http"
	"taskwarrior_web/internal/http/middleware"
	"taskwarrior_web/internal/logger"
	"taskwarrior_web/internal/service"
	"taskwarrior_web/internal/taskwarrior"
)

var Version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	middleware.InitRedisRateLimiter(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer middleware.CloseRedis()

	runner := taskwarrior.NewRunner(cfg.TaskBin, cfg.ExportTimeout)
	tasks := service.NewTaskService(runner)
	r := httpServer.NewRouter(cfg, tasks, Version)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	go func() {
		logger.Info("server started", "port", cfg.AppPort, "task_bin", cfg.TaskBin, "export_timeout", cfg.ExportTimeout)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("listen failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return
	}

	logger.Info("server exited")
}
