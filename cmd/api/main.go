package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/rochi88/go-exercise/internal/app/api"
	"github.com/rochi88/go-exercise/internal/app/bootstrap"
)

func main() {
	// Initialize container with all dependencies
	container, err := bootstrap.NewContainer(bootstrap.ContainerOptions{
		ConfigPath: "./configs",
	})
	if err != nil {
		log.Fatalf("Failed to initialize container: %v", err)
	}

	// Ensure graceful cleanup
	defer func() {
		if err := container.Close(); err != nil {
			container.Logger.Error("Failed to close container gracefully", zap.Error(err))
		}
	}()

	// Initialize HTTP server with all dependencies from container
	server := api.NewServer(&api.ServerOptions{
		Config:              container.Config,
		Logger:              container.Logger,
		PlaygroundHandler:   container.PlaygroundHandler,
		LoggingMiddleware:   container.LoggingMiddleware,
		RecoveryMiddleware:  container.RecoveryMiddleware,
		RequestIDMiddleware: container.RequestIDMiddleware,
		Metrics:             container.Metrics,
		Health:              container.Health,
	})

	// Set up graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	// Idle handle sweeper
	container.Scheduler.Start()

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			container.Logger.Error("Failed to start server", zap.Error(err))
			done <- syscall.SIGTERM
		}
	}()

	container.Logger.Info("Server is running",
		zap.Int("port", container.Config.ServerPort),
		zap.String("environment", container.Config.Environment))

	// Wait for interrupt signal
	<-done
	container.Logger.Info("Server is shutting down...")

	// Create a deadline for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Stop(ctx); err != nil {
		container.Logger.Error("Server shutdown failed", zap.Error(err))
		return
	}

	container.Logger.Info("Server gracefully stopped")
}
