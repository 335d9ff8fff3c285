package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/pogojump/pogojump-api/config"
	"github.com/pogojump/pogojump-api/internal/container"
	"github.com/pogojump/pogojump-api/internal/router"
	"github.com/pogojump/pogojump-api/pkg/helpers"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()
	c, err := container.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("failed to build container: %v", err)
	}
	defer c.Close()

	// Load (and seed) the document once so a broken backend fails fast
	if err := c.Store.Ping(ctx); err != nil {
		logger.Fatalf("document store unavailable: %v", err)
	}

	r := router.NewEngine(c)

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.WithField("backend", cfg.DocumentBackend).Infof("server starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Errorf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}
