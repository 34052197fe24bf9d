package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"iris-inference-service/internal/classifier"
	"iris-inference-service/internal/config"
	"iris-inference-service/internal/domain"
	"iris-inference-service/internal/handler"
	"iris-inference-service/internal/middleware"
	"iris-inference-service/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Load the model artifact once. A failed load must not prevent startup:
	// the process keeps serving welcome/health and reports the missing model
	// on predict calls until the orchestrator restarts it with a working
	// artifact.
	var model domain.Classifier
	tree, err := classifier.Load(cfg.Model.Path)
	if err != nil {
		log.Warnf("model load failed (continuing without model, predict will return 503): %v", err)
	} else {
		model = tree
		log.WithField("classes", tree.Classes()).Infof("model loaded from %s", cfg.Model.Path)
	}

	predictUC := usecase.NewPredictUseCase(model)
	h := handler.New(predictUC)

	// Setup router
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	h.RegisterRoutes(router)

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
