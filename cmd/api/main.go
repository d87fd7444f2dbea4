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

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"example.com/extracurricular/internal/api"
	"example.com/extracurricular/internal/config"
	"example.com/extracurricular/internal/domain"
	"example.com/extracurricular/internal/events"
	"example.com/extracurricular/internal/logging"
	"example.com/extracurricular/internal/registry"
	httptransport "example.com/extracurricular/internal/transport/http"
	"example.com/extracurricular/internal/web"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	publisher, closePublisher := buildPublisher(cfg, logger)
	defer func() {
		if err := closePublisher(); err != nil {
			logger.Warn("failed to close event publisher", zap.Error(err))
		}
	}()

	service := domain.NewService(registry.NewSeeded(), publisher, logger)
	if err := service.SyncRosterMetrics(context.Background()); err != nil {
		logger.Fatal("failed to initialise roster metrics", zap.Error(err))
	}

	handler := api.NewHandler(service)
	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	mux.Handle(web.Prefix, web.Handler())
	mux.Handle("/metrics", promhttp.Handler())

	server := httptransport.NewServer(httptransport.ServerConfig{
		Address:      cfg.HTTPAddress,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, httptransport.RequestLogger(logger, httptransport.CORS(cfg.CORSAllowedOrigins, mux)))

	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		logger.Info("extracurricular-service listening", zap.String("address", cfg.HTTPAddress))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-shutdownCh

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}

func buildPublisher(cfg config.Config, logger *zap.Logger) (events.Publisher, func() error) {
	if !cfg.EventsEnabled() {
		logger.Info("KAFKA_BROKERS not set, enrollment events disabled")
		return events.NoopPublisher{}, func() error { return nil }
	}
	logger.Info("publishing enrollment events",
		zap.Strings("brokers", cfg.KafkaBrokers),
		zap.String("topic", cfg.EnrollmentTopic),
	)
	publisher := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.EnrollmentTopic)
	return publisher, publisher.Close
}
