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

	"github.com/Eursukkul/event-manager/config"
	"github.com/Eursukkul/event-manager/internal/repository"
	"github.com/Eursukkul/event-manager/internal/server"
	"github.com/Eursukkul/event-manager/internal/service"
	"github.com/Eursukkul/event-manager/pkg/database"
	"github.com/Eursukkul/event-manager/pkg/rabbitmq"
	"github.com/prometheus/client_golang/prometheus"
)

func main() {
	cfg := config.Load()

	db, err := database.NewPostgresDB(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	var notifier service.Notifier
	if cfg.RabbitURL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		notifier = publisher
	} else {
		log.Printf("RABBITMQ_URL not set, change notifications disabled")
	}

	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, notifier)

	opts := server.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestLog:     true,
	}
	if cfg.EnableMetrics {
		opts.Metrics = prometheus.DefaultRegisterer
		opts.Gatherer = prometheus.DefaultGatherer
	}
	e := server.New(svc, opts)

	go func() {
		log.Printf("Event Service starting on :%s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
	log.Printf("Event Service stopped")
}
