package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jeffersonaandrade/pousada-backend/internal/config"
	"github.com/jeffersonaandrade/pousada-backend/internal/infra"
	"github.com/jeffersonaandrade/pousada-backend/internal/repository"
	"github.com/jeffersonaandrade/pousada-backend/internal/router"
	"github.com/jeffersonaandrade/pousada-backend/internal/service"
	"github.com/jeffersonaandrade/pousada-backend/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if cfg.Env != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	// RabbitMQ carries realtime kitchen events. The API stays up without it;
	// order flow just loses the push notifications.
	var notifier service.Notifier
	amqpNotifier, err := infra.NewAMQPNotifier(cfg.AMQPURL)
	if err != nil {
		log.Warn().Err(err).Msg("rabbitmq unavailable; order events disabled")
	} else {
		notifier = amqpNotifier
		defer amqpNotifier.Close()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Worker pool for async spreadsheet exports (composition root)
	pedidoRepo := repository.NewPedidoRepository(db)
	dispatcher := worker.NewDispatcher(rdb)
	relatorioWorker := worker.NewRelatorioWorker(pedidoRepo, cfg.ReportStoragePath)
	worker.StartWorkerPool(ctx, rdb, cfg.WorkerPoolSize, relatorioWorker)

	// Hourly pg_dump snapshots with retention pruning
	backup := infra.NewBackupService(cfg.DatabaseURL, cfg.BackupDir, cfg.BackupRetentionDays)
	backup.Start(ctx)

	r := router.New(cfg, db, rdb, notifier, dispatcher)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("pousada backend listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
