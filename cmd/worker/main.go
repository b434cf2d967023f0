package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/config"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/db"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/notify"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/storage"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/worker"
	worker_handler "github.com/nomanjawad/automictemplate-api-sub001/internal/worker/handlers"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main startet den Hintergrund-Worker: Webhook-Zustellung und den täglichen
// Orphan-Sweep über dem Medien-Bucket.
func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Konfiguration ungültig, Start abgebrochen.")
	}

	dbPool, err := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres nicht erreichbar.")
	}
	defer dbPool.Close()

	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, cfg.DATABASE.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis nicht erreichbar.")
	}
	defer redisPool.Close()

	minioClient, err := storage.NewMinioClient(
		cfg.STORAGE.Endpoint,
		cfg.STORAGE.AccessKey,
		cfg.STORAGE.SecretKey,
		cfg.STORAGE.Bucket,
		cfg.STORAGE.UseSSL,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Objektspeicher nicht erreichbar.")
	}
	objects := storage.NewMinioStore(minioClient, cfg.STORAGE.Bucket)

	handler := worker_handler.NewWorkerHandler(dbPool, objects, notify.NewNotifier(cfg))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Msg("Worker gestartet.")
	if err := worker.RunWorker(ctx, redisPool, handler); err != nil {
		log.Fatal().Err(err).Msg("Worker abgebrochen.")
	}
	log.Info().Msg("Worker ordnungsgemäß beendet.")
}
