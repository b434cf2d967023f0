package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/config"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/db"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/middleware"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/routers"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/storage"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/utils"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// main initialisiert alle benötigten Ressourcen für den HTTP-Server und stellt
// sicher, dass bei Beendigung sauber heruntergefahren und aufgeräumt wird.
func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	i18nSvc := i18n.NewInitI18nService("internal/i18n")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Konfiguration ungültig, Start abgebrochen.")
	}
	if cfg.IsProduction() {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	dbPool, err := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("Postgres nicht erreichbar.")
	}
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, cfg.DATABASE.Redis.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("Redis nicht erreichbar.")
	}

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

	jwtMaker, err := utils.NewJWTMaker(cfg.APP_SECRET.JWT.Secret)
	if err != nil {
		log.Fatal().Err(err).Msg("JWT-Maker nicht initialisierbar.")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.APP.Name,
		BodyLimit:    25 * 1024 * 1024, // Upload-Limit prüft der Service feiner
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: middleware.ErrorHandlerMiddleware(i18nSvc, cfg.IsProduction()),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.APP.CorsOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, Accept-Language",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.AcceptLanguageMiddleware())
	app.Use(middleware.LoggerMiddleware())
	app.Use(middleware.MetricsMiddleware())
	app.Get("/metrics", middleware.MetricsHandler())

	routers.SetupRoutes(app, &routers.Deps{
		DB:      dbPool,
		Redis:   redisPool,
		I18n:    i18nSvc,
		JWT:     jwtMaker,
		Objects: objects,
		Cfg:     cfg,
	})

	go func() {
		log.Info().Msgf("Starte %s auf Port %s", cfg.APP.Name, cfg.APP.Port)
		if err := app.Listen(fmt.Sprintf(":%s", cfg.APP.Port)); err != nil {
			if err == http.ErrServerClosed {
				log.Info().Msg("Server ordnungsgemäß herunterfahren.")
			} else {
				log.Fatal().Err(err).Msgf("Der Server konnte nicht gestartet werden, %v", err)
			}
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-ctx.Done()
	stop()
	log.Warn().Msg("Shutdown-Signal empfangen... Vorbereitung zum Herunterfahren.")

	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msgf("Beim Herunterfahren ist ein Fehler aufgetreten: %v", err)
	}

	if redisPool != nil {
		redisPool.Close()
		log.Info().Msg("Redis-Pool erfolgreich geschlossen.")
	}
	if dbPool != nil {
		dbPool.Close()
		log.Info().Msg("DB-Pool erfolgreich geschlossen.")
	}

	log.Info().Msg("Server ordnungsgemäß herunterfahren.")
}
