package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type AppConfig struct {
	APP struct {
		Name       string `mapstructure:"NAME"`
		Port       string `mapstructure:"PORT"`
		State      string `mapstructure:"STATE"` // dev | prod
		CorsOrigin string `mapstructure:"CORS_ORIGIN"`
	}

	DATABASE struct {
		Postgres struct {
			DSN string `mapstructure:"DSN"`
		}
		Redis struct {
			Addr     string `mapstructure:"ADDR"`
			Password string `mapstructure:"PASSWORD"`
			DB       int    `mapstructure:"DB"`
		}
	}

	APP_SECRET struct {
		JWT struct {
			Secret        string `mapstructure:"SECRET"`
			TTLMinutes    int    `mapstructure:"TTL_MINUTES"`
			RefreshTTLHrs int    `mapstructure:"REFRESH_TTL_HOURS"`
		}
	}

	STORAGE struct {
		Endpoint  string `mapstructure:"ENDPOINT"`
		AccessKey string `mapstructure:"ACCESS_KEY"`
		SecretKey string `mapstructure:"SECRET_KEY"`
		Bucket    string `mapstructure:"BUCKET"`
		UseSSL    bool   `mapstructure:"USE_SSL"`
		PublicURL string `mapstructure:"PUBLIC_URL"`
	}

	WEBHOOK struct {
		PublishURL string `mapstructure:"PUBLISH_URL"` // leer = Publish-Benachrichtigungen aus
		Token      string `mapstructure:"TOKEN"`
	}
}

// Defaults für alle bekannten Schlüssel. Sie sorgen außerdem dafür, dass
// viper.Unmarshal reine Env-Overrides sieht.
var defaults = map[string]any{
	"app.name":                         "automic-template-api",
	"app.port":                         "8080",
	"app.state":                        "dev",
	"app.cors_origin":                  "*",
	"database.postgres.dsn":            "",
	"database.redis.addr":              "",
	"database.redis.password":          "",
	"database.redis.db":                0,
	"app_secret.jwt.secret":            "",
	"app_secret.jwt.ttl_minutes":       60,
	"app_secret.jwt.refresh_ttl_hours": 720,
	"storage.endpoint":                 "",
	"storage.access_key":               "",
	"storage.secret_key":               "",
	"storage.bucket":                   "",
	"storage.use_ssl":                  false,
	"storage.public_url":               "",
	"webhook.publish_url":              "",
	"webhook.token":                    "",
}

// LoadConfig liest application.yaml und Env-Overrides (AT_DATABASE_POSTGRES_DSN
// usw.) ein. Fehlen Pflichtwerte, gibt es einen Fehler zurück — der Prozess
// darf dann nicht starten.
func LoadConfig() (*AppConfig, error) {
	viper.SetConfigName("application")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	for key, val := range defaults {
		viper.SetDefault(key, val)
	}

	viper.SetEnvPrefix("AT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// Datei ist optional, solange die Pflichtwerte per Env kommen
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("Konfigurationsdatei lesen: %w", err)
		}
	}

	var config AppConfig
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("Konfiguration entpacken: %w", err)
	}

	var missing []string
	if config.DATABASE.Postgres.DSN == "" {
		missing = append(missing, "database.postgres.dsn")
	}
	if config.DATABASE.Redis.Addr == "" {
		missing = append(missing, "database.redis.addr")
	}
	if config.APP_SECRET.JWT.Secret == "" {
		missing = append(missing, "app_secret.jwt.secret")
	}
	if config.STORAGE.Endpoint == "" {
		missing = append(missing, "storage.endpoint")
	}
	if config.STORAGE.Bucket == "" {
		missing = append(missing, "storage.bucket")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("Pflichtkonfiguration fehlt: %s", strings.Join(missing, ", "))
	}

	if config.APP.State != "dev" && config.APP.State != "prod" {
		return nil, fmt.Errorf("app.state muss dev oder prod sein, ist %q", config.APP.State)
	}

	log.Info().Str("state", config.APP.State).Msg("Konfiguration geladen...")
	return &config, nil
}

// IsProduction meldet, ob der Prozess im Prod-Zustand läuft (maskierte
// Fehlermeldungen, kein Stacktrace im Envelope).
func (c *AppConfig) IsProduction() bool {
	return c.APP.State == "prod"
}
