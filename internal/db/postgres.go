package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPool richtet einen Verbindungs-Pool zur Datenbank ein und prüft die
// Erreichbarkeit. Schlägt das fehl, darf der Prozess nicht starten — der
// Caller entscheidet (Fatal in main).
func ConnectPool(dsn string) (*pgxpool.Pool, error) {
	// Parsen der DSN
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("Datenbank-DSN parsen: %w", err)
	}

	cfg.MaxConns = 20                       // Maximale Anzahl der Verbindungen im Pool
	cfg.MinConns = 5                        // Minimale Anzahl der Verbindungen im Pool
	cfg.MaxConnIdleTime = time.Hour         // Maximale Leerlaufzeit einer Verbindung
	cfg.HealthCheckPeriod = time.Minute * 5 // Periodische Überprüfung der Verbindungen

	ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("Datenbank-Pool erstellen: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("Verbindung zur Datenbank nicht möglich: %w", err)
	}

	return pool, nil
}
