package cache

import (
	"context"
	"time"

	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

// Cache ist der Published-Content-Cache der Lese-Endpunkte. GetJSON meldet
// per bool, ob der Key vorhanden war; ein Miss ist kein Fehler.
type Cache interface {
	GetJSON(ctx context.Context, key string, dest any) (bool, *app_errors.AppError)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError
	Del(ctx context.Context, keys ...string) error
}

// SessionStore erweitert den Cache um die Set-Operationen der
// Sitzungsverwaltung: user_sessions:{userID} hält die JTIs aller aktiven
// Sitzungen eines Benutzers.
type SessionStore interface {
	Cache
	AddToSet(ctx context.Context, key string, members ...string) *app_errors.AppError
	RemoveFromSet(ctx context.Context, key string, members ...string) *app_errors.AppError
	SetMembers(ctx context.Context, key string) ([]string, *app_errors.AppError)
}
