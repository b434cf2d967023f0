package utils

import (
	"context"
	"time"

	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// GetCacheData liest einen Wert aus Redis und unmarshalt ihn in T.
// Cache-Miss ist kein Fehler: (nil, nil).
func GetCacheData[T any](ctx context.Context, rdb *redis.Client, cacheKey string) (*T, *app_errors.AppError) {
	val, err := rdb.Get(ctx, cacheKey).Result()
	if err == redis.Nil {
		return nil, nil // Cache-miss
	} else if err != nil {
		return nil, app_errors.NewInternalError("internal_error", err)
	}
	var data T
	if err := json.Unmarshal([]byte(val), &data); err != nil {
		return nil, app_errors.NewInternalError("internal_error", err)
	}
	return &data, nil
}

// SetCacheData serialisiert das Objekt als JSON und speichert es mit
// Ablaufzeit in Redis.
func SetCacheData[T any](ctx context.Context, rdb *redis.Client, cacheKey string, data *T, expire time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(data)
	if err != nil {
		return app_errors.NewInternalError("internal_error", err)
	}

	if err := rdb.Set(ctx, cacheKey, bytes, expire).Err(); err != nil {
		return app_errors.NewInternalError("internal_error", err)
	}

	return nil
}

// DeleteCacheData löscht den angegebenen cacheKey aus Redis. Kein Fehler,
// wenn der Key bereits fehlt.
func DeleteCacheData(ctx context.Context, rdb *redis.Client, cacheKey string) error {
	return rdb.Del(ctx, cacheKey).Err()
}
