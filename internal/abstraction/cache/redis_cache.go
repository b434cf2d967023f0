package cache

import (
	"context"
	"time"

	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

var _ SessionStore = (*RedisCache)(nil)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(redis *redis.Client) *RedisCache {
	return &RedisCache{client: redis}
}

func (r *RedisCache) GetJSON(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
	val, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	} else if err != nil {
		return false, app_errors.NewInternalError("internal_error", err)
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, app_errors.NewInternalError("internal_error", err)
	}
	return true, nil
}

func (r *RedisCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) *app_errors.AppError {
	bytes, err := json.Marshal(value)
	if err != nil {
		return app_errors.NewInternalError("internal_error", err)
	}

	if err := r.client.Set(ctx, key, bytes, ttl).Err(); err != nil {
		return app_errors.NewInternalError("internal_error", err)
	}
	return nil
}

func (r *RedisCache) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(ctx, keys...).Err()
}

func (r *RedisCache) AddToSet(ctx context.Context, key string, members ...string) *app_errors.AppError {
	vals := make([]any, len(members))
	for i, m := range members {
		vals[i] = m
	}
	if err := r.client.SAdd(ctx, key, vals...).Err(); err != nil {
		return app_errors.NewInternalError("internal_error", err)
	}
	return nil
}

func (r *RedisCache) RemoveFromSet(ctx context.Context, key string, members ...string) *app_errors.AppError {
	vals := make([]any, len(members))
	for i, m := range members {
		vals[i] = m
	}
	if err := r.client.SRem(ctx, key, vals...).Err(); err != nil {
		return app_errors.NewInternalError("internal_error", err)
	}
	return nil
}

func (r *RedisCache) SetMembers(ctx context.Context, key string) ([]string, *app_errors.AppError) {
	members, err := r.client.SMembers(ctx, key).Result()
	if err != nil {
		return nil, app_errors.NewInternalError("internal_error", err)
	}
	return members, nil
}
