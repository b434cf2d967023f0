package worker

import (
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
)

// asynqRedisOpt leitet die asynq-Verbindung aus dem bestehenden Redis-Client
// ab; Worker und API teilen sich damit eine Konfigurationsquelle.
func asynqRedisOpt(client *redis.Client) asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     client.Options().Addr,
		Password: client.Options().Password,
		DB:       client.Options().DB,
	}
}
