package queue

import (
	worker_task "github.com/nomanjawad/automictemplate-api-sub001/internal/worker/tasks"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// TaskQueueClient entkoppelt die Services vom asynq-Client; Enqueue-Fehler
// werden vom Aufrufer nur geloggt, nie an den Request durchgereicht.
type TaskQueueClient interface {
	EnqueueContentPublished(payload *worker_task.ContentPublishedPayload) error
}

var _ TaskQueueClient = (*TaskQueue)(nil)

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueContentPublished(payload *worker_task.ContentPublishedPayload) error {
	log.Info().Str("slug", payload.Slug).Msg("Preparing enqueueing payload.")
	p, _ := json.Marshal(payload)
	task := asynq.NewTask(worker_task.TaskContentPublished, p, asynq.Queue("webhook"), asynq.MaxRetry(5))

	_, err := q.client.Enqueue(task)
	return err
}
