package worker_handler

import (
	"context"

	worker_task "github.com/nomanjawad/automictemplate-api-sub001/internal/worker/tasks"

	"github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// ContentPublishedHandler reicht ein Publish-Ereignis an den Notifier weiter.
// Schlägt die Zustellung fehl, lässt der Handler asynq wiederholen.
func (wh *WorkerHandler) ContentPublishedHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.ContentPublishedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Publish-Payload nicht lesbar.")
			return err
		}

		log.Info().
			Str("resource", p.Resource).
			Str("slug", p.Slug).
			Msg("Worker handler: Publish-Ereignis wird zugestellt.")

		return wh.notifier.ContentPublished(&p)
	}
}
