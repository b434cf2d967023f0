package worker

import (
	"fmt"

	worker_handler "github.com/nomanjawad/automictemplate-api-sub001/internal/worker/handlers"
	worker_task "github.com/nomanjawad/automictemplate-api-sub001/internal/worker/tasks"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(worker_task.TaskContentPublished, h.ContentPublishedHandler())
	mux.HandleFunc(worker_task.TaskPurgeOrphanMedia, h.PurgeOrphanMediaHandler())
}

func RegisterCronJobs(s *asynq.Scheduler) error {
	jobs := []struct {
		spec  string
		task  *asynq.Task
		queue string
		desc  string
	}{
		{
			spec:  "0 3 * * *",
			task:  asynq.NewTask(worker_task.TaskPurgeOrphanMedia, nil),
			queue: "low",
			desc:  "purge orphaned media objects",
		},
	}

	for _, job := range jobs {
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
