package worker_handler

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/notify"
	media_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/media-repo"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/storage"

	"github.com/jackc/pgx/v5/pgxpool"
)

type WorkerHandler struct {
	db       *pgxpool.Pool
	mr       media_repo.MediaRepoContract
	objects  storage.ObjectStore
	notifier notify.Notifier
}

func NewWorkerHandler(db *pgxpool.Pool, objects storage.ObjectStore, notifier notify.Notifier) *WorkerHandler {
	return &WorkerHandler{
		db:       db,
		mr:       media_repo.NewMediaRepo(db),
		objects:  objects,
		notifier: notifier,
	}
}
