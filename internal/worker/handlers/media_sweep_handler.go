package worker_handler

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// orphanGracePeriod schützt frisch hochgeladene Objekte, deren
// Metadaten-Zeile gerade erst geschrieben wird.
const orphanGracePeriod = time.Hour

// PurgeOrphanMediaHandler vergleicht Bucket-Inhalt mit der media-Tabelle und
// löscht Objekte ohne Metadaten-Zeile. So räumt der Worker Uploads auf, deren
// Insert nach dem Put fehlschlug.
func (wh *WorkerHandler) PurgeOrphanMediaHandler() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		objects, err := wh.objects.ListObjects(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Worker handler: Bucket-Listing fehlgeschlagen.")
			return err
		}

		known, appErr := wh.mr.ListObjectKeys(ctx)
		if appErr != nil {
			log.Error().Err(appErr.Err).Msg("Worker handler: media-Tabelle nicht lesbar.")
			return appErr
		}

		cutoff := time.Now().Add(-orphanGracePeriod)
		var removed int
		for _, obj := range objects {
			if _, ok := known[obj.Key]; ok {
				continue
			}
			if obj.LastModified.After(cutoff) {
				continue
			}
			if err := wh.objects.Remove(ctx, obj.Key); err != nil {
				log.Warn().Err(err).Str("object_key", obj.Key).Msg("Worker handler: Orphan nicht löschbar, kommt im nächsten Lauf dran.")
				continue
			}
			removed++
		}

		log.Info().
			Int("bucket_objects", len(objects)).
			Int("removed", removed).
			Msg("Worker handler: Orphan-Sweep abgeschlossen.")

		return nil
	}
}
