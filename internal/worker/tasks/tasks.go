package worker_task

import "time"

const TaskContentPublished = "webhook:content_published"

const TaskPurgeOrphanMedia = "media:purge_orphans"

// ContentPublishedPayload beschreibt das Ereignis, das der Worker an den
// konfigurierten Frontend-Webhook weiterreicht (z. B. für einen Rebuild).
type ContentPublishedPayload struct {
	Resource    string    `json:"resource"` // "page" | "post"
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	PublishedAt time.Time `json:"published_at"`
}
