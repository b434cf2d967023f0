package notify

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/config"
	worker_task "github.com/nomanjawad/automictemplate-api-sub001/internal/worker/tasks"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
)

// Notifier meldet Publish-Ereignisse an das Frontend (Rebuild-Hook). Gerufen
// wird er ausschließlich vom Worker — nie aus dem Request-Pfad.
type Notifier interface {
	ContentPublished(event *worker_task.ContentPublishedPayload) error
}

// NewNotifier wählt die Implementierung nach Konfiguration: ohne
// webhook.publish_url sind Publish-Benachrichtigungen abgeschaltet.
func NewNotifier(cfg *config.AppConfig) Notifier {
	if cfg.WEBHOOK.PublishURL == "" {
		log.Info().Msg("Kein Publish-Webhook konfiguriert, Benachrichtigungen aus")
		return &NoopNotifier{}
	}

	return &WebhookNotifier{
		url:    cfg.WEBHOOK.PublishURL,
		token:  cfg.WEBHOOK.Token,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type WebhookNotifier struct {
	url    string
	token  string
	client *http.Client
}

// ContentPublished POSTet das Ereignis als JSON an den konfigurierten
// Webhook. Jeder Status >= 300 ist ein Fehler — asynq wiederholt den Task
// dann mit Backoff.
func (n *WebhookNotifier) ContentPublished(event *worker_task.ContentPublishedPayload) error {
	body, err := json.Marshal(event)
	if err != nil {
		log.Error().Err(err).Msg("Webhook-Payload nicht serialisierbar")
		return err
	}

	req, err := http.NewRequest(http.MethodPost, n.url, bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("url", n.url).Msg("Webhook nicht erreichbar")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("webhook delivery failed: status=%d body=%s", resp.StatusCode, string(respBody))
	}

	return nil
}

type NoopNotifier struct{}

func (n *NoopNotifier) ContentPublished(event *worker_task.ContentPublishedPayload) error {
	log.Debug().Str("resource", event.Resource).Str("slug", event.Slug).Msg("Publish-Ereignis verworfen (kein Webhook)")
	return nil
}
