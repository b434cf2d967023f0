package page_case

import (
	"context"
	"fmt"
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	page_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/page-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/queue"
	page_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/page-repo"
	worker_task "github.com/nomanjawad/automictemplate-api-sub001/internal/worker/tasks"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const pageCacheTTL = 15 * time.Minute

func pageCacheKey(slug string) string {
	return fmt.Sprintf("cms:page:%s", slug)
}

type PageService struct {
	repo      page_repo.PageRepoContract
	cache     cache.Cache
	taskQueue queue.TaskQueueClient
}

func NewPageService(db *pgxpool.Pool, cacheStore cache.Cache, taskQueue queue.TaskQueueClient) PageServiceContract {
	return &PageService{
		repo:      page_repo.NewPageRepo(db),
		cache:     cacheStore,
		taskQueue: taskQueue,
	}
}

// UpsertPage schreibt die Seite unter ihrem Slug (anlegen oder ersetzen).
// Wechselt sie dabei auf veröffentlicht, geht ein Webhook-Task in die Queue;
// Queue-Fehler werden geloggt und kosten den Request nichts.
func (s *PageService) UpsertPage(ctx context.Context, slug string, req page_dto.UpsertPageRequest) (*page_dto.PageResponse, *app_errors.AppError) {
	wasPublished := false
	if existing, err := s.repo.FindBySlug(ctx, slug, false); err != nil {
		if err.Type != app_errors.ErrNotFound {
			return nil, err
		}
	} else {
		wasPublished = existing.Published
	}

	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return nil, app_errors.NewInternalError("internal_error", idErr)
	}

	// Ohne content-Feld bleibt der Inhalt leer; die Spalte ist jsonb not null,
	// also wird nil hier zum leeren Objekt statt zu NULL.
	content := req.Content
	if len(content) == 0 {
		content = json.RawMessage(`{}`)
	}

	// Bei Konflikt auf dem Slug behält die Datenbank die bestehende id
	page, err := s.repo.UpsertBySlug(ctx, &entity.PageEntity{
		ID:              id.String(),
		Slug:            slug,
		Title:           req.Title,
		Content:         content,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		Published:       req.Published,
	})
	if err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Del(ctx, pageCacheKey(slug)); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("slug", slug).Msg("Seiten-Cache nicht löschbar")
	}

	if page.Published && !wasPublished {
		payload := &worker_task.ContentPublishedPayload{
			Resource:    "page",
			Slug:        page.Slug,
			Title:       page.Title,
			PublishedAt: time.Now().UTC(),
		}
		if queueErr := s.taskQueue.EnqueueContentPublished(payload); queueErr != nil {
			log.Error().Err(queueErr).Str("slug", page.Slug).Msg("Webhook-Task nicht eingereiht")
		}
	}

	return toPageResponse(page), nil
}

// GetPage liefert eine Seite. Nur die anonyme (published-only) Sicht läuft
// über den Redis-Cache; angemeldete Leser sehen immer den Datenbankstand.
func (s *PageService) GetPage(ctx context.Context, slug string, publishedOnly bool) (*page_dto.PageResponse, *app_errors.AppError) {
	if publishedOnly {
		var cached page_dto.PageResponse
		if found, cacheErr := s.cache.GetJSON(ctx, pageCacheKey(slug), &cached); cacheErr == nil && found {
			return &cached, nil
		}
	}

	page, err := s.repo.FindBySlug(ctx, slug, publishedOnly)
	if err != nil {
		return nil, err
	}

	resp := toPageResponse(page)
	if publishedOnly {
		if cacheErr := s.cache.SetJSON(ctx, pageCacheKey(slug), resp, pageCacheTTL); cacheErr != nil {
			log.Warn().Err(cacheErr.Err).Str("slug", slug).Msg("Seiten-Cache nicht schreibbar")
		}
	}

	return resp, nil
}

func (s *PageService) ListPages(ctx context.Context, query page_dto.ListPagesQuery, publishedOnly bool) ([]page_dto.PageResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	filter := entity.PageListFilter{PublishedOnly: publishedOnly}
	if query.Search != "" {
		filter.Search = &query.Search
	}

	total, err := s.repo.CountPages(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.repo.ListPages(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	pages := make([]page_dto.PageResponse, 0, len(rows))
	for i := range rows {
		pages = append(pages, *toPageResponse(&rows[i]))
	}

	meta := &dtos.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	return pages, meta, nil
}

func (s *PageService) DeletePage(ctx context.Context, slug string) *app_errors.AppError {
	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		return err
	}

	if cacheErr := s.cache.Del(ctx, pageCacheKey(slug)); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("slug", slug).Msg("Seiten-Cache nicht löschbar")
	}

	return nil
}

func toPageResponse(page *entity.PageEntity) *page_dto.PageResponse {
	return &page_dto.PageResponse{
		ID:              page.ID,
		Slug:            page.Slug,
		Title:           page.Title,
		Content:         page.Content,
		MetaTitle:       page.MetaTitle,
		MetaDescription: page.MetaDescription,
		Published:       page.Published,
		CreatedAt:       page.CreatedAt,
		UpdatedAt:       page.UpdatedAt,
	}
}
