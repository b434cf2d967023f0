package post_case

import (
	"context"
	"fmt"
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	post_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/post-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/queue"
	post_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/post-repo"
	taxonomy_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/taxonomy-repo"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/utils"
	worker_task "github.com/nomanjawad/automictemplate-api-sub001/internal/worker/tasks"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const postCacheTTL = 15 * time.Minute

func postCacheKey(slug string) string {
	return fmt.Sprintf("cms:post:%s", slug)
}

type PostService struct {
	repo      post_repo.PostRepoContract
	taxonomy  taxonomy_repo.TaxonomyRepoContract
	txManager tx.TxManager
	cache     cache.Cache
	taskQueue queue.TaskQueueClient
}

func NewPostService(db *pgxpool.Pool, cacheStore cache.Cache, taskQueue queue.TaskQueueClient) PostServiceContract {
	return &PostService{
		repo:      post_repo.NewPostRepo(db),
		taxonomy:  taxonomy_repo.NewTaxonomyRepo(db),
		txManager: tx.NewPgxTxManager(db),
		cache:     cacheStore,
		taskQueue: taskQueue,
	}
}

// CreatePost legt einen neuen Beitrag an, Autor ist immer der Aufrufer.
// Fehlt der Slug, wird er aus dem Titel abgeleitet; ein belegter Slug endet
// als 409 aus dem Translator, nicht als stilles Überschreiben.
func (s *PostService) CreatePost(ctx context.Context, caller entity.Principal, req post_dto.CreatePostRequest) (*post_dto.PostResponse, *app_errors.AppError) {
	slug := req.Slug
	if slug == "" {
		slug = utils.Slugify(req.Title)
	}
	if slug == "" {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidData, "validation.slug", nil)
	}

	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return nil, app_errors.NewInternalError("internal_error", idErr)
	}

	model := &entity.PostEntity{
		ID:         id.String(),
		Slug:       slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		CategoryID: req.CategoryID,
		AuthorID:   &caller.UserID,
		Published:  req.Published,
	}
	if req.Published {
		now := time.Now().UTC()
		model.PublishedAt = &now
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	tags, err := s.taxonomy.EnsureTags(ctx, t, req.Tags)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.Insert(ctx, t, model)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceTags(ctx, t, post.ID, tagIDs(tags)); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	post.Tags = tags
	s.invalidate(ctx, post.Slug)
	if post.Published {
		s.notifyPublished(post)
	}

	return toPostResponse(post), nil
}

// UpsertPost schreibt den Beitrag unter dem Pfad-Slug. Bestehende Beiträge
// darf nur der Autor oder ein Moderator anfassen; bei Konflikt behält die
// Datenbank Autor und erstes published_at.
func (s *PostService) UpsertPost(ctx context.Context, caller entity.Principal, slug string, req post_dto.UpsertPostRequest) (*post_dto.PostResponse, *app_errors.AppError) {
	wasPublished := false
	if existing, err := s.repo.FindBySlug(ctx, slug, false); err != nil {
		if err.Type != app_errors.ErrNotFound {
			return nil, err
		}
	} else {
		if !caller.CanManage(existing.AuthorID) {
			return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrPermissionDenied, "auth.not_owner", nil)
		}
		wasPublished = existing.Published
	}

	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return nil, app_errors.NewInternalError("internal_error", idErr)
	}

	model := &entity.PostEntity{
		ID:         id.String(),
		Slug:       slug,
		Title:      req.Title,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		CategoryID: req.CategoryID,
		AuthorID:   &caller.UserID,
		Published:  req.Published,
	}
	if req.Published {
		now := time.Now().UTC()
		model.PublishedAt = &now
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	tags, err := s.taxonomy.EnsureTags(ctx, t, req.Tags)
	if err != nil {
		return nil, err
	}

	post, err := s.repo.UpsertBySlug(ctx, t, model)
	if err != nil {
		return nil, err
	}

	if err := s.repo.ReplaceTags(ctx, t, post.ID, tagIDs(tags)); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	post.Tags = tags
	s.invalidate(ctx, post.Slug)
	if post.Published && !wasPublished {
		s.notifyPublished(post)
	}

	return toPostResponse(post), nil
}

// GetPost liefert einen Beitrag; die anonyme Sicht läuft über den Cache.
func (s *PostService) GetPost(ctx context.Context, slug string, publishedOnly bool) (*post_dto.PostResponse, *app_errors.AppError) {
	if publishedOnly {
		var cached post_dto.PostResponse
		if found, cacheErr := s.cache.GetJSON(ctx, postCacheKey(slug), &cached); cacheErr == nil && found {
			return &cached, nil
		}
	}

	post, err := s.repo.FindBySlug(ctx, slug, publishedOnly)
	if err != nil {
		return nil, err
	}

	resp := toPostResponse(post)
	if publishedOnly {
		if cacheErr := s.cache.SetJSON(ctx, postCacheKey(slug), resp, postCacheTTL); cacheErr != nil {
			log.Warn().Err(cacheErr.Err).Str("slug", slug).Msg("Beitrags-Cache nicht schreibbar")
		}
	}

	return resp, nil
}

func (s *PostService) ListPosts(ctx context.Context, query post_dto.ListPostsQuery, publishedOnly bool) ([]post_dto.PostResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	filter := entity.PostListFilter{PublishedOnly: publishedOnly}
	if query.Category != "" {
		filter.CategorySlug = &query.Category
	}
	if query.Tag != "" {
		filter.TagSlug = &query.Tag
	}
	if query.Author != "" {
		filter.AuthorID = &query.Author
	}
	if query.Search != "" {
		filter.Search = &query.Search
	}

	total, err := s.repo.CountPosts(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.repo.ListPosts(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	posts := make([]post_dto.PostResponse, 0, len(rows))
	for i := range rows {
		posts = append(posts, *toPostResponse(&rows[i]))
	}

	meta := &dtos.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	return posts, meta, nil
}

// DeletePost entfernt den Beitrag; erlaubt für Autor oder Moderator.
func (s *PostService) DeletePost(ctx context.Context, caller entity.Principal, slug string) *app_errors.AppError {
	existing, err := s.repo.FindBySlug(ctx, slug, false)
	if err != nil {
		return err
	}

	if !caller.CanManage(existing.AuthorID) {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrPermissionDenied, "auth.not_owner", nil)
	}

	if err := s.repo.DeleteBySlug(ctx, slug); err != nil {
		return err
	}

	s.invalidate(ctx, slug)
	return nil
}

func (s *PostService) invalidate(ctx context.Context, slug string) {
	if cacheErr := s.cache.Del(ctx, postCacheKey(slug)); cacheErr != nil {
		log.Warn().Err(cacheErr).Str("slug", slug).Msg("Beitrags-Cache nicht löschbar")
	}
}

func (s *PostService) notifyPublished(post *entity.PostEntity) {
	payload := &worker_task.ContentPublishedPayload{
		Resource:    "post",
		Slug:        post.Slug,
		Title:       post.Title,
		PublishedAt: time.Now().UTC(),
	}
	if queueErr := s.taskQueue.EnqueueContentPublished(payload); queueErr != nil {
		log.Error().Err(queueErr).Str("slug", post.Slug).Msg("Webhook-Task nicht eingereiht")
	}
}

func tagIDs(tags []entity.TagEntity) []string {
	ids := make([]string, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func toPostResponse(post *entity.PostEntity) *post_dto.PostResponse {
	return &post_dto.PostResponse{
		ID:           post.ID,
		Slug:         post.Slug,
		Title:        post.Title,
		Excerpt:      post.Excerpt,
		Content:      post.Content,
		CoverImage:   post.CoverImage,
		CategoryID:   post.CategoryID,
		CategoryName: post.CategoryName,
		AuthorID:     post.AuthorID,
		Published:    post.Published,
		PublishedAt:  post.PublishedAt,
		Tags:         post.Tags,
		CreatedAt:    post.CreatedAt,
		UpdatedAt:    post.UpdatedAt,
	}
}
