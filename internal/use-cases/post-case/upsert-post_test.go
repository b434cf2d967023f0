package post_case

import (
	"context"
	"testing"

	post_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/post-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpsertPost_OwnerUpdates(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	taxonomy := new(MockTaxonomyRepo)
	taskQueue := new(use_cases.MockTaskQueue)
	mockTx := new(use_cases.MockTx)
	txManager := new(use_cases.MockTxManager)
	cacheStore := &use_cases.MockCache{}
	service := &PostService{repo: repo, taxonomy: taxonomy, txManager: txManager, cache: cacheStore, taskQueue: taskQueue}

	caller := asAuthor("user-1")
	authorID := "user-1"

	repo.On("FindBySlug", ctx, "mein-beitrag", false).Return(&entity.PostEntity{
		ID:        "post-1",
		Slug:      "mein-beitrag",
		AuthorID:  &authorID,
		Published: true,
	}, (*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	taxonomy.On("EnsureTags", ctx, mockTx, []string(nil)).Return([]entity.TagEntity{}, (*app_errors.AppError)(nil))
	repo.On("UpsertBySlug", ctx, mockTx, mock.AnythingOfType("*entity.PostEntity")).Return(&entity.PostEntity{
		ID:        "post-1",
		Slug:      "mein-beitrag",
		Title:     "Überarbeitet",
		AuthorID:  &authorID,
		Published: true,
	}, (*app_errors.AppError)(nil))
	repo.On("ReplaceTags", ctx, mockTx, "post-1", []string{}).Return((*app_errors.AppError)(nil))

	resp, err := service.UpsertPost(ctx, caller, "mein-beitrag", post_dto.UpsertPostRequest{
		Title:     "Überarbeitet",
		Content:   "...",
		Published: true,
	})

	assert.Nil(t, err)
	assert.Equal(t, "Überarbeitet", resp.Title)
	assert.Contains(t, cacheStore.LastDeletedKeys, postCacheKey("mein-beitrag"))

	// schon veröffentlicht, kein erneuter Webhook
	taskQueue.AssertNotCalled(t, "EnqueueContentPublished", mock.Anything)
	repo.AssertExpectations(t)
}

// Test fremder Beitrag, einfache Rolle: 403, bevor irgendetwas geschrieben wird
func TestUpsertPost_ForeignPostForbidden(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	txManager := new(use_cases.MockTxManager)
	service := &PostService{repo: repo, taxonomy: new(MockTaxonomyRepo), txManager: txManager, cache: &use_cases.MockCache{}, taskQueue: new(use_cases.MockTaskQueue)}

	otherAuthor := "user-2"
	repo.On("FindBySlug", ctx, "fremder-beitrag", false).Return(&entity.PostEntity{
		ID:       "post-9",
		Slug:     "fremder-beitrag",
		AuthorID: &otherAuthor,
	}, (*app_errors.AppError)(nil))

	resp, err := service.UpsertPost(ctx, asAuthor("user-1"), "fremder-beitrag", post_dto.UpsertPostRequest{
		Title:   "Kaperversuch",
		Content: "...",
	})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)
	assert.Equal(t, app_errors.ErrPermissionDenied, err.Type)
	assert.Equal(t, "auth.not_owner", err.MessageKey)

	txManager.AssertNotCalled(t, "Begin", mock.Anything)
}

func TestUpsertPost_ModeratorOverrides(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	taxonomy := new(MockTaxonomyRepo)
	mockTx := new(use_cases.MockTx)
	txManager := new(use_cases.MockTxManager)
	service := &PostService{repo: repo, taxonomy: taxonomy, txManager: txManager, cache: &use_cases.MockCache{}, taskQueue: new(use_cases.MockTaskQueue)}

	otherAuthor := "user-2"
	repo.On("FindBySlug", ctx, "fremder-beitrag", false).Return(&entity.PostEntity{
		ID:        "post-9",
		Slug:      "fremder-beitrag",
		AuthorID:  &otherAuthor,
		Published: true,
	}, (*app_errors.AppError)(nil))

	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	taxonomy.On("EnsureTags", ctx, mockTx, []string(nil)).Return([]entity.TagEntity{}, (*app_errors.AppError)(nil))
	repo.On("UpsertBySlug", ctx, mockTx, mock.AnythingOfType("*entity.PostEntity")).Return(&entity.PostEntity{
		ID:        "post-9",
		Slug:      "fremder-beitrag",
		Title:     "Moderiert",
		AuthorID:  &otherAuthor,
		Published: true,
	}, (*app_errors.AppError)(nil))
	repo.On("ReplaceTags", ctx, mockTx, "post-9", []string{}).Return((*app_errors.AppError)(nil))

	resp, err := service.UpsertPost(ctx, asModerator("mod-1"), "fremder-beitrag", post_dto.UpsertPostRequest{
		Title:     "Moderiert",
		Content:   "...",
		Published: true,
	})

	assert.Nil(t, err)
	assert.Equal(t, "Moderiert", resp.Title)

	repo.AssertExpectations(t)
}

// Test unbekannter Slug: PUT legt den Beitrag an, Aufrufer wird Autor
func TestUpsertPost_NewSlugCreates(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	taxonomy := new(MockTaxonomyRepo)
	taskQueue := new(use_cases.MockTaskQueue)
	mockTx := new(use_cases.MockTx)
	txManager := new(use_cases.MockTxManager)
	service := &PostService{repo: repo, taxonomy: taxonomy, txManager: txManager, cache: &use_cases.MockCache{}, taskQueue: taskQueue}

	caller := asAuthor("user-1")

	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "db.not_found", nil)
	repo.On("FindBySlug", ctx, "ganz-neu", false).Return((*entity.PostEntity)(nil), notFound)

	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	taxonomy.On("EnsureTags", ctx, mockTx, []string{"neu"}).Return([]entity.TagEntity{
		{ID: "tag-7", Slug: "neu", Name: "neu"},
	}, (*app_errors.AppError)(nil))
	repo.On("UpsertBySlug", ctx, mockTx, mock.MatchedBy(func(p *entity.PostEntity) bool {
		return p.AuthorID != nil && *p.AuthorID == "user-1" && p.Published
	})).Return(&entity.PostEntity{
		ID:        "post-10",
		Slug:      "ganz-neu",
		Title:     "Ganz neu",
		AuthorID:  &caller.UserID,
		Published: true,
	}, (*app_errors.AppError)(nil))
	repo.On("ReplaceTags", ctx, mockTx, "post-10", []string{"tag-7"}).Return((*app_errors.AppError)(nil))

	taskQueue.On("EnqueueContentPublished", mock.AnythingOfType("*worker_task.ContentPublishedPayload")).Return(nil)

	resp, err := service.UpsertPost(ctx, caller, "ganz-neu", post_dto.UpsertPostRequest{
		Title:     "Ganz neu",
		Content:   "...",
		Tags:      []string{"neu"},
		Published: true,
	})

	assert.Nil(t, err)
	assert.True(t, resp.Published)

	// Übergang auf veröffentlicht: genau ein Webhook-Task
	taskQueue.AssertNumberOfCalls(t, "EnqueueContentPublished", 1)
	repo.AssertExpectations(t)
}
