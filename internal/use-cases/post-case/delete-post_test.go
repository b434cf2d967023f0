package post_case

import (
	"context"
	"testing"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeletePost_OwnerDeletes(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	cacheStore := &use_cases.MockCache{}
	service := &PostService{repo: repo, cache: cacheStore, taskQueue: new(use_cases.MockTaskQueue)}

	authorID := "user-1"
	repo.On("FindBySlug", ctx, "mein-beitrag", false).Return(&entity.PostEntity{
		ID:       "post-1",
		Slug:     "mein-beitrag",
		AuthorID: &authorID,
	}, (*app_errors.AppError)(nil))
	repo.On("DeleteBySlug", ctx, "mein-beitrag").Return((*app_errors.AppError)(nil))

	err := service.DeletePost(ctx, asAuthor("user-1"), "mein-beitrag")

	assert.Nil(t, err)
	assert.Contains(t, cacheStore.LastDeletedKeys, postCacheKey("mein-beitrag"))

	repo.AssertExpectations(t)
}

func TestDeletePost_ForeignPostForbidden(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	service := &PostService{repo: repo, cache: &use_cases.MockCache{}, taskQueue: new(use_cases.MockTaskQueue)}

	otherAuthor := "user-2"
	repo.On("FindBySlug", ctx, "fremder-beitrag", false).Return(&entity.PostEntity{
		ID:       "post-9",
		Slug:     "fremder-beitrag",
		AuthorID: &otherAuthor,
	}, (*app_errors.AppError)(nil))

	err := service.DeletePost(ctx, asAuthor("user-1"), "fremder-beitrag")

	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)

	repo.AssertNotCalled(t, "DeleteBySlug", mock.Anything, mock.Anything)
}

// Test verwaister Beitrag (Autor gelöscht): nur Moderatoren dürfen aufräumen
func TestDeletePost_OrphanedNeedsModerator(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	cacheStore := &use_cases.MockCache{}
	service := &PostService{repo: repo, cache: cacheStore, taskQueue: new(use_cases.MockTaskQueue)}

	repo.On("FindBySlug", ctx, "verwaist", false).Return(&entity.PostEntity{
		ID:       "post-5",
		Slug:     "verwaist",
		AuthorID: nil,
	}, (*app_errors.AppError)(nil))

	err := service.DeletePost(ctx, asAuthor("user-1"), "verwaist")
	assert.NotNil(t, err)
	assert.Equal(t, 403, err.Code)

	repo.On("DeleteBySlug", ctx, "verwaist").Return((*app_errors.AppError)(nil))

	err = service.DeletePost(ctx, asModerator("mod-1"), "verwaist")
	assert.Nil(t, err)

	repo.AssertExpectations(t)
}

func TestDeletePost_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	service := &PostService{repo: repo, cache: &use_cases.MockCache{}, taskQueue: new(use_cases.MockTaskQueue)}

	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "db.not_found", nil)
	repo.On("FindBySlug", ctx, "nie-da", false).Return((*entity.PostEntity)(nil), notFound)

	err := service.DeletePost(ctx, asAuthor("user-1"), "nie-da")

	assert.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
}
