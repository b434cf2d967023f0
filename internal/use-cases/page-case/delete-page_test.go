package page_case

import (
	"context"
	"testing"

	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
)

func TestDeletePage_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPageRepo)
	cacheStore := &use_cases.MockCache{}
	service := &PageService{repo: repo, cache: cacheStore, taskQueue: new(use_cases.MockTaskQueue)}

	repo.On("DeleteBySlug", ctx, "impressum").Return((*app_errors.AppError)(nil))

	err := service.DeletePage(ctx, "impressum")

	assert.Nil(t, err)
	assert.Contains(t, cacheStore.LastDeletedKeys, pageCacheKey("impressum"))

	repo.AssertExpectations(t)
}

func TestDeletePage_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPageRepo)
	cacheStore := &use_cases.MockCache{}
	service := &PageService{repo: repo, cache: cacheStore, taskQueue: new(use_cases.MockTaskQueue)}

	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "db.not_found", nil)
	repo.On("DeleteBySlug", ctx, "nie-da").Return(notFound)

	err := service.DeletePage(ctx, "nie-da")

	assert.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
	assert.Equal(t, 0, cacheStore.DelCalled)
}
