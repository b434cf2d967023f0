package page_case

import (
	"context"
	"testing"

	page_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/page-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test anonyme Sicht kommt aus dem Cache, ohne Datenbankzugriff
func TestGetPage_AnonymousCacheHit(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPageRepo)
	cacheStore := &use_cases.MockCache{
		GetJSONFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
			if v, ok := dest.(*page_dto.PageResponse); ok && key == pageCacheKey("impressum") {
				*v = page_dto.PageResponse{ID: "page-1", Slug: "impressum", Title: "Impressum", Published: true}
				return true, nil
			}
			return false, nil
		},
	}
	service := &PageService{repo: repo, cache: cacheStore, taskQueue: new(use_cases.MockTaskQueue)}

	resp, err := service.GetPage(ctx, "impressum", true)

	assert.Nil(t, err)
	assert.Equal(t, "Impressum", resp.Title)
	repo.AssertNotCalled(t, "FindBySlug", mock.Anything, mock.Anything, mock.Anything)
}

func TestGetPage_AnonymousCacheMiss(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPageRepo)
	cacheStore := &use_cases.MockCache{}
	service := &PageService{repo: repo, cache: cacheStore, taskQueue: new(use_cases.MockTaskQueue)}

	repo.On("FindBySlug", ctx, "impressum", true).Return(&entity.PageEntity{
		ID:        "page-1",
		Slug:      "impressum",
		Title:     "Impressum",
		Published: true,
	}, (*app_errors.AppError)(nil))

	resp, err := service.GetPage(ctx, "impressum", true)

	assert.Nil(t, err)
	assert.Equal(t, "impressum", resp.Slug)
	assert.Equal(t, 1, cacheStore.SetCalled)
	assert.Equal(t, pageCacheKey("impressum"), cacheStore.LastSetKey)

	repo.AssertExpectations(t)
}

// Test angemeldete Leser umgehen den Cache und sehen auch Entwürfe
func TestGetPage_AuthenticatedSkipsCache(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPageRepo)
	cacheStore := &use_cases.MockCache{}
	service := &PageService{repo: repo, cache: cacheStore, taskQueue: new(use_cases.MockTaskQueue)}

	repo.On("FindBySlug", ctx, "entwurf", false).Return(&entity.PageEntity{
		ID:        "page-2",
		Slug:      "entwurf",
		Title:     "Entwurf",
		Published: false,
	}, (*app_errors.AppError)(nil))

	resp, err := service.GetPage(ctx, "entwurf", false)

	assert.Nil(t, err)
	assert.False(t, resp.Published)
	assert.Equal(t, 0, cacheStore.GetCalled)
	assert.Equal(t, 0, cacheStore.SetCalled)

	repo.AssertExpectations(t)
}

// Test unveröffentlicht ist für Anonyme ein 404
func TestGetPage_UnpublishedAnonymous(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPageRepo)
	service := &PageService{repo: repo, cache: &use_cases.MockCache{}, taskQueue: new(use_cases.MockTaskQueue)}

	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "db.not_found", nil)
	repo.On("FindBySlug", ctx, "entwurf", true).Return((*entity.PageEntity)(nil), notFound)

	resp, err := service.GetPage(ctx, "entwurf", true)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 404, err.Code)
}
