package user_case

import (
	"context"
	"testing"

	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
)

// Test Cache hit: no repo roundtrip
func TestGetProfile_CacheHit(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	cacheStore := &use_cases.MockCache{
		GetJSONFn: func(ctx context.Context, key string, dest any) (bool, *app_errors.AppError) {
			if v, ok := dest.(*user_dto.UserResponse); ok && key == profileCacheKey("user-1") {
				*v = user_dto.UserResponse{ID: "user-1", Email: "cache@example.com", Role: "user", IsActive: true}
				return true, nil
			}
			return false, nil
		},
	}

	service := &UserService{repo: repo, cache: cacheStore}

	resp, err := service.GetProfile(ctx, "user-1")

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "cache@example.com", resp.Email)
	assert.Equal(t, 1, cacheStore.GetCalled)
	repo.AssertNotCalled(t, "FindUserAccount", ctx, "user-1")
}

// Test Cache miss falls back to the database and refills the cache
func TestGetProfile_CacheMiss(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	cacheStore := &use_cases.MockCache{}

	service := &UserService{repo: repo, cache: cacheStore}

	repo.On("FindUserAccount", ctx, "user-1").Return(&entity.UserAccount{
		ID:       "user-1",
		Email:    "db@example.com",
		FullName: "Aus der Datenbank",
		Role:     entity.RoleModerator,
		IsActive: true,
	}, (*app_errors.AppError)(nil))

	resp, err := service.GetProfile(ctx, "user-1")

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "db@example.com", resp.Email)
	assert.Equal(t, "moderator", resp.Role)
	assert.Equal(t, 1, cacheStore.SetCalled)
	assert.Equal(t, profileCacheKey("user-1"), cacheStore.LastSetKey)

	repo.AssertExpectations(t)
}

// Test unknown account propagates the repo 404
func TestGetProfile_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	service := &UserService{repo: repo, cache: &use_cases.MockCache{}}

	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "db.not_found", nil)
	repo.On("FindUserAccount", ctx, "user-weg").Return((*entity.UserAccount)(nil), notFound)

	resp, err := service.GetProfile(ctx, "user-weg")

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrNotFound, err.Type)
}
