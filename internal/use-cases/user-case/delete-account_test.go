package user_case

import (
	"context"
	"testing"

	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteAccount_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	auth := new(MockAuthService)
	cacheStore := &use_cases.MockCache{}
	service := &UserService{repo: repo, cache: cacheStore, auth: auth}

	auth.On("LogoutAllDevices", ctx, "user-1").Return((*app_errors.AppError)(nil))
	repo.On("DeleteUser", ctx, "user-1").Return((*app_errors.AppError)(nil))

	err := service.DeleteAccount(ctx, "user-1")

	assert.Nil(t, err)
	assert.Contains(t, cacheStore.LastDeletedKeys, profileCacheKey("user-1"))

	auth.AssertExpectations(t)
	repo.AssertExpectations(t)
}

// Test Sitzungen müssen vor dem Konto fallen: scheitert der Logout, bleibt das
// Konto bestehen.
func TestDeleteAccount_LogoutFails(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	auth := new(MockAuthService)
	service := &UserService{repo: repo, cache: &use_cases.MockCache{}, auth: auth}

	storeErr := app_errors.NewInternalError("cache.unavailable", nil)
	auth.On("LogoutAllDevices", ctx, "user-1").Return(storeErr)

	err := service.DeleteAccount(ctx, "user-1")

	assert.NotNil(t, err)
	assert.Equal(t, 500, err.Code)

	repo.AssertNotCalled(t, "DeleteUser", mock.Anything, mock.Anything)
}

func TestDeleteAccount_UserGone(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	auth := new(MockAuthService)
	cacheStore := &use_cases.MockCache{}
	service := &UserService{repo: repo, cache: cacheStore, auth: auth}

	auth.On("LogoutAllDevices", ctx, "user-weg").Return((*app_errors.AppError)(nil))
	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "db.not_found", nil)
	repo.On("DeleteUser", ctx, "user-weg").Return(notFound)

	err := service.DeleteAccount(ctx, "user-weg")

	assert.NotNil(t, err)
	assert.Equal(t, app_errors.ErrNotFound, err.Type)
	assert.Equal(t, 0, cacheStore.DelCalled)
}
