package user_case

import (
	"context"
	"testing"

	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAdminUpdateUser_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	auth := new(MockAuthService)
	mockTx := new(use_cases.MockTx)
	txManager := new(use_cases.MockTxManager)
	cacheStore := &use_cases.MockCache{}
	service := &UserService{repo: repo, txManager: txManager, cache: cacheStore, auth: auth}

	role := "moderator"
	req := user_dto.AdminUpdateUserRequest{Role: &role}

	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	repo.On("AdminUpdateUser", ctx, mockTx, "user-1", req).Return((*app_errors.AppError)(nil))
	repo.On("FindUserAccount", ctx, "user-1").Return(&entity.UserAccount{
		ID:       "user-1",
		Email:    "befoerdert@example.com",
		Role:     entity.RoleModerator,
		IsActive: true,
	}, (*app_errors.AppError)(nil))

	resp, err := service.AdminUpdateUser(ctx, "user-1", req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, "moderator", resp.Role)
	assert.Contains(t, cacheStore.LastDeletedKeys, profileCacheKey("user-1"))

	// Rollenwechsel allein beendet keine Sitzungen
	auth.AssertNotCalled(t, "LogoutAllDevices", mock.Anything, mock.Anything)

	repo.AssertExpectations(t)
	mockTx.AssertCalled(t, "Commit", ctx)
}

// Test Deaktivierung wirft den Betroffenen sofort aus allen Sitzungen
func TestAdminUpdateUser_DeactivationLogsOut(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	auth := new(MockAuthService)
	mockTx := new(use_cases.MockTx)
	txManager := new(use_cases.MockTxManager)
	service := &UserService{repo: repo, txManager: txManager, cache: &use_cases.MockCache{}, auth: auth}

	inactive := false
	req := user_dto.AdminUpdateUserRequest{IsActive: &inactive}

	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	repo.On("AdminUpdateUser", ctx, mockTx, "user-1", req).Return((*app_errors.AppError)(nil))
	auth.On("LogoutAllDevices", ctx, "user-1").Return((*app_errors.AppError)(nil))
	repo.On("FindUserAccount", ctx, "user-1").Return(&entity.UserAccount{
		ID:       "user-1",
		Email:    "gesperrt@example.com",
		Role:     entity.RoleUser,
		IsActive: false,
	}, (*app_errors.AppError)(nil))

	resp, err := service.AdminUpdateUser(ctx, "user-1", req)

	assert.Nil(t, err)
	assert.False(t, resp.IsActive)

	auth.AssertExpectations(t)
	repo.AssertExpectations(t)
}

// Test Fehler im Update: Rollback, kein Commit, keine Sitzung angefasst
func TestAdminUpdateUser_RepoFails(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	auth := new(MockAuthService)
	mockTx := new(use_cases.MockTx)
	txManager := new(use_cases.MockTxManager)
	service := &UserService{repo: repo, txManager: txManager, cache: &use_cases.MockCache{}, auth: auth}

	role := "admin"
	req := user_dto.AdminUpdateUserRequest{Role: &role}

	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	dbErr := app_errors.NewInternalError("db.query_failed", nil)
	repo.On("AdminUpdateUser", ctx, mockTx, "user-1", req).Return(dbErr)

	resp, err := service.AdminUpdateUser(ctx, "user-1", req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)

	mockTx.AssertNotCalled(t, "Commit", mock.Anything)
	mockTx.AssertCalled(t, "Rollback", ctx)
	auth.AssertNotCalled(t, "LogoutAllDevices", mock.Anything, mock.Anything)
}

func TestGetUser_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	service := &UserService{repo: repo, cache: &use_cases.MockCache{}}

	avatar := "https://cdn.example.com/avatar.png"
	repo.On("FindUserAccount", ctx, "user-2").Return(&entity.UserAccount{
		ID:        "user-2",
		Email:     "fremd@example.com",
		FullName:  "Fremdes Konto",
		Role:      entity.RoleAdmin,
		AvatarURL: &avatar,
		IsActive:  true,
	}, (*app_errors.AppError)(nil))

	resp, err := service.GetUser(ctx, "user-2")

	assert.Nil(t, err)
	assert.Equal(t, "admin", resp.Role)
	assert.NotNil(t, resp.AvatarURL)
	assert.Equal(t, avatar, *resp.AvatarURL)

	repo.AssertExpectations(t)
}
