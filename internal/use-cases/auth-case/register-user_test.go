package auth_case

import (
	"context"
	"testing"
	"time"

	auth_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/auth-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testJWTSecret = "unit-test-secret-0123456789abcdef0123456789"

func newTestJWTMaker(t *testing.T) *utils.JWTMaker {
	t.Helper()
	maker, err := utils.NewJWTMaker(testJWTSecret)
	if err != nil {
		t.Fatalf("JWT maker: %v", err)
	}
	return maker
}

// Test Happy path
func TestRegisterUser_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	txManager := new(use_cases.MockTxManager)
	mockTx := new(use_cases.MockTx)
	sessions := &use_cases.MockCache{}

	service := &AuthService{
		repo:       repo,
		txManager:  txManager,
		sessions:   sessions,
		jwt:        newTestJWTMaker(t),
		tokenTTL:   15 * time.Minute,
		refreshTTL: 720 * time.Hour,
	}

	req := auth_dto.RegisterUserRequest{
		Email:           "neu@example.com",
		FullName:        "Neue Person",
		Password:        "super-secret-pw",
		ConfirmPassword: "super-secret-pw",
	}

	repo.On("CountByEmail", ctx, req.Email).Return(0, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	mockTx.On("Commit", ctx).Return((*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))

	repo.On("SaveUser", ctx, mockTx, mock.AnythingOfType("*entity.UserEntity")).Return(&entity.UserEntity{
		ID:       "user-1",
		Email:    req.Email,
		IsActive: true,
	}, (*app_errors.AppError)(nil))

	repo.On("SaveProfile", ctx, mockTx, mock.AnythingOfType("*entity.ProfileEntity")).Return(&entity.ProfileEntity{
		ID:       "user-1",
		Email:    req.Email,
		FullName: req.FullName,
		Role:     entity.RoleUser,
	}, (*app_errors.AppError)(nil))

	resp, err := service.RegisterUser(ctx, req, auth_dto.LoginMetadata{Device: "Desktop"})

	assert.Nil(t, err)
	assert.NotNil(t, resp)

	assert.Equal(t, req.Email, resp.User.Email)
	assert.Equal(t, "user", resp.User.Role)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.Session.RefreshToken)
	assert.Equal(t, "Desktop", resp.Session.Device)

	// Session + Refresh-Mapping geschrieben, jti im Benutzer-Set
	assert.Equal(t, 2, sessions.SetCalled)
	assert.Equal(t, 1, sessions.AddCalled)
	assert.Contains(t, sessions.LastAddedMembers, resp.Session.ID)

	repo.AssertExpectations(t)
	txManager.AssertExpectations(t)
	mockTx.AssertExpectations(t)
}

// Test duplicate email is rejected before any write
func TestRegisterUser_DuplicateEmail(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	txManager := new(use_cases.MockTxManager)
	sessions := &use_cases.MockCache{}

	service := &AuthService{
		repo:       repo,
		txManager:  txManager,
		sessions:   sessions,
		jwt:        newTestJWTMaker(t),
		tokenTTL:   15 * time.Minute,
		refreshTTL: 720 * time.Hour,
	}

	repo.On("CountByEmail", ctx, "doppelt@example.com").Return(1, (*app_errors.AppError)(nil))

	resp, err := service.RegisterUser(ctx, auth_dto.RegisterUserRequest{
		Email:           "doppelt@example.com",
		FullName:        "Doppelt",
		Password:        "super-secret-pw",
		ConfirmPassword: "super-secret-pw",
	}, auth_dto.LoginMetadata{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)
	assert.Equal(t, app_errors.ErrConflict, err.Type)

	assert.Equal(t, 0, sessions.SetCalled)
	repo.AssertExpectations(t)
	txManager.AssertNotCalled(t, "Begin", ctx)
}

// Test failing insert rolls back and never commits
func TestRegisterUser_SaveUserFails(t *testing.T) {
	ctx := context.Background()

	repo := new(MockAuthRepo)
	txManager := new(use_cases.MockTxManager)
	mockTx := new(use_cases.MockTx)
	sessions := &use_cases.MockCache{}

	service := &AuthService{
		repo:       repo,
		txManager:  txManager,
		sessions:   sessions,
		jwt:        newTestJWTMaker(t),
		tokenTTL:   15 * time.Minute,
		refreshTTL: 720 * time.Hour,
	}

	dbErr := app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "db.duplicate_email", nil)

	repo.On("CountByEmail", ctx, "race@example.com").Return(0, (*app_errors.AppError)(nil))
	txManager.On("Begin", ctx).Return(mockTx, (*app_errors.AppError)(nil))
	mockTx.On("Rollback", ctx).Return((*app_errors.AppError)(nil))
	repo.On("SaveUser", ctx, mockTx, mock.AnythingOfType("*entity.UserEntity")).Return((*entity.UserEntity)(nil), dbErr)

	resp, err := service.RegisterUser(ctx, auth_dto.RegisterUserRequest{
		Email:           "race@example.com",
		FullName:        "Race",
		Password:        "super-secret-pw",
		ConfirmPassword: "super-secret-pw",
	}, auth_dto.LoginMetadata{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, fiber.StatusConflict, err.Code)

	assert.Equal(t, 0, sessions.SetCalled)
	mockTx.AssertNotCalled(t, "Commit", ctx)
	repo.AssertNotCalled(t, "SaveProfile", ctx, mockTx, mock.Anything)
}
