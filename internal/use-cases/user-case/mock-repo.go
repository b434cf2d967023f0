package user_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	auth_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/auth-dto"
	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/stretchr/testify/mock"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) FindProfileByUserID(ctx context.Context, userID string) (*entity.ProfileEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.ProfileEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) UpsertProfile(ctx context.Context, userID string, model user_dto.UpdateProfileRequest) (*entity.ProfileEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID, model)
	return args.Get(0).(*entity.ProfileEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) ListUsers(ctx context.Context, filter entity.UserListFilter, limit, offset int) ([]entity.UserAccount, *app_errors.AppError) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]entity.UserAccount), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) CountUsers(ctx context.Context, filter entity.UserListFilter) (int, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) FindUserAccount(ctx context.Context, userID string) (*entity.UserAccount, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.UserAccount), args.Get(1).(*app_errors.AppError)
}

func (m *MockUserRepo) AdminUpdateUser(ctx context.Context, t tx.Tx, userID string, model user_dto.AdminUpdateUserRequest) *app_errors.AppError {
	args := m.Called(ctx, t, userID, model)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockUserRepo) DeleteUser(ctx context.Context, userID string) *app_errors.AppError {
	args := m.Called(ctx, userID)
	return args.Get(0).(*app_errors.AppError)
}

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) RegisterUser(ctx context.Context, req auth_dto.RegisterUserRequest, meta auth_dto.LoginMetadata) (*auth_dto.RegisterUserResponse, *app_errors.AppError) {
	args := m.Called(ctx, req, meta)
	return args.Get(0).(*auth_dto.RegisterUserResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthService) LoginUser(ctx context.Context, req auth_dto.LoginUserRequest, meta auth_dto.LoginMetadata) (*auth_dto.LoginUserResponse, *app_errors.AppError) {
	args := m.Called(ctx, req, meta)
	return args.Get(0).(*auth_dto.LoginUserResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthService) RefreshSession(ctx context.Context, req auth_dto.RefreshTokenRequest) (*auth_dto.RefreshTokenResponse, *app_errors.AppError) {
	args := m.Called(ctx, req)
	return args.Get(0).(*auth_dto.RefreshTokenResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthService) LogoutUser(ctx context.Context, jti string) *app_errors.AppError {
	args := m.Called(ctx, jti)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockAuthService) LogoutAllDevices(ctx context.Context, userID string) *app_errors.AppError {
	args := m.Called(ctx, userID)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockAuthService) ListSessions(ctx context.Context, userID, currentJTI string) ([]auth_dto.ListSessionsResponse, *app_errors.AppError) {
	args := m.Called(ctx, userID, currentJTI)
	return args.Get(0).([]auth_dto.ListSessionsResponse), args.Get(1).(*app_errors.AppError)
}
