package auth_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/stretchr/testify/mock"
)

type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) CountByEmail(ctx context.Context, email string) (int64, *app_errors.AppError) {
	args := m.Called(ctx, email)
	return int64(args.Int(0)), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) SaveUser(ctx context.Context, t tx.Tx, model *entity.UserEntity) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, model)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) SaveProfile(ctx context.Context, t tx.Tx, model *entity.ProfileEntity) (*entity.ProfileEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, model)
	return args.Get(0).(*entity.ProfileEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, email)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockAuthRepo) FindByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	args := m.Called(ctx, userID)
	return args.Get(0).(*entity.UserEntity), args.Get(1).(*app_errors.AppError)
}

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
