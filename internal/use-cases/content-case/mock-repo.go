package content_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/stretchr/testify/mock"
)

type MockContentRepo struct {
	mock.Mock
}

func (m *MockContentRepo) UpsertCommonByKey(ctx context.Context, model *entity.CommonContentEntity) (*entity.CommonContentEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.CommonContentEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockContentRepo) FindCommonByKey(ctx context.Context, key string) (*entity.CommonContentEntity, *app_errors.AppError) {
	args := m.Called(ctx, key)
	return args.Get(0).(*entity.CommonContentEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockContentRepo) ListCommon(ctx context.Context, limit, offset int) ([]entity.CommonContentEntity, *app_errors.AppError) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]entity.CommonContentEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockContentRepo) CountCommon(ctx context.Context) (int, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockContentRepo) DeleteCommonByKey(ctx context.Context, key string) *app_errors.AppError {
	args := m.Called(ctx, key)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockContentRepo) UpsertCodeByKey(ctx context.Context, model *entity.CustomCodeEntity) (*entity.CustomCodeEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.CustomCodeEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockContentRepo) FindCodeByKey(ctx context.Context, key string, activeOnly bool) (*entity.CustomCodeEntity, *app_errors.AppError) {
	args := m.Called(ctx, key, activeOnly)
	return args.Get(0).(*entity.CustomCodeEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockContentRepo) ListCodes(ctx context.Context, activeOnly bool, limit, offset int) ([]entity.CustomCodeEntity, *app_errors.AppError) {
	args := m.Called(ctx, activeOnly, limit, offset)
	return args.Get(0).([]entity.CustomCodeEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockContentRepo) CountCodes(ctx context.Context, activeOnly bool) (int, *app_errors.AppError) {
	args := m.Called(ctx, activeOnly)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockContentRepo) DeleteCodeByKey(ctx context.Context, key string) *app_errors.AppError {
	args := m.Called(ctx, key)
	return args.Get(0).(*app_errors.AppError)
}
