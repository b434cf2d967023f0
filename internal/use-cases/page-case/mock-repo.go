package page_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/stretchr/testify/mock"
)

type MockPageRepo struct {
	mock.Mock
}

func (m *MockPageRepo) UpsertBySlug(ctx context.Context, model *entity.PageEntity) (*entity.PageEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.PageEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPageRepo) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.PageEntity, *app_errors.AppError) {
	args := m.Called(ctx, slug, publishedOnly)
	return args.Get(0).(*entity.PageEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPageRepo) ListPages(ctx context.Context, filter entity.PageListFilter, limit, offset int) ([]entity.PageEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]entity.PageEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPageRepo) CountPages(ctx context.Context, filter entity.PageListFilter) (int, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockPageRepo) DeleteBySlug(ctx context.Context, slug string) *app_errors.AppError {
	args := m.Called(ctx, slug)
	return args.Get(0).(*app_errors.AppError)
}
