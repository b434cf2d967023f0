package post_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/stretchr/testify/mock"
)

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) Insert(ctx context.Context, t tx.Tx, model *entity.PostEntity) (*entity.PostEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, model)
	return args.Get(0).(*entity.PostEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPostRepo) UpsertBySlug(ctx context.Context, t tx.Tx, model *entity.PostEntity) (*entity.PostEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, model)
	return args.Get(0).(*entity.PostEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPostRepo) ReplaceTags(ctx context.Context, t tx.Tx, postID string, tagIDs []string) *app_errors.AppError {
	args := m.Called(ctx, t, postID, tagIDs)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockPostRepo) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.PostEntity, *app_errors.AppError) {
	args := m.Called(ctx, slug, publishedOnly)
	return args.Get(0).(*entity.PostEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPostRepo) ListPosts(ctx context.Context, filter entity.PostListFilter, limit, offset int) ([]entity.PostEntity, *app_errors.AppError) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).([]entity.PostEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockPostRepo) CountPosts(ctx context.Context, filter entity.PostListFilter) (int, *app_errors.AppError) {
	args := m.Called(ctx, filter)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockPostRepo) DeleteBySlug(ctx context.Context, slug string) *app_errors.AppError {
	args := m.Called(ctx, slug)
	return args.Get(0).(*app_errors.AppError)
}

// MockTaxonomyRepo deckt hier nur EnsureTags ab; die übrigen Methoden hält
// taxonomy_case selbst unter Test.
type MockTaxonomyRepo struct {
	mock.Mock
}

func (m *MockTaxonomyRepo) UpsertCategory(ctx context.Context, model *entity.CategoryEntity) (*entity.CategoryEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.CategoryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) FindCategoryBySlug(ctx context.Context, slug string) (*entity.CategoryEntity, *app_errors.AppError) {
	args := m.Called(ctx, slug)
	return args.Get(0).(*entity.CategoryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) ListCategories(ctx context.Context, search *string, limit, offset int) ([]entity.CategoryEntity, *app_errors.AppError) {
	args := m.Called(ctx, search, limit, offset)
	return args.Get(0).([]entity.CategoryEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) CountCategories(ctx context.Context, search *string) (int, *app_errors.AppError) {
	args := m.Called(ctx, search)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) DeleteCategoryBySlug(ctx context.Context, slug string) *app_errors.AppError {
	args := m.Called(ctx, slug)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) UpsertTag(ctx context.Context, model *entity.TagEntity) (*entity.TagEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.TagEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) FindTagBySlug(ctx context.Context, slug string) (*entity.TagEntity, *app_errors.AppError) {
	args := m.Called(ctx, slug)
	return args.Get(0).(*entity.TagEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) ListTags(ctx context.Context, search *string, limit, offset int) ([]entity.TagEntity, *app_errors.AppError) {
	args := m.Called(ctx, search, limit, offset)
	return args.Get(0).([]entity.TagEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) CountTags(ctx context.Context, search *string) (int, *app_errors.AppError) {
	args := m.Called(ctx, search)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) DeleteTagBySlug(ctx context.Context, slug string) *app_errors.AppError {
	args := m.Called(ctx, slug)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockTaxonomyRepo) EnsureTags(ctx context.Context, t tx.Tx, slugs []string) ([]entity.TagEntity, *app_errors.AppError) {
	args := m.Called(ctx, t, slugs)
	return args.Get(0).([]entity.TagEntity), args.Get(1).(*app_errors.AppError)
}
