package taxonomy_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	taxonomy_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/taxonomy-dto"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type TaxonomyServiceContract interface {
	UpsertCategory(ctx context.Context, slug string, req taxonomy_dto.UpsertCategoryRequest) (*taxonomy_dto.CategoryResponse, *app_errors.AppError)
	GetCategory(ctx context.Context, slug string) (*taxonomy_dto.CategoryResponse, *app_errors.AppError)
	ListCategories(ctx context.Context, query taxonomy_dto.ListTaxonomyQuery) ([]taxonomy_dto.CategoryResponse, *dtos.PaginationMeta, *app_errors.AppError)
	DeleteCategory(ctx context.Context, slug string) *app_errors.AppError

	UpsertTag(ctx context.Context, slug string, req taxonomy_dto.UpsertTagRequest) (*taxonomy_dto.TagResponse, *app_errors.AppError)
	GetTag(ctx context.Context, slug string) (*taxonomy_dto.TagResponse, *app_errors.AppError)
	ListTags(ctx context.Context, query taxonomy_dto.ListTaxonomyQuery) ([]taxonomy_dto.TagResponse, *dtos.PaginationMeta, *app_errors.AppError)
	DeleteTag(ctx context.Context, slug string) *app_errors.AppError
}
