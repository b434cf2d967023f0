package page_repo

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type PageRepoContract interface {
	UpsertBySlug(ctx context.Context, model *entity.PageEntity) (*entity.PageEntity, *app_errors.AppError)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.PageEntity, *app_errors.AppError)
	ListPages(ctx context.Context, filter entity.PageListFilter, limit, offset int) ([]entity.PageEntity, *app_errors.AppError)
	CountPages(ctx context.Context, filter entity.PageListFilter) (int, *app_errors.AppError)
	DeleteBySlug(ctx context.Context, slug string) *app_errors.AppError
}
