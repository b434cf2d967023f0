package page_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	page_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/page-dto"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type PageServiceContract interface {
	UpsertPage(ctx context.Context, slug string, req page_dto.UpsertPageRequest) (*page_dto.PageResponse, *app_errors.AppError)
	GetPage(ctx context.Context, slug string, publishedOnly bool) (*page_dto.PageResponse, *app_errors.AppError)
	ListPages(ctx context.Context, query page_dto.ListPagesQuery, publishedOnly bool) ([]page_dto.PageResponse, *dtos.PaginationMeta, *app_errors.AppError)
	DeletePage(ctx context.Context, slug string) *app_errors.AppError
}
