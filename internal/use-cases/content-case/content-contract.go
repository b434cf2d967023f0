package content_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	content_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/content-dto"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type ContentServiceContract interface {
	UpsertCommon(ctx context.Context, key string, req content_dto.UpsertCommonContentRequest) (*content_dto.CommonContentResponse, *app_errors.AppError)
	GetCommon(ctx context.Context, key string) (*content_dto.CommonContentResponse, *app_errors.AppError)
	ListCommon(ctx context.Context, query content_dto.ListContentQuery) ([]content_dto.CommonContentResponse, *dtos.PaginationMeta, *app_errors.AppError)
	DeleteCommon(ctx context.Context, key string) *app_errors.AppError

	UpsertCode(ctx context.Context, key string, req content_dto.UpsertCustomCodeRequest) (*content_dto.CustomCodeResponse, *app_errors.AppError)
	GetCode(ctx context.Context, key string, activeOnly bool) (*content_dto.CustomCodeResponse, *app_errors.AppError)
	ListCodes(ctx context.Context, query content_dto.ListContentQuery, activeOnly bool) ([]content_dto.CustomCodeResponse, *dtos.PaginationMeta, *app_errors.AppError)
	DeleteCode(ctx context.Context, key string) *app_errors.AppError
}
