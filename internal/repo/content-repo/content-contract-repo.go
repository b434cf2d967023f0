package content_repo

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type ContentRepoContract interface {
	UpsertCommonByKey(ctx context.Context, model *entity.CommonContentEntity) (*entity.CommonContentEntity, *app_errors.AppError)
	FindCommonByKey(ctx context.Context, key string) (*entity.CommonContentEntity, *app_errors.AppError)
	ListCommon(ctx context.Context, limit, offset int) ([]entity.CommonContentEntity, *app_errors.AppError)
	CountCommon(ctx context.Context) (int, *app_errors.AppError)
	DeleteCommonByKey(ctx context.Context, key string) *app_errors.AppError

	UpsertCodeByKey(ctx context.Context, model *entity.CustomCodeEntity) (*entity.CustomCodeEntity, *app_errors.AppError)
	FindCodeByKey(ctx context.Context, key string, activeOnly bool) (*entity.CustomCodeEntity, *app_errors.AppError)
	ListCodes(ctx context.Context, activeOnly bool, limit, offset int) ([]entity.CustomCodeEntity, *app_errors.AppError)
	CountCodes(ctx context.Context, activeOnly bool) (int, *app_errors.AppError)
	DeleteCodeByKey(ctx context.Context, key string) *app_errors.AppError
}
