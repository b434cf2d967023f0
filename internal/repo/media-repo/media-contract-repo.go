package media_repo

import (
	"context"

	media_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/media-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type MediaRepoContract interface {
	Insert(ctx context.Context, model *entity.MediaEntity) (*entity.MediaEntity, *app_errors.AppError)
	FindByID(ctx context.Context, id string) (*entity.MediaEntity, *app_errors.AppError)
	ListMedia(ctx context.Context, mime *string, limit, offset int) ([]entity.MediaEntity, *app_errors.AppError)
	CountMedia(ctx context.Context, mime *string) (int, *app_errors.AppError)
	UpdateMeta(ctx context.Context, id string, model media_dto.UpdateMediaRequest) (*entity.MediaEntity, *app_errors.AppError)
	Delete(ctx context.Context, id string) *app_errors.AppError
	ListObjectKeys(ctx context.Context) (map[string]struct{}, *app_errors.AppError)
}
