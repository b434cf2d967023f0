package media_case

import (
	"context"
	"mime/multipart"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	media_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/media-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type MediaServiceContract interface {
	Upload(ctx context.Context, caller entity.Principal, file *multipart.FileHeader) (*media_dto.MediaResponse, *app_errors.AppError)
	GetMedia(ctx context.Context, id string) (*media_dto.MediaResponse, *app_errors.AppError)
	ListMedia(ctx context.Context, query media_dto.ListMediaQuery) ([]media_dto.MediaResponse, *dtos.PaginationMeta, *app_errors.AppError)
	UpdateMedia(ctx context.Context, caller entity.Principal, id string, req media_dto.UpdateMediaRequest) (*media_dto.MediaResponse, *app_errors.AppError)
	DeleteMedia(ctx context.Context, caller entity.Principal, id string) *app_errors.AppError
}
