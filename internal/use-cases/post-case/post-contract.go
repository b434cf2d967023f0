package post_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	post_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/post-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type PostServiceContract interface {
	CreatePost(ctx context.Context, caller entity.Principal, req post_dto.CreatePostRequest) (*post_dto.PostResponse, *app_errors.AppError)
	UpsertPost(ctx context.Context, caller entity.Principal, slug string, req post_dto.UpsertPostRequest) (*post_dto.PostResponse, *app_errors.AppError)
	GetPost(ctx context.Context, slug string, publishedOnly bool) (*post_dto.PostResponse, *app_errors.AppError)
	ListPosts(ctx context.Context, query post_dto.ListPostsQuery, publishedOnly bool) ([]post_dto.PostResponse, *dtos.PaginationMeta, *app_errors.AppError)
	DeletePost(ctx context.Context, caller entity.Principal, slug string) *app_errors.AppError
}
