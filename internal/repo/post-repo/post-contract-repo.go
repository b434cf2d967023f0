package post_repo

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type PostRepoContract interface {
	// Insert legt den Beitrag strikt neu an; ein belegter Slug läuft als
	// 23505 durch den Translator (POST ist kein Upsert).
	Insert(ctx context.Context, t tx.Tx, model *entity.PostEntity) (*entity.PostEntity, *app_errors.AppError)
	UpsertBySlug(ctx context.Context, t tx.Tx, model *entity.PostEntity) (*entity.PostEntity, *app_errors.AppError)
	ReplaceTags(ctx context.Context, t tx.Tx, postID string, tagIDs []string) *app_errors.AppError
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.PostEntity, *app_errors.AppError)
	ListPosts(ctx context.Context, filter entity.PostListFilter, limit, offset int) ([]entity.PostEntity, *app_errors.AppError)
	CountPosts(ctx context.Context, filter entity.PostListFilter) (int, *app_errors.AppError)
	DeleteBySlug(ctx context.Context, slug string) *app_errors.AppError
}
