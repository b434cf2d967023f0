package taxonomy_repo

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type TaxonomyRepoContract interface {
	UpsertCategory(ctx context.Context, model *entity.CategoryEntity) (*entity.CategoryEntity, *app_errors.AppError)
	FindCategoryBySlug(ctx context.Context, slug string) (*entity.CategoryEntity, *app_errors.AppError)
	ListCategories(ctx context.Context, search *string, limit, offset int) ([]entity.CategoryEntity, *app_errors.AppError)
	CountCategories(ctx context.Context, search *string) (int, *app_errors.AppError)
	DeleteCategoryBySlug(ctx context.Context, slug string) *app_errors.AppError

	UpsertTag(ctx context.Context, model *entity.TagEntity) (*entity.TagEntity, *app_errors.AppError)
	FindTagBySlug(ctx context.Context, slug string) (*entity.TagEntity, *app_errors.AppError)
	ListTags(ctx context.Context, search *string, limit, offset int) ([]entity.TagEntity, *app_errors.AppError)
	CountTags(ctx context.Context, search *string) (int, *app_errors.AppError)
	DeleteTagBySlug(ctx context.Context, slug string) *app_errors.AppError

	// EnsureTags legt fehlende Tags per Slug an und liefert die ids aller
	// angefragten Tags — für die Tag-Zuordnung beim Beitrags-Upsert.
	EnsureTags(ctx context.Context, t tx.Tx, slugs []string) ([]entity.TagEntity, *app_errors.AppError)
}
