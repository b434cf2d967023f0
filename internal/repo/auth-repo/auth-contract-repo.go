package auth_repo

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type AuthRepoContract interface {
	CountByEmail(ctx context.Context, email string) (int64, *app_errors.AppError)
	SaveUser(ctx context.Context, t tx.Tx, model *entity.UserEntity) (*entity.UserEntity, *app_errors.AppError)
	SaveProfile(ctx context.Context, t tx.Tx, model *entity.ProfileEntity) (*entity.ProfileEntity, *app_errors.AppError)
	FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError)
	FindByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError)
}
