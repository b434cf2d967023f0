package user_repo

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type UserRepoContract interface {
	FindProfileByUserID(ctx context.Context, userID string) (*entity.ProfileEntity, *app_errors.AppError)
	UpsertProfile(ctx context.Context, userID string, model user_dto.UpdateProfileRequest) (*entity.ProfileEntity, *app_errors.AppError)
	ListUsers(ctx context.Context, filter entity.UserListFilter, limit, offset int) ([]entity.UserAccount, *app_errors.AppError)
	CountUsers(ctx context.Context, filter entity.UserListFilter) (int, *app_errors.AppError)
	FindUserAccount(ctx context.Context, userID string) (*entity.UserAccount, *app_errors.AppError)
	AdminUpdateUser(ctx context.Context, t tx.Tx, userID string, model user_dto.AdminUpdateUserRequest) *app_errors.AppError
	DeleteUser(ctx context.Context, userID string) *app_errors.AppError
}
