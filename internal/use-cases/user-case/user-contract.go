package user_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

type UserServiceContract interface {
	GetProfile(ctx context.Context, userID string) (*user_dto.UserResponse, *app_errors.AppError)
	UpdateProfile(ctx context.Context, userID string, req user_dto.UpdateProfileRequest) (*user_dto.UserResponse, *app_errors.AppError)
	DeleteAccount(ctx context.Context, userID string) *app_errors.AppError
	ListUsers(ctx context.Context, query user_dto.ListUsersQuery) ([]user_dto.UserResponse, *dtos.PaginationMeta, *app_errors.AppError)
	GetUser(ctx context.Context, userID string) (*user_dto.UserResponse, *app_errors.AppError)
	AdminUpdateUser(ctx context.Context, userID string, req user_dto.AdminUpdateUserRequest) (*user_dto.UserResponse, *app_errors.AppError)
}
