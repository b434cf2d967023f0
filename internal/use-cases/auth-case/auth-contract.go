package auth_case

import (
	"context"

	auth_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/auth-dto"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

// AuthServiceContract reicht die Methoden für den AuthService weiter.
type AuthServiceContract interface {
	RegisterUser(ctx context.Context, req auth_dto.RegisterUserRequest, meta auth_dto.LoginMetadata) (*auth_dto.RegisterUserResponse, *app_errors.AppError)
	LoginUser(ctx context.Context, req auth_dto.LoginUserRequest, meta auth_dto.LoginMetadata) (*auth_dto.LoginUserResponse, *app_errors.AppError)
	RefreshSession(ctx context.Context, req auth_dto.RefreshTokenRequest) (*auth_dto.RefreshTokenResponse, *app_errors.AppError)
	LogoutUser(ctx context.Context, jti string) *app_errors.AppError
	LogoutAllDevices(ctx context.Context, userID string) *app_errors.AppError
	ListSessions(ctx context.Context, userID, currentJTI string) ([]auth_dto.ListSessionsResponse, *app_errors.AppError)
}
