package user_case

import (
	"context"
	"fmt"
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	user_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/user-repo"
	auth_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/auth-case"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

const profileCacheTTL = 15 * time.Minute

func profileCacheKey(userID string) string {
	return fmt.Sprintf("user_profile:%s", userID)
}

type UserService struct {
	repo      user_repo.UserRepoContract
	txManager tx.TxManager
	cache     cache.Cache
	auth      auth_case.AuthServiceContract
}

func NewUserService(db *pgxpool.Pool, cacheStore cache.Cache, auth auth_case.AuthServiceContract) UserServiceContract {
	return &UserService{
		repo:      user_repo.NewUserRepo(db),
		txManager: tx.NewPgxTxManager(db),
		cache:     cacheStore,
		auth:      auth,
	}
}

// GetProfile liefert das eigene Profil. Redis dient nur als Cache, nicht als
// Source of Truth; Cache-Fehler werden geloggt und überspielt.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*user_dto.UserResponse, *app_errors.AppError) {
	var cached user_dto.UserResponse
	if found, cacheErr := s.cache.GetJSON(ctx, profileCacheKey(userID), &cached); cacheErr == nil && found {
		return &cached, nil
	}

	account, err := s.repo.FindUserAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := toUserResponse(account)
	if cacheErr := s.cache.SetJSON(ctx, profileCacheKey(userID), resp, profileCacheTTL); cacheErr != nil {
		log.Warn().Err(cacheErr.Err).Msg("Profil-Cache nicht schreibbar")
	}

	return resp, nil
}

// UpdateProfile schreibt die gesetzten Felder ins Profil (Upsert: ein noch
// fehlendes Profil wird dabei angelegt) und liefert die frische Kontosicht.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, req user_dto.UpdateProfileRequest) (*user_dto.UserResponse, *app_errors.AppError) {
	if req.FullName == nil && req.AvatarURL == nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", nil)
	}

	if _, err := s.repo.UpsertProfile(ctx, userID, req); err != nil {
		return nil, err
	}

	if cacheErr := s.cache.Del(ctx, profileCacheKey(userID)); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("Profil-Cache nicht löschbar")
	}

	account, err := s.repo.FindUserAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toUserResponse(account), nil
}

// DeleteAccount beendet zuerst alle Sitzungen des Benutzers und löscht dann
// das Konto. Schlägt das Löschen fehl, ist der Benutzer lediglich abgemeldet.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) *app_errors.AppError {
	if err := s.auth.LogoutAllDevices(ctx, userID); err != nil {
		return err
	}

	if err := s.repo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	if cacheErr := s.cache.Del(ctx, profileCacheKey(userID)); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("Profil-Cache nicht löschbar")
	}

	return nil
}

// ListUsers liefert die Kontenliste für Admins, gefiltert und paginiert.
func (s *UserService) ListUsers(ctx context.Context, query user_dto.ListUsersQuery) ([]user_dto.UserResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	filter := entity.UserListFilter{}
	if query.Role != "" {
		role := entity.UserRole(query.Role)
		filter.Role = &role
	}
	if query.Search != "" {
		filter.Search = &query.Search
	}

	total, err := s.repo.CountUsers(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	accounts, err := s.repo.ListUsers(ctx, filter, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	users := make([]user_dto.UserResponse, 0, len(accounts))
	for i := range accounts {
		users = append(users, *toUserResponse(&accounts[i]))
	}

	meta := &dtos.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	return users, meta, nil
}

// GetUser liefert ein fremdes Konto (Admin-Sicht).
func (s *UserService) GetUser(ctx context.Context, userID string) (*user_dto.UserResponse, *app_errors.AppError) {
	account, err := s.repo.FindUserAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toUserResponse(account), nil
}

// AdminUpdateUser ändert Rolle, Namen oder Aktiv-Status eines Kontos. Eine
// Deaktivierung beendet sofort alle Sitzungen des Betroffenen.
func (s *UserService) AdminUpdateUser(ctx context.Context, userID string, req user_dto.AdminUpdateUserRequest) (*user_dto.UserResponse, *app_errors.AppError) {
	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	if err := s.repo.AdminUpdateUser(ctx, t, userID, req); err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	if req.IsActive != nil && !*req.IsActive {
		if err := s.auth.LogoutAllDevices(ctx, userID); err != nil {
			return nil, err
		}
	}

	if cacheErr := s.cache.Del(ctx, profileCacheKey(userID)); cacheErr != nil {
		log.Warn().Err(cacheErr).Msg("Profil-Cache nicht löschbar")
	}

	account, err := s.repo.FindUserAccount(ctx, userID)
	if err != nil {
		return nil, err
	}

	return toUserResponse(account), nil
}

func toUserResponse(account *entity.UserAccount) *user_dto.UserResponse {
	return &user_dto.UserResponse{
		ID:        account.ID,
		Email:     account.Email,
		FullName:  account.FullName,
		Role:      string(account.Role),
		AvatarURL: account.AvatarURL,
		IsActive:  account.IsActive,
		CreatedAt: account.CreatedAt,
		UpdatedAt: account.UpdatedAt,
	}
}
