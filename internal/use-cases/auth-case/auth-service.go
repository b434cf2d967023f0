package auth_case

import (
	"context"
	"sort"
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	auth_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/auth-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	auth_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/auth-repo"
	user_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/user-repo"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
)

type AuthService struct {
	repo       auth_repo.AuthRepoContract
	userRepo   user_repo.UserRepoContract
	txManager  tx.TxManager
	sessions   cache.SessionStore
	jwt        *utils.JWTMaker
	tokenTTL   time.Duration
	refreshTTL time.Duration
}

func NewAuthService(db *pgxpool.Pool, sessions cache.SessionStore, jwtMaker *utils.JWTMaker, tokenTTL, refreshTTL time.Duration) AuthServiceContract {
	return &AuthService{
		repo:       auth_repo.NewAuthRepo(db),
		userRepo:   user_repo.NewUserRepo(db),
		txManager:  tx.NewPgxTxManager(db),
		sessions:   sessions,
		jwt:        jwtMaker,
		tokenTTL:   tokenTTL,
		refreshTTL: refreshTTL,
	}
}

// RegisterUser legt Konto und Profil in einer Transaktion an und meldet den
// neuen Benutzer direkt an (Auto-Login samt Session).
func (s *AuthService) RegisterUser(ctx context.Context, req auth_dto.RegisterUserRequest, meta auth_dto.LoginMetadata) (*auth_dto.RegisterUserResponse, *app_errors.AppError) {
	// Vorabprüfung; der UNIQUE-Index auf users.email bleibt die letzte Instanz.
	count, err := s.repo.CountByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	if count > 0 {
		log.Debug().Msg("E-Mail bereits registriert")
		return nil, app_errors.NewAppError(fiber.StatusConflict, app_errors.ErrConflict, "db.duplicate_email", nil)
	}

	hashed, hashErr := utils.GenerateHash(req.Password)
	if hashErr != nil {
		log.Error().Err(hashErr).Msg("Fehler beim Erzeugen des Passwort-Hashes")
		return nil, app_errors.NewInternalError("internal_error", hashErr)
	}

	userID, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return nil, app_errors.NewInternalError("internal_error", idErr)
	}

	t, err := s.txManager.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer t.Rollback(ctx)

	user, err := s.repo.SaveUser(ctx, t, &entity.UserEntity{
		ID:           userID.String(),
		Email:        req.Email,
		PasswordHash: hashed,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	profile, err := s.repo.SaveProfile(ctx, t, &entity.ProfileEntity{
		ID:       user.ID,
		Email:    user.Email,
		FullName: req.FullName,
		Role:     entity.RoleUser,
	})
	if err != nil {
		return nil, err
	}

	if err := t.Commit(ctx); err != nil {
		return nil, err
	}

	token, session, err := s.createSession(ctx, user, meta)
	if err != nil {
		return nil, err
	}

	response := &auth_dto.RegisterUserResponse{
		User:    buildAuthUser(user, profile),
		Token:   token,
		Session: *session,
	}

	return response, nil
}

// LoginUser prüft E-Mail und Passwort, erzeugt ein Access-Token samt
// Refresh-Token und legt die Sitzung in Redis ab. Ob die E-Mail unbekannt
// oder das Passwort falsch war, verrät die Antwort bewusst nicht.
func (s *AuthService) LoginUser(ctx context.Context, req auth_dto.LoginUserRequest, meta auth_dto.LoginMetadata) (*auth_dto.LoginUserResponse, *app_errors.AppError) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		if err.Code == fiber.StatusNotFound {
			return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_credentials", nil)
		}
		return nil, err
	}

	if !utils.VerifyHash(req.Password, user.PasswordHash) {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_credentials", nil)
	}

	if !user.IsActive {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "auth.account_inactive", nil)
	}

	// Profil ist optional: ohne Profil meldet sich der Benutzer als "user" an.
	profile, profileErr := s.userRepo.FindProfileByUserID(ctx, user.ID)
	if profileErr != nil {
		log.Warn().Str("user_id", user.ID).Msg("Profil beim Login nicht ladbar, fahre ohne fort")
		profile = nil
	}

	token, session, err := s.createSession(ctx, user, meta)
	if err != nil {
		return nil, err
	}

	response := &auth_dto.LoginUserResponse{
		User:    buildAuthUser(user, profile),
		Token:   token,
		Session: *session,
	}

	return response, nil
}

// RefreshSession tauscht ein gültiges Refresh-Token gegen ein frisches
// Access-Token. Rotation: das alte Refresh-Token ist danach wertlos, die
// Sitzung (jti) bleibt dieselbe.
func (s *AuthService) RefreshSession(ctx context.Context, req auth_dto.RefreshTokenRequest) (*auth_dto.RefreshTokenResponse, *app_errors.AppError) {
	var jti string
	found, err := s.sessions.GetJSON(ctx, RefreshKey(req.RefreshToken), &jti)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrTokenInvalid, "auth.token_invalid", nil)
	}

	var tracker SessionTracker
	found, err = s.sessions.GetJSON(ctx, SessionKey(jti), &tracker)
	if err != nil {
		return nil, err
	}
	if !found || tracker.RefreshToken != req.RefreshToken {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrTokenInvalid, "auth.token_invalid", nil)
	}

	user, userErr := s.repo.FindByID(ctx, tracker.UserID)
	if userErr != nil {
		if userErr.Code == fiber.StatusNotFound {
			return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrTokenInvalid, "auth.token_invalid", nil)
		}
		return nil, userErr
	}

	if !user.IsActive {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrForbidden, "auth.account_inactive", nil)
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, tokenErr := s.jwt.CreateToken(user.ID, user.Email, jti, s.tokenTTL)
	if tokenErr != nil {
		log.Error().Err(tokenErr).Msg("Fehler beim Erstellen des Access-Tokens")
		return nil, app_errors.NewInternalError("internal_error", tokenErr)
	}

	newRefresh, refreshErr := gonanoid.New(48)
	if refreshErr != nil {
		log.Error().Err(refreshErr).Msg("Fehler beim Erzeugen des Refresh-Tokens")
		return nil, app_errors.NewInternalError("internal_error", refreshErr)
	}

	if delErr := s.sessions.Del(ctx, RefreshKey(req.RefreshToken)); delErr != nil {
		return nil, app_errors.NewInternalError("internal_error", delErr)
	}

	tracker.Token = token
	tracker.RefreshToken = newRefresh
	if err := s.sessions.SetJSON(ctx, SessionKey(jti), &tracker, s.refreshTTL); err != nil {
		return nil, err
	}
	if err := s.sessions.SetJSON(ctx, RefreshKey(newRefresh), jti, s.refreshTTL); err != nil {
		return nil, err
	}

	return &auth_dto.RefreshTokenResponse{
		Token: token,
		Session: auth_dto.SessionResponse{
			ID:           jti,
			RefreshToken: newRefresh,
			ExpiresAt:    expiresAt,
			Device:       tracker.Device,
		},
	}, nil
}

// LogoutUser beendet die Sitzung hinter dem jti des vorgelegten Tokens:
// Session-Eintrag, Refresh-Token und Set-Mitgliedschaft werden entfernt.
func (s *AuthService) LogoutUser(ctx context.Context, jti string) *app_errors.AppError {
	var tracker SessionTracker
	found, err := s.sessions.GetJSON(ctx, SessionKey(jti), &tracker)
	if err != nil {
		return err
	}
	if !found {
		// Session bereits beendet / abgelaufen
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrTokenInvalid, "auth.token_invalid", nil)
	}

	if delErr := s.sessions.Del(ctx, SessionKey(jti), RefreshKey(tracker.RefreshToken)); delErr != nil {
		log.Error().Err(delErr).Msg("Fehler beim Löschen der Session-Keys")
		return app_errors.NewInternalError("internal_error", delErr)
	}

	if err := s.sessions.RemoveFromSet(ctx, UserSessionsKey(tracker.UserID), jti); err != nil {
		return err
	}

	return nil
}

// LogoutAllDevices beendet sämtliche Sitzungen des Benutzers.
func (s *AuthService) LogoutAllDevices(ctx context.Context, userID string) *app_errors.AppError {
	jtis, err := s.sessions.SetMembers(ctx, UserSessionsKey(userID))
	if err != nil {
		return err
	}

	for _, jti := range jtis {
		var tracker SessionTracker
		found, getErr := s.sessions.GetJSON(ctx, SessionKey(jti), &tracker)
		if getErr != nil {
			return getErr
		}

		keys := []string{SessionKey(jti)}
		if found {
			keys = append(keys, RefreshKey(tracker.RefreshToken))
		}
		if delErr := s.sessions.Del(ctx, keys...); delErr != nil {
			log.Error().Err(delErr).Msg("Fehler beim Löschen der Session-Keys")
			return app_errors.NewInternalError("internal_error", delErr)
		}
	}

	if delErr := s.sessions.Del(ctx, UserSessionsKey(userID)); delErr != nil {
		log.Error().Err(delErr).Msg("Fehler beim Löschen des Session-Sets")
		return app_errors.NewInternalError("internal_error", delErr)
	}

	return nil
}

// ListSessions liefert die aktiven Geräte/Sitzungen des Benutzers, neueste
// zuerst. Abgelaufene Einträge werden dabei aus dem Set geräumt.
func (s *AuthService) ListSessions(ctx context.Context, userID, currentJTI string) ([]auth_dto.ListSessionsResponse, *app_errors.AppError) {
	jtis, err := s.sessions.SetMembers(ctx, UserSessionsKey(userID))
	if err != nil {
		return nil, err
	}

	sessions := make([]auth_dto.ListSessionsResponse, 0, len(jtis))
	for _, jti := range jtis {
		var tracker SessionTracker
		found, getErr := s.sessions.GetJSON(ctx, SessionKey(jti), &tracker)
		if getErr != nil {
			return nil, getErr
		}
		if !found {
			if remErr := s.sessions.RemoveFromSet(ctx, UserSessionsKey(userID), jti); remErr != nil {
				return nil, remErr
			}
			continue
		}

		var loginAt time.Time
		if ts := tracker.LoginAt; ts != "" {
			if parsed, parseErr := time.Parse(time.RFC3339, ts); parseErr == nil {
				loginAt = parsed
			} else {
				log.Warn().Err(parseErr).Msgf("Ungültiges login_at-Format für Sitzung %s", jti)
			}
		}

		sessions = append(sessions, auth_dto.ListSessionsResponse{
			ID:        jti,
			Device:    tracker.Device,
			IP:        tracker.IP,
			UserAgent: tracker.UserAgent,
			LoginAt:   loginAt,
			Current:   jti == currentJTI,
		})
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].LoginAt.After(sessions[j].LoginAt)
	})

	return sessions, nil
}

// createSession erzeugt jti, Access-Token und Refresh-Token und schreibt die
// Session nach Redis. Der Session-Eintrag lebt so lange wie das
// Refresh-Token; das Access-Token begrenzt sich über seinen exp-Claim selbst.
func (s *AuthService) createSession(ctx context.Context, user *entity.UserEntity, meta auth_dto.LoginMetadata) (string, *auth_dto.SessionResponse, *app_errors.AppError) {
	sessionID, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return "", nil, app_errors.NewInternalError("internal_error", idErr)
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, tokenErr := s.jwt.CreateToken(user.ID, user.Email, sessionID.String(), s.tokenTTL)
	if tokenErr != nil {
		log.Error().Err(tokenErr).Msg("Fehler beim Erstellen des Access-Tokens")
		return "", nil, app_errors.NewInternalError("internal_error", tokenErr)
	}

	refreshToken, refreshErr := gonanoid.New(48)
	if refreshErr != nil {
		log.Error().Err(refreshErr).Msg("Fehler beim Erzeugen des Refresh-Tokens")
		return "", nil, app_errors.NewInternalError("internal_error", refreshErr)
	}

	if meta.Device == "" {
		meta.Device = "Unknown Device"
	}

	tracker := &SessionTracker{
		JTI:          sessionID.String(),
		UserID:       user.ID,
		Token:        token,
		RefreshToken: refreshToken,
		Device:       meta.Device,
		UserAgent:    meta.UserAgent,
		IP:           meta.IP,
		LoginAt:      time.Now().Format(time.RFC3339),
	}

	if err := s.sessions.SetJSON(ctx, SessionKey(tracker.JTI), tracker, s.refreshTTL); err != nil {
		return "", nil, err
	}
	if err := s.sessions.AddToSet(ctx, UserSessionsKey(user.ID), tracker.JTI); err != nil {
		return "", nil, err
	}
	if err := s.sessions.SetJSON(ctx, RefreshKey(refreshToken), tracker.JTI, s.refreshTTL); err != nil {
		return "", nil, err
	}

	return token, &auth_dto.SessionResponse{
		ID:           tracker.JTI,
		RefreshToken: refreshToken,
		ExpiresAt:    expiresAt,
		Device:       meta.Device,
	}, nil
}

func buildAuthUser(user *entity.UserEntity, profile *entity.ProfileEntity) auth_dto.AuthUserResponse {
	resp := auth_dto.AuthUserResponse{
		ID:       user.ID,
		Email:    user.Email,
		Role:     string(entity.RoleUser),
		IsActive: user.IsActive,
	}
	if profile != nil {
		resp.FullName = profile.FullName
		resp.Role = string(profile.Role)
		resp.AvatarURL = profile.AvatarURL
	}
	return resp
}
