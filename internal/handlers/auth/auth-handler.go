package auth_handlers

import (
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	auth_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/auth-dto"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	internal_i18n "github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"
	auth_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/auth-case"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthHandler struct {
	validator *validator.Validate
	service   auth_case.AuthServiceContract
	i18n      internal_i18n.Service
}

func NewAuthHandler(db *pgxpool.Pool, sessions cache.SessionStore, i18n *internal_i18n.I18nService, jwtMaker *utils.JWTMaker, tokenTTL, refreshTTL time.Duration) *AuthHandler {
	return &AuthHandler{
		validator: handlers.NewValidator(),
		i18n:      i18n,
		service:   auth_case.NewAuthService(db, sessions, jwtMaker, tokenTTL, refreshTTL),
	}
}

// RegisterUser behandelt POST /api/user/register: Konto + Profil anlegen und
// direkt anmelden. Antwort: {user, token, session}.
func (h *AuthHandler) RegisterUser(c *fiber.Ctx) error {
	req, err := handlers.ParseBody[auth_dto.RegisterUserRequest](c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.RegisterUser(c.Context(), *req, loginMetadata(c))
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.registered", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

// LoginUser behandelt POST /api/user/login.
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	req, err := handlers.ParseBody[auth_dto.LoginUserRequest](c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.LoginUser(c.Context(), *req, loginMetadata(c))
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.logged_in", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// RefreshSession behandelt POST /api/user/refresh: Refresh-Token gegen ein
// frisches Access-Token tauschen (Rotation).
func (h *AuthHandler) RefreshSession(c *fiber.Ctx) error {
	req, err := handlers.ParseBody[auth_dto.RefreshTokenRequest](c, h.validator)
	if err != nil {
		return err
	}

	resp, err := h.service.RefreshSession(c.Context(), *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.token_refreshed", nil), resp, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// LogoutUser beendet die Sitzung hinter dem vorgelegten Token.
func (h *AuthHandler) LogoutUser(c *fiber.Ctx) error {
	jti, ok := c.Locals("jti").(string)
	if !ok || jti == "" {
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.token_required", nil)
	}

	if err := h.service.LogoutUser(c.Context(), jti); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.logged_out", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// LogoutAllDevices beendet sämtliche Sitzungen des Aufrufers.
func (h *AuthHandler) LogoutAllDevices(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.LogoutAllDevices(c.Context(), principal.UserID); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.logged_out_all", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// ListSessions listet die aktiven Sitzungen/Geräte des Aufrufers.
func (h *AuthHandler) ListSessions(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	sessions, err := h.service.ListSessions(c.Context(), principal.UserID, principal.JTI)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.sessions_fetched", nil), sessions, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func loginMetadata(c *fiber.Ctx) auth_dto.LoginMetadata {
	ua := c.Get("User-Agent")

	device := c.Get("X-Device-Name")
	if device == "" {
		device = detectDeviceType(ua)
	}

	return auth_dto.LoginMetadata{
		UserAgent: ua,
		Device:    device,
		IP:        c.IP(),
	}
}
