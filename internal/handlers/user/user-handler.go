package user_handlers

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	internal_i18n "github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"
	auth_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/auth-case"
	user_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/user-case"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserHandler struct {
	validator *validator.Validate
	service   user_case.UserServiceContract
	i18n      internal_i18n.Service
}

func NewUserHandler(db *pgxpool.Pool, sessions cache.SessionStore, i18n *internal_i18n.I18nService, authSvc auth_case.AuthServiceContract) *UserHandler {
	return &UserHandler{
		validator: handlers.NewValidator(),
		i18n:      i18n,
		service:   user_case.NewUserService(db, sessions, authSvc),
	}
}

// GetProfile behandelt GET /api/user/profile: das eigene Konto samt Profil.
func (h *UserHandler) GetProfile(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.service.GetProfile(c.Context(), principal.UserID)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.profile_fetched", nil), user_dto.UserEnvelope{User: *user}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// UpdateProfile behandelt PUT /api/user/profile: partielle
// Selbst-Aktualisierung, wirkt immer nur auf den Aufrufer.
func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[user_dto.UpdateProfileRequest](c, h.validator)
	if err != nil {
		return err
	}

	user, err := h.service.UpdateProfile(c.Context(), principal.UserID, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.profile_updated", nil), user_dto.UserEnvelope{User: *user}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// DeleteAccount behandelt DELETE /api/user/profile: löscht das eigene Konto
// und beendet alle Sitzungen.
func (h *UserHandler) DeleteAccount(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteAccount(c.Context(), principal.UserID); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// ListUsers behandelt GET /api/user (Admin): paginierte Kontoliste mit
// Rollen- und Suchfilter.
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	query, err := handlers.ParseQuery[user_dto.ListUsersQuery](c, h.validator)
	if err != nil {
		return err
	}

	users, meta, err := h.service.ListUsers(c.Context(), *query)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateListResponse(h.i18n.T(lang, "users.fetched", nil), user_dto.UsersEnvelope{Users: users}, handlers.GetRequestID(c), meta)
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// GetUser behandelt GET /api/user/:id (Admin).
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[user_dto.ParamUserID](c, h.validator)
	if err != nil {
		return err
	}

	user, err := h.service.GetUser(c.Context(), param.ID)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.fetched", nil), user_dto.UserEnvelope{User: *user}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// AdminUpdateUser behandelt PUT /api/user/:id (Admin): Name, Rolle,
// Aktiv-Status eines fremden Kontos.
func (h *UserHandler) AdminUpdateUser(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[user_dto.ParamUserID](c, h.validator)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[user_dto.AdminUpdateUserRequest](c, h.validator)
	if err != nil {
		return err
	}

	user, err := h.service.AdminUpdateUser(c.Context(), param.ID, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "user.updated", nil), user_dto.UserEnvelope{User: *user}, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
