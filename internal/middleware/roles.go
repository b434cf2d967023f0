package middleware

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/gofiber/fiber/v2"
)

// RequireRole prüft den Principal gegen die feste Rollenrangfolge
// admin(3) > moderator(2) > user(1). Muss nach RequireAuth laufen; fehlt der
// Principal trotzdem, gibt es defensiv 401. Unter der geforderten Stufe:
// 403 INSUFFICIENT_ROLE. Ein fehlendes Profil zählt als Rolle "user".
func RequireRole(minimum entity.UserRole) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, ok := c.Locals("principal").(entity.Principal)
		if !ok {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.token_required", nil)
		}

		if entity.RoleOrdinal(principal.Role()) < entity.RoleOrdinal(minimum) {
			return app_errors.NewAppErrorWithParams(
				fiber.StatusForbidden,
				app_errors.ErrInsufficientRole,
				"auth.insufficient_role",
				map[string]any{"role": string(minimum)},
				nil,
			)
		}

		return c.Next()
	}
}
