package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

// newRoleApp simuliert ein vorgelagertes Auth-Gate: der Principal wird (falls
// gegeben) direkt in die Context-Lokale geschrieben.
func newRoleApp(principal *entity.Principal, minimum entity.UserRole) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandlerMiddleware(passthroughI18n{}, false),
	})
	app.Get("/verwaltung", func(c *fiber.Ctx) error {
		if principal != nil {
			attachPrincipal(c, principal)
		}
		return c.Next()
	}, RequireRole(minimum), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func principalWithRole(role entity.UserRole) *entity.Principal {
	return &entity.Principal{
		UserID: "user-1",
		Email:  "person@example.com",
		JTI:    "jti-1",
		Profile: &entity.ProfileEntity{
			ID:    "user-1",
			Email: "person@example.com",
			Role:  role,
		},
	}
}

func TestRequireRole_MissingPrincipal(t *testing.T) {
	app := newRoleApp(nil, entity.RoleModerator)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/verwaltung", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRequireRole_InsufficientRole(t *testing.T) {
	app := newRoleApp(principalWithRole(entity.RoleUser), entity.RoleModerator)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/verwaltung", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, app_errors.ErrInsufficientRole, body["code"])
}

func TestRequireRole_ModeratorBlockedFromAdmin(t *testing.T) {
	app := newRoleApp(principalWithRole(entity.RoleModerator), entity.RoleAdmin)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/verwaltung", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

// Rangfolge, nicht Gleichheit: admin passiert jedes Gate.
func TestRequireRole_HigherRolePasses(t *testing.T) {
	app := newRoleApp(principalWithRole(entity.RoleAdmin), entity.RoleModerator)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/verwaltung", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestRequireRole_ExactRolePasses(t *testing.T) {
	app := newRoleApp(principalWithRole(entity.RoleModerator), entity.RoleModerator)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/verwaltung", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

// Principal ohne Profil zählt als "user" und scheitert an jedem höheren Gate.
func TestRequireRole_NilProfileIsUser(t *testing.T) {
	principal := &entity.Principal{UserID: "user-1", JTI: "jti-1"}
	app := newRoleApp(principal, entity.RoleModerator)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/verwaltung", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
