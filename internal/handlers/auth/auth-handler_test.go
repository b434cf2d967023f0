package auth_handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	auth_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/auth-dto"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/middleware"
	user_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/user-case"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type passthroughI18n struct{}

func (passthroughI18n) T(lang string, key string, params map[string]any) string {
	return key
}

func newAuthApp(service *user_case.MockAuthService) *fiber.App {
	h := &AuthHandler{
		validator: handlers.NewValidator(),
		service:   service,
		i18n:      passthroughI18n{},
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(passthroughI18n{}, false),
	})
	app.Post("/api/user/register", h.RegisterUser)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	assert.NoError(t, err)
	return resp
}

// Die Minimalform der Registrierung ist nur E-Mail und Passwort; Name und
// Passwort-Bestätigung sind optional und dürfen die Validierung nicht reißen.
func TestRegisterUser_MinimalBodySucceeds(t *testing.T) {
	service := new(user_case.MockAuthService)
	service.On("RegisterUser", mock.Anything, mock.MatchedBy(func(req auth_dto.RegisterUserRequest) bool {
		return req.Email == "person@example.com" && req.FullName == "" && req.ConfirmPassword == ""
	}), mock.Anything).Return(&auth_dto.RegisterUserResponse{
		User:  auth_dto.AuthUserResponse{ID: "user-1", Email: "person@example.com", Role: "user", IsActive: true},
		Token: "ein-token",
		Session: auth_dto.SessionResponse{
			ID:           "jti-1",
			RefreshToken: "ein-refresh-token",
		},
	}, (*app_errors.AppError)(nil))

	app := newAuthApp(service)

	resp := postJSON(t, app, "/api/user/register", `{"email": "person@example.com", "password": "super-geheim"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	service.AssertExpectations(t)
}

// Wird die Bestätigung mitgeschickt, muss sie zum Passwort passen.
func TestRegisterUser_ConfirmPasswordMismatchRejected(t *testing.T) {
	service := new(user_case.MockAuthService)
	app := newAuthApp(service)

	resp := postJSON(t, app, "/api/user/register",
		`{"email": "person@example.com", "password": "super-geheim", "confirm_password": "anders"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	service.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything, mock.Anything)
}

func TestRegisterUser_MissingEmailRejected(t *testing.T) {
	service := new(user_case.MockAuthService)
	app := newAuthApp(service)

	resp := postJSON(t, app, "/api/user/register", `{"password": "super-geheim"}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	service.AssertNotCalled(t, "RegisterUser", mock.Anything, mock.Anything, mock.Anything)
}
