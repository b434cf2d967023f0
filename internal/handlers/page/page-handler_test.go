package page_handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	page_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/page-dto"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockPageService struct {
	mock.Mock
}

func (m *MockPageService) UpsertPage(ctx context.Context, slug string, req page_dto.UpsertPageRequest) (*page_dto.PageResponse, *app_errors.AppError) {
	args := m.Called(ctx, slug, req)
	return args.Get(0).(*page_dto.PageResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockPageService) GetPage(ctx context.Context, slug string, publishedOnly bool) (*page_dto.PageResponse, *app_errors.AppError) {
	args := m.Called(ctx, slug, publishedOnly)
	return args.Get(0).(*page_dto.PageResponse), args.Get(1).(*app_errors.AppError)
}

func (m *MockPageService) ListPages(ctx context.Context, query page_dto.ListPagesQuery, publishedOnly bool) ([]page_dto.PageResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	args := m.Called(ctx, query, publishedOnly)
	return args.Get(0).([]page_dto.PageResponse), args.Get(1).(*dtos.PaginationMeta), args.Get(2).(*app_errors.AppError)
}

func (m *MockPageService) DeletePage(ctx context.Context, slug string) *app_errors.AppError {
	args := m.Called(ctx, slug)
	return args.Get(0).(*app_errors.AppError)
}

type passthroughI18n struct{}

func (passthroughI18n) T(lang string, key string, params map[string]any) string {
	return key
}

// newPageApp verdrahtet den Handler mit Mock-Service gegen die echten Routen.
func newPageApp(service *MockPageService) *fiber.App {
	h := &PageHandler{
		validator: handlers.NewValidator(),
		service:   service,
		i18n:      passthroughI18n{},
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandlerMiddleware(passthroughI18n{}, false),
	})
	app.Get("/api/content/pages/:slug", h.GetPage)
	app.Put("/api/content/pages/:slug", h.UpsertPage)
	return app
}

// Validierung schlägt fehl, bevor der Service gerufen wird: der Mock hat
// keine Erwartungen und würde bei einem Aufruf panicken.
func TestUpsertPage_InvalidBodyNeverHitsService(t *testing.T) {
	service := new(MockPageService)
	app := newPageApp(service)

	body := bytes.NewBufferString(`{"title": ""}`)
	req := httptest.NewRequest(http.MethodPut, "/api/content/pages/startseite", body)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	service.AssertNotCalled(t, "UpsertPage", mock.Anything, mock.Anything, mock.Anything)
}

// Slug-Validierung im Pfad: Großbuchstaben sind kein gültiger Slug.
func TestGetPage_InvalidSlugRejected(t *testing.T) {
	service := new(MockPageService)
	app := newPageApp(service)

	req := httptest.NewRequest(http.MethodGet, "/api/content/pages/KEINE-SEITE", nil)
	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	service.AssertNotCalled(t, "GetPage", mock.Anything, mock.Anything, mock.Anything)
}

// Ohne Auth-Gate davor gilt der Aufrufer als anonym: publishedOnly=true.
func TestGetPage_AnonymousSeesPublishedOnly(t *testing.T) {
	service := new(MockPageService)
	service.On("GetPage", mock.Anything, "startseite", true).
		Return(&page_dto.PageResponse{Slug: "startseite", Title: "Startseite"}, (*app_errors.AppError)(nil))

	app := newPageApp(service)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/content/pages/startseite", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	service.AssertExpectations(t)
}
