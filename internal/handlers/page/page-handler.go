package page_handlers

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	page_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/page-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	internal_i18n "github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/queue"
	page_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/page-case"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PageHandler struct {
	validator *validator.Validate
	service   page_case.PageServiceContract
	i18n      internal_i18n.Service
}

func NewPageHandler(db *pgxpool.Pool, cacheStore cache.Cache, taskQueue queue.TaskQueueClient, i18n *internal_i18n.I18nService) *PageHandler {
	return &PageHandler{
		validator: handlers.NewValidator(),
		i18n:      i18n,
		service:   page_case.NewPageService(db, cacheStore, taskQueue),
	}
}

// ListPages behandelt GET /api/content/pages. Hinter OptionalAuth: anonyme
// Aufrufer sehen nur Veröffentlichtes, angemeldete alles.
func (h *PageHandler) ListPages(c *fiber.Ctx) error {
	query, err := handlers.ParseQuery[page_dto.ListPagesQuery](c, h.validator)
	if err != nil {
		return err
	}

	pages, meta, err := h.service.ListPages(c.Context(), *query, handlers.IsAnonymous(c))
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateListResponse(h.i18n.T(lang, "pages.fetched", nil), pages, handlers.GetRequestID(c), meta)
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// GetPage behandelt GET /api/content/pages/:slug. Eine unveröffentlichte
// Seite ist für Anonyme ein 404, kein 403 — sie soll nicht erraten werden
// können.
func (h *PageHandler) GetPage(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[page_dto.ParamPageSlug](c, h.validator)
	if err != nil {
		return err
	}

	page, err := h.service.GetPage(c.Context(), param.Slug, handlers.IsAnonymous(c))
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "page.fetched", nil), page, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// UpsertPage behandelt PUT /api/content/pages/:slug: anlegen oder ersetzen
// unter dem natürlichen Schlüssel.
func (h *PageHandler) UpsertPage(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[page_dto.ParamPageSlug](c, h.validator)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[page_dto.UpsertPageRequest](c, h.validator)
	if err != nil {
		return err
	}

	page, err := h.service.UpsertPage(c.Context(), param.Slug, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "page.saved", nil), page, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// DeletePage behandelt DELETE /api/content/pages/:slug.
func (h *PageHandler) DeletePage(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[page_dto.ParamPageSlug](c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeletePage(c.Context(), param.Slug); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "page.deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
