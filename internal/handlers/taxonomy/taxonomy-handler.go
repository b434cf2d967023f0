package taxonomy_handlers

import (
	taxonomy_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/taxonomy-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	internal_i18n "github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"
	taxonomy_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/taxonomy-case"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// TaxonomyHandler bedient Kategorien und Tags — beide sind reine
// Slug-Nachschlagewerke ohne Published-Zustand, Lesen ist öffentlich.
type TaxonomyHandler struct {
	validator *validator.Validate
	service   taxonomy_case.TaxonomyServiceContract
	i18n      internal_i18n.Service
}

func NewTaxonomyHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *TaxonomyHandler {
	return &TaxonomyHandler{
		validator: handlers.NewValidator(),
		i18n:      i18n,
		service:   taxonomy_case.NewTaxonomyService(db),
	}
}

func (h *TaxonomyHandler) ListCategories(c *fiber.Ctx) error {
	query, err := handlers.ParseQuery[taxonomy_dto.ListTaxonomyQuery](c, h.validator)
	if err != nil {
		return err
	}

	categories, meta, err := h.service.ListCategories(c.Context(), *query)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateListResponse(h.i18n.T(lang, "categories.fetched", nil), categories, handlers.GetRequestID(c), meta)
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaxonomyHandler) GetCategory(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[taxonomy_dto.ParamTaxonomySlug](c, h.validator)
	if err != nil {
		return err
	}

	category, err := h.service.GetCategory(c.Context(), param.Slug)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "category.fetched", nil), category, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaxonomyHandler) UpsertCategory(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[taxonomy_dto.ParamTaxonomySlug](c, h.validator)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[taxonomy_dto.UpsertCategoryRequest](c, h.validator)
	if err != nil {
		return err
	}

	category, err := h.service.UpsertCategory(c.Context(), param.Slug, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "category.saved", nil), category, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// DeleteCategory: hängen noch Beiträge an der Kategorie, endet das als 400
// aus dem Translator (RESTRICT auf posts.category_id).
func (h *TaxonomyHandler) DeleteCategory(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[taxonomy_dto.ParamTaxonomySlug](c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCategory(c.Context(), param.Slug); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "category.deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaxonomyHandler) ListTags(c *fiber.Ctx) error {
	query, err := handlers.ParseQuery[taxonomy_dto.ListTaxonomyQuery](c, h.validator)
	if err != nil {
		return err
	}

	tags, meta, err := h.service.ListTags(c.Context(), *query)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateListResponse(h.i18n.T(lang, "tags.fetched", nil), tags, handlers.GetRequestID(c), meta)
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaxonomyHandler) GetTag(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[taxonomy_dto.ParamTaxonomySlug](c, h.validator)
	if err != nil {
		return err
	}

	tag, err := h.service.GetTag(c.Context(), param.Slug)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "tag.fetched", nil), tag, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaxonomyHandler) UpsertTag(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[taxonomy_dto.ParamTaxonomySlug](c, h.validator)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[taxonomy_dto.UpsertTagRequest](c, h.validator)
	if err != nil {
		return err
	}

	tag, err := h.service.UpsertTag(c.Context(), param.Slug, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "tag.saved", nil), tag, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *TaxonomyHandler) DeleteTag(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[taxonomy_dto.ParamTaxonomySlug](c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteTag(c.Context(), param.Slug); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "tag.deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
