package content_handlers

import (
	content_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/content-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	internal_i18n "github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"
	content_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/content-case"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ContentHandler bedient die gemeinsamen Inhaltsblöcke (Header, Footer, ...)
// und die Custom-Codes. Beide leben unter einem natürlichen Key.
type ContentHandler struct {
	validator *validator.Validate
	service   content_case.ContentServiceContract
	i18n      internal_i18n.Service
}

func NewContentHandler(db *pgxpool.Pool, i18n *internal_i18n.I18nService) *ContentHandler {
	return &ContentHandler{
		validator: handlers.NewValidator(),
		i18n:      i18n,
		service:   content_case.NewContentService(db),
	}
}

func (h *ContentHandler) ListCommon(c *fiber.Ctx) error {
	query, err := handlers.ParseQuery[content_dto.ListContentQuery](c, h.validator)
	if err != nil {
		return err
	}

	blocks, meta, err := h.service.ListCommon(c.Context(), *query)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateListResponse(h.i18n.T(lang, "commons.fetched", nil), blocks, handlers.GetRequestID(c), meta)
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ContentHandler) GetCommon(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[content_dto.ParamContentKey](c, h.validator)
	if err != nil {
		return err
	}

	block, err := h.service.GetCommon(c.Context(), param.Key)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "common.fetched", nil), block, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// UpsertCommon behandelt PUT /api/content/common/:key.
func (h *ContentHandler) UpsertCommon(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[content_dto.ParamContentKey](c, h.validator)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[content_dto.UpsertCommonContentRequest](c, h.validator)
	if err != nil {
		return err
	}

	block, err := h.service.UpsertCommon(c.Context(), param.Key, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "common.saved", nil), block, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ContentHandler) DeleteCommon(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[content_dto.ParamContentKey](c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCommon(c.Context(), param.Key); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "common.deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// ListCodes behandelt GET /api/custom-codes. Anonyme Aufrufer sehen nur
// aktive Codes — das Frontend injiziert sie ungefiltert in die Seiten.
func (h *ContentHandler) ListCodes(c *fiber.Ctx) error {
	query, err := handlers.ParseQuery[content_dto.ListContentQuery](c, h.validator)
	if err != nil {
		return err
	}

	codes, meta, err := h.service.ListCodes(c.Context(), *query, handlers.IsAnonymous(c))
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateListResponse(h.i18n.T(lang, "codes.fetched", nil), codes, handlers.GetRequestID(c), meta)
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ContentHandler) GetCode(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[content_dto.ParamContentKey](c, h.validator)
	if err != nil {
		return err
	}

	code, err := h.service.GetCode(c.Context(), param.Key, handlers.IsAnonymous(c))
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "code.fetched", nil), code, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// UpsertCode behandelt PUT /api/custom-codes/:key (Admin-only).
func (h *ContentHandler) UpsertCode(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[content_dto.ParamContentKey](c, h.validator)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[content_dto.UpsertCustomCodeRequest](c, h.validator)
	if err != nil {
		return err
	}

	code, err := h.service.UpsertCode(c.Context(), param.Key, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "code.saved", nil), code, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

func (h *ContentHandler) DeleteCode(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[content_dto.ParamContentKey](c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteCode(c.Context(), param.Key); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "code.deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
