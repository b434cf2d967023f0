package media_handlers

import (
	media_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/media-dto"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	internal_i18n "github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/storage"
	media_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/media-case"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MediaHandler struct {
	validator *validator.Validate
	service   media_case.MediaServiceContract
	i18n      internal_i18n.Service
}

func NewMediaHandler(db *pgxpool.Pool, objects storage.ObjectStore, publicURL string, i18n *internal_i18n.I18nService) *MediaHandler {
	return &MediaHandler{
		validator: handlers.NewValidator(),
		i18n:      i18n,
		service:   media_case.NewMediaService(db, objects, publicURL),
	}
}

// Upload behandelt POST /api/upload: multipart-Feld "file" in den Bucket,
// Metadaten-Zeile nach Postgres.
func (h *MediaHandler) Upload(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	file, formErr := c.FormFile("file")
	if formErr != nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "upload.file_required", formErr)
	}

	media, err := h.service.Upload(c.Context(), principal, file)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "media.uploaded", nil), media, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

// ListMedia behandelt GET /api/media mit optionalem MIME-Filter.
func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	query, err := handlers.ParseQuery[media_dto.ListMediaQuery](c, h.validator)
	if err != nil {
		return err
	}

	items, meta, err := h.service.ListMedia(c.Context(), *query)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateListResponse(h.i18n.T(lang, "media.listed", nil), items, handlers.GetRequestID(c), meta)
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// GetMedia behandelt GET /api/media/:id.
func (h *MediaHandler) GetMedia(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[media_dto.ParamMediaID](c, h.validator)
	if err != nil {
		return err
	}

	media, err := h.service.GetMedia(c.Context(), param.ID)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "media.fetched", nil), media, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// UpdateMedia behandelt PUT /api/media/:id: nur Metadaten, nur Uploader oder
// Moderator.
func (h *MediaHandler) UpdateMedia(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	param, err := handlers.ParseParams[media_dto.ParamMediaID](c, h.validator)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[media_dto.UpdateMediaRequest](c, h.validator)
	if err != nil {
		return err
	}

	media, err := h.service.UpdateMedia(c.Context(), principal, param.ID, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "media.updated", nil), media, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// DeleteMedia behandelt DELETE /api/media/:id: Zeile weg, Objekt weg.
func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	param, err := handlers.ParseParams[media_dto.ParamMediaID](c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeleteMedia(c.Context(), principal, param.ID); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "media.deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
