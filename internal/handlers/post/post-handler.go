package post_handlers

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	post_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/post-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	internal_i18n "github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/queue"
	post_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/post-case"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostHandler struct {
	validator *validator.Validate
	service   post_case.PostServiceContract
	i18n      internal_i18n.Service
}

func NewPostHandler(db *pgxpool.Pool, cacheStore cache.Cache, taskQueue queue.TaskQueueClient, i18n *internal_i18n.I18nService) *PostHandler {
	return &PostHandler{
		validator: handlers.NewValidator(),
		i18n:      i18n,
		service:   post_case.NewPostService(db, cacheStore, taskQueue),
	}
}

// ListPosts behandelt GET /api/blog. Anonyme Aufrufer sehen nur
// veröffentlichte Beiträge.
func (h *PostHandler) ListPosts(c *fiber.Ctx) error {
	query, err := handlers.ParseQuery[post_dto.ListPostsQuery](c, h.validator)
	if err != nil {
		return err
	}

	posts, meta, err := h.service.ListPosts(c.Context(), *query, handlers.IsAnonymous(c))
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateListResponse(h.i18n.T(lang, "posts.fetched", nil), posts, handlers.GetRequestID(c), meta)
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// GetPost behandelt GET /api/blog/:slug.
func (h *PostHandler) GetPost(c *fiber.Ctx) error {
	param, err := handlers.ParseParams[post_dto.ParamPostSlug](c, h.validator)
	if err != nil {
		return err
	}

	post, err := h.service.GetPost(c.Context(), param.Slug, handlers.IsAnonymous(c))
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "post.fetched", nil), post, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// CreatePost behandelt POST /api/blog: Autor ist immer der Aufrufer.
func (h *PostHandler) CreatePost(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[post_dto.CreatePostRequest](c, h.validator)
	if err != nil {
		return err
	}

	post, err := h.service.CreatePost(c.Context(), principal, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "post.created", nil), post, handlers.GetRequestID(c))
	return c.Status(fiber.StatusCreated).JSON(webResp)
}

// UpsertPost behandelt PUT /api/blog/:slug. Bestehende Beiträge darf nur der
// Autor oder ein Moderator überschreiben — das prüft der Service gegen
// author_id, nicht die Route.
func (h *PostHandler) UpsertPost(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	param, err := handlers.ParseParams[post_dto.ParamPostSlug](c, h.validator)
	if err != nil {
		return err
	}

	req, err := handlers.ParseBody[post_dto.UpsertPostRequest](c, h.validator)
	if err != nil {
		return err
	}

	post, err := h.service.UpsertPost(c.Context(), principal, param.Slug, *req)
	if err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "post.saved", nil), post, handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}

// DeletePost behandelt DELETE /api/blog/:slug (Autor oder Moderator).
func (h *PostHandler) DeletePost(c *fiber.Ctx) error {
	principal, err := handlers.GetPrincipal(c)
	if err != nil {
		return err
	}

	param, err := handlers.ParseParams[post_dto.ParamPostSlug](c, h.validator)
	if err != nil {
		return err
	}

	if err := h.service.DeletePost(c.Context(), principal, param.Slug); err != nil {
		return err
	}

	lang, _ := c.Locals("lang").(string)
	webResp := handlers.CreateResponse(h.i18n.T(lang, "post.deleted", nil), "OK", handlers.GetRequestID(c))
	return c.Status(fiber.StatusOK).JSON(webResp)
}
