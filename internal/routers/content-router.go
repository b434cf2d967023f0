package routers

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	content_handlers "github.com/nomanjawad/automictemplate-api-sub001/internal/handlers/content"
	page_handlers "github.com/nomanjawad/automictemplate-api-sub001/internal/handlers/page"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/middleware"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/queue"

	"github.com/gofiber/fiber/v2"
)

// ContentRouter registriert Seiten, gemeinsame Inhaltsblöcke und Custom-Codes.
// Lesezugriffe laufen durch OptionalAuth — anonyme Aufrufer sehen nur
// Veröffentlichtes bzw. Aktives.
func ContentRouter(api fiber.Router, deps *Deps, cacheStore cache.Cache, taskQueue queue.TaskQueueClient, g *gates) {
	pageHandler := page_handlers.NewPageHandler(deps.DB, cacheStore, taskQueue, deps.I18n)
	contentHandler := content_handlers.NewContentHandler(deps.DB, deps.I18n)

	moderator := middleware.RequireRole(entity.RoleModerator)
	admin := middleware.RequireRole(entity.RoleAdmin)

	pages := api.Group("/content/pages")
	pages.Get("/", g.optionalAuth, pageHandler.ListPages)
	pages.Get("/:slug", g.optionalAuth, pageHandler.GetPage)
	pages.Put("/:slug", g.requireAuth, moderator, pageHandler.UpsertPage)
	pages.Delete("/:slug", g.requireAuth, moderator, pageHandler.DeletePage)

	common := api.Group("/content/common")
	common.Get("/", g.optionalAuth, contentHandler.ListCommon)
	common.Get("/:key", g.optionalAuth, contentHandler.GetCommon)
	common.Put("/:key", g.requireAuth, moderator, contentHandler.UpsertCommon)
	common.Delete("/:key", g.requireAuth, moderator, contentHandler.DeleteCommon)

	codes := api.Group("/custom-codes")
	codes.Get("/", g.optionalAuth, contentHandler.ListCodes)
	codes.Get("/:key", g.optionalAuth, contentHandler.GetCode)
	codes.Put("/:key", g.requireAuth, admin, contentHandler.UpsertCode)
	codes.Delete("/:key", g.requireAuth, admin, contentHandler.DeleteCode)
}
