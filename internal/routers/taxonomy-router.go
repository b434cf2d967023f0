package routers

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	taxonomy_handlers "github.com/nomanjawad/automictemplate-api-sub001/internal/handlers/taxonomy"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// TaxonomyRouter registriert Kategorien und Tags. Lesen ist öffentlich,
// Schreiben verlangt mindestens Moderator.
func TaxonomyRouter(api fiber.Router, deps *Deps, g *gates) {
	taxonomyHandler := taxonomy_handlers.NewTaxonomyHandler(deps.DB, deps.I18n)

	moderator := middleware.RequireRole(entity.RoleModerator)

	categories := api.Group("/categories")
	categories.Get("/", taxonomyHandler.ListCategories)
	categories.Get("/:slug", taxonomyHandler.GetCategory)
	categories.Put("/:slug", g.requireAuth, moderator, taxonomyHandler.UpsertCategory)
	categories.Delete("/:slug", g.requireAuth, moderator, taxonomyHandler.DeleteCategory)

	tags := api.Group("/tags")
	tags.Get("/", taxonomyHandler.ListTags)
	tags.Get("/:slug", taxonomyHandler.GetTag)
	tags.Put("/:slug", g.requireAuth, moderator, taxonomyHandler.UpsertTag)
	tags.Delete("/:slug", g.requireAuth, moderator, taxonomyHandler.DeleteTag)
}
