package routers

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	post_handlers "github.com/nomanjawad/automictemplate-api-sub001/internal/handlers/post"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/queue"

	"github.com/gofiber/fiber/v2"
)

// PostRouter registriert die Blog-Endpoints. Schreibzugriffe prüfen
// Autorschaft im Service (Autor oder Moderator), daher hier kein Role-Gate.
func PostRouter(api fiber.Router, deps *Deps, cacheStore cache.Cache, taskQueue queue.TaskQueueClient, g *gates) {
	postHandler := post_handlers.NewPostHandler(deps.DB, cacheStore, taskQueue, deps.I18n)

	r := api.Group("/blog")
	r.Get("/", g.optionalAuth, postHandler.ListPosts)
	r.Get("/:slug", g.optionalAuth, postHandler.GetPost)
	r.Post("/", g.requireAuth, postHandler.CreatePost)
	r.Put("/:slug", g.requireAuth, postHandler.UpsertPost)
	r.Delete("/:slug", g.requireAuth, postHandler.DeletePost)
}
