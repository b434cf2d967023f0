package routers

import (
	"time"

	media_handlers "github.com/nomanjawad/automictemplate-api-sub001/internal/handlers/media"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis/v3"
)

// MediaRouter registriert Upload und Medienverwaltung. Der Upload läuft durch
// einen eigenen Limiter pro Benutzer, damit niemand den Bucket flutet.
func MediaRouter(api fiber.Router, deps *Deps, g *gates, limiterStore *redis_fiber.Storage) {
	mediaHandler := media_handlers.NewMediaHandler(deps.DB, deps.Objects, deps.Cfg.STORAGE.PublicURL, deps.I18n)

	uploadLimiter := limiter.New(limiter.Config{
		Max:        30,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			if userID := c.Locals("user_id"); userID != nil {
				return "upload:" + userID.(string)
			}
			return "upload:ip:" + c.IP()
		},
		LimitReached: tooManyRequests,
		Storage:      limiterStore,
	})

	api.Post("/upload", g.requireAuth, uploadLimiter, mediaHandler.Upload)

	r := api.Group("/media", g.requireAuth)
	r.Get("/", mediaHandler.ListMedia)
	r.Get("/:id", mediaHandler.GetMedia)
	r.Put("/:id", mediaHandler.UpdateMedia)
	r.Delete("/:id", mediaHandler.DeleteMedia)
}
