package routers

import (
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/handlers"
	auth_handlers "github.com/nomanjawad/automictemplate-api-sub001/internal/handlers/auth"
	user_handlers "github.com/nomanjawad/automictemplate-api-sub001/internal/handlers/user"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/middleware"
	auth_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/auth-case"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis/v3"
)

// UserRouter registriert Registrierung, Login, Session-Verwaltung und die
// Benutzer-Endpoints. Statische Routen stehen vor /:id, sonst frisst der
// Fiber-Matcher "profile" als ID.
func UserRouter(api fiber.Router, deps *Deps, sessions cache.SessionStore, g *gates, limiterStore *redis_fiber.Storage) {
	tokenTTL := time.Duration(deps.Cfg.APP_SECRET.JWT.TTLMinutes) * time.Minute
	refreshTTL := time.Duration(deps.Cfg.APP_SECRET.JWT.RefreshTTLHrs) * time.Hour

	authHandler := auth_handlers.NewAuthHandler(deps.DB, sessions, deps.I18n, deps.JWT, tokenTTL, refreshTTL)
	userHandler := user_handlers.NewUserHandler(deps.DB, sessions, deps.I18n,
		auth_case.NewAuthService(deps.DB, sessions, deps.JWT, tokenTTL, refreshTTL))

	r := api.Group("/user")

	credentialLimiter := limiter.New(limiter.Config{
		Max:        10,
		Expiration: time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return "cred:" + c.IP()
		},
		LimitReached: tooManyRequests,
		Storage:      limiterStore,
	})

	r.Post("/register", credentialLimiter, authHandler.RegisterUser)
	r.Post("/login", credentialLimiter, authHandler.LoginUser)
	r.Post("/refresh", authHandler.RefreshSession)
	r.Delete("/logout", g.requireAuth, authHandler.LogoutUser)
	r.Delete("/logout-all", g.requireAuth, authHandler.LogoutAllDevices)
	r.Get("/sessions", g.requireAuth, authHandler.ListSessions)

	r.Get("/profile", g.requireAuth, userHandler.GetProfile)
	r.Put("/profile", g.requireAuth, userHandler.UpdateProfile)
	r.Delete("/profile", g.requireAuth, userHandler.DeleteAccount)

	admin := middleware.RequireRole(entity.RoleAdmin)
	r.Get("/", g.requireAuth, admin, userHandler.ListUsers)
	r.Get("/:id", g.requireAuth, admin, userHandler.GetUser)
	r.Put("/:id", g.requireAuth, admin, userHandler.AdminUpdateUser)
}

func tooManyRequests(c *fiber.Ctx) error {
	return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
		"error":      "too_many_requests",
		"code":       "TOO_MANY_REQUESTS",
		"request_id": handlers.GetRequestID(c),
	})
}
