package routers

import (
	"strconv"
	"strings"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/config"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/middleware"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/queue"
	user_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/user-repo"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/storage"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/utils"

	"github.com/gofiber/fiber/v2"
	redis_fiber "github.com/gofiber/storage/redis/v3"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Deps bündelt alles, was die Router zum Verdrahten der Handler brauchen.
type Deps struct {
	DB      *pgxpool.Pool
	Redis   *redis.Client
	I18n    *i18n.I18nService
	JWT     *utils.JWTMaker
	Objects storage.ObjectStore
	Cfg     *config.AppConfig
}

// gates hält die einmal gebauten Middleware-Instanzen; jede Route referenziert
// dieselben Handler statt pro Gruppe neue zu bauen.
type gates struct {
	requireAuth  fiber.Handler
	optionalAuth fiber.Handler
}

// SetupRoutes richtet die API-Routen ein.
func SetupRoutes(app *fiber.App, deps *Deps) {
	api := app.Group("/api")

	sessions := cache.NewRedisCache(deps.Redis)
	users := user_repo.NewUserRepo(deps.DB)
	taskQueue := queue.NewTaskQueue(deps.Redis)

	g := &gates{
		requireAuth:  middleware.RequireAuth(deps.JWT, sessions, users),
		optionalAuth: middleware.OptionalAuth(deps.JWT, sessions, users),
	}

	limiterStore := newLimiterStorage(deps.Redis)

	UserRouter(api, deps, sessions, g, limiterStore)
	ContentRouter(api, deps, sessions, taskQueue, g)
	PostRouter(api, deps, sessions, taskQueue, g)
	TaxonomyRouter(api, deps, g)
	MediaRouter(api, deps, g, limiterStore)
	HealthRouter(api, deps)
}

// newLimiterStorage baut den Redis-Store für die Fiber-Rate-Limiter. Eigene
// Datenbank (1), damit Limiter-Schlüssel nicht zwischen den Sessions liegen.
func newLimiterStorage(redis *redis.Client) *redis_fiber.Storage {
	addr := strings.Split(redis.Options().Addr, ":")
	port := 6379
	if len(addr) == 2 {
		if p, err := strconv.Atoi(addr[1]); err == nil {
			port = p
		}
	}

	return redis_fiber.New(redis_fiber.Config{
		Host:     addr[0],
		Port:     port,
		Password: redis.Options().Password,
		Database: 1,
	})
}
