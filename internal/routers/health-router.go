package routers

import (
	"github.com/gofiber/fiber/v2"
)

// HealthRouter registriert den Health-Endpoint. Er prüft alle drei
// Abhängigkeiten; fällt eine aus, antwortet er 503 mit dem Teilstatus.
func HealthRouter(api fiber.Router, deps *Deps) {
	api.Get("/health", func(c *fiber.Ctx) error {
		checks := fiber.Map{
			"postgres": "ok",
			"redis":    "ok",
			"storage":  "ok",
		}
		healthy := true

		if err := deps.DB.Ping(c.Context()); err != nil {
			checks["postgres"] = "unreachable"
			healthy = false
		}
		if err := deps.Redis.Ping(c.Context()).Err(); err != nil {
			checks["redis"] = "unreachable"
			healthy = false
		}
		if err := deps.Objects.Ping(c.Context()); err != nil {
			checks["storage"] = "unreachable"
			healthy = false
		}

		status := fiber.StatusOK
		state := "ok"
		if !healthy {
			status = fiber.StatusServiceUnavailable
			state = "degraded"
		}

		return c.Status(status).JSON(fiber.Map{
			"status": state,
			"checks": checks,
		})
	})
}
