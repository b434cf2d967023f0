package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// LoggerMiddleware protokolliert jede Anfrage mit Methode, Pfad, Dauer und
// Status unter ihrer Request-ID.
func LoggerMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		duration := time.Since(start)

		reqID, _ := c.Locals("request_id").(string)

		log.Info().
			Str("request_id", reqID).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Dur("duration", duration).
			Int("status", c.Response().StatusCode()).
			Msg("request")

		return err
	}
}
