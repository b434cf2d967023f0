package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// RequestIDMiddleware hängt jeder Anfrage eine eindeutige ID an ("AT-" +
// nanoid) und spiegelt sie als X-Request-ID in die Antwort. Ein vom Client
// mitgeschicktes X-Request-ID wird übernommen.
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get("X-Request-ID")
		if requestID == "" {
			id, err := gonanoid.New()
			if err != nil {
				return fmt.Errorf("Request-ID erzeugen: %w", err)
			}
			requestID = fmt.Sprintf("AT-%s", id)
		}

		c.Locals("request_id", requestID)
		c.Set("X-Request-ID", requestID)

		return c.Next()
	}
}
