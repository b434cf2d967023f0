package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// AcceptLanguageMiddleware liest die bevorzugte Sprache aus dem
// Accept-Language-Header ("de-DE,de;q=0.9,en;q=0.8" -> "de") und legt sie
// unter c.Locals("lang") ab.
func AcceptLanguageMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Get("Accept-Language", "en")
		lang := strings.Split(raw, ",")[0]
		lang = strings.Split(lang, "-")[0]
		c.Locals("lang", lang)
		return c.Next()
	}
}
