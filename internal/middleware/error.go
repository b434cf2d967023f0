package middleware

import (
	"errors"

	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	internal_i18n "github.com/nomanjawad/automictemplate-api-sub001/internal/i18n"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// ErrorHandlerMiddleware ist die einzige Stelle, die Fehlerantworten
// serialisiert. AppErrors gehen unverändert durch, fiber-Fehler (404-Route,
// Body zu groß, ...) werden auf die Taxonomie abgebildet, alles Unbekannte
// wird als nicht-operationaler 500 gewertet. Nachrichten nicht-operationaler
// Fehler werden im Prod-Betrieb auf die generische interne Meldung maskiert.
func ErrorHandlerMiddleware(i18nSvc internal_i18n.Service, production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, _ := c.Locals("lang").(string)
		if lang == "" {
			lang = "en"
		}

		var appErr *app_errors.AppError
		if !errors.As(err, &appErr) {
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				// fiberErr.Message steht nicht im Katalog; T reicht den
				// Schlüssel dann unverändert durch.
				appErr = app_errors.NewAppError(fiberErr.Code, typeForStatus(fiberErr.Code), fiberErr.Message, err)
				appErr.Operational = fiberErr.Code < fiber.StatusInternalServerError
			} else {
				appErr = app_errors.NewInternalError("internal_error", err)
			}
		}

		reqID, _ := c.Locals("request_id").(string)

		logEvent(appErr, reqID, c.Method(), c.Path())

		messageKey := appErr.MessageKey
		params := appErr.Params
		if !appErr.Operational && production {
			// intern bleibt intern: generische Meldung statt Rohtext
			messageKey = "internal_error"
			params = nil
		}

		resp := fiber.Map{
			"error":      i18nSvc.T(lang, messageKey, params),
			"code":       appErr.Type,
			"request_id": reqID,
		}

		if len(appErr.Details) > 0 {
			fieldErrors := make(map[string][]string, len(appErr.Details))
			for _, d := range appErr.Details {
				fieldErrors[d.Field] = append(fieldErrors[d.Field], i18nSvc.T(lang, d.MessageKey, d.Params))
			}
			resp["errors"] = fieldErrors
		}

		if !production && appErr.Err != nil {
			resp["stack"] = appErr.Err.Error()
		}

		return c.Status(appErr.Code).JSON(resp)
	}
}

// logEvent wählt die Schwere nach Status: >=500 error, >=400 warn, sonst
// info. Nicht-operationale Fehler bekommen zusätzlich den Neustart-Hinweis —
// neu gestartet wird hier nichts, das ist Sache des Prozess-Managers.
func logEvent(appErr *app_errors.AppError, reqID, method, path string) {
	switch {
	case appErr.Code >= fiber.StatusInternalServerError:
		ev := log.Error().Err(appErr.Err).Str("request_id", reqID).Str("type", appErr.Type)
		if !appErr.Operational {
			ev = ev.Bool("operational", false).Str("advice", "non-operational error, process restart recommended")
		}
		ev.Msgf("%s %s -> %d", method, path, appErr.Code)
	case appErr.Code >= fiber.StatusBadRequest:
		log.Warn().Str("request_id", reqID).Str("type", appErr.Type).Msgf("%s %s -> %d", method, path, appErr.Code)
	default:
		log.Info().Str("request_id", reqID).Msgf("%s %s -> %d", method, path, appErr.Code)
	}
}

func typeForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return app_errors.ErrInvalidBody
	case fiber.StatusUnauthorized:
		return app_errors.ErrUnauthorized
	case fiber.StatusForbidden:
		return app_errors.ErrForbidden
	case fiber.StatusNotFound:
		return app_errors.ErrNotFound
	case fiber.StatusConflict:
		return app_errors.ErrConflict
	default:
		return app_errors.ErrInternal
	}
}
