package middleware

import (
	"strings"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/cache"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	user_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/user-repo"
	auth_case "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases/auth-case"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
)

// RequireAuth validiert das Authorization-Header ("Bearer <token>"), verifiziert
// das JWT und gleicht es gegen die Redis-Session (jti) ab. Danach wird das
// Profil des Aufrufers geladen — ein fehlendes Profil ist kein Fehler, der
// Principal hängt dann mit Profile=nil am Request (Rolle fällt auf "user").
// Gesetzte Context-Lokale: "principal", "user_id", "email", "jti", "role".
func RequireAuth(jwtMaker *utils.JWTMaker, sessions cache.SessionStore, users user_repo.UserRepoContract) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := authenticate(c, jwtMaker, sessions, users)
		if err != nil {
			return err
		}

		attachPrincipal(c, principal)
		return c.Next()
	}
}

// OptionalAuth versucht dieselbe Verifikation, bricht aber nie ab: jeder
// Fehlschlag (fehlendes Header, ungültiges Token, Infrastrukturfehler) heißt
// schlicht "anonym weiter". Lese-Endpunkte schalten darüber zwischen
// published-only- und Voll-Sicht um.
func OptionalAuth(jwtMaker *utils.JWTMaker, sessions cache.SessionStore, users user_repo.UserRepoContract) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal, err := authenticate(c, jwtMaker, sessions, users)
		if err != nil {
			return c.Next()
		}

		attachPrincipal(c, principal)
		return c.Next()
	}
}

// authenticate ist die gemeinsame Verifikationskette beider Gates. 401 für
// alles, was der Client zu verantworten hat; ein Infrastrukturfehler beim
// Session-Abgleich wird als nicht-operationaler 500 gemeldet ("Authentication
// failed"), damit kein internes Detail zum Client durchschlägt.
func authenticate(c *fiber.Ctx, jwtMaker *utils.JWTMaker, sessions cache.SessionStore, users user_repo.UserRepoContract) (*entity.Principal, *app_errors.AppError) {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrTokenRequired, "auth.token_required", nil)
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrTokenRequired, "auth.token_required", nil)
	}

	token := parts[1]

	payload, verifyErr := jwtMaker.VerifyToken(token)
	if verifyErr != nil {
		log.Debug().Err(verifyErr).Msg("Token-Verifikation fehlgeschlagen")
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrTokenInvalid, "auth.token_invalid", nil)
	}

	// Die Session in Redis ist die zweite Instanz: ein rotiertes oder per
	// Logout beendetes Token fällt hier durch, auch wenn exp noch hält.
	var tracker auth_case.SessionTracker
	found, cacheErr := sessions.GetJSON(c.Context(), auth_case.SessionKey(payload.JTI), &tracker)
	if cacheErr != nil {
		log.Error().Err(cacheErr.Err).Msg("Session-Abgleich nicht möglich")
		e := app_errors.NewAppError(fiber.StatusInternalServerError, app_errors.ErrAuthFailed, "auth.failed", cacheErr.Err)
		e.Operational = false
		return nil, e
	}
	if !found || tracker.Token != token {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrTokenInvalid, "auth.token_invalid", nil)
	}

	principal := &entity.Principal{
		UserID: payload.UserID,
		Email:  payload.Email,
		JTI:    payload.JTI,
	}

	// Profil-Lookup ist nicht-fatal: authentifiziert ohne Profil = Rolle "user".
	profile, profileErr := users.FindProfileByUserID(c.Context(), payload.UserID)
	if profileErr != nil {
		log.Warn().Str("user_id", payload.UserID).Msg("Profil nicht ladbar, fahre ohne fort")
	} else {
		principal.Profile = profile
	}

	return principal, nil
}

func attachPrincipal(c *fiber.Ctx, p *entity.Principal) {
	c.Locals("principal", *p)
	c.Locals("user_id", p.UserID)
	c.Locals("email", p.Email)
	c.Locals("jti", p.JTI)
	c.Locals("role", string(p.Role()))
}
