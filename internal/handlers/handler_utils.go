package handlers

import (
	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CreateResponse erstellt die standardisierte Erfolgsantwort.
func CreateResponse[T any](message string, data T, requestID string) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:   message,
		Data:      data,
		RequestID: requestID,
	}
}

// CreateListResponse wie CreateResponse, mit Pagination-Block für Listen.
func CreateListResponse[T any](message string, data T, requestID string, meta *dtos.PaginationMeta) dtos.WebResponse[T] {
	return dtos.WebResponse[T]{
		Message:    message,
		Data:       data,
		RequestID:  requestID,
		Pagination: meta,
	}
}

// NewValidator baut die Validator-Instanz eines Handler-Pakets, mit der
// slug-Regel registriert.
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("slug", app_errors.SlugValidator)
	return v
}

// GetPrincipal liest den vom Auth-Gate angehängten Principal. Fehlt er,
// lief der Handler ohne RequireAuth — defensiv 401.
func GetPrincipal(c *fiber.Ctx) (entity.Principal, *app_errors.AppError) {
	principal, ok := c.Locals("principal").(entity.Principal)
	if !ok {
		return entity.Principal{}, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.token_required", nil)
	}
	return principal, nil
}

// IsAnonymous meldet, ob der Request ohne Principal läuft — hinter
// OptionalAuth schaltet das die published-only-Sicht.
func IsAnonymous(c *fiber.Ctx) bool {
	_, ok := c.Locals("principal").(entity.Principal)
	return !ok
}

func GetRequestID(c *fiber.Ctx) string {
	reqID, ok := c.Locals("request_id").(string)
	if !ok {
		reqID = "unknown"
	}
	return reqID
}

// ParseBody parst und validiert den Request-Body in das DTO. Die Validierung
// sammelt alle Feldfehler — ein fehlgeschlagener Request geht als einzelner
// 422 mit sämtlichen Verstößen zurück, ohne dass ein Store-Call passiert.
func ParseBody[T any](c *fiber.Ctx, v *validator.Validate) (*T, *app_errors.AppError) {
	var body T
	if err := c.BodyParser(&body); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", err)
	}
	if err := v.Struct(body); err != nil {
		return nil, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return &body, nil
}

// ParseParams parst und validiert die Pfadparameter in das DTO.
func ParseParams[T any](c *fiber.Ctx, v *validator.Validate) (*T, *app_errors.AppError) {
	var params T
	if err := c.ParamsParser(&params); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidParam, "request.invalid_param", err)
	}
	if err := v.Struct(params); err != nil {
		return nil, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return &params, nil
}

// ParseQuery parst und validiert die Query-Parameter in das DTO. Numerische
// Strings landen dabei bereits als int im Struct.
func ParseQuery[T any](c *fiber.Ctx, v *validator.Validate) (*T, *app_errors.AppError) {
	var query T
	if err := c.QueryParser(&query); err != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidQuery, "request.invalid_query", err)
	}
	if err := v.Struct(query); err != nil {
		return nil, app_errors.NewValidationError(app_errors.ParseValidationError(err))
	}
	return &query, nil
}
