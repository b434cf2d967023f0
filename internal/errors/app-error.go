package app_errors

// AppError repräsentiert einen Anwendungsfehler mit HTTP-Status, Maschinencode,
// i18n-Nachricht und optionalen Feld-Details. Nach der Konstruktion wird er
// nicht mehr verändert; serialisiert wird er ausschließlich vom globalen
// Error-Handler.
type AppError struct {
	Code        int            // HTTP status code
	Type        string         // CONFLICT, NOT_FOUND, usw
	MessageKey  string         // i18n key
	Params      map[string]any // i18n template params
	Details     []FieldError   // optional (validation)
	Err         error          // original error (internal only)
	Operational bool           // expected failure (true) vs programming/infra fault (false)
}

const (
	ErrValidation       = "VALIDATION_ERROR"
	ErrInvalidBody      = "INVALID_BODY"
	ErrInvalidParam     = "INVALID_PARAM"
	ErrInvalidQuery     = "INVALID_QUERY"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrTokenRequired    = "TOKEN_REQUIRED"
	ErrTokenInvalid     = "TOKEN_INVALID"
	ErrAuthFailed       = "AUTH_FAILED"
	ErrForbidden        = "FORBIDDEN"
	ErrInsufficientRole = "INSUFFICIENT_ROLE"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInvalidReference = "INVALID_REFERENCE"
	ErrInvalidData      = "INVALID_DATA"
	ErrInvalidInput     = "INVALID_INPUT"
	ErrMissingField     = "MISSING_FIELD"
	ErrPermissionDenied = "PERMISSION_DENIED"
	ErrDatabase         = "DATABASE_ERROR"
	ErrInternal         = "INTERNAL_ERROR"
)

type FieldError struct {
	Field      string         `json:"field"`
	Reason     string         `json:"reason"`
	MessageKey string         `json:"message_key"`
	Params     map[string]any `json:"params,omitempty"`
}

// NewAppError baut einen operationalen Fehler: der Request war fehlerhaft oder
// die Ressource verweigert, der Prozess selbst ist gesund.
func NewAppError(code int, errType string, messageKey string, err error) *AppError {
	return &AppError{
		Code:        code,
		Type:        errType,
		MessageKey:  messageKey,
		Err:         err,
		Operational: true,
	}
}

// NewAppErrorWithParams wie NewAppError, mit Template-Parametern für die
// i18n-Nachricht (z.B. die geforderte Rolle).
func NewAppErrorWithParams(code int, errType string, messageKey string, params map[string]any, err error) *AppError {
	e := NewAppError(code, errType, messageKey, err)
	e.Params = params
	return e
}

// NewValidationError sammelt alle Feld-Verstöße eines Requests in einem
// einzigen 422-Fehler.
func NewValidationError(details []FieldError) *AppError {
	return &AppError{
		Code:        422,
		Type:        ErrValidation,
		MessageKey:  "request.invalid",
		Details:     details,
		Operational: true,
	}
}

// NewInternalError markiert einen nicht-operationalen Fehler: Programmier-
// oder Infrastrukturfehler, bei dem ein Neustart des Prozesses angezeigt ist.
func NewInternalError(messageKey string, err error) *AppError {
	return &AppError{
		Code:        500,
		Type:        ErrInternal,
		MessageKey:  messageKey,
		Err:         err,
		Operational: false,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.MessageKey
}
