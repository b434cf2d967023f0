package app_errors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MapPgxError übersetzt Postgres-Fehler in die AppError-Taxonomie. Status und
// Typ sind verbindlich, die Nachricht ist Best-Effort (bei 23505 wird sie
// anhand des Constraint-Namens auf slug/email/key spezialisiert). Alles, was
// keine Zeile der Tabelle trifft, ist ein nicht-operationaler 500.
func MapPgxError(err error) *AppError {
	if errors.Is(err, pgx.ErrNoRows) {
		return NewAppError(404, ErrNotFound, "db.not_found", err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return NewAppError(409, ErrConflict, duplicateMessageKey(pgErr), err)
		case "23503": // foreign_key_violation
			return NewAppError(400, ErrInvalidReference, "db.foreign_key", err)
		case "23514": // check_violation
			return NewAppError(400, ErrInvalidData, "db.check_violation", err)
		case "22P02": // invalid_text_representation
			return NewAppError(400, ErrInvalidInput, "db.invalid_input", err)
		case "23502": // not_null_violation
			return NewAppErrorWithParams(400, ErrMissingField, "db.not_null", map[string]any{
				"column": pgErr.ColumnName,
			}, err)
		case "42703", "42601": // undefined_column, syntax_error
			return NewAppError(400, ErrInvalidQuery, "db.invalid_query", err)
		case "42501": // insufficient_privilege (row level security)
			return NewAppError(403, ErrPermissionDenied, "db.rls_violation", err)
		}
	}

	e := NewInternalError("db.generic", err)
	e.Type = ErrDatabase
	e.Params = map[string]any{"reason": err.Error()}
	return e
}

// duplicateMessageKey rät den natürlichen Schlüssel aus dem Constraint-Namen
// bzw. der Fehlermeldung. Nur die Wortwahl hängt davon ab, nie der Status.
func duplicateMessageKey(pgErr *pgconn.PgError) string {
	hint := strings.ToLower(pgErr.ConstraintName + " " + pgErr.Message)
	switch {
	case strings.Contains(hint, "slug"):
		return "db.duplicate_slug"
	case strings.Contains(hint, "email"):
		return "db.duplicate_email"
	case strings.Contains(hint, "key"):
		return "db.duplicate_key"
	default:
		return "db.duplicate"
	}
}
