package tx

import (
	"context"

	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
)

// Tx kapselt eine laufende Transaktion. Services sehen nur diese
// Schnittstelle; die pgx-Implementierung packen die Repos selbst aus.
type Tx interface {
	Commit(ctx context.Context) *app_errors.AppError
	Rollback(ctx context.Context) *app_errors.AppError
}

type TxManager interface {
	Begin(ctx context.Context) (Tx, *app_errors.AppError)
}
