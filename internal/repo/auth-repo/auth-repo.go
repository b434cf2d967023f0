package auth_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

type AuthRepo struct {
	db *pgxpool.Pool
}

func NewAuthRepo(db *pgxpool.Pool) AuthRepoContract {
	return &AuthRepo{
		db: db,
	}
}

func (r *AuthRepo) CountByEmail(ctx context.Context, email string) (int64, *app_errors.AppError) {
	query := `
		SELECT COUNT(1) FROM users WHERE email = $1
	`
	var count int64
	if err := r.db.QueryRow(ctx, query, email).Scan(&count); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return count, nil
}

// SaveUser legt das Konto innerhalb der Registrierungs-Transaktion an.
// Doppelte E-Mail läuft als 23505 durch den Translator (409).
func (r *AuthRepo) SaveUser(ctx context.Context, t tx.Tx, model *entity.UserEntity) (*entity.UserEntity, *app_errors.AppError) {
	pgxTx := t.(*tx.PgxTx).Tx
	cols := []string{"id", "email", "password_hash", "is_active"}
	vals := []any{model.ID, model.Email, model.PasswordHash, model.IsActive}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
	INSERT INTO users (%s)
	VALUES (%s)
	RETURNING id, email, is_active, created_at, updated_at;
	`, strings.Join(cols, ","), strings.Join(placeholders, ","))

	var user entity.UserEntity
	if err := pgxTx.QueryRow(ctx, query, vals...).Scan(&user.ID, &user.Email, &user.IsActive, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	user.PasswordHash = model.PasswordHash
	return &user, nil
}

func (r *AuthRepo) SaveProfile(ctx context.Context, t tx.Tx, model *entity.ProfileEntity) (*entity.ProfileEntity, *app_errors.AppError) {
	pgxTx := t.(*tx.PgxTx).Tx
	query := `
	INSERT INTO profiles (id, email, full_name, role)
	VALUES ($1, $2, $3, $4)
	RETURNING id, email, full_name, role, avatar_url, created_at, updated_at;
	`

	var profile entity.ProfileEntity
	err := pgxTx.QueryRow(ctx, query, model.ID, model.Email, model.FullName, model.Role).Scan(
		&profile.ID,
		&profile.Email,
		&profile.FullName,
		&profile.Role,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &profile, nil
}

func (r *AuthRepo) FindByEmail(ctx context.Context, email string) (*entity.UserEntity, *app_errors.AppError) {
	query := `
		SELECT id, email, password_hash, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
		LIMIT 1
	`

	var user entity.UserEntity
	err := r.db.QueryRow(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &user, nil
}

func (r *AuthRepo) FindByID(ctx context.Context, userID string) (*entity.UserEntity, *app_errors.AppError) {
	query := `
		SELECT id, email, password_hash, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
		LIMIT 1
	`

	var user entity.UserEntity
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.IsActive,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &user, nil
}
