package user_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) UserRepoContract {
	return &UserRepo{
		db: db,
	}
}

func (r *UserRepo) FindProfileByUserID(ctx context.Context, userID string) (*entity.ProfileEntity, *app_errors.AppError) {
	query := `
		SELECT id, email, full_name, role, avatar_url, created_at, updated_at
		FROM profiles
		WHERE id = $1
		LIMIT 1
	`

	var profile entity.ProfileEntity
	err := r.db.QueryRow(ctx, query, userID).Scan(
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

// UpsertProfile legt das Profil an, falls es noch fehlt (Rolle bleibt dann
// Schema-Default "user"), sonst werden nur die gesetzten Felder geändert.
// Existiert das Konto selbst nicht, greift der 404 des Translators.
func (r *UserRepo) UpsertProfile(ctx context.Context, userID string, model user_dto.UpdateProfileRequest) (*entity.ProfileEntity, *app_errors.AppError) {
	query := `
	INSERT INTO profiles (id, email, full_name, avatar_url)
	SELECT u.id, u.email, COALESCE($2, ''), $3
	FROM users u
	WHERE u.id = $1
	ON CONFLICT (id) DO UPDATE SET
		full_name  = COALESCE($2, profiles.full_name),
		avatar_url = COALESCE($3, profiles.avatar_url),
		updated_at = now()
	RETURNING id, email, full_name, role, avatar_url, created_at, updated_at;
	`

	var profile entity.ProfileEntity
	err := r.db.QueryRow(ctx, query, userID, model.FullName, model.AvatarURL).Scan(
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

// buildUserFilter baut die WHERE-Klausel der Benutzerliste. argPos zählt ab 1
// weiter, damit LIMIT/OFFSET hinten anschließen können.
func buildUserFilter(filter entity.UserListFilter) (string, []any) {
	clauses := make([]string, 0)
	args := make([]any, 0)
	argPos := 1

	if filter.Role != nil {
		clauses = append(clauses, fmt.Sprintf("COALESCE(p.role, 'user') = $%d", argPos))
		args = append(args, string(*filter.Role))
		argPos++
	}

	if filter.Search != nil && *filter.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(u.email ILIKE $%d OR p.full_name ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
		argPos++
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *UserRepo) ListUsers(ctx context.Context, filter entity.UserListFilter, limit, offset int) ([]entity.UserAccount, *app_errors.AppError) {
	where, args := buildUserFilter(filter)

	query := fmt.Sprintf(`
		SELECT u.id, u.email, COALESCE(p.full_name, ''), COALESCE(p.role, 'user'), p.avatar_url, u.is_active, u.created_at, u.updated_at
		FROM users u
		LEFT JOIN profiles p ON p.id = u.id
		%s
		ORDER BY u.created_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	users := []entity.UserAccount{}
	for rows.Next() {
		var u entity.UserAccount
		if err := rows.Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.AvatarURL, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return users, nil
}

func (r *UserRepo) CountUsers(ctx context.Context, filter entity.UserListFilter) (int, *app_errors.AppError) {
	where, args := buildUserFilter(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(1)
		FROM users u
		LEFT JOIN profiles p ON p.id = u.id
		%s
	`, where)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *UserRepo) FindUserAccount(ctx context.Context, userID string) (*entity.UserAccount, *app_errors.AppError) {
	query := `
		SELECT u.id, u.email, COALESCE(p.full_name, ''), COALESCE(p.role, 'user'), p.avatar_url, u.is_active, u.created_at, u.updated_at
		FROM users u
		LEFT JOIN profiles p ON p.id = u.id
		WHERE u.id = $1
		LIMIT 1
	`

	var u entity.UserAccount
	err := r.db.QueryRow(ctx, query, userID).Scan(&u.ID, &u.Email, &u.FullName, &u.Role, &u.AvatarURL, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &u, nil
}

// AdminUpdateUser ändert Konto (is_active) und Profil (full_name, role) in
// einer Transaktion. Fehlt das Profil noch, wird es mitangelegt.
func (r *UserRepo) AdminUpdateUser(ctx context.Context, t tx.Tx, userID string, model user_dto.AdminUpdateUserRequest) *app_errors.AppError {
	if model.FullName == nil && model.Role == nil && model.IsActive == nil {
		return app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", fmt.Errorf("Keine Felder zum Aktualisieren."))
	}

	pgxTx := t.(*tx.PgxTx).Tx

	if model.IsActive != nil {
		ct, err := pgxTx.Exec(ctx, `UPDATE users SET is_active = $2, updated_at = now() WHERE id = $1`, userID, *model.IsActive)
		if err != nil {
			return app_errors.MapPgxError(err)
		}
		if ct.RowsAffected() == 0 {
			return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
		}
	}

	if model.FullName != nil || model.Role != nil {
		query := `
		INSERT INTO profiles (id, email, full_name, role)
		SELECT u.id, u.email, COALESCE($2, ''), COALESCE($3, 'user')
		FROM users u
		WHERE u.id = $1
		ON CONFLICT (id) DO UPDATE SET
			full_name  = COALESCE($2, profiles.full_name),
			role       = COALESCE($3, profiles.role),
			updated_at = now();
		`
		ct, err := pgxTx.Exec(ctx, query, userID, model.FullName, model.Role)
		if err != nil {
			return app_errors.MapPgxError(err)
		}
		if ct.RowsAffected() == 0 {
			return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
		}
	}

	return nil
}

// DeleteUser entfernt das Konto; Profil und post_tags hängen per CASCADE
// daran. Beiträge des Benutzers bleiben (author_id wird vom Schema behandelt).
func (r *UserRepo) DeleteUser(ctx context.Context, userID string) *app_errors.AppError {
	ct, err := r.db.Exec(ctx, `DELETE FROM users WHERE id = $1`, userID)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if ct.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
	}

	return nil
}
