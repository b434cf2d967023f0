package content_repo

import (
	"context"
	"fmt"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ContentRepo struct {
	db *pgxpool.Pool
}

func NewContentRepo(db *pgxpool.Pool) ContentRepoContract {
	return &ContentRepo{
		db: db,
	}
}

func (r *ContentRepo) UpsertCommonByKey(ctx context.Context, model *entity.CommonContentEntity) (*entity.CommonContentEntity, *app_errors.AppError) {
	query := `
	INSERT INTO common_content (id, key, content)
	VALUES ($1, $2, $3)
	ON CONFLICT (key) DO UPDATE SET
		content    = EXCLUDED.content,
		updated_at = now()
	RETURNING id, key, content, created_at, updated_at;
	`

	var block entity.CommonContentEntity
	err := r.db.QueryRow(ctx, query, model.ID, model.Key, model.Content).Scan(
		&block.ID,
		&block.Key,
		&block.Content,
		&block.CreatedAt,
		&block.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &block, nil
}

func (r *ContentRepo) FindCommonByKey(ctx context.Context, key string) (*entity.CommonContentEntity, *app_errors.AppError) {
	query := `
		SELECT id, key, content, created_at, updated_at
		FROM common_content
		WHERE key = $1
		LIMIT 1
	`

	var block entity.CommonContentEntity
	err := r.db.QueryRow(ctx, query, key).Scan(&block.ID, &block.Key, &block.Content, &block.CreatedAt, &block.UpdatedAt)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &block, nil
}

func (r *ContentRepo) ListCommon(ctx context.Context, limit, offset int) ([]entity.CommonContentEntity, *app_errors.AppError) {
	query := `
		SELECT id, key, content, created_at, updated_at
		FROM common_content
		ORDER BY key ASC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	blocks := []entity.CommonContentEntity{}
	for rows.Next() {
		var b entity.CommonContentEntity
		if err := rows.Scan(&b.ID, &b.Key, &b.Content, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		blocks = append(blocks, b)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return blocks, nil
}

func (r *ContentRepo) CountCommon(ctx context.Context) (int, *app_errors.AppError) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(1) FROM common_content`).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *ContentRepo) DeleteCommonByKey(ctx context.Context, key string) *app_errors.AppError {
	ct, err := r.db.Exec(ctx, `DELETE FROM common_content WHERE key = $1`, key)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if ct.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
	}

	return nil
}

func (r *ContentRepo) UpsertCodeByKey(ctx context.Context, model *entity.CustomCodeEntity) (*entity.CustomCodeEntity, *app_errors.AppError) {
	query := `
	INSERT INTO custom_codes (id, key, name, code, location, is_active)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (key) DO UPDATE SET
		name       = EXCLUDED.name,
		code       = EXCLUDED.code,
		location   = EXCLUDED.location,
		is_active  = EXCLUDED.is_active,
		updated_at = now()
	RETURNING id, key, name, code, location, is_active, created_at, updated_at;
	`

	var code entity.CustomCodeEntity
	err := r.db.QueryRow(ctx, query, model.ID, model.Key, model.Name, model.Code, model.Location, model.IsActive).Scan(
		&code.ID,
		&code.Key,
		&code.Name,
		&code.Code,
		&code.Location,
		&code.IsActive,
		&code.CreatedAt,
		&code.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &code, nil
}

func (r *ContentRepo) FindCodeByKey(ctx context.Context, key string, activeOnly bool) (*entity.CustomCodeEntity, *app_errors.AppError) {
	query := `
		SELECT id, key, name, code, location, is_active, created_at, updated_at
		FROM custom_codes
		WHERE key = $1
	`
	if activeOnly {
		query += ` AND is_active = true`
	}
	query += ` LIMIT 1`

	var code entity.CustomCodeEntity
	err := r.db.QueryRow(ctx, query, key).Scan(&code.ID, &code.Key, &code.Name, &code.Code, &code.Location, &code.IsActive, &code.CreatedAt, &code.UpdatedAt)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &code, nil
}

func (r *ContentRepo) ListCodes(ctx context.Context, activeOnly bool, limit, offset int) ([]entity.CustomCodeEntity, *app_errors.AppError) {
	where := ""
	if activeOnly {
		where = "WHERE is_active = true"
	}

	query := fmt.Sprintf(`
		SELECT id, key, name, code, location, is_active, created_at, updated_at
		FROM custom_codes
		%s
		ORDER BY key ASC
		LIMIT $1 OFFSET $2
	`, where)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	codes := []entity.CustomCodeEntity{}
	for rows.Next() {
		var c entity.CustomCodeEntity
		if err := rows.Scan(&c.ID, &c.Key, &c.Name, &c.Code, &c.Location, &c.IsActive, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		codes = append(codes, c)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return codes, nil
}

func (r *ContentRepo) CountCodes(ctx context.Context, activeOnly bool) (int, *app_errors.AppError) {
	where := ""
	if activeOnly {
		where = "WHERE is_active = true"
	}

	var total int
	if err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(1) FROM custom_codes %s`, where)).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *ContentRepo) DeleteCodeByKey(ctx context.Context, key string) *app_errors.AppError {
	ct, err := r.db.Exec(ctx, `DELETE FROM custom_codes WHERE key = $1`, key)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if ct.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
	}

	return nil
}
