package media_repo

import (
	"context"
	"fmt"
	"strings"

	media_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/media-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type MediaRepo struct {
	db *pgxpool.Pool
}

func NewMediaRepo(db *pgxpool.Pool) MediaRepoContract {
	return &MediaRepo{
		db: db,
	}
}

const mediaColumns = `id, file_name, original_name, mime_type, size_bytes, object_key, url, alt_text, uploaded_by, created_at, updated_at`

func (r *MediaRepo) Insert(ctx context.Context, model *entity.MediaEntity) (*entity.MediaEntity, *app_errors.AppError) {
	cols := []string{"id", "file_name", "original_name", "mime_type", "size_bytes", "object_key", "url", "alt_text", "uploaded_by"}
	vals := []any{model.ID, model.FileName, model.OriginalName, model.MimeType, model.SizeBytes, model.ObjectKey, model.URL, model.AltText, model.UploadedBy}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(`
	INSERT INTO media (%s)
	VALUES (%s)
	RETURNING %s;
	`, strings.Join(cols, ","), strings.Join(placeholders, ","), mediaColumns)

	var media entity.MediaEntity
	if err := r.db.QueryRow(ctx, query, vals...).Scan(mediaFields(&media)...); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &media, nil
}

func (r *MediaRepo) FindByID(ctx context.Context, id string) (*entity.MediaEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM media
		WHERE id = $1
		LIMIT 1
	`, mediaColumns)

	var media entity.MediaEntity
	if err := r.db.QueryRow(ctx, query, id).Scan(mediaFields(&media)...); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &media, nil
}

func (r *MediaRepo) ListMedia(ctx context.Context, mime *string, limit, offset int) ([]entity.MediaEntity, *app_errors.AppError) {
	where := ""
	args := []any{}
	if mime != nil && *mime != "" {
		where = "WHERE mime_type ILIKE $1 || '%'"
		args = append(args, *mime)
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM media
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, mediaColumns, where, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	items := []entity.MediaEntity{}
	for rows.Next() {
		var m entity.MediaEntity
		if err := rows.Scan(mediaFields(&m)...); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		items = append(items, m)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return items, nil
}

func (r *MediaRepo) CountMedia(ctx context.Context, mime *string) (int, *app_errors.AppError) {
	where := ""
	args := []any{}
	if mime != nil && *mime != "" {
		where = "WHERE mime_type ILIKE $1 || '%'"
		args = append(args, *mime)
	}

	var total int
	if err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(1) FROM media %s`, where), args...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *MediaRepo) UpdateMeta(ctx context.Context, id string, model media_dto.UpdateMediaRequest) (*entity.MediaEntity, *app_errors.AppError) {
	setClauses := make([]string, 0)
	args := make([]any, 0)
	argPos := 1

	if model.FileName != nil {
		setClauses = append(setClauses, fmt.Sprintf("file_name = $%d", argPos))
		args = append(args, *model.FileName)
		argPos++
	}

	if model.AltText != nil {
		setClauses = append(setClauses, fmt.Sprintf("alt_text = $%d", argPos))
		args = append(args, *model.AltText)
		argPos++
	}

	if len(setClauses) == 0 {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", fmt.Errorf("Keine Felder zum Aktualisieren."))
	}

	setClauses = append(setClauses, "updated_at = now()")

	query := fmt.Sprintf(`
		UPDATE media
		SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), argPos, mediaColumns)

	args = append(args, id)

	var media entity.MediaEntity
	if err := r.db.QueryRow(ctx, query, args...).Scan(mediaFields(&media)...); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &media, nil
}

func (r *MediaRepo) Delete(ctx context.Context, id string) *app_errors.AppError {
	ct, err := r.db.Exec(ctx, `DELETE FROM media WHERE id = $1`, id)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if ct.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
	}

	return nil
}

// ListObjectKeys liefert alle referenzierten Bucket-Keys — Grundlage des
// Orphan-Sweeps im Worker.
func (r *MediaRepo) ListObjectKeys(ctx context.Context) (map[string]struct{}, *app_errors.AppError) {
	rows, err := r.db.Query(ctx, `SELECT object_key FROM media`)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	keys := make(map[string]struct{})
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		keys[key] = struct{}{}
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return keys, nil
}

func mediaFields(m *entity.MediaEntity) []any {
	return []any{
		&m.ID,
		&m.FileName,
		&m.OriginalName,
		&m.MimeType,
		&m.SizeBytes,
		&m.ObjectKey,
		&m.URL,
		&m.AltText,
		&m.UploadedBy,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}
