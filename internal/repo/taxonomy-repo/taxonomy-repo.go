package taxonomy_repo

import (
	"context"
	"fmt"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TaxonomyRepo struct {
	db *pgxpool.Pool
}

func NewTaxonomyRepo(db *pgxpool.Pool) TaxonomyRepoContract {
	return &TaxonomyRepo{
		db: db,
	}
}

func (r *TaxonomyRepo) UpsertCategory(ctx context.Context, model *entity.CategoryEntity) (*entity.CategoryEntity, *app_errors.AppError) {
	query := `
	INSERT INTO categories (id, slug, name, description)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (slug) DO UPDATE SET
		name        = EXCLUDED.name,
		description = EXCLUDED.description,
		updated_at  = now()
	RETURNING id, slug, name, description, created_at, updated_at;
	`

	var cat entity.CategoryEntity
	err := r.db.QueryRow(ctx, query, model.ID, model.Slug, model.Name, model.Description).Scan(
		&cat.ID,
		&cat.Slug,
		&cat.Name,
		&cat.Description,
		&cat.CreatedAt,
		&cat.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &cat, nil
}

func (r *TaxonomyRepo) FindCategoryBySlug(ctx context.Context, slug string) (*entity.CategoryEntity, *app_errors.AppError) {
	query := `
		SELECT id, slug, name, description, created_at, updated_at
		FROM categories
		WHERE slug = $1
		LIMIT 1
	`

	var cat entity.CategoryEntity
	err := r.db.QueryRow(ctx, query, slug).Scan(&cat.ID, &cat.Slug, &cat.Name, &cat.Description, &cat.CreatedAt, &cat.UpdatedAt)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &cat, nil
}

func (r *TaxonomyRepo) ListCategories(ctx context.Context, search *string, limit, offset int) ([]entity.CategoryEntity, *app_errors.AppError) {
	where, args := searchClause("name", "slug", search)

	query := fmt.Sprintf(`
		SELECT id, slug, name, description, created_at, updated_at
		FROM categories
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	cats := []entity.CategoryEntity{}
	for rows.Next() {
		var c entity.CategoryEntity
		if err := rows.Scan(&c.ID, &c.Slug, &c.Name, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		cats = append(cats, c)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return cats, nil
}

func (r *TaxonomyRepo) CountCategories(ctx context.Context, search *string) (int, *app_errors.AppError) {
	where, args := searchClause("name", "slug", search)

	var total int
	if err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(1) FROM categories %s`, where), args...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

// DeleteCategoryBySlug: hängen noch Beiträge an der Kategorie, blockiert der
// RESTRICT-FK und der Translator liefert 400 INVALID_REFERENCE.
func (r *TaxonomyRepo) DeleteCategoryBySlug(ctx context.Context, slug string) *app_errors.AppError {
	ct, err := r.db.Exec(ctx, `DELETE FROM categories WHERE slug = $1`, slug)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if ct.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
	}

	return nil
}

func (r *TaxonomyRepo) UpsertTag(ctx context.Context, model *entity.TagEntity) (*entity.TagEntity, *app_errors.AppError) {
	query := `
	INSERT INTO tags (id, slug, name)
	VALUES ($1, $2, $3)
	ON CONFLICT (slug) DO UPDATE SET
		name = EXCLUDED.name
	RETURNING id, slug, name, created_at;
	`

	var tag entity.TagEntity
	err := r.db.QueryRow(ctx, query, model.ID, model.Slug, model.Name).Scan(&tag.ID, &tag.Slug, &tag.Name, &tag.CreatedAt)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &tag, nil
}

func (r *TaxonomyRepo) FindTagBySlug(ctx context.Context, slug string) (*entity.TagEntity, *app_errors.AppError) {
	query := `
		SELECT id, slug, name, created_at
		FROM tags
		WHERE slug = $1
		LIMIT 1
	`

	var tag entity.TagEntity
	err := r.db.QueryRow(ctx, query, slug).Scan(&tag.ID, &tag.Slug, &tag.Name, &tag.CreatedAt)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &tag, nil
}

func (r *TaxonomyRepo) ListTags(ctx context.Context, search *string, limit, offset int) ([]entity.TagEntity, *app_errors.AppError) {
	where, args := searchClause("name", "slug", search)

	query := fmt.Sprintf(`
		SELECT id, slug, name, created_at
		FROM tags
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	tags := []entity.TagEntity{}
	for rows.Next() {
		var t entity.TagEntity
		if err := rows.Scan(&t.ID, &t.Slug, &t.Name, &t.CreatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		tags = append(tags, t)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return tags, nil
}

func (r *TaxonomyRepo) CountTags(ctx context.Context, search *string) (int, *app_errors.AppError) {
	where, args := searchClause("name", "slug", search)

	var total int
	if err := r.db.QueryRow(ctx, fmt.Sprintf(`SELECT COUNT(1) FROM tags %s`, where), args...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *TaxonomyRepo) DeleteTagBySlug(ctx context.Context, slug string) *app_errors.AppError {
	ct, err := r.db.Exec(ctx, `DELETE FROM tags WHERE slug = $1`, slug)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if ct.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
	}

	return nil
}

func (r *TaxonomyRepo) EnsureTags(ctx context.Context, t tx.Tx, slugs []string) ([]entity.TagEntity, *app_errors.AppError) {
	pgxTx := t.(*tx.PgxTx).Tx
	tags := make([]entity.TagEntity, 0, len(slugs))

	for _, slug := range slugs {
		tagID, uuidErr := uuid.NewV7()
		if uuidErr != nil {
			return nil, app_errors.NewInternalError("internal_error", uuidErr)
		}

		// Name = Slug bei automatisch angelegten Tags; ein späterer Upsert
		// über PUT /api/tags/:slug darf ihn verschönern.
		query := `
		INSERT INTO tags (id, slug, name)
		VALUES ($1, $2, $2)
		ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug
		RETURNING id, slug, name, created_at;
		`

		var tag entity.TagEntity
		if err := pgxTx.QueryRow(ctx, query, tagID.String(), slug).Scan(&tag.ID, &tag.Slug, &tag.Name, &tag.CreatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		tags = append(tags, tag)
	}

	return tags, nil
}

// searchClause baut das ILIKE-Filterfragment über zwei Spalten.
func searchClause(col1, col2 string, search *string) (string, []any) {
	if search == nil || *search == "" {
		return "", []any{}
	}
	return fmt.Sprintf("WHERE (%s ILIKE $1 OR %s ILIKE $1)", col1, col2), []any{"%" + *search + "%"}
}
