package page_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PageRepo struct {
	db *pgxpool.Pool
}

func NewPageRepo(db *pgxpool.Pool) PageRepoContract {
	return &PageRepo{
		db: db,
	}
}

// UpsertBySlug: der Slug ist der natürliche Schlüssel. Beim Konflikt bleibt
// die bestehende id erhalten, alle Inhaltsfelder werden ersetzt — zweimal
// derselbe Request ergibt denselben Zustand.
func (r *PageRepo) UpsertBySlug(ctx context.Context, model *entity.PageEntity) (*entity.PageEntity, *app_errors.AppError) {
	query := `
	INSERT INTO pages (id, slug, title, content, meta_title, meta_description, published)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (slug) DO UPDATE SET
		title            = EXCLUDED.title,
		content          = EXCLUDED.content,
		meta_title       = EXCLUDED.meta_title,
		meta_description = EXCLUDED.meta_description,
		published        = EXCLUDED.published,
		updated_at       = now()
	RETURNING id, slug, title, content, meta_title, meta_description, published, created_at, updated_at;
	`

	var page entity.PageEntity
	err := r.db.QueryRow(ctx, query,
		model.ID,
		model.Slug,
		model.Title,
		model.Content,
		model.MetaTitle,
		model.MetaDescription,
		model.Published,
	).Scan(
		&page.ID,
		&page.Slug,
		&page.Title,
		&page.Content,
		&page.MetaTitle,
		&page.MetaDescription,
		&page.Published,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &page, nil
}

func (r *PageRepo) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.PageEntity, *app_errors.AppError) {
	query := `
		SELECT id, slug, title, content, meta_title, meta_description, published, created_at, updated_at
		FROM pages
		WHERE slug = $1
	`
	if publishedOnly {
		// Unveröffentlichtes ist für Anonyme nicht unterscheidbar von "existiert nicht"
		query += ` AND published = true`
	}
	query += ` LIMIT 1`

	var page entity.PageEntity
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&page.ID,
		&page.Slug,
		&page.Title,
		&page.Content,
		&page.MetaTitle,
		&page.MetaDescription,
		&page.Published,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &page, nil
}

func buildPageFilter(filter entity.PageListFilter) (string, []any) {
	clauses := make([]string, 0)
	args := make([]any, 0)
	argPos := 1

	if filter.PublishedOnly {
		clauses = append(clauses, "published = true")
	}

	if filter.Search != nil && *filter.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(title ILIKE $%d OR slug ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *PageRepo) ListPages(ctx context.Context, filter entity.PageListFilter, limit, offset int) ([]entity.PageEntity, *app_errors.AppError) {
	where, args := buildPageFilter(filter)

	query := fmt.Sprintf(`
		SELECT id, slug, title, content, meta_title, meta_description, published, created_at, updated_at
		FROM pages
		%s
		ORDER BY updated_at DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	pages := []entity.PageEntity{}
	for rows.Next() {
		var p entity.PageEntity
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Content, &p.MetaTitle, &p.MetaDescription, &p.Published, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		pages = append(pages, p)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return pages, nil
}

func (r *PageRepo) CountPages(ctx context.Context, filter entity.PageListFilter) (int, *app_errors.AppError) {
	where, args := buildPageFilter(filter)

	query := fmt.Sprintf(`SELECT COUNT(1) FROM pages %s`, where)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *PageRepo) DeleteBySlug(ctx context.Context, slug string) *app_errors.AppError {
	ct, err := r.db.Exec(ctx, `DELETE FROM pages WHERE slug = $1`, slug)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if ct.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
	}

	return nil
}
