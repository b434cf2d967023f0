package post_repo

import (
	"context"
	"fmt"
	"strings"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/abstraction/tx"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostRepo struct {
	db *pgxpool.Pool
}

func NewPostRepo(db *pgxpool.Pool) PostRepoContract {
	return &PostRepo{
		db: db,
	}
}

const postColumns = `p.id, p.slug, p.title, p.excerpt, p.content, p.cover_image, p.category_id, c.name, p.author_id, p.published, p.published_at, p.created_at, p.updated_at`

func (r *PostRepo) Insert(ctx context.Context, t tx.Tx, model *entity.PostEntity) (*entity.PostEntity, *app_errors.AppError) {
	pgxTx := t.(*tx.PgxTx).Tx
	query := `
	INSERT INTO posts (id, slug, title, excerpt, content, cover_image, category_id, author_id, published, published_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING id, slug, title, excerpt, content, cover_image, category_id, author_id, published, published_at, created_at, updated_at;
	`

	var post entity.PostEntity
	err := pgxTx.QueryRow(ctx, query,
		model.ID,
		model.Slug,
		model.Title,
		model.Excerpt,
		model.Content,
		model.CoverImage,
		model.CategoryID,
		model.AuthorID,
		model.Published,
		model.PublishedAt,
	).Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.CoverImage,
		&post.CategoryID,
		&post.AuthorID,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &post, nil
}

// UpsertBySlug schreibt den Beitrag per Slug. Beim Konflikt bleiben id,
// author_id und das erste published_at erhalten; Unpublish setzt published_at
// zurück. Ein unbekanntes category_id läuft als 23503 durch den Translator.
func (r *PostRepo) UpsertBySlug(ctx context.Context, t tx.Tx, model *entity.PostEntity) (*entity.PostEntity, *app_errors.AppError) {
	pgxTx := t.(*tx.PgxTx).Tx
	query := `
	INSERT INTO posts (id, slug, title, excerpt, content, cover_image, category_id, author_id, published, published_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	ON CONFLICT (slug) DO UPDATE SET
		title        = EXCLUDED.title,
		excerpt      = EXCLUDED.excerpt,
		content      = EXCLUDED.content,
		cover_image  = EXCLUDED.cover_image,
		category_id  = EXCLUDED.category_id,
		published    = EXCLUDED.published,
		published_at = CASE
			WHEN EXCLUDED.published AND posts.published_at IS NULL THEN now()
			WHEN NOT EXCLUDED.published THEN NULL
			ELSE posts.published_at
		END,
		updated_at   = now()
	RETURNING id, slug, title, excerpt, content, cover_image, category_id, author_id, published, published_at, created_at, updated_at;
	`

	var post entity.PostEntity
	err := pgxTx.QueryRow(ctx, query,
		model.ID,
		model.Slug,
		model.Title,
		model.Excerpt,
		model.Content,
		model.CoverImage,
		model.CategoryID,
		model.AuthorID,
		model.Published,
		model.PublishedAt,
	).Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.CoverImage,
		&post.CategoryID,
		&post.AuthorID,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	return &post, nil
}

// ReplaceTags ersetzt die Tag-Zuordnung des Beitrags vollständig.
func (r *PostRepo) ReplaceTags(ctx context.Context, t tx.Tx, postID string, tagIDs []string) *app_errors.AppError {
	pgxTx := t.(*tx.PgxTx).Tx
	if _, err := pgxTx.Exec(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
		return app_errors.MapPgxError(err)
	}

	for _, tagID := range tagIDs {
		query := `
		INSERT INTO post_tags (post_id, tag_id)
		VALUES ($1, $2)
		ON CONFLICT DO NOTHING;
		`
		if _, err := pgxTx.Exec(ctx, query, postID, tagID); err != nil {
			return app_errors.MapPgxError(err)
		}
	}

	return nil
}

func (r *PostRepo) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*entity.PostEntity, *app_errors.AppError) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		WHERE p.slug = $1
	`, postColumns)
	if publishedOnly {
		query += ` AND p.published = true`
	}
	query += ` LIMIT 1`

	var post entity.PostEntity
	err := r.db.QueryRow(ctx, query, slug).Scan(
		&post.ID,
		&post.Slug,
		&post.Title,
		&post.Excerpt,
		&post.Content,
		&post.CoverImage,
		&post.CategoryID,
		&post.CategoryName,
		&post.AuthorID,
		&post.Published,
		&post.PublishedAt,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	if appErr := r.attachTags(ctx, []*entity.PostEntity{&post}); appErr != nil {
		return nil, appErr
	}

	return &post, nil
}

func buildPostFilter(filter entity.PostListFilter) (string, []any) {
	clauses := make([]string, 0)
	args := make([]any, 0)
	argPos := 1

	if filter.PublishedOnly {
		clauses = append(clauses, "p.published = true")
	}

	if filter.CategorySlug != nil && *filter.CategorySlug != "" {
		clauses = append(clauses, fmt.Sprintf("c.slug = $%d", argPos))
		args = append(args, *filter.CategorySlug)
		argPos++
	}

	if filter.TagSlug != nil && *filter.TagSlug != "" {
		clauses = append(clauses, fmt.Sprintf(`EXISTS (
			SELECT 1 FROM post_tags pt
			JOIN tags t ON t.id = pt.tag_id
			WHERE pt.post_id = p.id AND t.slug = $%d
		)`, argPos))
		args = append(args, *filter.TagSlug)
		argPos++
	}

	if filter.AuthorID != nil && *filter.AuthorID != "" {
		clauses = append(clauses, fmt.Sprintf("p.author_id = $%d", argPos))
		args = append(args, *filter.AuthorID)
		argPos++
	}

	if filter.Search != nil && *filter.Search != "" {
		clauses = append(clauses, fmt.Sprintf("(p.title ILIKE $%d OR p.slug ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+*filter.Search+"%")
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

func (r *PostRepo) ListPosts(ctx context.Context, filter entity.PostListFilter, limit, offset int) ([]entity.PostEntity, *app_errors.AppError) {
	where, args := buildPostFilter(filter)

	query := fmt.Sprintf(`
		SELECT %s
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		%s
		ORDER BY COALESCE(p.published_at, p.created_at) DESC
		LIMIT $%d OFFSET $%d
	`, postColumns, where, len(args)+1, len(args)+2)

	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, app_errors.MapPgxError(err)
	}
	defer rows.Close()

	posts := []entity.PostEntity{}
	for rows.Next() {
		var p entity.PostEntity
		if err := rows.Scan(&p.ID, &p.Slug, &p.Title, &p.Excerpt, &p.Content, &p.CoverImage, &p.CategoryID, &p.CategoryName, &p.AuthorID, &p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, app_errors.MapPgxError(err)
		}
		posts = append(posts, p)
	}

	if err := rows.Err(); err != nil {
		return nil, app_errors.MapPgxError(err)
	}

	refs := make([]*entity.PostEntity, len(posts))
	for i := range posts {
		refs[i] = &posts[i]
	}
	if appErr := r.attachTags(ctx, refs); appErr != nil {
		return nil, appErr
	}

	return posts, nil
}

func (r *PostRepo) CountPosts(ctx context.Context, filter entity.PostListFilter) (int, *app_errors.AppError) {
	where, args := buildPostFilter(filter)

	query := fmt.Sprintf(`
		SELECT COUNT(1)
		FROM posts p
		LEFT JOIN categories c ON c.id = p.category_id
		%s
	`, where)

	var total int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, app_errors.MapPgxError(err)
	}

	return total, nil
}

func (r *PostRepo) DeleteBySlug(ctx context.Context, slug string) *app_errors.AppError {
	ct, err := r.db.Exec(ctx, `DELETE FROM posts WHERE slug = $1`, slug)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	if ct.RowsAffected() == 0 {
		return app_errors.NewAppError(fiber.StatusNotFound, app_errors.ErrNotFound, "db.not_found", nil)
	}

	return nil
}

// attachTags lädt die Tags aller übergebenen Beiträge in einer Query nach.
func (r *PostRepo) attachTags(ctx context.Context, posts []*entity.PostEntity) *app_errors.AppError {
	if len(posts) == 0 {
		return nil
	}

	ids := make([]string, len(posts))
	byID := make(map[string]*entity.PostEntity, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	query := `
		SELECT pt.post_id, t.id, t.slug, t.name, t.created_at
		FROM post_tags pt
		JOIN tags t ON t.id = pt.tag_id
		WHERE pt.post_id = ANY($1::uuid[])
		ORDER BY t.slug
	`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return app_errors.MapPgxError(err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID string
		var tag entity.TagEntity
		if err := rows.Scan(&postID, &tag.ID, &tag.Slug, &tag.Name, &tag.CreatedAt); err != nil {
			return app_errors.MapPgxError(err)
		}
		if p, ok := byID[postID]; ok {
			p.Tags = append(p.Tags, tag)
		}
	}

	if err := rows.Err(); err != nil {
		return app_errors.MapPgxError(err)
	}

	return nil
}
