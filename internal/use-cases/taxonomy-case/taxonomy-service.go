package taxonomy_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	taxonomy_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/taxonomy-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	taxonomy_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/taxonomy-repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// TaxonomyService verwaltet Kategorien und Tags. Löschen einer Kategorie mit
// Beiträgen scheitert am FK RESTRICT und kommt als 400 aus dem Translator.
type TaxonomyService struct {
	repo taxonomy_repo.TaxonomyRepoContract
}

func NewTaxonomyService(db *pgxpool.Pool) TaxonomyServiceContract {
	return &TaxonomyService{
		repo: taxonomy_repo.NewTaxonomyRepo(db),
	}
}

func (s *TaxonomyService) UpsertCategory(ctx context.Context, slug string, req taxonomy_dto.UpsertCategoryRequest) (*taxonomy_dto.CategoryResponse, *app_errors.AppError) {
	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return nil, app_errors.NewInternalError("internal_error", idErr)
	}

	category, err := s.repo.UpsertCategory(ctx, &entity.CategoryEntity{
		ID:          id.String(),
		Slug:        slug,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	return toCategoryResponse(category), nil
}

func (s *TaxonomyService) GetCategory(ctx context.Context, slug string) (*taxonomy_dto.CategoryResponse, *app_errors.AppError) {
	category, err := s.repo.FindCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return toCategoryResponse(category), nil
}

func (s *TaxonomyService) ListCategories(ctx context.Context, query taxonomy_dto.ListTaxonomyQuery) ([]taxonomy_dto.CategoryResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	page, limit, search := normalizeQuery(query)

	total, err := s.repo.CountCategories(ctx, search)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.repo.ListCategories(ctx, search, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	categories := make([]taxonomy_dto.CategoryResponse, 0, len(rows))
	for i := range rows {
		categories = append(categories, *toCategoryResponse(&rows[i]))
	}

	return categories, paginationMeta(page, limit, total), nil
}

func (s *TaxonomyService) DeleteCategory(ctx context.Context, slug string) *app_errors.AppError {
	return s.repo.DeleteCategoryBySlug(ctx, slug)
}

func (s *TaxonomyService) UpsertTag(ctx context.Context, slug string, req taxonomy_dto.UpsertTagRequest) (*taxonomy_dto.TagResponse, *app_errors.AppError) {
	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return nil, app_errors.NewInternalError("internal_error", idErr)
	}

	tag, err := s.repo.UpsertTag(ctx, &entity.TagEntity{
		ID:   id.String(),
		Slug: slug,
		Name: req.Name,
	})
	if err != nil {
		return nil, err
	}

	return toTagResponse(tag), nil
}

func (s *TaxonomyService) GetTag(ctx context.Context, slug string) (*taxonomy_dto.TagResponse, *app_errors.AppError) {
	tag, err := s.repo.FindTagBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	return toTagResponse(tag), nil
}

func (s *TaxonomyService) ListTags(ctx context.Context, query taxonomy_dto.ListTaxonomyQuery) ([]taxonomy_dto.TagResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	page, limit, search := normalizeQuery(query)

	total, err := s.repo.CountTags(ctx, search)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.repo.ListTags(ctx, search, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	tags := make([]taxonomy_dto.TagResponse, 0, len(rows))
	for i := range rows {
		tags = append(tags, *toTagResponse(&rows[i]))
	}

	return tags, paginationMeta(page, limit, total), nil
}

func (s *TaxonomyService) DeleteTag(ctx context.Context, slug string) *app_errors.AppError {
	return s.repo.DeleteTagBySlug(ctx, slug)
}

func normalizeQuery(query taxonomy_dto.ListTaxonomyQuery) (int, int, *string) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 50
	}
	var search *string
	if query.Search != "" {
		search = &query.Search
	}
	return page, limit, search
}

func paginationMeta(page, limit, total int) *dtos.PaginationMeta {
	return &dtos.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

func toCategoryResponse(category *entity.CategoryEntity) *taxonomy_dto.CategoryResponse {
	return &taxonomy_dto.CategoryResponse{
		ID:          category.ID,
		Slug:        category.Slug,
		Name:        category.Name,
		Description: category.Description,
		CreatedAt:   category.CreatedAt,
		UpdatedAt:   category.UpdatedAt,
	}
}

func toTagResponse(tag *entity.TagEntity) *taxonomy_dto.TagResponse {
	return &taxonomy_dto.TagResponse{
		ID:        tag.ID,
		Slug:      tag.Slug,
		Name:      tag.Name,
		CreatedAt: tag.CreatedAt,
	}
}
