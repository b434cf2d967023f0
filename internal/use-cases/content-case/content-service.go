package content_case

import (
	"context"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	content_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/content-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	content_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/content-repo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// ContentService verwaltet wiederverwendbare Inhaltsblöcke und injizierbare
// Code-Snippets. Anonyme sehen bei Snippets nur aktive Einträge; die
// Entscheidung trifft der Handler und reicht activeOnly durch.
type ContentService struct {
	repo content_repo.ContentRepoContract
}

func NewContentService(db *pgxpool.Pool) ContentServiceContract {
	return &ContentService{
		repo: content_repo.NewContentRepo(db),
	}
}

func (s *ContentService) UpsertCommon(ctx context.Context, key string, req content_dto.UpsertCommonContentRequest) (*content_dto.CommonContentResponse, *app_errors.AppError) {
	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return nil, app_errors.NewInternalError("internal_error", idErr)
	}

	block, err := s.repo.UpsertCommonByKey(ctx, &entity.CommonContentEntity{
		ID:      id.String(),
		Key:     key,
		Content: req.Content,
	})
	if err != nil {
		return nil, err
	}

	return toCommonResponse(block), nil
}

func (s *ContentService) GetCommon(ctx context.Context, key string) (*content_dto.CommonContentResponse, *app_errors.AppError) {
	block, err := s.repo.FindCommonByKey(ctx, key)
	if err != nil {
		return nil, err
	}

	return toCommonResponse(block), nil
}

func (s *ContentService) ListCommon(ctx context.Context, query content_dto.ListContentQuery) ([]content_dto.CommonContentResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	page, limit := normalizeQuery(query)

	total, err := s.repo.CountCommon(ctx)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.repo.ListCommon(ctx, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	blocks := make([]content_dto.CommonContentResponse, 0, len(rows))
	for i := range rows {
		blocks = append(blocks, *toCommonResponse(&rows[i]))
	}

	return blocks, paginationMeta(page, limit, total), nil
}

func (s *ContentService) DeleteCommon(ctx context.Context, key string) *app_errors.AppError {
	return s.repo.DeleteCommonByKey(ctx, key)
}

func (s *ContentService) UpsertCode(ctx context.Context, key string, req content_dto.UpsertCustomCodeRequest) (*content_dto.CustomCodeResponse, *app_errors.AppError) {
	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return nil, app_errors.NewInternalError("internal_error", idErr)
	}

	code, err := s.repo.UpsertCodeByKey(ctx, &entity.CustomCodeEntity{
		ID:       id.String(),
		Key:      key,
		Name:     req.Name,
		Code:     req.Code,
		Location: entity.CodeLocation(req.Location),
		IsActive: req.IsActive,
	})
	if err != nil {
		return nil, err
	}

	return toCodeResponse(code), nil
}

func (s *ContentService) GetCode(ctx context.Context, key string, activeOnly bool) (*content_dto.CustomCodeResponse, *app_errors.AppError) {
	code, err := s.repo.FindCodeByKey(ctx, key, activeOnly)
	if err != nil {
		return nil, err
	}

	return toCodeResponse(code), nil
}

func (s *ContentService) ListCodes(ctx context.Context, query content_dto.ListContentQuery, activeOnly bool) ([]content_dto.CustomCodeResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	page, limit := normalizeQuery(query)

	total, err := s.repo.CountCodes(ctx, activeOnly)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.repo.ListCodes(ctx, activeOnly, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	codes := make([]content_dto.CustomCodeResponse, 0, len(rows))
	for i := range rows {
		codes = append(codes, *toCodeResponse(&rows[i]))
	}

	return codes, paginationMeta(page, limit, total), nil
}

func (s *ContentService) DeleteCode(ctx context.Context, key string) *app_errors.AppError {
	return s.repo.DeleteCodeByKey(ctx, key)
}

func normalizeQuery(query content_dto.ListContentQuery) (int, int) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 50
	}
	return page, limit
}

func paginationMeta(page, limit, total int) *dtos.PaginationMeta {
	return &dtos.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}
}

func toCommonResponse(block *entity.CommonContentEntity) *content_dto.CommonContentResponse {
	return &content_dto.CommonContentResponse{
		ID:        block.ID,
		Key:       block.Key,
		Content:   block.Content,
		CreatedAt: block.CreatedAt,
		UpdatedAt: block.UpdatedAt,
	}
}

func toCodeResponse(code *entity.CustomCodeEntity) *content_dto.CustomCodeResponse {
	return &content_dto.CustomCodeResponse{
		ID:        code.ID,
		Key:       code.Key,
		Name:      code.Name,
		Code:      code.Code,
		Location:  string(code.Location),
		IsActive:  code.IsActive,
		CreatedAt: code.CreatedAt,
		UpdatedAt: code.UpdatedAt,
	}
}
