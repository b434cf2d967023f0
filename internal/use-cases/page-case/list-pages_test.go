package page_case

import (
	"context"
	"testing"

	page_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/page-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
)

func TestListPages_AnonymousSeesPublishedOnly(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPageRepo)
	service := &PageService{repo: repo, cache: &use_cases.MockCache{}, taskQueue: new(use_cases.MockTaskQueue)}

	filter := entity.PageListFilter{PublishedOnly: true}
	repo.On("CountPages", ctx, filter).Return(1, (*app_errors.AppError)(nil))
	repo.On("ListPages", ctx, filter, 20, 0).Return([]entity.PageEntity{
		{ID: "page-1", Slug: "impressum", Title: "Impressum", Published: true},
	}, (*app_errors.AppError)(nil))

	pages, meta, err := service.ListPages(ctx, page_dto.ListPagesQuery{}, true)

	assert.Nil(t, err)
	assert.Len(t, pages, 1)
	assert.Equal(t, 1, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)

	repo.AssertExpectations(t)
}

func TestListPages_SearchAndPagination(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPageRepo)
	service := &PageService{repo: repo, cache: &use_cases.MockCache{}, taskQueue: new(use_cases.MockTaskQueue)}

	search := "impress"
	filter := entity.PageListFilter{Search: &search}
	repo.On("CountPages", ctx, filter).Return(11, (*app_errors.AppError)(nil))
	repo.On("ListPages", ctx, filter, 5, 10).Return([]entity.PageEntity{
		{ID: "page-11", Slug: "impressum-alt", Title: "Impressum (alt)"},
	}, (*app_errors.AppError)(nil))

	pages, meta, err := service.ListPages(ctx, page_dto.ListPagesQuery{Page: 3, Limit: 5, Search: "impress"}, false)

	assert.Nil(t, err)
	assert.Len(t, pages, 1)
	assert.Equal(t, 3, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)

	repo.AssertExpectations(t)
}
