package post_case

import (
	"context"
	"testing"

	post_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/post-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
)

func TestListPosts_CategoryAndTagFilter(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	service := &PostService{repo: repo, cache: &use_cases.MockCache{}, taskQueue: new(use_cases.MockTaskQueue)}

	category := "technik"
	tag := "golang"
	filter := entity.PostListFilter{PublishedOnly: true, CategorySlug: &category, TagSlug: &tag}
	repo.On("CountPosts", ctx, filter).Return(1, (*app_errors.AppError)(nil))
	repo.On("ListPosts", ctx, filter, 20, 0).Return([]entity.PostEntity{
		{ID: "post-1", Slug: "go-generics", Title: "Go Generics", Published: true},
	}, (*app_errors.AppError)(nil))

	posts, meta, err := service.ListPosts(ctx, post_dto.ListPostsQuery{Category: "technik", Tag: "golang"}, true)

	assert.Nil(t, err)
	assert.Len(t, posts, 1)
	assert.Equal(t, 1, meta.Total)

	repo.AssertExpectations(t)
}

func TestListPosts_Pagination(t *testing.T) {
	ctx := context.Background()

	repo := new(MockPostRepo)
	service := &PostService{repo: repo, cache: &use_cases.MockCache{}, taskQueue: new(use_cases.MockTaskQueue)}

	filter := entity.PostListFilter{}
	repo.On("CountPosts", ctx, filter).Return(21, (*app_errors.AppError)(nil))
	repo.On("ListPosts", ctx, filter, 10, 10).Return([]entity.PostEntity{
		{ID: "post-11", Slug: "elfter"},
	}, (*app_errors.AppError)(nil))

	_, meta, err := service.ListPosts(ctx, post_dto.ListPostsQuery{Page: 2, Limit: 10}, false)

	assert.Nil(t, err)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 3, meta.TotalPages)

	repo.AssertExpectations(t)
}
