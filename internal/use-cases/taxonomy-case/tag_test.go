package taxonomy_case

import (
	"context"
	"testing"

	taxonomy_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/taxonomy-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// Test zweimal derselbe Upsert: idempotent, der Name wird ersetzt
func TestUpsertTag_Idempotent(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaxonomyRepo)
	service := &TaxonomyService{repo: repo}

	repo.On("UpsertTag", ctx, mock.MatchedBy(func(tag *entity.TagEntity) bool {
		return tag.Slug == "golang"
	})).Return(&entity.TagEntity{
		ID:   "tag-1",
		Slug: "golang",
		Name: "Go",
	}, (*app_errors.AppError)(nil)).Twice()

	first, err := service.UpsertTag(ctx, "golang", taxonomy_dto.UpsertTagRequest{Name: "Go"})
	assert.Nil(t, err)

	second, err := service.UpsertTag(ctx, "golang", taxonomy_dto.UpsertTagRequest{Name: "Go"})
	assert.Nil(t, err)

	assert.Equal(t, first.ID, second.ID)

	repo.AssertExpectations(t)
}

func TestListTags_Pagination(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaxonomyRepo)
	service := &TaxonomyService{repo: repo}

	repo.On("CountTags", ctx, (*string)(nil)).Return(120, (*app_errors.AppError)(nil))
	repo.On("ListTags", ctx, (*string)(nil), 50, 50).Return([]entity.TagEntity{
		{ID: "tag-51", Slug: "einundfuenfzig", Name: "51"},
	}, (*app_errors.AppError)(nil))

	tags, meta, err := service.ListTags(ctx, taxonomy_dto.ListTaxonomyQuery{Page: 2})

	assert.Nil(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, 120, meta.Total)
	assert.Equal(t, 3, meta.TotalPages)

	repo.AssertExpectations(t)
}

func TestDeleteTag_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockTaxonomyRepo)
	service := &TaxonomyService{repo: repo}

	repo.On("DeleteTagBySlug", ctx, "golang").Return((*app_errors.AppError)(nil))

	assert.Nil(t, service.DeleteTag(ctx, "golang"))

	repo.AssertExpectations(t)
}
