package content_case

import (
	"context"
	"testing"

	content_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/content-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpsertCommon_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockContentRepo)
	service := &ContentService{repo: repo}

	content := json.RawMessage(`{"links":[{"label":"Start","href":"/"}]}`)
	repo.On("UpsertCommonByKey", ctx, mock.MatchedBy(func(b *entity.CommonContentEntity) bool {
		return b.Key == "footer" && b.ID != ""
	})).Return(&entity.CommonContentEntity{
		ID:      "block-1",
		Key:     "footer",
		Content: content,
	}, (*app_errors.AppError)(nil))

	resp, err := service.UpsertCommon(ctx, "footer", content_dto.UpsertCommonContentRequest{Content: content})

	assert.Nil(t, err)
	assert.Equal(t, "footer", resp.Key)
	assert.JSONEq(t, string(content), string(resp.Content))

	repo.AssertExpectations(t)
}

func TestGetCommon_NotFound(t *testing.T) {
	ctx := context.Background()

	repo := new(MockContentRepo)
	service := &ContentService{repo: repo}

	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "db.not_found", nil)
	repo.On("FindCommonByKey", ctx, "nie-da").Return((*entity.CommonContentEntity)(nil), notFound)

	resp, err := service.GetCommon(ctx, "nie-da")

	assert.Nil(t, resp)
	assert.Equal(t, 404, err.Code)
}

func TestListCommon_Pagination(t *testing.T) {
	ctx := context.Background()

	repo := new(MockContentRepo)
	service := &ContentService{repo: repo}

	repo.On("CountCommon", ctx).Return(2, (*app_errors.AppError)(nil))
	repo.On("ListCommon", ctx, 50, 0).Return([]entity.CommonContentEntity{
		{ID: "block-1", Key: "footer"},
		{ID: "block-2", Key: "header"},
	}, (*app_errors.AppError)(nil))

	blocks, meta, err := service.ListCommon(ctx, content_dto.ListContentQuery{})

	assert.Nil(t, err)
	assert.Len(t, blocks, 2)
	assert.Equal(t, 2, meta.Total)
	assert.Equal(t, 1, meta.TotalPages)

	repo.AssertExpectations(t)
}

func TestDeleteCommon_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockContentRepo)
	service := &ContentService{repo: repo}

	repo.On("DeleteCommonByKey", ctx, "footer").Return((*app_errors.AppError)(nil))

	assert.Nil(t, service.DeleteCommon(ctx, "footer"))

	repo.AssertExpectations(t)
}
