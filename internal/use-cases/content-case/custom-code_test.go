package content_case

import (
	"context"
	"testing"

	content_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/content-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpsertCode_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockContentRepo)
	service := &ContentService{repo: repo}

	repo.On("UpsertCodeByKey", ctx, mock.MatchedBy(func(c *entity.CustomCodeEntity) bool {
		return c.Key == "analytics" && c.Location == entity.LocationHead && c.IsActive
	})).Return(&entity.CustomCodeEntity{
		ID:       "code-1",
		Key:      "analytics",
		Name:     "Analytics",
		Code:     "<script>…</script>",
		Location: entity.LocationHead,
		IsActive: true,
	}, (*app_errors.AppError)(nil))

	resp, err := service.UpsertCode(ctx, "analytics", content_dto.UpsertCustomCodeRequest{
		Name:     "Analytics",
		Code:     "<script>…</script>",
		Location: "head",
		IsActive: true,
	})

	assert.Nil(t, err)
	assert.Equal(t, "head", resp.Location)
	assert.True(t, resp.IsActive)

	repo.AssertExpectations(t)
}

// Test anonyme Sicht: activeOnly wird bis ins Repo durchgereicht, ein
// deaktiviertes Snippet ist dort ein 404
func TestGetCode_AnonymousSeesActiveOnly(t *testing.T) {
	ctx := context.Background()

	repo := new(MockContentRepo)
	service := &ContentService{repo: repo}

	notFound := app_errors.NewAppError(404, app_errors.ErrNotFound, "db.not_found", nil)
	repo.On("FindCodeByKey", ctx, "analytics", true).Return((*entity.CustomCodeEntity)(nil), notFound)

	resp, err := service.GetCode(ctx, "analytics", true)

	assert.Nil(t, resp)
	assert.Equal(t, 404, err.Code)

	repo.AssertExpectations(t)
}

func TestListCodes_AdminSeesInactive(t *testing.T) {
	ctx := context.Background()

	repo := new(MockContentRepo)
	service := &ContentService{repo: repo}

	repo.On("CountCodes", ctx, false).Return(2, (*app_errors.AppError)(nil))
	repo.On("ListCodes", ctx, false, 50, 0).Return([]entity.CustomCodeEntity{
		{ID: "code-1", Key: "analytics", IsActive: true},
		{ID: "code-2", Key: "banner", IsActive: false},
	}, (*app_errors.AppError)(nil))

	codes, meta, err := service.ListCodes(ctx, content_dto.ListContentQuery{}, false)

	assert.Nil(t, err)
	assert.Len(t, codes, 2)
	assert.Equal(t, 2, meta.Total)

	repo.AssertExpectations(t)
}

func TestDeleteCode_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockContentRepo)
	service := &ContentService{repo: repo}

	repo.On("DeleteCodeByKey", ctx, "analytics").Return((*app_errors.AppError)(nil))

	assert.Nil(t, service.DeleteCode(ctx, "analytics"))

	repo.AssertExpectations(t)
}
