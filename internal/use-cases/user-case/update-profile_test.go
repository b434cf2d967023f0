package user_case

import (
	"context"
	"testing"

	user_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/user-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	use_cases "github.com/nomanjawad/automictemplate-api-sub001/internal/use-cases"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUpdateProfile_Success(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	cacheStore := &use_cases.MockCache{}
	service := &UserService{repo: repo, cache: cacheStore}

	name := "Neuer Name"
	req := user_dto.UpdateProfileRequest{FullName: &name}

	repo.On("UpsertProfile", ctx, "user-1", req).Return(&entity.ProfileEntity{
		ID:       "user-1",
		FullName: name,
		Role:     entity.RoleUser,
	}, (*app_errors.AppError)(nil))
	repo.On("FindUserAccount", ctx, "user-1").Return(&entity.UserAccount{
		ID:       "user-1",
		Email:    "nutzer@example.com",
		FullName: name,
		Role:     entity.RoleUser,
		IsActive: true,
	}, (*app_errors.AppError)(nil))

	resp, err := service.UpdateProfile(ctx, "user-1", req)

	assert.Nil(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, name, resp.FullName)

	// Nach dem Schreiben muss der Profil-Cache weg sein
	assert.Equal(t, 1, cacheStore.DelCalled)
	assert.Contains(t, cacheStore.LastDeletedKeys, profileCacheKey("user-1"))

	repo.AssertExpectations(t)
}

// Test leerer Request: 400, ohne Datenbankzugriff
func TestUpdateProfile_NoFields(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	service := &UserService{repo: repo, cache: &use_cases.MockCache{}}

	resp, err := service.UpdateProfile(ctx, "user-1", user_dto.UpdateProfileRequest{})

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.Code)
	assert.Equal(t, app_errors.ErrInvalidBody, err.Type)

	repo.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateProfile_RepoFails(t *testing.T) {
	ctx := context.Background()

	repo := new(MockUserRepo)
	cacheStore := &use_cases.MockCache{}
	service := &UserService{repo: repo, cache: cacheStore}

	avatar := "https://cdn.example.com/a.png"
	req := user_dto.UpdateProfileRequest{AvatarURL: &avatar}

	dbErr := app_errors.NewInternalError("db.query_failed", nil)
	repo.On("UpsertProfile", ctx, "user-1", req).Return((*entity.ProfileEntity)(nil), dbErr)

	resp, err := service.UpdateProfile(ctx, "user-1", req)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 500, err.Code)

	// Fehlgeschlagener Upsert darf den Cache nicht anfassen
	assert.Equal(t, 0, cacheStore.DelCalled)
	repo.AssertNotCalled(t, "FindUserAccount", ctx, "user-1")
}
