package media_case

import (
	"context"
	"io"

	media_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/media-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/storage"

	"github.com/stretchr/testify/mock"
)

type MockMediaRepo struct {
	mock.Mock
}

func (m *MockMediaRepo) Insert(ctx context.Context, model *entity.MediaEntity) (*entity.MediaEntity, *app_errors.AppError) {
	args := m.Called(ctx, model)
	return args.Get(0).(*entity.MediaEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockMediaRepo) FindByID(ctx context.Context, id string) (*entity.MediaEntity, *app_errors.AppError) {
	args := m.Called(ctx, id)
	return args.Get(0).(*entity.MediaEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockMediaRepo) ListMedia(ctx context.Context, mime *string, limit, offset int) ([]entity.MediaEntity, *app_errors.AppError) {
	args := m.Called(ctx, mime, limit, offset)
	return args.Get(0).([]entity.MediaEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockMediaRepo) CountMedia(ctx context.Context, mime *string) (int, *app_errors.AppError) {
	args := m.Called(ctx, mime)
	return args.Int(0), args.Get(1).(*app_errors.AppError)
}

func (m *MockMediaRepo) UpdateMeta(ctx context.Context, id string, model media_dto.UpdateMediaRequest) (*entity.MediaEntity, *app_errors.AppError) {
	args := m.Called(ctx, id, model)
	return args.Get(0).(*entity.MediaEntity), args.Get(1).(*app_errors.AppError)
}

func (m *MockMediaRepo) Delete(ctx context.Context, id string) *app_errors.AppError {
	args := m.Called(ctx, id)
	return args.Get(0).(*app_errors.AppError)
}

func (m *MockMediaRepo) ListObjectKeys(ctx context.Context) (map[string]struct{}, *app_errors.AppError) {
	args := m.Called(ctx)
	return args.Get(0).(map[string]struct{}), args.Get(1).(*app_errors.AppError)
}

var _ storage.ObjectStore = (*MockObjectStore)(nil)

type MockObjectStore struct {
	mock.Mock
}

func (m *MockObjectStore) Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, objectKey, reader, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStore) Remove(ctx context.Context, objectKey string) error {
	args := m.Called(ctx, objectKey)
	return args.Error(0)
}

func (m *MockObjectStore) ListObjects(ctx context.Context) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx)
	return args.Get(0).([]storage.ObjectInfo), args.Error(1)
}

func (m *MockObjectStore) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
