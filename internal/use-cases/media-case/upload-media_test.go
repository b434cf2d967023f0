package media_case

import (
	"bytes"
	"context"
	"mime/multipart"
	"strings"
	"testing"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// baut einen echten multipart.FileHeader im Speicher, wie ihn fiber aus dem
// Formular liefern würde
func makeFileHeader(t *testing.T, filename, contentType, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	h := make(map[string][]string)
	h["Content-Disposition"] = []string{`form-data; name="file"; filename="` + filename + `"`}
	h["Content-Type"] = []string{contentType}
	part, err := w.CreatePart(h)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(1 << 20)
	if err != nil {
		t.Fatal(err)
	}

	return form.File["file"][0]
}

func uploader() entity.Principal {
	return entity.Principal{UserID: "user-1", Email: "a@b.com", JTI: "jti-1"}
}

func TestUpload_StoresObjectAndRow(t *testing.T) {
	ctx := context.Background()

	repo := new(MockMediaRepo)
	objects := new(MockObjectStore)
	service := &MediaService{repo: repo, objects: objects, publicURL: "https://cdn.example.com"}

	file := makeFileHeader(t, "logo.png", "image/png", "png-bytes")

	objects.On("Put", ctx, mock.AnythingOfType("string"), mock.Anything, file.Size, "image/png").Return(nil)
	repo.On("Insert", ctx, mock.MatchedBy(func(m *entity.MediaEntity) bool {
		return m.FileName == "logo.png" &&
			m.MimeType == "image/png" &&
			m.SizeBytes == file.Size &&
			m.UploadedBy != nil && *m.UploadedBy == "user-1" &&
			strings.HasPrefix(m.URL, "https://cdn.example.com/media/") &&
			strings.HasSuffix(m.ObjectKey, ".png")
	})).Return(&entity.MediaEntity{
		ID:        "media-1",
		FileName:  "logo.png",
		MimeType:  "image/png",
		SizeBytes: file.Size,
		URL:       "https://cdn.example.com/media/2026/08/abc.png",
	}, (*app_errors.AppError)(nil))

	resp, err := service.Upload(ctx, uploader(), file)

	assert.Nil(t, err)
	assert.Equal(t, "media-1", resp.ID)
	objects.AssertExpectations(t)
	repo.AssertExpectations(t)
}

// Test Insert schlägt fehl: das Objekt bleibt im Bucket liegen (Sweep räumt
// später auf), der Fehler geht unverändert an den Aufrufer
func TestUpload_InsertFailureLeavesObjectForSweep(t *testing.T) {
	ctx := context.Background()

	repo := new(MockMediaRepo)
	objects := new(MockObjectStore)
	service := &MediaService{repo: repo, objects: objects, publicURL: "https://cdn.example.com"}

	file := makeFileHeader(t, "doc.pdf", "application/pdf", "pdf-bytes")

	objects.On("Put", ctx, mock.AnythingOfType("string"), mock.Anything, file.Size, "application/pdf").Return(nil)
	dbErr := app_errors.NewInternalError("db.generic", assert.AnError)
	repo.On("Insert", ctx, mock.AnythingOfType("*entity.MediaEntity")).Return((*entity.MediaEntity)(nil), dbErr)

	resp, err := service.Upload(ctx, uploader(), file)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 500, err.Code)
	objects.AssertNotCalled(t, "Remove", mock.Anything, mock.Anything)
}

func TestUpload_MissingFileRejected(t *testing.T) {
	ctx := context.Background()

	repo := new(MockMediaRepo)
	objects := new(MockObjectStore)
	service := &MediaService{repo: repo, objects: objects, publicURL: "https://cdn.example.com"}

	resp, err := service.Upload(ctx, uploader(), nil)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 400, err.Code)

	objects.AssertNotCalled(t, "Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestUpload_StoreFailureIsInternal(t *testing.T) {
	ctx := context.Background()

	repo := new(MockMediaRepo)
	objects := new(MockObjectStore)
	service := &MediaService{repo: repo, objects: objects, publicURL: "https://cdn.example.com"}

	file := makeFileHeader(t, "logo.png", "image/png", "png-bytes")
	objects.On("Put", ctx, mock.AnythingOfType("string"), mock.Anything, file.Size, "image/png").Return(assert.AnError)

	resp, err := service.Upload(ctx, uploader(), file)

	assert.Nil(t, resp)
	assert.NotNil(t, err)
	assert.Equal(t, 500, err.Code)
	assert.False(t, err.Operational)

	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}
