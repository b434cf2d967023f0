package media_case

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/nomanjawad/automictemplate-api-sub001/internal/dtos"
	media_dto "github.com/nomanjawad/automictemplate-api-sub001/internal/dtos/media-dto"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/entity"
	app_errors "github.com/nomanjawad/automictemplate-api-sub001/internal/errors"
	media_repo "github.com/nomanjawad/automictemplate-api-sub001/internal/repo/media-repo"
	"github.com/nomanjawad/automictemplate-api-sub001/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog/log"
)

const maxUploadBytes = 20 << 20 // 20 MiB

type MediaService struct {
	repo      media_repo.MediaRepoContract
	objects   storage.ObjectStore
	publicURL string
}

func NewMediaService(db *pgxpool.Pool, objects storage.ObjectStore, publicURL string) MediaServiceContract {
	return &MediaService{
		repo:      media_repo.NewMediaRepo(db),
		objects:   objects,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// Upload streamt die Datei in den Bucket und legt die Metadaten-Zeile an.
// Scheitert das Insert nach erfolgreichem Put, bleibt das Objekt zunächst
// liegen; der tägliche Orphan-Sweep räumt es ab. Keine Kompensationslogik im
// Request-Pfad.
func (s *MediaService) Upload(ctx context.Context, caller entity.Principal, file *multipart.FileHeader) (*media_dto.MediaResponse, *app_errors.AppError) {
	if file == nil || file.Size == 0 {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "upload.file_required", nil)
	}
	if file.Size > maxUploadBytes {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidData, "upload.too_large", nil)
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}

	objectKey, keyErr := buildObjectKey(file.Filename)
	if keyErr != nil {
		log.Error().Err(keyErr).Msg("Fehler beim Erzeugen des Objekt-Keys")
		return nil, app_errors.NewInternalError("internal_error", keyErr)
	}

	src, openErr := file.Open()
	if openErr != nil {
		return nil, app_errors.NewAppError(fiber.StatusBadRequest, app_errors.ErrInvalidBody, "request.invalid_body", openErr)
	}
	defer src.Close()

	if putErr := s.objects.Put(ctx, objectKey, src, file.Size, mimeType); putErr != nil {
		log.Error().Err(putErr).Str("object_key", objectKey).Msg("Upload in den Objektspeicher fehlgeschlagen")
		return nil, app_errors.NewInternalError("internal_error", putErr)
	}

	id, idErr := uuid.NewV7()
	if idErr != nil {
		log.Error().Err(idErr).Msg("Fehler beim Erzeugen der uuid v7")
		return nil, app_errors.NewInternalError("internal_error", idErr)
	}

	media, err := s.repo.Insert(ctx, &entity.MediaEntity{
		ID:           id.String(),
		FileName:     file.Filename,
		OriginalName: file.Filename,
		MimeType:     mimeType,
		SizeBytes:    file.Size,
		ObjectKey:    objectKey,
		URL:          fmt.Sprintf("%s/%s", s.publicURL, objectKey),
		UploadedBy:   &caller.UserID,
	})
	if err != nil {
		return nil, err
	}

	return toMediaResponse(media), nil
}

func (s *MediaService) GetMedia(ctx context.Context, id string) (*media_dto.MediaResponse, *app_errors.AppError) {
	media, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return toMediaResponse(media), nil
}

func (s *MediaService) ListMedia(ctx context.Context, query media_dto.ListMediaQuery) ([]media_dto.MediaResponse, *dtos.PaginationMeta, *app_errors.AppError) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = 20
	}

	var mime *string
	if query.Mime != "" {
		mime = &query.Mime
	}

	total, err := s.repo.CountMedia(ctx, mime)
	if err != nil {
		return nil, nil, err
	}

	rows, err := s.repo.ListMedia(ctx, mime, limit, (page-1)*limit)
	if err != nil {
		return nil, nil, err
	}

	items := make([]media_dto.MediaResponse, 0, len(rows))
	for i := range rows {
		items = append(items, *toMediaResponse(&rows[i]))
	}

	meta := &dtos.PaginationMeta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: (total + limit - 1) / limit,
	}

	return items, meta, nil
}

// UpdateMedia ändert nur Metadaten. Anfassen darf das der Uploader oder ein
// Moderator; uploaded_by nil (Konto gelöscht) lässt nur Moderatoren durch.
func (s *MediaService) UpdateMedia(ctx context.Context, caller entity.Principal, id string, req media_dto.UpdateMediaRequest) (*media_dto.MediaResponse, *app_errors.AppError) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !caller.CanManage(existing.UploadedBy) {
		return nil, app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrPermissionDenied, "auth.not_owner", nil)
	}

	media, err := s.repo.UpdateMeta(ctx, id, req)
	if err != nil {
		return nil, err
	}

	return toMediaResponse(media), nil
}

// DeleteMedia löscht erst die Zeile, dann das Objekt. Scheitert das
// Object-Remove, überlebt das Objekt bis zum nächsten Orphan-Sweep — der
// Request gilt trotzdem als erfolgreich, die Zeile ist weg.
func (s *MediaService) DeleteMedia(ctx context.Context, caller entity.Principal, id string) *app_errors.AppError {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !caller.CanManage(existing.UploadedBy) {
		return app_errors.NewAppError(fiber.StatusForbidden, app_errors.ErrPermissionDenied, "auth.not_owner", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if removeErr := s.objects.Remove(ctx, existing.ObjectKey); removeErr != nil {
		log.Warn().Err(removeErr).Str("object_key", existing.ObjectKey).Msg("Objekt nicht löschbar, Sweep übernimmt")
	}

	return nil
}

// buildObjectKey: media/JJJJ/MM/<nanoid><ext>. Der Zufallsanteil macht den
// Key eindeutig, das Datum hält den Bucket browsebar.
func buildObjectKey(filename string) (string, error) {
	suffix, err := gonanoid.New(16)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	now := time.Now().UTC()
	return fmt.Sprintf("media/%04d/%02d/%s%s", now.Year(), int(now.Month()), suffix, ext), nil
}

func toMediaResponse(m *entity.MediaEntity) *media_dto.MediaResponse {
	return &media_dto.MediaResponse{
		ID:           m.ID,
		FileName:     m.FileName,
		OriginalName: m.OriginalName,
		MimeType:     m.MimeType,
		SizeBytes:    m.SizeBytes,
		URL:          m.URL,
		AltText:      m.AltText,
		UploadedBy:   m.UploadedBy,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
