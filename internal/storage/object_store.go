package storage

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

// ObjectInfo beschreibt ein Objekt im Bucket, soweit der Orphan-Sweep es
// braucht.
type ObjectInfo struct {
	Key          string
	LastModified time.Time
}

// ObjectStore ist die schmale Sicht der Services auf den Objektspeicher.
// Die Metadaten-Zeile in Postgres bleibt führend; hier liegen nur die Bytes.
type ObjectStore interface {
	Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, objectKey string) error
	ListObjects(ctx context.Context) ([]ObjectInfo, error)
	Ping(ctx context.Context) error
}

var _ ObjectStore = (*MinioStore)(nil)

type MinioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(client *minio.Client, bucket string) *MinioStore {
	return &MinioStore{client: client, bucket: bucket}
}

func (s *MinioStore) Put(ctx context.Context, objectKey string, reader io.Reader, size int64, contentType string) error {
	_, err := s.client.PutObject(ctx, s.bucket, objectKey, reader, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

func (s *MinioStore) Remove(ctx context.Context, objectKey string) error {
	return s.client.RemoveObject(ctx, s.bucket, objectKey, minio.RemoveObjectOptions{})
}

// ListObjects läuft rekursiv über den ganzen Bucket. Nur der tägliche
// Orphan-Sweep ruft das auf, nie ein Request-Pfad.
func (s *MinioStore) ListObjects(ctx context.Context) ([]ObjectInfo, error) {
	var objects []ObjectInfo
	for obj := range s.client.ListObjects(ctx, s.bucket, minio.ListObjectsOptions{Recursive: true}) {
		if obj.Err != nil {
			return nil, obj.Err
		}
		objects = append(objects, ObjectInfo{Key: obj.Key, LastModified: obj.LastModified})
	}
	return objects, nil
}

func (s *MinioStore) Ping(ctx context.Context) error {
	_, err := s.client.BucketExists(ctx, s.bucket)
	return err
}
