package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/rs/zerolog/log"
)

// NewMinioClient verbindet sich mit dem S3-kompatiblen Objektspeicher und
// stellt sicher, dass der Bucket existiert (wird im Zweifel angelegt).
func NewMinioClient(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*minio.Client, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("Objektspeicher-Client erstellen: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("Verbindung zum Objektspeicher nicht möglich: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("Bucket %q anlegen: %w", bucket, err)
		}
		log.Info().Str("bucket", bucket).Msg("Bucket angelegt")
	}

	return client, nil
}
