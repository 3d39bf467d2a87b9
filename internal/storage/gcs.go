package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	gcs "cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSBackend stores objects in a Google Cloud Storage bucket.
type GCSBackend struct {
	client *gcs.Client
	bucket string
}

func NewGCSBackend(ctx context.Context, bucket, credentialsFile string) (*GCSBackend, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSBackend{client: client, bucket: bucket}, nil
}

func (b *GCSBackend) Upload(ctx context.Context, key, contentType string, data io.Reader) (string, error) {
	w := b.client.Bucket(b.bucket).Object(key).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := io.Copy(w, data); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", key, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", key, err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", b.bucket, key), nil
}

func (b *GCSBackend) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	url, err := b.client.Bucket(b.bucket).SignedURL(key, &gcs.SignedURLOptions{
		Method:      http.MethodPut,
		ContentType: contentType,
		Expires:     time.Now().Add(expiresIn),
		Scheme:      gcs.SigningSchemeV4,
	})
	if err != nil {
		return "", fmt.Errorf("failed to sign upload URL for %s: %w", key, err)
	}
	return url, nil
}

func (b *GCSBackend) Delete(ctx context.Context, key string) error {
	err := b.client.Bucket(b.bucket).Object(key).Delete(ctx)
	if err != nil && !errors.Is(err, gcs.ErrObjectNotExist) {
		return fmt.Errorf("failed to delete object %s: %w", key, err)
	}
	return nil
}

func (b *GCSBackend) Close() error {
	return b.client.Close()
}
