package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// LocalBackend stores objects on the local filesystem and serves them
// through the API server. Used for development and tests; production runs
// the GCS backend.
type LocalBackend struct {
	baseURL    string // Server URL (e.g. "http://localhost:8080")
	uploadsDir string
}

func NewLocalBackend(baseURL, uploadsDir string) (*LocalBackend, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &LocalBackend{baseURL: baseURL, uploadsDir: uploadsDir}, nil
}

func (b *LocalBackend) Upload(ctx context.Context, key, contentType string, data io.Reader) (string, error) {
	fullPath := filepath.Join(b.uploadsDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, data); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return fmt.Sprintf("%s/files/%s", b.baseURL, key), nil
}

// GenerateUploadURL returns a server URL the client can PUT to. The key is
// carried in the query so the upload handler knows where to save.
func (b *LocalBackend) GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error) {
	token := uuid.New().String()
	return fmt.Sprintf("%s/api/v1/upload/%s?key=%s", b.baseURL, token, key), nil
}

func (b *LocalBackend) Delete(ctx context.Context, key string) error {
	err := os.Remove(filepath.Join(b.uploadsDir, filepath.FromSlash(key)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// SaveFile saves an uploaded body under key (used by the upload handler).
func (b *LocalBackend) SaveFile(key string, reader io.Reader) error {
	_, err := b.Upload(context.Background(), key, "", reader)
	return err
}

// ReadFile opens a stored object for the download handler.
func (b *LocalBackend) ReadFile(key string) (io.ReadCloser, error) {
	file, err := os.Open(filepath.Join(b.uploadsDir, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}
