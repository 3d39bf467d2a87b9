package storage

import (
	"context"
	"io"
	"time"
)

// Backend is the object-storage collaborator used for both condition-report
// media and generated contract documents. An object is assumed retrievable
// at the returned URL once Upload returns.
type Backend interface {
	// Upload stores the object under key and returns its stable URL.
	Upload(ctx context.Context, key, contentType string, data io.Reader) (string, error)

	// GenerateUploadURL returns a URL the mobile client can PUT media to.
	GenerateUploadURL(ctx context.Context, key, contentType string, expiresIn time.Duration) (string, error)

	// Delete removes an object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error
}
