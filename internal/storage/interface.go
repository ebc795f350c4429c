package storage

import (
	"context"
	"io"
)

// StorageInterface defines the interface for profile image storage backends.
// A local filesystem implementation stands in for the cloud bucket in
// development and tests.
type StorageInterface interface {
	// FileExists checks if a file exists and returns its size
	FileExists(ctx context.Context, key string) (exists bool, size int64, err error)

	// DeleteFile removes a file from storage
	DeleteFile(ctx context.Context, key string) error

	// SaveFile stores a file under the given key
	SaveFile(key string, reader io.Reader) error

	// ReadFile opens a file for reading
	ReadFile(key string) (io.ReadCloser, error)

	// ListKeys returns every stored key (used by the orphan sweep job)
	ListKeys(ctx context.Context) ([]string, error)
}
