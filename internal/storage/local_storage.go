package storage

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// bucketDir matches the bucket name the app uploads profile images to.
const bucketDir = "user-profile-images"

// LocalStorageService implements profile image storage on the local
// filesystem. This is for development and testing without a cloud bucket.
type LocalStorageService struct {
	baseURL   string // server URL (e.g., "http://localhost:8080")
	imagesDir string // directory holding profile images
}

// NewLocalStorageService creates a new local storage service
func NewLocalStorageService(baseURL, uploadsDir string) (*LocalStorageService, error) {
	imagesDir := filepath.Join(uploadsDir, bucketDir)

	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}

	return &LocalStorageService{
		baseURL:   baseURL,
		imagesDir: imagesDir,
	}, nil
}

// FileExists checks if file exists in local filesystem
func (s *LocalStorageService) FileExists(ctx context.Context, key string) (bool, int64, error) {
	info, err := os.Stat(s.pathFor(key))
	if err != nil {
		if os.IsNotExist(err) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, info.Size(), nil
}

// DeleteFile deletes file from local filesystem
func (s *LocalStorageService) DeleteFile(ctx context.Context, key string) error {
	err := os.Remove(s.pathFor(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// SaveFile saves uploaded file to local filesystem
func (s *LocalStorageService) SaveFile(key string, reader io.Reader) error {
	fullPath := s.pathFor(key)

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directories: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// ReadFile reads file from local filesystem
func (s *LocalStorageService) ReadFile(key string) (io.ReadCloser, error) {
	file, err := os.Open(s.pathFor(key))
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return file, nil
}

// ListKeys walks the images directory and returns all stored keys
func (s *LocalStorageService) ListKeys(ctx context.Context) ([]string, error) {
	var keys []string
	err := filepath.WalkDir(s.imagesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(s.imagesDir, path)
		if err != nil {
			return err
		}
		keys = append(keys, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk storage directory: %w", err)
	}
	return keys, nil
}

// pathFor maps a storage key onto the images directory. Keys are cleaned so a
// crafted key cannot escape the storage root.
func (s *LocalStorageService) pathFor(key string) string {
	clean := filepath.Clean("/" + strings.TrimPrefix(key, bucketDir+"/"))
	return filepath.Join(s.imagesDir, clean)
}
