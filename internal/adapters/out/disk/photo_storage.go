// Package disk stores uploaded license photos on the local filesystem.
// References returned to the domain are file names relative to the storage
// root, so the root can move without invalidating stored references.
package disk

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// PhotoStorage implements the photo storage port over a directory on disk.
type PhotoStorage struct {
	root string
}

// NewPhotoStorage creates the storage root if needed and returns the store.
func NewPhotoStorage(root string) (*PhotoStorage, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("create photo storage root %s: %w", root, err)
	}
	return &PhotoStorage{root: root}, nil
}

// Save writes the photo content under a fresh unique name carrying the
// original file's extension, and returns that name as the reference. The
// original name is never used as a path component.
func (s *PhotoStorage) Save(ctx context.Context, content []byte, fileName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fileName))
	reference := uuid.NewString() + ext

	path := filepath.Join(s.root, reference)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write photo %s: %w", reference, err)
	}

	return reference, nil
}
