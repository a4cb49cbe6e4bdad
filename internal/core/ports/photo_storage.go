package ports

import (
	"context"
)

// PhotoStorage persists uploaded license photos and returns an opaque
// reference suitable for storing on the CNH value object.
type PhotoStorage interface {
	// Save writes the photo content under the given file name and returns
	// the storage reference.
	Save(ctx context.Context, content []byte, fileName string) (string, error)
}
