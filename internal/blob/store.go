// Package blob stores uploaded files behind a driver-selected interface.
package blob

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"studyaid/internal/config"
)

// ErrNotFound is returned when a key has no stored object.
var ErrNotFound = errors.New("blob: object not found")

// Store persists uploaded files under string keys.
type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}

// NewStore selects a Store implementation from the configured driver.
func NewStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (Store, error) {
	switch cfg.Blob.Driver {
	case "local":
		return NewLocal(cfg.Blob.LocalDir)
	case "minio":
		return NewMinio(ctx, cfg.MinIO, log)
	default:
		return nil, fmt.Errorf("unknown blob driver %q", cfg.Blob.Driver)
	}
}
