// Package storage holds the object store backends documents live in when
// they are not kept by the Document Record Service.
package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"legaldocs/internal/config"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
}

// Storage is the object store surface the document gateway needs.
// Implementations are safe for concurrent use.
type Storage interface {
	// Get opens the object for streaming. The caller closes the reader.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes the object. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// PresignPut returns a time-limited URL a client can PUT the object body to.
	PresignPut(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// New builds the backend selected by cfg.Backend.
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case config.BackendMinIO, "":
		return NewMinIO(ctx, cfg)
	case config.BackendS3:
		return NewS3(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.Backend)
	}
}
