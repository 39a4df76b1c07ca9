package repository

import (
	"context"
	"errors"

	"legaldocs/internal/model"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("record not found")

// DocumentRepository defines read access to document records.
// Implementations do persistence only.
type DocumentRepository interface {
	// FindByFileKey returns the document stored under fileKey, or ErrNotFound.
	FindByFileKey(ctx context.Context, fileKey string) (*model.Document, error)
}

// FilingRepository defines read access to filing records.
type FilingRepository interface {
	// FindByID returns the filing with the given id, or ErrNotFound.
	FindByID(ctx context.Context, id int64) (*model.Filing, error)
}
