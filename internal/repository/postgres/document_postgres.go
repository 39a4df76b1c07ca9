package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"legaldocs/internal/model"
	"legaldocs/internal/repository"
)

const documentTableName = "documents"

var documentTableColumns = []string{
	"id",
	"type",
	"file_key",
	"file_name",
	"filing_id",
	"business_id",
}

// DocumentPostgres is a PostgreSQL implementation of repository.DocumentRepository.
type DocumentPostgres struct {
	db *sql.DB
}

// NewDocumentPostgres creates a new DocumentPostgres repository.
func NewDocumentPostgres(db *sql.DB) *DocumentPostgres {
	return &DocumentPostgres{db: db}
}

var _ repository.DocumentRepository = (*DocumentPostgres)(nil)

// FindByFileKey fetches a single document by its file key.
func (r *DocumentPostgres) FindByFileKey(ctx context.Context, fileKey string) (*model.Document, error) {
	query, args, err := psql().
		Select(documentTableColumns...).
		From(documentTableName).
		Where(squirrel.Eq{"file_key": fileKey}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build document query: %w", err)
	}

	var (
		d          model.Document
		fileName   sql.NullString
		filingID   sql.NullInt64
		businessID sql.NullInt64
	)
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&d.ID,
		&d.Type,
		&d.FileKey,
		&fileName,
		&filingID,
		&businessID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	d.FileName = fileName.String
	if filingID.Valid {
		d.FilingID = &filingID.Int64
	}
	if businessID.Valid {
		d.BusinessID = &businessID.Int64
	}
	return &d, nil
}
