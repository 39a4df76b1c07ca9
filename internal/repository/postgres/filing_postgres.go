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

// FilingPostgres is a PostgreSQL implementation of repository.FilingRepository.
type FilingPostgres struct {
	db *sql.DB
}

// NewFilingPostgres creates a new FilingPostgres repository.
func NewFilingPostgres(db *sql.DB) *FilingPostgres {
	return &FilingPostgres{db: db}
}

var _ repository.FilingRepository = (*FilingPostgres)(nil)

// FindByID fetches the id and status of a filing.
func (r *FilingPostgres) FindByID(ctx context.Context, id int64) (*model.Filing, error) {
	query, args, err := psql().
		Select("id", "status").
		From("filings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build filing query: %w", err)
	}

	var f model.Filing
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&f.ID, &f.Status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &f, nil
}
