package migration

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrUnknownRevision is returned when the database is at a revision outside
// the managed chain.
var ErrUnknownRevision = errors.New("unknown database revision")

// ErrVersionMoved is returned when alembic_version no longer holds the
// revision a migration started from. The migration is rolled back.
var ErrVersionMoved = errors.New("database revision changed during migration")

// Migrator applies the revision chain and records the head in alembic_version.
type Migrator struct {
	db     *sql.DB
	log    logrus.FieldLogger
	dbHost string
	chain  []Revision
}

// New returns a Migrator over the built-in revision chain.
func New(db *sql.DB, log logrus.FieldLogger, dbHost string) *Migrator {
	return &Migrator{db: db, log: log, dbHost: dbHost, chain: revisions}
}

// Head is the newest revision this build knows about.
func (m *Migrator) Head() string {
	if len(m.chain) == 0 {
		return ""
	}
	return m.chain[len(m.chain)-1].ID
}

// Current returns the revision recorded in alembic_version, or "" when the
// table is missing or empty.
func (m *Migrator) Current(ctx context.Context) (string, error) {
	var exists bool
	if err := m.db.QueryRowContext(ctx, "SELECT to_regclass('public.alembic_version') IS NOT NULL").Scan(&exists); err != nil {
		return "", fmt.Errorf("failed to check version table: %w", err)
	}
	if !exists {
		return "", nil
	}

	var version string
	err := m.db.QueryRowContext(ctx, "SELECT version_num FROM alembic_version LIMIT 1").Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read current revision: %w", err)
	}
	return version, nil
}

// Upgrade applies every revision newer than the current one, each in its own
// transaction together with the version update.
func (m *Migrator) Upgrade(ctx context.Context) error {
	start := time.Now()
	if err := checkChain(m.chain); err != nil {
		return err
	}

	current, err := m.Current(ctx)
	if err != nil {
		m.failed(err, "", start)
		return err
	}

	pending, err := m.pending(current)
	if err != nil {
		m.failed(err, current, start)
		return err
	}
	if len(pending) == 0 {
		m.event("db_migration_skip", logrus.Fields{
			"msg_detail":       "schema already at head, skipping migration",
			"current_revision": current,
			"duration_ms":      time.Since(start).Milliseconds(),
		})
		return nil
	}

	for _, rev := range pending {
		if err := m.apply(ctx, rev.ID, rev.Up, rev.DownRevision, rev.ID); err != nil {
			m.failed(err, rev.ID, start)
			return err
		}
	}

	m.event("db_migration_success", logrus.Fields{
		"current_revision": m.Head(),
		"duration_ms":      time.Since(start).Milliseconds(),
	})
	return nil
}

// Downgrade reverts the current revision, moving the database to its down revision.
func (m *Migrator) Downgrade(ctx context.Context) error {
	start := time.Now()

	current, err := m.Current(ctx)
	if err != nil {
		m.failed(err, "", start)
		return err
	}

	rev, ok := m.find(current)
	if !ok {
		err := fmt.Errorf("%w %q: nothing to downgrade", ErrUnknownRevision, current)
		m.failed(err, current, start)
		return err
	}

	if err := m.apply(ctx, rev.ID, rev.Down, rev.ID, rev.DownRevision); err != nil {
		m.failed(err, rev.ID, start)
		return err
	}

	m.event("db_migration_success", logrus.Fields{
		"current_revision": rev.DownRevision,
		"duration_ms":      time.Since(start).Milliseconds(),
	})
	return nil
}

// pending returns the revisions to run from current to the head.
func (m *Migrator) pending(current string) ([]Revision, error) {
	for i, rev := range m.chain {
		if rev.ID == current {
			return m.chain[i+1:], nil
		}
	}
	if len(m.chain) > 0 && m.chain[0].DownRevision == current {
		return m.chain, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownRevision, current)
}

func (m *Migrator) find(id string) (Revision, bool) {
	for _, rev := range m.chain {
		if rev.ID == id {
			return rev, true
		}
	}
	return Revision{}, false
}

// apply runs the steps of revision id in one transaction and moves the
// version row from `from` to `to` before committing.
func (m *Migrator) apply(ctx context.Context, id string, steps []migrationStep, from, to string) (err error) {
	m.event("db_migration_start", logrus.Fields{
		"migration_revision": id,
		"from_revision":      from,
		"to_revision":        to,
	})

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin revision %s: %w", id, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, step := range steps {
		stepStart := time.Now()
		if _, err = tx.ExecContext(ctx, step.SQL); err != nil {
			return fmt.Errorf("migration step %s failed: %w", step.Name, err)
		}
		m.event("db_migration_step", logrus.Fields{
			"migration_revision": id,
			"migration_step":     step.Name,
			"step_duration_ms":   time.Since(stepStart).Milliseconds(),
		})
	}

	res, err := tx.ExecContext(ctx, "UPDATE alembic_version SET version_num = $1 WHERE version_num = $2", to, from)
	if err != nil {
		return fmt.Errorf("record revision %s: %w", to, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record revision %s: %w", to, err)
	}
	if n != 1 {
		return fmt.Errorf("%w: expected %s in alembic_version, %d rows updated", ErrVersionMoved, from, n)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit revision %s: %w", id, err)
	}
	return nil
}

func (m *Migrator) event(name string, fields logrus.Fields) {
	m.log.WithFields(logrus.Fields{
		"component": "database",
		"event":     name,
		"db_host":   m.dbHost,
	}).WithFields(fields).Info(name)
}

func (m *Migrator) failed(err error, revision string, start time.Time) {
	m.log.WithFields(logrus.Fields{
		"component":          "database",
		"event":              "db_migration_failed",
		"db_host":            m.dbHost,
		"migration_revision": revision,
		"duration_ms":        time.Since(start).Milliseconds(),
	}).WithError(err).Error("db_migration_failed")
}
