// Package store implements durable dependency edge storage.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	"go.trai.ch/precomp/internal/core/domain"
	"go.trai.ch/precomp/internal/core/ports"
	"go.trai.ch/zerr"

	// Registers the "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

var _ ports.DependencyStore = (*SQLite)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS dependency (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	source     VARCHAR(500) NOT NULL,
	depends_on VARCHAR(500) NOT NULL,
	UNIQUE (source, depends_on)
);
CREATE INDEX IF NOT EXISTS dependency_source ON dependency (source);
CREATE INDEX IF NOT EXISTS dependency_depends_on ON dependency (depends_on);
`

// SQLite stores dependency edges in a SQLite table with a uniqueness
// constraint on (source, depends_on) and an index on each column.
type SQLite struct {
	db *sqlx.DB
}

// OpenSQLite opens or creates the database at path. The special path
// ":memory:" opens a private in-memory database.
func OpenSQLite(path string) (*SQLite, error) {
	dsn := ":memory:"
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to create store directory"), "path", path)
		}
		dsn = "file:" + path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	}

	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open dependency store"), "path", path)
	}
	// A single connection serializes writers and keeps ":memory:" databases alive.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, zerr.With(zerr.Wrap(err, "failed to migrate dependency store"), "path", path)
	}

	return &SQLite{db: db}, nil
}

// DependenciesOf implements ports.DependencyStore.
func (s *SQLite) DependenciesOf(ctx context.Context, source domain.SourcePath) ([]domain.SourcePath, error) {
	var rows []string
	err := s.db.SelectContext(ctx, &rows,
		`SELECT depends_on FROM dependency WHERE source = ? ORDER BY depends_on`, source.String())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return toSourcePaths(rows), nil
}

// DependentsOf implements ports.DependencyStore.
func (s *SQLite) DependentsOf(ctx context.Context, dep domain.SourcePath) ([]domain.SourcePath, error) {
	var rows []string
	err := s.db.SelectContext(ctx, &rows,
		`SELECT source FROM dependency WHERE depends_on = ? ORDER BY source`, dep.String())
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}
	return toSourcePaths(rows), nil
}

// Replace implements ports.DependencyStore. Edges outside deps are deleted,
// missing ones inserted and unchanged ones left alone, in one transaction.
func (s *SQLite) Replace(ctx context.Context, source domain.SourcePath, deps []domain.SourcePath) error {
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		if len(deps) == 0 {
			_, err := tx.ExecContext(ctx, `DELETE FROM dependency WHERE source = ?`, source.String())
			return err
		}

		query, args, err := sqlx.In(
			`DELETE FROM dependency WHERE source = ? AND depends_on NOT IN (?)`,
			source.String(), toStrings(deps),
		)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(query), args...); err != nil {
			return err
		}

		for _, dep := range deps {
			if _, err := tx.ExecContext(ctx,
				`INSERT OR IGNORE INTO dependency (source, depends_on) VALUES (?, ?)`,
				source.String(), dep.String(),
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete implements ports.DependencyStore.
func (s *SQLite) Delete(ctx context.Context, edges ...domain.DependencyEdge) error {
	if len(edges) == 0 {
		return nil
	}
	return s.inTx(ctx, func(tx *sqlx.Tx) error {
		for _, e := range edges {
			if _, err := tx.NamedExecContext(ctx,
				`DELETE FROM dependency WHERE source = :source AND depends_on = :depends_on`,
				edgeRow{Source: e.Source.String(), DependsOn: e.DependsOn.String()},
			); err != nil {
				return err
			}
		}
		return nil
	})
}

// Close implements ports.DependencyStore.
func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := s.db.BeginTxx(ctx, &sql.TxOptions{})
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer tx.Rollback() //nolint:errcheck // Rollback after Commit is a no-op

	if err := fn(tx); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tx.Commit(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	return nil
}

type edgeRow struct {
	Source    string `db:"source"`
	DependsOn string `db:"depends_on"`
}

func toSourcePaths(rows []string) []domain.SourcePath {
	out := make([]domain.SourcePath, len(rows))
	for i, r := range rows {
		out[i] = domain.SourcePath(r)
	}
	return out
}

func toStrings(paths []domain.SourcePath) []string {
	out := make([]string, len(paths))
	for i, p := range paths {
		out[i] = p.String()
	}
	return out
}
