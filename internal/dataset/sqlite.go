package dataset

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"

	"github.com/haytac/emojify/internal/emoji"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Store is a SQLite-backed emoji dataset.
type Store struct {
	db   *sql.DB
	path string
}

// OpenStore opens (creating if needed) the SQLite database at path and
// applies pending schema migrations.
func OpenStore(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating dataset directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening dataset database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging dataset database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, err
	}

	log.Debug().Str("path", path).Msg("Dataset database opened")
	return &Store{db: db, path: path}, nil
}

func runMigrations(db *sql.DB) error {
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("loading migrations: %w", err)
	}
	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return fmt.Errorf("creating sqlite3 migrate driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return fmt.Errorf("initializing migrate instance: %w", err)
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Import upserts records into the emoji table and returns the number
// written. Existing names are overwritten.
func (s *Store) Import(ctx context.Context, records []emoji.Record) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("starting import transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO emoji (name, unicode, description) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET unicode = excluded.unicode, description = excluded.description`)
	if err != nil {
		return 0, fmt.Errorf("preparing import statement: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Name, rec.Unicode, rec.Description); err != nil {
			return 0, fmt.Errorf("importing emoji %q: %w", rec.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing import: %w", err)
	}

	log.Info().Int("records", len(records)).Str("path", s.path).Msg("Dataset imported")
	return len(records), nil
}

// List returns all records ordered by name.
func (s *Store) List(ctx context.Context) ([]emoji.Record, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, unicode, description FROM emoji ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("querying emoji table: %w", err)
	}
	defer rows.Close()

	var records []emoji.Record
	for rows.Next() {
		var rec emoji.Record
		if err := rows.Scan(&rec.Name, &rec.Unicode, &rec.Description); err != nil {
			return nil, fmt.Errorf("scanning emoji row: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating emoji rows: %w", err)
	}
	return records, nil
}

// SQLite is an emoji.Source that reads the emoji table once per Load,
// opening and closing the database within the call.
type SQLite struct {
	Path string
}

// NewSQLite creates a SQLite source for the database at path.
func NewSQLite(path string) *SQLite {
	return &SQLite{Path: path}
}

// Load opens the store, reads every record, and closes the store again.
func (s *SQLite) Load(ctx context.Context) ([]emoji.Record, error) {
	store, err := OpenStore(s.Path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			log.Warn().Err(cerr).Str("path", s.Path).Msg("Closing dataset database failed")
		}
	}()

	return store.List(ctx)
}
