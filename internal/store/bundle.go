package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/qcforge/basisset/internal/basis"
)

//go:embed schema.sql
var schemaSQL string

// BundleStore reads records from a packed single-file SQLite bundle.
// Uses WAL mode so concurrent readers never block each other.
type BundleStore struct {
	db   *sql.DB
	meta memo[Metadata]
	refs memo[ReferenceData]
}

// OpenBundle opens an existing bundle. The file must already exist;
// bundles are built with Pack.
//
// The database is configured with:
//   - WAL mode for concurrent reads
//   - NORMAL synchronous mode
//   - 5-second busy timeout for lock contention
func OpenBundle(path string) (*BundleStore, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, basis.NewNotFound("bundle not found").AtPath(path)
		}
		return nil, fmt.Errorf("stat bundle: %w", err)
	}

	db, err := openBundleDB(path)
	if err != nil {
		return nil, err
	}
	return &BundleStore{db: db}, nil
}

// openBundleDB opens and configures the SQLite file shared by read and
// pack paths. Idempotent: the schema applies with IF NOT EXISTS.
func openBundleDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to bundle: %w", err)
	}

	// SQLite supports one writer at a time; a single connection avoids
	// SQLITE_BUSY during packing.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute %q: %w", pragma, err)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return db, nil
}

// Close closes the bundle.
func (s *BundleStore) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// readRaw loads a record's bytes by path, trying encoding twins, and
// returns the path actually stored.
func (s *BundleStore) readRaw(ctx context.Context, relpath string) ([]byte, string, error) {
	for _, p := range encodingCandidates(relpath) {
		var data []byte
		err := s.db.QueryRowContext(ctx, `SELECT data FROM records WHERE path = ?`, p).Scan(&data)
		if err == nil {
			return data, p, nil
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return nil, "", fmt.Errorf("query record: %w", err)
		}
	}
	return nil, "", basis.NewNotFound("record not found").AtPath(relpath)
}

// ReadTable implements Source.
func (s *BundleStore) ReadTable(ctx context.Context, relpath string) (*Table, error) {
	data, actual, err := s.readRaw(ctx, relpath)
	if err != nil {
		return nil, err
	}
	var t Table
	if err := decodeInto(data, actual, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// ReadComponent implements Source.
func (s *BundleStore) ReadComponent(ctx context.Context, relpath string) (*Component, error) {
	data, actual, err := s.readRaw(ctx, relpath)
	if err != nil {
		return nil, err
	}
	var c Component
	if err := decodeInto(data, actual, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Metadata implements Source.
func (s *BundleStore) Metadata(ctx context.Context) (Metadata, error) {
	return s.meta.load(func() (Metadata, error) {
		data, actual, err := s.readRaw(ctx, MetadataFile)
		if err != nil {
			return nil, err
		}
		var m Metadata
		if err := decodeInto(data, actual, &m); err != nil {
			return nil, err
		}
		return m, nil
	})
}

// References implements Source.
func (s *BundleStore) References(ctx context.Context) (ReferenceData, error) {
	return s.refs.load(func() (ReferenceData, error) {
		data, actual, err := s.readRaw(ctx, ReferencesFile)
		if err != nil {
			return nil, err
		}
		var rd ReferenceData
		if err := decodeInto(data, actual, &rd); err != nil {
			return nil, err
		}
		return rd, nil
	})
}

// ReadNotes implements Source.
func (s *BundleStore) ReadNotes(ctx context.Context, relpath string) (string, error) {
	data, _, err := s.readRaw(ctx, relpath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
