package store

import (
	"context"
	"errors"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/qcforge/basisset/internal/basis"
)

// memo caches the result of a one-time load. Safe for concurrent use.
type memo[T any] struct {
	once sync.Once
	v    T
	err  error
}

func (m *memo[T]) load(fn func() (T, error)) (T, error) {
	m.once.Do(func() { m.v, m.err = fn() })
	return m.v, m.err
}

// FSStore reads records from an io/fs.FS rooted at a record tree. It is
// the standard source for development trees and embedded fixtures.
//
// Reads are stateless except for the memoized Metadata and References
// indexes, so an FSStore is safe for concurrent use.
type FSStore struct {
	fsys fs.FS
	meta memo[Metadata]
	refs memo[ReferenceData]
}

// NewFS creates a store over fsys. fsys must outlive the store.
func NewFS(fsys fs.FS) *FSStore {
	return &FSStore{fsys: fsys}
}

// FS exposes the underlying filesystem for walking (packing, schema
// validation). Reads through the store remain the canonical decode path.
func (s *FSStore) FS() fs.FS {
	return s.fsys
}

// readRaw loads a record's bytes, trying encoding twins (.json/.yaml/.yml)
// when the named file does not exist. It returns the bytes and the path
// actually read.
func (s *FSStore) readRaw(relpath string) ([]byte, string, error) {
	for _, p := range encodingCandidates(relpath) {
		data, err := fs.ReadFile(s.fsys, p)
		if err == nil {
			return data, p, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, "", err
		}
	}
	return nil, "", basis.NewNotFound("record not found").AtPath(relpath)
}

// encodingCandidates lists the paths to try for a record reference: the
// path itself, then its encoding twins.
func encodingCandidates(relpath string) []string {
	ext := path.Ext(relpath)
	if !isRecordExt(ext) {
		return []string{relpath}
	}
	stem := strings.TrimSuffix(relpath, ext)
	out := []string{relpath}
	for _, e := range []string{".json", ".yaml", ".yml"} {
		if e != ext {
			out = append(out, stem+e)
		}
	}
	return out
}

// decodeInto decodes record bytes read from actual, mapping decode
// failures to structural violations naming the record.
func decodeInto(data []byte, actual string, v any) error {
	if err := decodeRecord(actual, data, v); err != nil {
		return basis.NewStructuralViolation("%v", err).AtPath(actual)
	}
	return nil
}

// ReadTable implements Source.
func (s *FSStore) ReadTable(ctx context.Context, relpath string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, actual, err := s.readRaw(relpath)
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
func (s *FSStore) ReadComponent(ctx context.Context, relpath string) (*Component, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, actual, err := s.readRaw(relpath)
	if err != nil {
		return nil, err
	}
	var c Component
	if err := decodeInto(data, actual, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Metadata implements Source. The index is read once and shared; callers
// must not modify the result.
func (s *FSStore) Metadata(ctx context.Context) (Metadata, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.meta.load(func() (Metadata, error) {
		data, actual, err := s.readRaw(MetadataFile)
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

// References implements Source. The bibliography is read once and shared;
// callers must not modify the result.
func (s *FSStore) References(ctx context.Context) (ReferenceData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.refs.load(func() (ReferenceData, error) {
		data, actual, err := s.readRaw(ReferencesFile)
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
func (s *FSStore) ReadNotes(ctx context.Context, relpath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	data, err := fs.ReadFile(s.fsys, relpath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", basis.NewNotFound("notes not found").AtPath(relpath)
		}
		return "", err
	}
	return string(data), nil
}
