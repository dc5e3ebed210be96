package store

import (
	"context"
	"path"
	"strings"
)

// Standard index file names at the root of a record tree.
const (
	MetadataFile   = "METADATA.json"
	ReferencesFile = "REFERENCES.json"
)

// Kind classifies a record file by its role in the tree.
type Kind string

const (
	KindTable      Kind = "table"
	KindComponent  Kind = "component"
	KindMetadata   Kind = "metadata"
	KindReferences Kind = "references"
	KindNotes      Kind = "notes"
)

// Classify determines a file's record kind from its path. Files that are
// not records (READMEs, checksums) classify as "".
func Classify(relpath string) Kind {
	base := path.Base(relpath)
	switch {
	case base == MetadataFile || trimEncodingExt(base) == "METADATA":
		return KindMetadata
	case base == ReferencesFile || trimEncodingExt(base) == "REFERENCES":
		return KindReferences
	case strings.HasSuffix(base, ".notes") || strings.HasSuffix(base, ".family_notes"):
		return KindNotes
	case strings.HasSuffix(trimEncodingExt(base), ".table"):
		return KindTable
	case isRecordExt(path.Ext(base)):
		return KindComponent
	default:
		return ""
	}
}

// isRecordExt reports whether ext is one of the record encodings.
func isRecordExt(ext string) bool {
	switch ext {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// trimEncodingExt strips a trailing record encoding extension, if any.
func trimEncodingExt(p string) string {
	ext := path.Ext(p)
	if isRecordExt(ext) {
		return strings.TrimSuffix(p, ext)
	}
	return p
}

// Source is a read-only provider of basis set records. Implementations
// must be safe for concurrent use.
//
// Record paths are slash-separated and relative to the tree root. A path
// that names no record yields a not-found model error.
type Source interface {
	// ReadTable loads and decodes a table record.
	ReadTable(ctx context.Context, relpath string) (*Table, error)

	// ReadComponent loads and decodes a component record.
	ReadComponent(ctx context.Context, relpath string) (*Component, error)

	// Metadata returns the decoded name index. The result is memoized;
	// callers must not modify it.
	Metadata(ctx context.Context) (Metadata, error)

	// References returns the decoded bibliography. The result is
	// memoized; callers must not modify it.
	References(ctx context.Context) (ReferenceData, error)

	// ReadNotes returns the text of a notes file.
	ReadNotes(ctx context.Context, relpath string) (string, error)
}
