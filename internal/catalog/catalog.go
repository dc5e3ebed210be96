package catalog

import (
	"context"
	"log/slog"
	"strings"

	"golang.org/x/text/cases"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/compose"
	"github.com/qcforge/basisset/internal/store"
)

// Catalog exposes a record tree by basis set name. It owns a caching
// composer, so repeated reads of the same table are cheap. A Catalog is
// safe for concurrent use.
type Catalog struct {
	src      store.Source
	composer *compose.Composer
	logger   *slog.Logger
}

// New builds a Catalog over a record source.
func New(src store.Source, logger *slog.Logger) *Catalog {
	return &Catalog{
		src:      src,
		composer: compose.New(src, logger),
		logger:   logger,
	}
}

// NormalizeName converts a display name to the internal index form:
// trimmed and Unicode case-folded, so lookups are case-insensitive.
// A fresh Caser per call; they are stateful and not concurrency-safe.
func NormalizeName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// Lookup resolves a basis set name to its metadata entry.
func (c *Catalog) Lookup(ctx context.Context, name string) (*store.MetadataEntry, error) {
	md, err := c.src.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	entry, ok := md[NormalizeName(name)]
	if !ok {
		return nil, basis.NewNotFound("basis set %q does not exist", name)
	}
	return entry, nil
}
