package compose

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/store"
)

// Composer assembles basis sets from a record source, memoizing results
// by table path. Safe for concurrent use.
//
// Cached values are shared between callers and must be treated as
// immutable; use Subset (or Clone) before modifying anything.
type Composer struct {
	src    store.Source
	logger *slog.Logger

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

// cacheEntry holds one memoized composition. The once guarantees at most
// one computation per table path no matter how many callers race.
type cacheEntry struct {
	once sync.Once
	bs   *basis.BasisSet
	err  error
}

// New creates a Composer over src. A nil logger falls back to the
// process default.
func New(src store.Source, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{
		src:     src,
		logger:  logger,
		entries: make(map[string]*cacheEntry),
	}
}

// Compose returns the basis set assembled from the table record at
// tablePath. Results are memoized: repeated calls return the same shared
// value, and concurrent first calls compute it exactly once.
func (c *Composer) Compose(ctx context.Context, tablePath string) (*basis.BasisSet, error) {
	c.mu.Lock()
	e, ok := c.entries[tablePath]
	if !ok {
		e = &cacheEntry{}
		c.entries[tablePath] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.bs, e.err = c.assemble(ctx, tablePath)
	})

	// A cancellation is the caller's condition, not the table's; drop the
	// entry so a later caller can compute the real result.
	if e.err != nil && (errors.Is(e.err, context.Canceled) || errors.Is(e.err, context.DeadlineExceeded)) {
		c.mu.Lock()
		if c.entries[tablePath] == e {
			delete(c.entries, tablePath)
		}
		c.mu.Unlock()
	}

	return e.bs, e.err
}

// Reset drops every memoized composition.
func (c *Composer) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*cacheEntry)
}
