package catalog

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/compose"
	"github.com/qcforge/basisset/internal/element"
	"github.com/qcforge/basisset/internal/manip"
	"github.com/qcforge/basisset/internal/refs"
)

// GetOptions adjusts GetBasis.
type GetOptions struct {
	// Elements selects an element subset in range notation, for
	// example "H-Ne,18". Empty keeps every element of the set.
	Elements string

	// Version selects a data version. Empty or "latest" resolves to
	// the entry's latest version.
	Version string

	// Transforms lists the contraction transforms to apply. They run
	// in the fixed pipeline order regardless of their order here.
	Transforms []manip.Transform
}

// GetBasis composes a basis set by name, then applies the requested
// element subset and transforms. The result is the caller's to modify;
// it never aliases the composer cache.
func (c *Catalog) GetBasis(ctx context.Context, name string, opts GetOptions) (*basis.BasisSet, error) {
	entry, err := c.Lookup(ctx, name)
	if err != nil {
		return nil, err
	}
	version, vi, err := entry.Version(opts.Version)
	if err != nil {
		return nil, err
	}

	bs, err := c.composer.Compose(ctx, vi.TablePath)
	if err != nil {
		return nil, err
	}

	keys, err := element.ExpandKeys(opts.Elements)
	if err != nil {
		return nil, err
	}
	bs, err = compose.Subset(bs, keys)
	if err != nil {
		return nil, err
	}

	for _, tr := range manip.Transforms() {
		if !slices.Contains(opts.Transforms, tr) {
			continue
		}
		bs, err = manip.Apply(bs, tr)
		if err != nil {
			return nil, err
		}
	}

	c.logger.Debug("served basis set",
		"name", name,
		"version", version,
		"elements", len(bs.Elements),
		"transforms", len(opts.Transforms))

	return bs, nil
}

// GetReferences composes a basis set by name and compacts its
// references against the bibliography. Transforms in opts are ignored;
// they never change reference annotations.
func (c *Catalog) GetReferences(ctx context.Context, name string, opts GetOptions) ([]refs.ElementRefs, error) {
	opts.Transforms = nil
	bs, err := c.GetBasis(ctx, name, opts)
	if err != nil {
		return nil, err
	}
	refData, err := c.src.References(ctx)
	if err != nil {
		return nil, err
	}
	return refs.Compact(bs, refData)
}

// ContractionSummary renders one line per element with its contraction
// pattern, elements in atomic number order.
func (c *Catalog) ContractionSummary(ctx context.Context, name string, opts GetOptions) (string, error) {
	bs, err := c.GetBasis(ctx, name, opts)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	for _, key := range bs.ElementKeys() {
		sym := key
		if z, err := element.FromString(key); err == nil {
			sym, _ = element.Symbol(z)
		}
		cs := basis.ContractionString(bs.Elements[key])
		if cs == "" {
			cs = "(no electron shells)"
		}
		fmt.Fprintf(&sb, "%-3s %s\n", sym, cs)
	}
	return sb.String(), nil
}
