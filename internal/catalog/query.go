package catalog

import (
	"context"
	"slices"
	"sort"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/store"
)

// AllNames returns every internal basis set name, sorted.
func (c *Catalog) AllNames(ctx context.Context) ([]string, error) {
	md, err := c.src.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	return md.Names(), nil
}

// Families returns every basis set family, sorted.
func (c *Catalog) Families(ctx context.Context) ([]string, error) {
	md, err := c.src.Metadata(ctx)
	if err != nil {
		return nil, err
	}
	seen := map[string]bool{}
	var families []string
	for _, entry := range md {
		if !seen[entry.Family] {
			seen[entry.Family] = true
			families = append(families, entry.Family)
		}
	}
	sort.Strings(families)
	return families, nil
}

// Filter returns the metadata entries matching every given criterion.
// Empty criteria match everything. Family and role must name known
// values; the substring matches case-insensitively against internal
// and display names.
func (c *Catalog) Filter(ctx context.Context, substr, family, role string) (store.Metadata, error) {
	md, err := c.src.Metadata(ctx)
	if err != nil {
		return nil, err
	}

	if family != "" {
		family = strings.ToLower(family)
		families, err := c.Families(ctx)
		if err != nil {
			return nil, err
		}
		if !slices.Contains(families, family) {
			return nil, basis.NewNotFound("family %q is not a known family", family)
		}
	}
	if role != "" {
		parsed, err := basis.ParseRole(strings.ToLower(role))
		if err != nil {
			return nil, basis.NewStructuralViolation("%v", err)
		}
		role = parsed.String()
	}
	substr = NormalizeName(substr)

	out := store.Metadata{}
	for name, entry := range md {
		if family != "" && entry.Family != family {
			continue
		}
		if role != "" && entry.Role != role {
			continue
		}
		if substr != "" &&
			!strings.Contains(name, substr) &&
			!strings.Contains(NormalizeName(entry.DisplayName), substr) {
			continue
		}
		out[name] = entry
	}
	return out, nil
}

// LookupAuxiliary resolves the auxiliary basis set registered for a
// primary basis set under the given fitting role.
func (c *Catalog) LookupAuxiliary(ctx context.Context, primary, role string) (string, error) {
	parsed, err := basis.ParseRole(strings.ToLower(role))
	if err != nil {
		return "", basis.NewStructuralViolation("%v", err)
	}

	entry, err := c.Lookup(ctx, primary)
	if err != nil {
		return "", err
	}
	aux, ok := entry.Auxiliaries[parsed.String()]
	if !ok {
		return "", basis.NewNotFound("no %s auxiliary registered for %q", parsed, primary)
	}
	return aux, nil
}
