package catalog

import (
	"context"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
)

// BasisNotes returns the curator notes for a basis set. The notes file
// sits next to the latest version's table record, named after the set
// with a .notes extension. Missing notes yield a placeholder message,
// not an error.
func (c *Catalog) BasisNotes(ctx context.Context, name string) (string, error) {
	entry, err := c.Lookup(ctx, name)
	if err != nil {
		return "", err
	}
	_, vi, err := entry.Version("")
	if err != nil {
		return "", err
	}

	notes, err := c.src.ReadNotes(ctx, notesPath(vi.TablePath))
	switch {
	case basis.IsNotFound(err):
		return fmt.Sprintf("Notes are not available for the %s basis", entry.DisplayName), nil
	case err != nil:
		return "", err
	}
	return notes, nil
}

// FamilyNotes returns the curator notes for a whole family, stored as
// <family>/<family>.family_notes. Missing notes yield a placeholder
// message; an unknown family is an error.
func (c *Catalog) FamilyNotes(ctx context.Context, family string) (string, error) {
	family = strings.ToLower(family)
	families, err := c.Families(ctx)
	if err != nil {
		return "", err
	}
	if !slices.Contains(families, family) {
		return "", basis.NewNotFound("family %q is not a known family", family)
	}

	notes, err := c.src.ReadNotes(ctx, path.Join(family, family+".family_notes"))
	switch {
	case basis.IsNotFound(err):
		return fmt.Sprintf("Notes are not available for the %s family", family), nil
	case err != nil:
		return "", err
	}
	return notes, nil
}

// notesPath derives the notes path from a table record path by
// stripping the encoding, the .table marker, and the version:
// "sto/sto-3g.1.table.json" -> "sto/sto-3g.notes".
func notesPath(tablePath string) string {
	p := tablePath
	for i := 0; i < 3; i++ {
		p = strings.TrimSuffix(p, path.Ext(p))
	}
	return p + ".notes"
}
