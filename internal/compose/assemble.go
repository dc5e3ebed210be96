package compose

import (
	"context"
	"fmt"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/store"
)

// assemble builds a basis set from one table record. Uncached.
func (c *Composer) assemble(ctx context.Context, tablePath string) (*basis.BasisSet, error) {
	tbl, err := c.src.ReadTable(ctx, tablePath)
	if err != nil {
		return nil, err
	}

	version, err := store.TableVersion(tablePath)
	if err != nil {
		return nil, err
	}

	var role basis.Role
	if tbl.Role != "" {
		role, err = basis.ParseRole(tbl.Role)
		if err != nil {
			return nil, basis.NewStructuralViolation("%v", err).AtPath(tablePath)
		}
	}

	bs := &basis.BasisSet{
		Name:                tbl.DisplayName,
		Description:         tbl.Description,
		Family:              tbl.Family,
		Role:                role,
		Version:             version,
		RevisionDescription: tbl.RevisionDescription,
		FunctionTypes:       tbl.FunctionTypes,
		Elements:            make(map[string]basis.ElementBasis, len(tbl.Elements)),
	}

	// Component files usually serve many elements; read each once.
	components := map[string]*store.Component{}
	readComponent := func(relpath string) (*store.Component, error) {
		if comp, ok := components[relpath]; ok {
			return comp, nil
		}
		comp, err := c.src.ReadComponent(ctx, relpath)
		if err != nil {
			return nil, err
		}
		components[relpath] = comp
		return comp, nil
	}

	for key, paths := range tbl.Elements {
		el := basis.ElementBasis{}
		for _, relpath := range paths {
			comp, err := readComponent(relpath)
			if err != nil {
				return nil, err
			}
			if err := mergeComponent(&el, comp, relpath, key); err != nil {
				return nil, err
			}
		}
		bs.Elements[key] = el
	}

	bs.HarmonicType = bs.ClassifyHarmonic()

	if err := bs.Validate(); err != nil {
		return nil, fmt.Errorf("composing %s: %w", tablePath, err)
	}

	c.logger.Debug("composed basis set",
		"table", tablePath,
		"name", bs.Name,
		"version", bs.Version,
		"elements", len(bs.Elements))

	return bs, nil
}

// mergeComponent appends one component's contribution for element key to
// el, in record order.
func mergeComponent(el *basis.ElementBasis, comp *store.Component, relpath, key string) error {
	ce, ok := comp.Elements[key]
	if !ok {
		return basis.NewStructuralViolation("component does not define element").
			AtPath(relpath).InElement(key)
	}

	for _, rs := range ce.Shells {
		sh := rs.ToModel()
		sh.Source = relpath
		el.Shells = append(el.Shells, sh)
	}

	if len(ce.ECPPotentials) > 0 {
		if el.HasECP() {
			return basis.NewStructuralViolation("element already has an ECP; potentials cannot be overwritten").
				AtPath(relpath).InElement(key)
		}
		el.ECPElectrons = ce.ECPElectrons
		for _, rp := range ce.ECPPotentials {
			el.ECPPotentials = append(el.ECPPotentials, rp.ToModel())
		}
	} else if ce.ECPElectrons != 0 {
		return basis.NewStructuralViolation("component sets ecp_electrons without potentials").
			AtPath(relpath).InElement(key)
	}

	if len(ce.References) > 0 {
		block := basis.ReferenceBlock{
			Description: comp.Description,
			Keys:        append([]string(nil), ce.References...),
		}
		el.References = appendReferenceBlock(el.References, block)
	}

	el.Components = append(el.Components, relpath)
	return nil
}

// appendReferenceBlock adds block unless an equal block is already
// present.
func appendReferenceBlock(blocks []basis.ReferenceBlock, block basis.ReferenceBlock) []basis.ReferenceBlock {
	for _, b := range blocks {
		if b.Equal(block) {
			return blocks
		}
	}
	return append(blocks, block)
}
