package basis

import "slices"

// cloneMatrix deep-copies a coefficient matrix.
func cloneMatrix(m [][]float64) [][]float64 {
	if m == nil {
		return nil
	}
	out := make([][]float64, len(m))
	for i, row := range m {
		out[i] = slices.Clone(row)
	}
	return out
}

// Clone returns a deep copy of the shell.
func (s Shell) Clone() Shell {
	c := s
	c.AngularMomentum = slices.Clone(s.AngularMomentum)
	c.Exponents = slices.Clone(s.Exponents)
	c.Coefficients = cloneMatrix(s.Coefficients)
	return c
}

// Clone returns a deep copy of the potential.
func (p ECPPotential) Clone() ECPPotential {
	c := p
	c.AngularMomentum = slices.Clone(p.AngularMomentum)
	c.RExponents = slices.Clone(p.RExponents)
	c.GaussianExponents = slices.Clone(p.GaussianExponents)
	c.Coefficients = cloneMatrix(p.Coefficients)
	return c
}

// Clone returns a deep copy of the reference block.
func (r ReferenceBlock) Clone() ReferenceBlock {
	return ReferenceBlock{
		Description: r.Description,
		Keys:        slices.Clone(r.Keys),
	}
}

// Clone returns a deep copy of the element data.
func (e ElementBasis) Clone() ElementBasis {
	c := e
	if e.Shells != nil {
		c.Shells = make([]Shell, len(e.Shells))
		for i, sh := range e.Shells {
			c.Shells[i] = sh.Clone()
		}
	}
	if e.ECPPotentials != nil {
		c.ECPPotentials = make([]ECPPotential, len(e.ECPPotentials))
		for i, p := range e.ECPPotentials {
			c.ECPPotentials[i] = p.Clone()
		}
	}
	if e.References != nil {
		c.References = make([]ReferenceBlock, len(e.References))
		for i, r := range e.References {
			c.References[i] = r.Clone()
		}
	}
	c.Components = slices.Clone(e.Components)
	return c
}

// Clone returns a deep copy of the basis set. Callers that hand a set to
// more than one consumer clone it first; every shared value is immutable
// by convention.
func (b *BasisSet) Clone() *BasisSet {
	if b == nil {
		return nil
	}
	c := *b
	c.FunctionTypes = slices.Clone(b.FunctionTypes)
	c.Elements = make(map[string]ElementBasis, len(b.Elements))
	for k, el := range b.Elements {
		c.Elements[k] = el.Clone()
	}
	return &c
}
