package basis

import "strconv"

// Validate checks the shell's structural invariants: at least one
// non-negative angular momentum value, at least one strictly positive
// exponent, at least one coefficient row, every row as long as the
// exponent list, and one row per angular momentum value for combined
// shells.
func (s Shell) Validate() error {
	if len(s.AngularMomentum) == 0 {
		return NewStructuralViolation("shell has no angular momentum")
	}
	for _, am := range s.AngularMomentum {
		if am < 0 {
			return NewStructuralViolation("negative angular momentum %d", am)
		}
	}
	if len(s.Exponents) == 0 {
		return NewStructuralViolation("shell has no exponents")
	}
	for i, e := range s.Exponents {
		if !(e > 0) {
			return NewStructuralViolation("exponent %d is %v, must be > 0", i, e)
		}
	}
	if len(s.Coefficients) == 0 {
		return NewStructuralViolation("shell has no coefficient rows")
	}
	for i, row := range s.Coefficients {
		if len(row) != len(s.Exponents) {
			return NewStructuralViolation("coefficient row %d has %d entries, want %d",
				i, len(row), len(s.Exponents))
		}
	}
	if s.IsCombined() && len(s.Coefficients) != len(s.AngularMomentum) {
		return NewStructuralViolation("combined shell covers %d angular momenta but has %d coefficient rows",
			len(s.AngularMomentum), len(s.Coefficients))
	}
	switch s.Harmonic {
	case "", HarmonicSpherical, HarmonicCartesian:
	default:
		return NewStructuralViolation("invalid shell harmonic %q", s.Harmonic)
	}
	return nil
}

// Validate checks the potential's structural invariants.
func (p ECPPotential) Validate() error {
	if len(p.AngularMomentum) == 0 {
		return NewStructuralViolation("potential has no angular momentum")
	}
	for _, am := range p.AngularMomentum {
		if am < 0 {
			return NewStructuralViolation("negative angular momentum %d", am)
		}
	}
	if len(p.GaussianExponents) == 0 {
		return NewStructuralViolation("potential has no exponents")
	}
	if len(p.RExponents) != len(p.GaussianExponents) {
		return NewStructuralViolation("potential has %d r exponents but %d gaussian exponents",
			len(p.RExponents), len(p.GaussianExponents))
	}
	if len(p.Coefficients) == 0 {
		return NewStructuralViolation("potential has no coefficient rows")
	}
	for i, row := range p.Coefficients {
		if len(row) != len(p.GaussianExponents) {
			return NewStructuralViolation("potential coefficient row %d has %d entries, want %d",
				i, len(row), len(p.GaussianExponents))
		}
	}
	return nil
}

// Validate checks the element's structural invariants. An element must
// carry at least one shell or potential, and a potential block must state
// how many core electrons it replaces.
func (e ElementBasis) Validate() error {
	if len(e.Shells) == 0 && len(e.ECPPotentials) == 0 {
		return NewStructuralViolation("element has no shells and no potentials")
	}
	for i, sh := range e.Shells {
		if err := sh.Validate(); err != nil {
			return NewStructuralViolation("shell %d: %s", i, structuralMessage(err))
		}
	}
	for i, p := range e.ECPPotentials {
		if err := p.Validate(); err != nil {
			return NewStructuralViolation("potential %d: %s", i, structuralMessage(err))
		}
	}
	if len(e.ECPPotentials) > 0 && e.ECPElectrons <= 0 {
		return NewStructuralViolation("element has potentials but ecp_electrons is %d", e.ECPElectrons)
	}
	if len(e.ECPPotentials) == 0 && e.ECPElectrons != 0 {
		return NewStructuralViolation("element has ecp_electrons %d but no potentials", e.ECPElectrons)
	}
	return nil
}

// Validate checks the whole set: metadata enums, element keys, and every
// element's data. Elements are checked in key order so the first error is
// deterministic.
func (b *BasisSet) Validate() error {
	if b.Name == "" {
		return NewStructuralViolation("basis set has no name")
	}
	if b.Role != "" && !b.Role.Valid() {
		return NewStructuralViolation("invalid role %q", b.Role).InBasis(b.Name)
	}
	switch b.HarmonicType {
	case "", HarmonicSpherical, HarmonicCartesian, HarmonicMixed, HarmonicNone:
	default:
		return NewStructuralViolation("invalid harmonic %q", b.HarmonicType).InBasis(b.Name)
	}
	if len(b.Elements) == 0 {
		return NewStructuralViolation("basis set defines no elements").InBasis(b.Name)
	}
	for _, k := range b.ElementKeys() {
		z, err := strconv.Atoi(k)
		if err != nil || z < 1 {
			return NewStructuralViolation("element key %q is not an atomic number", k).InBasis(b.Name)
		}
		if err := b.Elements[k].Validate(); err != nil {
			return NewStructuralViolation("%s", structuralMessage(err)).InBasis(b.Name).InElement(k)
		}
	}
	return nil
}

// structuralMessage unwraps the message of a model error so nesting does
// not repeat the code prefix.
func structuralMessage(err error) string {
	if be, ok := err.(*Error); ok {
		return be.Message
	}
	return err.Error()
}
