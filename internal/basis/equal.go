package basis

import (
	"slices"

	"gonum.org/v1/gonum/floats"
)

// matrixEqual reports exact element-wise equality of two matrices.
func matrixEqual(a, b [][]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !floats.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// SameFunctions reports whether two shells describe the same functions:
// identical angular momentum, exponents, and coefficients. Annotation
// fields (harmonic, function type, region, source) are ignored.
// Exponent and coefficient comparison is exact float64 equality.
func (s Shell) SameFunctions(o Shell) bool {
	return slices.Equal(s.AngularMomentum, o.AngularMomentum) &&
		floats.Equal(s.Exponents, o.Exponents) &&
		matrixEqual(s.Coefficients, o.Coefficients)
}

// Equal reports full structural equality of two shells. Source is
// provenance and never participates.
func (s Shell) Equal(o Shell) bool {
	return s.Harmonic == o.Harmonic &&
		s.FunctionType == o.FunctionType &&
		s.Region == o.Region &&
		s.SameFunctions(o)
}

// Equal reports structural equality of two potentials.
func (p ECPPotential) Equal(o ECPPotential) bool {
	return p.ECPType == o.ECPType &&
		slices.Equal(p.AngularMomentum, o.AngularMomentum) &&
		slices.Equal(p.RExponents, o.RExponents) &&
		floats.Equal(p.GaussianExponents, o.GaussianExponents) &&
		matrixEqual(p.Coefficients, o.Coefficients)
}

// Equal reports whether two reference blocks carry the same description
// and the same keys in the same order.
func (r ReferenceBlock) Equal(o ReferenceBlock) bool {
	return r.Description == o.Description && slices.Equal(r.Keys, o.Keys)
}
