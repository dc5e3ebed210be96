package testutil

import (
	"io"
	"log/slog"

	"github.com/qcforge/basisset/internal/basis"
)

// SegmentedShell builds a one-row spherical shell.
func SegmentedShell(am int, exps []float64, coeffs []float64) basis.Shell {
	return basis.Shell{
		AngularMomentum: []int{am},
		Harmonic:        basis.HarmonicSpherical,
		FunctionType:    "gto",
		Exponents:       exps,
		Coefficients:    [][]float64{coeffs},
	}
}

// GeneralShell builds a spherical shell with one coefficient row per rows
// entry.
func GeneralShell(am int, exps []float64, rows ...[]float64) basis.Shell {
	return basis.Shell{
		AngularMomentum: []int{am},
		Harmonic:        basis.HarmonicSpherical,
		FunctionType:    "gto",
		Exponents:       exps,
		Coefficients:    rows,
	}
}

// CombinedShell builds a combined-momentum (sp, spd) spherical shell; rows
// must carry one coefficient row per angular momentum value.
func CombinedShell(ams []int, exps []float64, rows ...[]float64) basis.Shell {
	return basis.Shell{
		AngularMomentum: ams,
		Harmonic:        basis.HarmonicSpherical,
		FunctionType:    "gto",
		Exponents:       exps,
		Coefficients:    rows,
	}
}

// ElementWith wraps shells into an element.
func ElementWith(shells ...basis.Shell) basis.ElementBasis {
	return basis.ElementBasis{Shells: shells}
}

// BasisWith builds a named set around the given elements.
func BasisWith(name string, elements map[string]basis.ElementBasis) *basis.BasisSet {
	return &basis.BasisSet{
		Name:     name,
		Elements: elements,
	}
}

// SilentLogger returns a logger that discards everything. Components
// constructed directly in tests take this instead of the CLI's handler.
func SilentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
