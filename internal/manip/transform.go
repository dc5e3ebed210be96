package manip

import (
	"fmt"

	"github.com/qcforge/basisset/internal/basis"
)

// Transform identifies one contraction transform.
type Transform int

const (
	// UncontractGeneral splits each generally-contracted single-AM shell
	// into one shell per coefficient row, dropping zero-coefficient
	// primitives from each row.
	UncontractGeneral Transform = iota

	// UncontractSPDF splits combined sp/spd/... shells into one shell
	// per angular momentum component.
	UncontractSPDF

	// UncontractSegmented atomizes every shell into single-primitive
	// shells with coefficient 1.0, discarding contraction information.
	UncontractSegmented

	// MakeGeneral merges same-AM shells of an element into one general
	// contraction over the union of their exponents.
	MakeGeneral

	// OptimizeGeneral extracts rows that reference a single primitive
	// out of general contractions and compacts what remains.
	OptimizeGeneral
)

var transformNames = map[Transform]string{
	UncontractGeneral:   "uncontract_general",
	UncontractSPDF:      "uncontract_spdf",
	UncontractSegmented: "uncontract_segmented",
	MakeGeneral:         "make_general",
	OptimizeGeneral:     "optimize_general",
}

var transformDescriptions = map[Transform]string{
	UncontractGeneral:   "Remove general contractions, one shell per coefficient row",
	UncontractSPDF:      "Split combined sp/spd shells into one shell per angular momentum",
	UncontractSegmented: "Atomize to single-primitive shells with unit coefficients",
	MakeGeneral:         "Merge same-AM shells into one general contraction",
	OptimizeGeneral:     "Split out primitives that sit alone in a general contraction",
}

// Transforms returns all transforms in their conventional application
// order.
func Transforms() []Transform {
	return []Transform{
		OptimizeGeneral,
		UncontractGeneral,
		UncontractSPDF,
		UncontractSegmented,
		MakeGeneral,
	}
}

// ParseTransform converts a transform name such as "uncontract_general"
// to its Transform value.
func ParseTransform(s string) (Transform, error) {
	for t, name := range transformNames {
		if s == name {
			return t, nil
		}
	}
	return 0, basis.NewUnsupportedTransform("unknown transform %q", s)
}

// String returns the canonical transform name.
func (t Transform) String() string {
	if name, ok := transformNames[t]; ok {
		return name
	}
	return fmt.Sprintf("transform(%d)", int(t))
}

// Description returns a one-line summary of the transform.
func (t Transform) Description() string {
	return transformDescriptions[t]
}

// Valid reports whether t is a known transform.
func (t Transform) Valid() bool {
	_, ok := transformNames[t]
	return ok
}

// Apply runs one transform over bs and returns the result. The input is
// never modified. The output's harmonic classification is recomputed and
// its structural invariants are re-checked, so outputs are safe to chain
// into further transforms.
func Apply(bs *basis.BasisSet, t Transform) (*basis.BasisSet, error) {
	var out *basis.BasisSet
	switch t {
	case UncontractGeneral:
		out = uncontractGeneral(bs)
	case UncontractSPDF:
		out = UncontractSPDFAbove(bs, 0)
	case UncontractSegmented:
		out = uncontractSegmented(bs)
	case MakeGeneral:
		out = makeGeneral(bs)
	case OptimizeGeneral:
		out = optimizeGeneral(bs)
	default:
		return nil, basis.NewUnsupportedTransform("unknown transform %d", int(t))
	}

	out.HarmonicType = out.ClassifyHarmonic()
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("applying %s: %w", t, err)
	}
	return out, nil
}
