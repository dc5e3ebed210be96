package basis

import (
	"fmt"
	"sort"
	"strconv"
)

// Role classifies what a basis set is fit for.
type Role string

// Recognized basis set roles.
const (
	// RoleOrbital marks a standard orbital basis.
	RoleOrbital Role = "orbital"

	// RoleJFit marks a Coulomb-fitting auxiliary basis.
	RoleJFit Role = "jfit"

	// RoleJKFit marks a Coulomb- and exchange-fitting auxiliary basis.
	RoleJKFit Role = "jkfit"

	// RoleRIFit marks an RI correlation-fitting auxiliary basis.
	RoleRIFit Role = "rifit"

	// RoleADMMFit marks an auxiliary-density matrix method fitting basis.
	RoleADMMFit Role = "admmfit"
)

// Roles lists every recognized role in display order.
func Roles() []Role {
	return []Role{RoleOrbital, RoleJFit, RoleJKFit, RoleRIFit, RoleADMMFit}
}

// ParseRole converts a string to a Role.
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if !r.Valid() {
		return "", fmt.Errorf("unknown role %q", s)
	}
	return r, nil
}

// Valid reports whether the role is one of the recognized values.
func (r Role) Valid() bool {
	switch r {
	case RoleOrbital, RoleJFit, RoleJKFit, RoleRIFit, RoleADMMFit:
		return true
	}
	return false
}

// String returns the wire form of the role.
func (r Role) String() string {
	return string(r)
}

// Description returns a human-readable description of the role.
func (r Role) Description() string {
	switch r {
	case RoleOrbital:
		return "Orbital basis"
	case RoleJFit:
		return "J-fitting"
	case RoleJKFit:
		return "JK-fitting"
	case RoleRIFit:
		return "RI-fitting"
	case RoleADMMFit:
		return "Auxiliary-Density Matrix Method Fitting"
	default:
		return string(r)
	}
}

// Harmonic describes the angular function convention of a shell or of a
// whole basis set.
type Harmonic string

// Harmonic values. Shells carry HarmonicSpherical or HarmonicCartesian;
// the set-level classification adds HarmonicMixed and HarmonicNone.
const (
	HarmonicSpherical Harmonic = "spherical"
	HarmonicCartesian Harmonic = "cartesian"
	HarmonicMixed     Harmonic = "mixed"
	HarmonicNone      Harmonic = "none"
)

// Shell is one electron shell: a shared list of primitive exponents and a
// matrix of contraction coefficients over those primitives.
//
// Coefficients is row-major: Coefficients[i][j] is the coefficient of
// primitive j in contraction i, so every row has len(Exponents) entries.
// A shell with one coefficient row is segmented; more rows make it general.
// AngularMomentum usually holds one value; combined shells (sp, spd) carry
// one value per coefficient row.
type Shell struct {
	// AngularMomentum lists the angular momentum values covered by this
	// shell, lowest first.
	AngularMomentum []int `json:"angular_momentum"`

	// Harmonic is the angular convention, spherical or cartesian.
	Harmonic Harmonic `json:"harmonic_type,omitempty"`

	// FunctionType names the primitive function family, e.g. "gto".
	FunctionType string `json:"function_type,omitempty"`

	// Region optionally marks what the shell was tuned for
	// (e.g. "valence", "polarization", "diffuse").
	Region string `json:"region,omitempty"`

	// Exponents are the primitive Gaussian exponents.
	Exponents []float64 `json:"exponents"`

	// Coefficients holds one row per contraction.
	Coefficients [][]float64 `json:"coefficients"`

	// Source optionally records the relative path of the record that
	// contributed this shell. It is provenance only and never part of
	// structural equality.
	Source string `json:"source,omitempty"`
}

// NPrim returns the number of primitives in the shell.
func (s Shell) NPrim() int {
	return len(s.Exponents)
}

// NRows returns the number of contraction rows in the shell.
func (s Shell) NRows() int {
	return len(s.Coefficients)
}

// MaxAM returns the largest angular momentum the shell covers.
// It returns 0 for a shell with no angular momentum values.
func (s Shell) MaxAM() int {
	max := 0
	for _, am := range s.AngularMomentum {
		if am > max {
			max = am
		}
	}
	return max
}

// IsCombined reports whether the shell covers more than one angular
// momentum (an sp or spd style shell).
func (s Shell) IsCombined() bool {
	return len(s.AngularMomentum) > 1
}

// ECPPotential is one term of an effective core potential expansion.
type ECPPotential struct {
	// ECPType names the potential family, e.g. "scalar_ecp".
	ECPType string `json:"ecp_type,omitempty"`

	// AngularMomentum lists the angular momentum values of the projector.
	AngularMomentum []int `json:"angular_momentum"`

	// RExponents are the powers of r in each term.
	RExponents []int `json:"r_exponents"`

	// GaussianExponents are the Gaussian exponents of each term.
	GaussianExponents []float64 `json:"gaussian_exponents"`

	// Coefficients holds one row per angular momentum value.
	Coefficients [][]float64 `json:"coefficients"`
}

// MaxAM returns the largest angular momentum of the potential.
func (p ECPPotential) MaxAM() int {
	max := 0
	for _, am := range p.AngularMomentum {
		if am > max {
			max = am
		}
	}
	return max
}

// ReferenceBlock annotates an element with the literature behind one of
// its data components: a description of what the citations cover and the
// citation keys themselves.
type ReferenceBlock struct {
	Description string   `json:"reference_description"`
	Keys        []string `json:"reference_keys"`
}

// ElementBasis is the per-element payload of a basis set: electron shells,
// an optional effective core potential, and reference annotations.
type ElementBasis struct {
	// Shells are the electron shells, in record order.
	Shells []Shell `json:"electron_shells,omitempty"`

	// ECPElectrons is the number of core electrons replaced by the
	// potential. It must be positive when ECPPotentials is non-empty.
	ECPElectrons int `json:"ecp_electrons,omitempty"`

	// ECPPotentials are the effective core potential terms.
	ECPPotentials []ECPPotential `json:"ecp_potentials,omitempty"`

	// References describe the literature sources for this element's data.
	References []ReferenceBlock `json:"references,omitempty"`

	// Components records the relative paths of the element records this
	// data was assembled from.
	Components []string `json:"components,omitempty"`
}

// HasECP reports whether the element carries an effective core potential.
func (e ElementBasis) HasECP() bool {
	return len(e.ECPPotentials) > 0
}

// BasisSet is a complete, self-contained basis set: identifying metadata
// plus per-element data keyed by atomic number.
type BasisSet struct {
	// Name is the canonical display name, e.g. "6-31G*".
	Name string `json:"name"`

	// Description is a one-line summary.
	Description string `json:"description,omitempty"`

	// Family groups related sets, e.g. "pople" or "dunning".
	Family string `json:"family,omitempty"`

	// Role is the primary role of the set.
	Role Role `json:"role,omitempty"`

	// Version identifies which revision of the data this is.
	Version string `json:"version,omitempty"`

	// RevisionDescription says what changed in this version.
	RevisionDescription string `json:"revision_description,omitempty"`

	// FunctionTypes lists the kinds of functions found in the set.
	FunctionTypes []string `json:"function_types,omitempty"`

	// HarmonicType is the whole-set angular convention, computed from the
	// shells at composition time. See ClassifyHarmonic.
	HarmonicType Harmonic `json:"harmonic_type,omitempty"`

	// Elements maps atomic numbers, as decimal strings, to element data.
	Elements map[string]ElementBasis `json:"elements"`
}

// ElementKeys returns the element keys of the set sorted by atomic number.
// Keys that do not parse as integers sort after numeric keys, in lexical
// order, so malformed input still renders deterministically.
func (b *BasisSet) ElementKeys() []string {
	keys := make([]string, 0, len(b.Elements))
	for k := range b.Elements {
		keys = append(keys, k)
	}
	SortElementKeys(keys)
	return keys
}

// SortElementKeys sorts element keys in place by atomic number, with
// non-numeric keys after numeric ones in lexical order.
func SortElementKeys(keys []string) {
	sort.SliceStable(keys, func(i, j int) bool {
		zi, erri := strconv.Atoi(keys[i])
		zj, errj := strconv.Atoi(keys[j])
		switch {
		case erri == nil && errj == nil:
			return zi < zj
		case erri == nil:
			return true
		case errj == nil:
			return false
		default:
			return keys[i] < keys[j]
		}
	})
}

// ClassifyHarmonic computes the angular function convention of the whole
// set by inspecting every shell: spherical or cartesian when uniform, mixed
// when both occur, and none when the set has no electron shells at all.
// It does not modify the receiver.
func (b *BasisSet) ClassifyHarmonic() Harmonic {
	seen := map[Harmonic]bool{}
	for _, el := range b.Elements {
		for _, sh := range el.Shells {
			if sh.Harmonic != "" {
				seen[sh.Harmonic] = true
			}
		}
	}
	switch {
	case len(seen) == 0:
		return HarmonicNone
	case len(seen) > 1:
		return HarmonicMixed
	case seen[HarmonicSpherical]:
		return HarmonicSpherical
	default:
		return HarmonicCartesian
	}
}
