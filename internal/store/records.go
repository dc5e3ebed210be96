package store

import (
	"path"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
)

// Table is a decoded table record: one version of one basis set. The
// version itself is carried in the filename ("<base>.<version>.table.json"),
// not in the record body.
type Table struct {
	// DisplayName is the canonical presentation name, e.g. "6-31G*".
	DisplayName string `json:"display_name"`

	// Description is a one-line summary of the set.
	Description string `json:"description"`

	// Family groups related sets.
	Family string `json:"family"`

	// Role is the wire form of the set's primary role.
	Role string `json:"role"`

	// RevisionDescription says what changed in this version.
	RevisionDescription string `json:"revision_description"`

	// FunctionTypes lists the function kinds found in the set.
	FunctionTypes []string `json:"function_types"`

	// Elements maps atomic number keys to the ordered list of component
	// record paths that define the element. Order is significant and is
	// preserved through assembly.
	Elements map[string][]string `json:"elements"`
}

// TableVersion extracts the version from a table record path:
// "pople/6-31g.1.table.json" -> "1".
func TableVersion(relpath string) (string, error) {
	base := trimEncodingExt(path.Base(relpath))
	base, ok := strings.CutSuffix(base, ".table")
	if !ok {
		return "", basis.NewStructuralViolation("not a table record path").AtPath(relpath)
	}
	i := strings.LastIndexByte(base, '.')
	if i < 0 || i == len(base)-1 {
		return "", basis.NewStructuralViolation("table path carries no version").AtPath(relpath)
	}
	return base[i+1:], nil
}

// Component is a decoded component record: the reusable unit of element
// data that table records assemble from.
type Component struct {
	// Description summarizes what this component provides; it becomes
	// the reference-block description on every element it contributes to.
	Description string `json:"description"`

	// DataSource optionally names where the numbers came from.
	DataSource string `json:"data_source,omitempty"`

	// Elements maps atomic number keys to element data.
	Elements map[string]ComponentElement `json:"elements"`
}

// ComponentElement is one element's payload within a component record.
type ComponentElement struct {
	// Shells are the electron shells in record order.
	Shells []RecordShell `json:"electron_shells,omitempty"`

	// References lists the citation keys for this element's data.
	References []string `json:"references,omitempty"`

	// ECPElectrons is the number of core electrons replaced by the
	// potentials below.
	ECPElectrons int `json:"ecp_electrons,omitempty"`

	// ECPPotentials are the effective core potential terms.
	ECPPotentials []RecordPotential `json:"ecp_potentials,omitempty"`
}

// RecordShell is the record form of a shell; numeric fields tolerate
// quoted decimal text.
type RecordShell struct {
	AngularMomentum []int      `json:"angular_momentum"`
	Harmonic        string     `json:"harmonic_type,omitempty"`
	FunctionType    string     `json:"function_type,omitempty"`
	Region          string     `json:"region,omitempty"`
	Exponents       []number   `json:"exponents"`
	Coefficients    [][]number `json:"coefficients"`
}

// ToModel converts the record shell to the data model.
func (rs RecordShell) ToModel() basis.Shell {
	return basis.Shell{
		AngularMomentum: rs.AngularMomentum,
		Harmonic:        basis.Harmonic(rs.Harmonic),
		FunctionType:    rs.FunctionType,
		Region:          rs.Region,
		Exponents:       floatSlice(rs.Exponents),
		Coefficients:    floatMatrix(rs.Coefficients),
	}
}

// RecordPotential is the record form of an ECP term.
type RecordPotential struct {
	ECPType           string     `json:"ecp_type,omitempty"`
	AngularMomentum   []int      `json:"angular_momentum"`
	RExponents        []int      `json:"r_exponents"`
	GaussianExponents []number   `json:"gaussian_exponents"`
	Coefficients      [][]number `json:"coefficients"`
}

// ToModel converts the record potential to the data model.
func (rp RecordPotential) ToModel() basis.ECPPotential {
	return basis.ECPPotential{
		ECPType:           rp.ECPType,
		AngularMomentum:   rp.AngularMomentum,
		RExponents:        rp.RExponents,
		GaussianExponents: floatSlice(rp.GaussianExponents),
		Coefficients:      floatMatrix(rp.Coefficients),
	}
}
