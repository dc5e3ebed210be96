package render

import (
	"strings"

	"github.com/qcforge/basisset/internal/basis"
)

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	// FormatNWChem is the NWChem basis and ECP input format.
	FormatNWChem Format = "nwchem"

	// FormatGaussian94 is the Gaussian 94 general basis input format.
	FormatGaussian94 Format = "gaussian94"

	// FormatPsi4 is the Psi4 .gbs flavor of the Gaussian 94 format.
	FormatPsi4 Format = "psi4"

	// FormatJSON is the canonical JSON form of the data model.
	FormatJSON Format = "json"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatGaussian94, FormatJSON, FormatNWChem, FormatPsi4}
}

// ParseFormat converts a string to a Format. Matching is
// case-insensitive.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(s))
	for _, known := range Formats() {
		if f == known {
			return f, nil
		}
	}
	return "", basis.NewNotFound("unknown output format %q", s)
}

// String returns the wire form of the format.
func (f Format) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f Format) Description() string {
	switch f {
	case FormatNWChem:
		return "NWChem input"
	case FormatGaussian94:
		return "Gaussian 94 input"
	case FormatPsi4:
		return "Psi4 gbs"
	case FormatJSON:
		return "Canonical JSON"
	default:
		return string(f)
	}
}

// Options adjusts rendering. The zero value renders the full output.
type Options struct {
	// NoHeader drops the identification header from text formats. The
	// JSON format never carries a header, so it ignores this.
	NoHeader bool
}

// Render writes the basis set in the requested format. The input is
// not modified: rendering works on a copy with shells in standard
// presentation order.
func Render(bs *basis.BasisSet, f Format, opts Options) (string, error) {
	sorted := basis.SortBasis(bs)
	switch f {
	case FormatNWChem:
		return renderNWChem(sorted, opts)
	case FormatGaussian94:
		return renderGaussian(sorted, opts)
	case FormatPsi4:
		return renderPsi4(sorted, opts)
	case FormatJSON:
		return renderJSON(sorted)
	default:
		return "", basis.NewNotFound("unknown output format %q", f)
	}
}
