package render

import (
	"strings"

	"github.com/qcforge/basisset/internal/basis"
)

// renderPsi4 writes the Psi4 .gbs flavor: a leading harmonic keyword,
// then the shared Gaussian element blocks. Mixed and empty sets omit
// the keyword.
func renderPsi4(bs *basis.BasisSet, opts Options) (string, error) {
	var sb strings.Builder
	if !opts.NoHeader {
		writeHeader(&sb, bs, "!")
	}
	switch bs.HarmonicType {
	case basis.HarmonicSpherical:
		sb.WriteString("spherical\n")
	case basis.HarmonicCartesian:
		sb.WriteString("cartesian\n")
	}
	if err := writeGaussianBody(&sb, bs); err != nil {
		return "", err
	}
	return sb.String(), nil
}
