package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/element"
)

// formatE renders a value in fixed scientific notation with ten
// fraction digits, e.g. 3.425250914 -> "3.4252509140E+00".
func formatE(v float64) string {
	return fmt.Sprintf("%.10E", v)
}

// formatD is formatE with the exponent marker in the Fortran D form
// Gaussian-style inputs expect, e.g. "3.4252509140D+00".
func formatD(v float64) string {
	return strings.Replace(formatE(v), "E", "D", 1)
}

// columns joins pre-formatted numbers right-aligned in 20-character
// fields.
func columns(vals []string) string {
	var sb strings.Builder
	for _, v := range vals {
		fmt.Fprintf(&sb, "%20s", v)
	}
	return sb.String()
}

// symbolFor resolves an element map key to its capitalized symbol.
func symbolFor(key string) (string, error) {
	z, err := strconv.Atoi(key)
	if err != nil {
		return "", basis.NewStructuralViolation("element key %q is not an atomic number", key)
	}
	return element.Symbol(z)
}

// writeHeader emits the identification header with the format's
// comment leader.
func writeHeader(sb *strings.Builder, bs *basis.BasisSet, leader string) {
	rule := leader + strings.Repeat("-", 70) + "\n"
	sb.WriteString(rule)
	fmt.Fprintf(sb, "%s Basis set: %s\n", leader, bs.Name)
	if bs.Description != "" {
		fmt.Fprintf(sb, "%s Description: %s\n", leader, bs.Description)
	}
	if bs.Role != "" {
		fmt.Fprintf(sb, "%s Role: %s\n", leader, bs.Role)
	}
	if bs.Version != "" {
		if bs.RevisionDescription != "" {
			fmt.Fprintf(sb, "%s Version: %s (%s)\n", leader, bs.Version, bs.RevisionDescription)
		} else {
			fmt.Fprintf(sb, "%s Version: %s\n", leader, bs.Version)
		}
	}
	sb.WriteString(rule)
}

// ecpMaxAM returns the largest angular momentum across an element's
// potentials.
func ecpMaxAM(el basis.ElementBasis) int {
	max := 0
	for _, p := range el.ECPPotentials {
		if p.MaxAM() > max {
			max = p.MaxAM()
		}
	}
	return max
}
