package render

import (
	"fmt"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
)

// renderGaussian writes Gaussian 94 general basis input.
func renderGaussian(bs *basis.BasisSet, opts Options) (string, error) {
	var sb strings.Builder
	if !opts.NoHeader {
		writeHeader(&sb, bs, "!")
	}
	if err := writeGaussianBody(&sb, bs); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// writeGaussianBody writes every element block and then the ECP
// sections. Psi4 output shares this body.
func writeGaussianBody(sb *strings.Builder, bs *basis.BasisSet) error {
	keys := bs.ElementKeys()
	sb.WriteString("****\n")
	for _, key := range keys {
		el := bs.Elements[key]
		if len(el.Shells) == 0 {
			continue
		}
		sym, err := symbolFor(key)
		if err != nil {
			return err
		}
		if err := writeGaussianElement(sb, sym, el); err != nil {
			return err
		}
	}
	return writeGaussianECP(sb, bs, keys)
}

// writeGaussianElement writes one element's shells in Gaussian 94
// layout, closed by "****". Combined shells become one SP/SPD block
// with a coefficient column per angular momentum; the format has no
// general contractions, so a general shell repeats its primitive list
// once per coefficient row.
func writeGaussianElement(sb *strings.Builder, sym string, el basis.ElementBasis) error {
	fmt.Fprintf(sb, "%-6s0\n", sym)
	for _, sh := range el.Shells {
		amsym, err := basis.AMSymbol(sh.AngularMomentum)
		if err != nil {
			return err
		}
		label := strings.ToUpper(amsym)
		if sh.IsCombined() {
			fmt.Fprintf(sb, "%-4s%d   1.00\n", label, sh.NPrim())
			for i, e := range sh.Exponents {
				vals := make([]string, 0, 1+sh.NRows())
				vals = append(vals, formatD(e))
				for _, row := range sh.Coefficients {
					vals = append(vals, formatD(row[i]))
				}
				sb.WriteString(columns(vals) + "\n")
			}
			continue
		}
		for _, row := range sh.Coefficients {
			fmt.Fprintf(sb, "%-4s%d   1.00\n", label, sh.NPrim())
			for i, e := range sh.Exponents {
				sb.WriteString(columns([]string{formatD(e), formatD(row[i])}) + "\n")
			}
		}
	}
	sb.WriteString("****\n")
	return nil
}

// writeGaussianECP appends one ECP section per element that carries a
// potential. The highest-momentum potential is the local channel and
// takes the bare letter label; the rest are labeled relative to it,
// e.g. "s-d potential".
func writeGaussianECP(sb *strings.Builder, bs *basis.BasisSet, keys []string) error {
	for _, key := range keys {
		el := bs.Elements[key]
		if !el.HasECP() {
			continue
		}
		sym, err := symbolFor(key)
		if err != nil {
			return err
		}
		maxAM := ecpMaxAM(el)
		ulLetter, err := basis.AMLetter(maxAM)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%-6s0\n", sym)
		fmt.Fprintf(sb, "%s-ECP   %d   %d\n", sym, maxAM, el.ECPElectrons)
		for i, p := range basis.SortPotentials(el.ECPPotentials) {
			label := ulLetter + " potential"
			if i > 0 {
				letter, err := basis.AMSymbol(p.AngularMomentum)
				if err != nil {
					return err
				}
				label = letter + "-" + ulLetter + " potential"
			}
			sb.WriteString(label + "\n")
			fmt.Fprintf(sb, "%3d\n", len(p.RExponents))
			for t := range p.RExponents {
				vals := make([]string, 0, 1+len(p.Coefficients))
				vals = append(vals, formatD(p.GaussianExponents[t]))
				for _, row := range p.Coefficients {
					vals = append(vals, formatD(row[t]))
				}
				fmt.Fprintf(sb, "%d%s\n", p.RExponents[t], columns(vals))
			}
		}
	}
	return nil
}
