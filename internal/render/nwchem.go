package render

import (
	"fmt"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
)

// renderNWChem writes NWChem basis input: one BASIS block with every
// element's shells, then an ECP block when any element carries a
// potential. Combined shells render as single SP/SPD blocks the way
// NWChem reads them.
func renderNWChem(bs *basis.BasisSet, opts Options) (string, error) {
	var sb strings.Builder
	if !opts.NoHeader {
		writeHeader(&sb, bs, "#")
	}

	sb.WriteString(`BASIS "ao basis"`)
	switch bs.HarmonicType {
	case basis.HarmonicSpherical:
		sb.WriteString(" SPHERICAL")
	case basis.HarmonicCartesian:
		sb.WriteString(" CARTESIAN")
	}
	// Mixed and empty sets carry no keyword; NWChem then uses its own
	// default convention.
	sb.WriteString(" PRINT\n")

	keys := bs.ElementKeys()
	for _, key := range keys {
		el := bs.Elements[key]
		if len(el.Shells) == 0 {
			continue
		}
		sym, err := symbolFor(key)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "#BASIS SET: %s\n", basis.ContractionString(el))
		for _, sh := range el.Shells {
			amsym, err := basis.AMSymbol(sh.AngularMomentum)
			if err != nil {
				return "", err
			}
			fmt.Fprintf(&sb, "%-4s%s\n", sym, strings.ToUpper(amsym))
			for i, e := range sh.Exponents {
				vals := make([]string, 0, 1+sh.NRows())
				vals = append(vals, formatE(e))
				for _, row := range sh.Coefficients {
					vals = append(vals, formatE(row[i]))
				}
				sb.WriteString(columns(vals) + "\n")
			}
		}
	}
	sb.WriteString("END\n")

	if err := writeNWChemECP(&sb, bs, keys); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// writeNWChemECP appends the ECP block. Potentials render in standard
// order: the highest-momentum potential is the local "ul" channel, the
// rest follow under their angular momentum letters.
func writeNWChemECP(sb *strings.Builder, bs *basis.BasisSet, keys []string) error {
	hasECP := false
	for _, key := range keys {
		if bs.Elements[key].HasECP() {
			hasECP = true
			break
		}
	}
	if !hasECP {
		return nil
	}

	sb.WriteString("ECP\n")
	for _, key := range keys {
		el := bs.Elements[key]
		if !el.HasECP() {
			continue
		}
		sym, err := symbolFor(key)
		if err != nil {
			return err
		}
		fmt.Fprintf(sb, "%s nelec %d\n", sym, el.ECPElectrons)
		for i, p := range basis.SortPotentials(el.ECPPotentials) {
			label := "ul"
			if i > 0 {
				amsym, err := basis.AMSymbol(p.AngularMomentum)
				if err != nil {
					return err
				}
				label = strings.ToUpper(amsym)
			}
			fmt.Fprintf(sb, "%s %s\n", sym, label)
			for t := range p.RExponents {
				vals := make([]string, 0, 1+len(p.Coefficients))
				vals = append(vals, formatE(p.GaussianExponents[t]))
				for _, row := range p.Coefficients {
					vals = append(vals, formatE(row[t]))
				}
				fmt.Fprintf(sb, "%d%s\n", p.RExponents[t], columns(vals))
			}
		}
	}
	sb.WriteString("END\n")
	return nil
}
