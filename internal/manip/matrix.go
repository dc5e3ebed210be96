package manip

import (
	"gonum.org/v1/gonum/floats"

	"github.com/qcforge/basisset/internal/basis"
)

// nonzero is the removal signal for primitive filtering: exactly 0.0, no
// tolerance. Data that means "drop this primitive" encodes it as a bare
// zero coefficient.
func nonzero(v float64) bool { return v != 0.0 }

func countNonzero(row []float64) int {
	return floats.Count(nonzero, row)
}

// filterRow keeps the (exponent, coefficient) pairs of one row whose
// coefficient is nonzero.
func filterRow(exps, row []float64) ([]float64, []float64) {
	outExps := make([]float64, 0, len(exps))
	outRow := make([]float64, 0, len(exps))
	for i, e := range exps {
		if nonzero(row[i]) {
			outExps = append(outExps, e)
			outRow = append(outRow, row[i])
		}
	}
	return outExps, outRow
}

// columnLive reports whether any row has a nonzero coefficient at
// primitive position i.
func columnLive(rows [][]float64, i int) bool {
	for _, row := range rows {
		if nonzero(row[i]) {
			return true
		}
	}
	return false
}

// filterColumns keeps the primitive positions referenced by at least one
// row, restricting every row to the surviving positions.
func filterColumns(exps []float64, rows [][]float64) ([]float64, [][]float64) {
	keep := make([]int, 0, len(exps))
	for i := range exps {
		if columnLive(rows, i) {
			keep = append(keep, i)
		}
	}

	outExps := make([]float64, len(keep))
	for j, i := range keep {
		outExps[j] = exps[i]
	}
	outRows := make([][]float64, len(rows))
	for r, row := range rows {
		outRows[r] = make([]float64, len(keep))
		for j, i := range keep {
			outRows[r][j] = row[i]
		}
	}
	return outExps, outRows
}

// dedupShells removes exact duplicates from an element's shell list,
// keeping first occurrences. Two shells are duplicates when they describe
// the same functions (same AM, exponents, coefficients); annotations such
// as region or provenance do not keep a duplicate alive.
func dedupShells(shells []basis.Shell) []basis.Shell {
	out := make([]basis.Shell, 0, len(shells))
	for _, sh := range shells {
		dup := false
		for i := range out {
			if out[i].SameFunctions(sh) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, sh)
		}
	}
	return out
}
