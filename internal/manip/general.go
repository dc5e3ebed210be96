package manip

import (
	"slices"
	"sort"

	"github.com/qcforge/basisset/internal/basis"
)

// makeGeneral merges each element's same-AM shells into one general
// contraction. Combined shells are grouped by their full AM list and
// never merged or decomposed; fusing two sp shells into one would change
// the function count, so callers wanting them generalized split them
// with uncontract_spdf first. Groups are emitted in ascending AM order.
func makeGeneral(bs *basis.BasisSet) *basis.BasisSet {
	out := bs.Clone()
	for key, el := range out.Elements {
		if len(el.Shells) == 0 {
			continue
		}

		var keys [][]int
		for _, sh := range el.Shells {
			dup := false
			for _, k := range keys {
				if slices.Equal(k, sh.AngularMomentum) {
					dup = true
					break
				}
			}
			if !dup {
				keys = append(keys, sh.AngularMomentum)
			}
		}
		slices.SortFunc(keys, slices.Compare)

		shells := make([]basis.Shell, 0, len(keys))
		for _, k := range keys {
			var members []basis.Shell
			for _, sh := range el.Shells {
				if slices.Equal(sh.AngularMomentum, k) {
					members = append(members, sh)
				}
			}
			if len(k) > 1 || len(members) == 1 {
				shells = append(shells, members...)
				continue
			}
			shells = append(shells, mergeGroup(members))
		}
		el.Shells = shells
		out.Elements[key] = el
	}
	return out
}

// mergeGroup merges single-AM shells sharing one angular momentum into a
// general contraction: the exponent set is the union of the members'
// exponents (exact equality, largest first), and each member row becomes
// one output row padded with zeros at positions the member did not
// contain. Row order follows member order.
func mergeGroup(members []basis.Shell) basis.Shell {
	var union []float64
	seen := make(map[float64]bool)
	for _, sh := range members {
		for _, e := range sh.Exponents {
			if !seen[e] {
				seen[e] = true
				union = append(union, e)
			}
		}
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(union)))

	pos := make(map[float64]int, len(union))
	for i, e := range union {
		pos[e] = i
	}

	merged := basis.Shell{
		AngularMomentum: slices.Clone(members[0].AngularMomentum),
		Harmonic:        members[0].Harmonic,
		FunctionType:    members[0].FunctionType,
		Region:          commonAnnotation(members, func(s basis.Shell) string { return s.Region }),
		Source:          commonAnnotation(members, func(s basis.Shell) string { return s.Source }),
		Exponents:       union,
	}
	for _, sh := range members {
		for _, row := range sh.Coefficients {
			newRow := make([]float64, len(union))
			for j, e := range sh.Exponents {
				// += so that a duplicate exponent within one member
				// folds exactly into a single primitive.
				newRow[pos[e]] += row[j]
			}
			merged.Coefficients = append(merged.Coefficients, newRow)
		}
	}
	return merged
}

// commonAnnotation returns the annotation value shared by every member,
// or "" when members disagree.
func commonAnnotation(members []basis.Shell, get func(basis.Shell) string) string {
	v := get(members[0])
	for _, m := range members[1:] {
		if get(m) != v {
			return ""
		}
	}
	return v
}

// optimizeGeneral reduces general contractions by pulling out rows that
// are functionally single-primitive (exactly one nonzero coefficient).
// Each such row becomes its own single-primitive shell with the
// coefficient preserved, appended after the reduced general shell. The
// reduced shell keeps the remaining rows, restricted to the primitives
// those rows still reference; with no rows left it is omitted entirely.
// Combined and single-row shells pass through untouched.
func optimizeGeneral(bs *basis.BasisSet) *basis.BasisSet {
	out := bs.Clone()
	for key, el := range out.Elements {
		if len(el.Shells) == 0 {
			continue
		}
		var shells []basis.Shell
		for _, sh := range el.Shells {
			if sh.IsCombined() || sh.NRows() < 2 {
				shells = append(shells, sh)
				continue
			}

			var singleRows, generalRows [][]float64
			for _, row := range sh.Coefficients {
				if countNonzero(row) == 1 {
					singleRows = append(singleRows, row)
				} else {
					generalRows = append(generalRows, row)
				}
			}
			if len(singleRows) == 0 {
				shells = append(shells, sh)
				continue
			}

			if len(generalRows) > 0 {
				exps, rows := filterColumns(sh.Exponents, generalRows)
				if len(exps) > 0 {
					ns := sh
					ns.Exponents = exps
					ns.Coefficients = rows
					shells = append(shells, ns)
				}
			}
			for _, row := range singleRows {
				for i, c := range row {
					if nonzero(c) {
						ns := sh
						ns.Exponents = []float64{sh.Exponents[i]}
						ns.Coefficients = [][]float64{{c}}
						shells = append(shells, ns)
						break
					}
				}
			}
		}
		el.Shells = shells
		out.Elements[key] = el
	}
	return out
}
