package basis

import (
	"slices"
	"sort"
)

// SortShells returns the shells in standard presentation order. Within
// each shell primitives are ordered by decreasing exponent, with
// coefficient columns carried along. The shell list is then ordered by
// increasing maximum angular momentum, then decreasing primitive count,
// then decreasing row count, then decreasing leading exponent. The sort
// is stable and the input is not modified.
func SortShells(shells []Shell) []Shell {
	out := make([]Shell, len(shells))
	for i, sh := range shells {
		out[i] = sortPrimitives(sh)
	}
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.MaxAM() != b.MaxAM() {
			return a.MaxAM() < b.MaxAM()
		}
		if a.NPrim() != b.NPrim() {
			return a.NPrim() > b.NPrim()
		}
		if a.NRows() != b.NRows() {
			return a.NRows() > b.NRows()
		}
		return a.Exponents[0] > b.Exponents[0]
	})
	return out
}

// sortPrimitives returns a copy of the shell with primitives ordered by
// decreasing exponent. Coefficient columns follow their exponent.
func sortPrimitives(sh Shell) Shell {
	out := sh.Clone()
	order := make([]int, len(sh.Exponents))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return sh.Exponents[order[i]] > sh.Exponents[order[j]]
	})
	for i, src := range order {
		out.Exponents[i] = sh.Exponents[src]
		for r := range sh.Coefficients {
			out.Coefficients[r][i] = sh.Coefficients[r][src]
		}
	}
	return out
}

// SortPotentials returns the potentials in standard order: increasing
// angular momentum with the highest-momentum potential moved to the
// front. Terms within a potential are not reordered. The input is not
// modified.
func SortPotentials(potentials []ECPPotential) []ECPPotential {
	out := make([]ECPPotential, len(potentials))
	for i, p := range potentials {
		out[i] = p.Clone()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return slices.Compare(out[i].AngularMomentum, out[j].AngularMomentum) < 0
	})
	if len(out) > 1 {
		last := out[len(out)-1]
		copy(out[1:], out[:len(out)-1])
		out[0] = last
	}
	return out
}

// SortBasis returns a copy of the set with every element's shells in
// standard order. Potentials keep their record order. Sorting is a
// presentation utility; assembly and transforms never apply it.
func SortBasis(b *BasisSet) *BasisSet {
	out := b.Clone()
	for k, el := range out.Elements {
		el.Shells = SortShells(el.Shells)
		out.Elements[k] = el
	}
	return out
}
