package manip

import "github.com/qcforge/basisset/internal/basis"

// uncontractGeneral splits every generally-contracted single-AM shell
// into one single-row shell per coefficient row. Zero-coefficient
// primitives are dropped from each emitted row, single-row shells pass
// through untouched, and combined shells are left for uncontractSPDF.
// Rows that reduce to an identical shell collapse to one.
func uncontractGeneral(bs *basis.BasisSet) *basis.BasisSet {
	out := bs.Clone()
	for key, el := range out.Elements {
		if len(el.Shells) == 0 {
			continue
		}
		shells := make([]basis.Shell, 0, len(el.Shells))
		for _, sh := range el.Shells {
			if sh.IsCombined() || sh.NRows() < 2 {
				shells = append(shells, sh)
				continue
			}
			for _, row := range sh.Coefficients {
				exps, coefs := filterRow(sh.Exponents, row)
				if len(exps) == 0 {
					// An all-zero row spans no primitives.
					continue
				}
				ns := sh
				ns.Exponents = exps
				ns.Coefficients = [][]float64{coefs}
				shells = append(shells, ns)
			}
		}
		el.Shells = dedupShells(shells)
		out.Elements[key] = el
	}
	return out
}

// UncontractSPDFAbove splits combined shells, keeping components with
// angular momentum up to maxAM together. With maxAM 0 an sp shell splits
// fully into s and p; with maxAM 1 an spd shell splits into sp and d.
// The remainder shell, when it has any components left, is emitted at
// the original shell's position, followed by the split-off single-AM
// shells in component order. Non-combined shells pass through untouched.
func UncontractSPDFAbove(bs *basis.BasisSet, maxAM int) *basis.BasisSet {
	out := bs.Clone()
	for key, el := range out.Elements {
		if len(el.Shells) == 0 {
			continue
		}
		shells := make([]basis.Shell, 0, len(el.Shells))
		for _, sh := range el.Shells {
			if !sh.IsCombined() {
				shells = append(shells, sh)
				continue
			}

			var keepAM []int
			var keepRows [][]float64
			var split []basis.Shell
			for g, am := range sh.AngularMomentum {
				if am <= maxAM {
					keepAM = append(keepAM, am)
					keepRows = append(keepRows, sh.Coefficients[g])
					continue
				}
				exps, coefs := filterRow(sh.Exponents, sh.Coefficients[g])
				if len(exps) == 0 {
					continue
				}
				ns := sh
				ns.AngularMomentum = []int{am}
				ns.Exponents = exps
				ns.Coefficients = [][]float64{coefs}
				split = append(split, ns)
			}

			if len(keepAM) > 0 {
				exps, rows := filterColumns(sh.Exponents, keepRows)
				if len(exps) > 0 {
					ns := sh
					ns.AngularMomentum = keepAM
					ns.Exponents = exps
					ns.Coefficients = rows
					shells = append(shells, ns)
				}
			}
			shells = append(shells, split...)
		}
		el.Shells = dedupShells(shells)
		out.Elements[key] = el
	}
	return out
}

// uncontractSegmented atomizes every shell: each (AM component,
// primitive) pair becomes its own single-primitive shell with the
// coefficient forced to 1.0. Contraction magnitudes are discarded, so
// this transform is lossy. Pairs whose contraction coefficients are all
// exactly zero are dropped first; they span nothing.
func uncontractSegmented(bs *basis.BasisSet) *basis.BasisSet {
	out := bs.Clone()
	for key, el := range out.Elements {
		if len(el.Shells) == 0 {
			continue
		}
		var shells []basis.Shell
		for _, sh := range el.Shells {
			for g, am := range sh.AngularMomentum {
				// In a combined shell, component g owns row g. A
				// single-AM shell's component owns every row.
				rows := sh.Coefficients
				if sh.IsCombined() {
					rows = sh.Coefficients[g : g+1]
				}
				for i, e := range sh.Exponents {
					if !columnLive(rows, i) {
						continue
					}
					ns := sh
					ns.AngularMomentum = []int{am}
					ns.Exponents = []float64{e}
					ns.Coefficients = [][]float64{{1.0}}
					shells = append(shells, ns)
				}
			}
		}
		el.Shells = shells
		out.Elements[key] = el
	}
	return out
}
