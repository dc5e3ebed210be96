package basis

import (
	"fmt"
	"sort"
	"strings"
)

// ContractionString summarizes an element's contraction pattern in the
// conventional "(16s,10p) -> [4s,3p]" notation: primitive counts per
// angular momentum on the left, contracted function counts on the right.
// Combined shells contribute one contracted function per angular momentum
// value. Elements with no electron shells yield "".
func ContractionString(el ElementBasis) string {
	if len(el.Shells) == 0 {
		return ""
	}

	type counts struct{ prim, cont int }
	perAM := map[int]counts{}
	for _, sh := range el.Shells {
		ncont := sh.NRows()
		if sh.IsCombined() {
			ncont = 1
		}
		for _, am := range sh.AngularMomentum {
			c := perAM[am]
			c.prim += sh.NPrim()
			c.cont += ncont
			perAM[am] = c
		}
	}

	ams := make([]int, 0, len(perAM))
	for am := range perAM {
		ams = append(ams, am)
	}
	sort.Ints(ams)

	prims := make([]string, 0, len(ams))
	conts := make([]string, 0, len(ams))
	for _, am := range ams {
		letter, err := AMLetter(am)
		if err != nil {
			letter = "?"
		}
		prims = append(prims, fmt.Sprintf("%d%s", perAM[am].prim, letter))
		conts = append(conts, fmt.Sprintf("%d%s", perAM[am].cont, letter))
	}
	return fmt.Sprintf("(%s) -> [%s]", strings.Join(prims, ","), strings.Join(conts, ","))
}
