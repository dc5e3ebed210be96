package compose

import "github.com/qcforge/basisset/internal/basis"

// Subset returns a deep copy of bs restricted to the given element keys.
// An empty key list means every element. A key the set does not define is
// a not-found error naming the element, and no partial set is returned.
// Duplicate keys are tolerated.
func Subset(bs *basis.BasisSet, keys []string) (*basis.BasisSet, error) {
	if len(keys) == 0 {
		return bs.Clone(), nil
	}

	out := bs.Clone()
	out.Elements = make(map[string]basis.ElementBasis, len(keys))
	for _, k := range keys {
		el, ok := bs.Elements[k]
		if !ok {
			return nil, basis.NewNotFound("element not in basis set").
				InBasis(bs.Name).InElement(k)
		}
		out.Elements[k] = el.Clone()
	}
	return out, nil
}
