package refs

import (
	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/store"
)

// ResolvedBlock is one reference annotation with its citations resolved
// against the bibliography. Data is parallel to Keys.
type ResolvedBlock struct {
	Description string             `json:"reference_description"`
	Keys        []string           `json:"reference_keys"`
	Data        []*store.Reference `json:"reference_data"`
}

// ElementRefs groups the elements that share an identical reference
// block list. Elements holds data-model keys in atomic number order.
type ElementRefs struct {
	Elements []string        `json:"elements"`
	Blocks   []ResolvedBlock `json:"reference_info"`
}

// Compact maps a composed basis set to reference groups. Elements are
// visited in atomic number order and collected under the first group
// whose reference blocks match theirs exactly, so group order follows
// first appearance. A citation key missing from the bibliography fails
// with a not-found error naming the element.
func Compact(bs *basis.BasisSet, refData store.ReferenceData) ([]ElementRefs, error) {
	var groups []ElementRefs

	// raw keeps the unresolved block lists, parallel to groups.
	var raw [][]basis.ReferenceBlock

	for _, key := range bs.ElementKeys() {
		blocks := bs.Elements[key].References

		matched := false
		for i := range groups {
			if blockListsEqual(raw[i], blocks) {
				groups[i].Elements = append(groups[i].Elements, key)
				matched = true
				break
			}
		}
		if matched {
			continue
		}

		resolved := make([]ResolvedBlock, 0, len(blocks))
		for _, b := range blocks {
			rb := ResolvedBlock{
				Description: b.Description,
				Keys:        append([]string(nil), b.Keys...),
				Data:        make([]*store.Reference, 0, len(b.Keys)),
			}
			for _, k := range b.Keys {
				ref, ok := refData[k]
				if !ok {
					return nil, basis.NewNotFound("citation key %q is not in the bibliography", k).InElement(key)
				}
				rb.Data = append(rb.Data, ref)
			}
			resolved = append(resolved, rb)
		}
		groups = append(groups, ElementRefs{Elements: []string{key}, Blocks: resolved})
		raw = append(raw, blocks)
	}
	return groups, nil
}

func blockListsEqual(a, b []basis.ReferenceBlock) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
