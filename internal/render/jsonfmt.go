package render

import (
	"encoding/json"

	"github.com/qcforge/basisset/internal/basis"
)

// renderJSON writes the canonical JSON form of the data model. Struct
// fields marshal in declaration order and map keys in sorted order, so
// the output is deterministic.
func renderJSON(bs *basis.BasisSet) (string, error) {
	data, err := json.MarshalIndent(bs, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
