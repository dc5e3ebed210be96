package refs

import (
	"encoding/json"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
)

// RefFormat identifies a reference output format.
type RefFormat string

// Supported reference output formats.
const (
	// RefFormatText is an indented plain-text bibliography.
	RefFormatText RefFormat = "txt"

	// RefFormatBib is a loadable BibTeX bibliography.
	RefFormatBib RefFormat = "bib"

	// RefFormatJSON is the JSON form of the resolved groups.
	RefFormatJSON RefFormat = "json"
)

// RefFormats lists every supported reference format in display order.
func RefFormats() []RefFormat {
	return []RefFormat{RefFormatBib, RefFormatJSON, RefFormatText}
}

// ParseRefFormat converts a string to a RefFormat. Matching is
// case-insensitive; "text" is accepted as an alias of "txt".
func ParseRefFormat(s string) (RefFormat, error) {
	f := RefFormat(strings.ToLower(s))
	if f == "text" {
		f = RefFormatText
	}
	for _, known := range RefFormats() {
		if f == known {
			return f, nil
		}
	}
	return "", basis.NewNotFound("unknown reference format %q", s)
}

// String returns the wire form of the format.
func (f RefFormat) String() string {
	return string(f)
}

// Description returns a human-readable description of the format.
func (f RefFormat) Description() string {
	switch f {
	case RefFormatText:
		return "Plain text"
	case RefFormatBib:
		return "BibTeX"
	case RefFormatJSON:
		return "JSON"
	default:
		return string(f)
	}
}

// RenderReferences writes reference groups in the requested format.
func RenderReferences(groups []ElementRefs, f RefFormat) (string, error) {
	switch f {
	case RefFormatText:
		return renderRefText(groups)
	case RefFormatBib:
		return renderRefBib(groups), nil
	case RefFormatJSON:
		data, err := json.MarshalIndent(groups, "", "  ")
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	default:
		return "", basis.NewNotFound("unknown reference format %q", f)
	}
}
