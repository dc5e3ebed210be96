package store

import "sort"

// ReferenceData is the decoded bibliography: citation key -> entry.
type ReferenceData map[string]*Reference

// Reference is one bibliography entry. Type selects which of the
// optional fields are meaningful (article, unpublished, incollection,
// techreport).
type Reference struct {
	Type        string   `json:"type"`
	Authors     []string `json:"authors,omitempty"`
	Title       string   `json:"title,omitempty"`
	Journal     string   `json:"journal,omitempty"`
	Volume      string   `json:"volume,omitempty"`
	Pages       string   `json:"pages,omitempty"`
	Year        string   `json:"year,omitempty"`
	DOI         string   `json:"doi,omitempty"`
	Note        string   `json:"note,omitempty"`
	Booktitle   string   `json:"booktitle,omitempty"`
	Editors     []string `json:"editors,omitempty"`
	Series      string   `json:"series,omitempty"`
	Institution string   `json:"institution,omitempty"`
	Number      string   `json:"number,omitempty"`
}

// Keys returns the citation keys in the bibliography, sorted.
func (rd ReferenceData) Keys() []string {
	keys := make([]string, 0, len(rd))
	for k := range rd {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
