package refs

import (
	"fmt"
	"strings"

	"github.com/qcforge/basisset/internal/element"
	"github.com/qcforge/basisset/internal/store"
)

// renderRefBib writes a BibTeX bibliography. Group mappings appear as
// "%" comment lines above the entries. Every citation key is emitted
// once even when several groups cite it, keeping the file loadable.
func renderRefBib(groups []ElementRefs) string {
	var sb strings.Builder
	emitted := map[string]bool{}
	for gi, g := range groups {
		if gi > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%% Elements: %s\n", element.CompactKeys(g.Elements))
		for _, b := range g.Blocks {
			if b.Description != "" {
				fmt.Fprintf(&sb, "%% %s\n", b.Description)
			}
		}
		for _, b := range g.Blocks {
			for i, key := range b.Keys {
				if emitted[key] {
					continue
				}
				emitted[key] = true
				sb.WriteString("\n")
				sb.WriteString(bibEntry(key, b.Data[i]))
			}
		}
	}
	return sb.String()
}

// bibEntry renders one BibTeX entry with fields in a fixed order.
func bibEntry(key string, ref *store.Reference) string {
	var fields []string
	add := func(name, value string) {
		if value != "" {
			fields = append(fields, fmt.Sprintf("    %s = {%s}", name, value))
		}
	}
	add("author", strings.Join(ref.Authors, " and "))
	add("editor", strings.Join(ref.Editors, " and "))
	add("title", ref.Title)
	add("booktitle", ref.Booktitle)
	add("series", ref.Series)
	add("journal", ref.Journal)
	add("institution", ref.Institution)
	add("number", ref.Number)
	add("volume", ref.Volume)
	add("pages", ref.Pages)
	add("year", ref.Year)
	add("note", ref.Note)
	add("doi", ref.DOI)

	var sb strings.Builder
	fmt.Fprintf(&sb, "@%s{%s,\n", ref.Type, key)
	sb.WriteString(strings.Join(fields, ",\n"))
	sb.WriteString("\n}\n")
	return sb.String()
}
