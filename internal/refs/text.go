package refs

import (
	"fmt"
	"strings"

	"github.com/qcforge/basisset/internal/basis"
	"github.com/qcforge/basisset/internal/element"
	"github.com/qcforge/basisset/internal/store"
)

// renderRefText writes one "Elements:" paragraph per group with each
// block's description and citations indented beneath it.
func renderRefText(groups []ElementRefs) (string, error) {
	var sb strings.Builder
	for gi, g := range groups {
		if gi > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Elements: %s\n", element.CompactKeys(g.Elements))
		for bi, b := range g.Blocks {
			if bi > 0 {
				sb.WriteString("\n")
			}
			if b.Description != "" {
				fmt.Fprintf(&sb, "    %s\n", b.Description)
			}
			for _, ref := range b.Data {
				lines, err := referenceText(ref)
				if err != nil {
					return "", err
				}
				for _, line := range lines {
					fmt.Fprintf(&sb, "        %s\n", line)
				}
			}
		}
	}
	return sb.String(), nil
}

// referenceText renders one bibliography entry as plain text lines.
// The layout depends on the entry type.
func referenceText(ref *store.Reference) ([]string, error) {
	authors := strings.Join(ref.Authors, ", ")
	var lines []string

	switch ref.Type {
	case "article":
		lines = append(lines, authors, ref.Title,
			fmt.Sprintf("%s, %s, %s (%s)", ref.Journal, ref.Volume, ref.Pages, ref.Year))
		if ref.DOI != "" {
			lines = append(lines, ref.DOI)
		}
	case "unpublished":
		lines = append(lines, authors, ref.Title)
		if ref.Note != "" {
			lines = append(lines, ref.Note)
		}
		if ref.Year != "" {
			lines = append(lines, ref.Year)
		}
	case "incollection":
		lines = append(lines, authors, ref.Title, fmt.Sprintf("in %q", ref.Booktitle))
		if len(ref.Editors) > 0 {
			lines = append(lines, "ed. "+strings.Join(ref.Editors, ", "))
		}
		if ref.Series != "" {
			lines = append(lines, fmt.Sprintf("%s, %s, %s (%s)", ref.Series, ref.Volume, ref.Pages, ref.Year))
		}
		if ref.DOI != "" {
			lines = append(lines, ref.DOI)
		}
	case "techreport":
		lines = append(lines, authors, ref.Title,
			fmt.Sprintf("%q", ref.Institution),
			"Technical Report "+ref.Number,
			ref.Year)
		if ref.DOI != "" {
			lines = append(lines, ref.DOI)
		}
	case "misc":
		lines = append(lines, authors, ref.Title)
		for _, extra := range []string{ref.Note, ref.Year, ref.DOI} {
			if extra != "" {
				lines = append(lines, extra)
			}
		}
	default:
		return nil, basis.NewStructuralViolation("cannot render reference type %q", ref.Type)
	}
	return lines, nil
}

