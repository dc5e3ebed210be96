package element

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Expand parses a compact element specification into atomic numbers.
// The specification is comma-separated; each part is a single element or
// an inclusive range, and symbols and atomic numbers mix freely:
//
//	"H-Li,C-O,Ne"  -> [1 2 3 6 7 8 10]
//	"H-N,8,Na-12"  -> [1 2 3 4 5 6 7 8 11 12]
//
// The result preserves the order given and is not de-duplicated, matching
// the established notation. An empty specification expands to nil.
func Expand(spec string) ([]int, error) {
	if strings.TrimSpace(spec) == "" {
		return nil, nil
	}

	var out []int
	for _, part := range strings.Split(spec, ",") {
		lo, hi, found := strings.Cut(part, "-")
		if !found {
			z, err := FromString(part)
			if err != nil {
				return nil, err
			}
			out = append(out, z)
			continue
		}
		begin, err := FromString(lo)
		if err != nil {
			return nil, err
		}
		end, err := FromString(hi)
		if err != nil {
			return nil, err
		}
		if begin > end {
			return nil, fmt.Errorf("element range %q runs backwards", strings.TrimSpace(part))
		}
		for z := begin; z <= end; z++ {
			out = append(out, z)
		}
	}
	return out, nil
}

// ExpandKeys is Expand with the result formatted as the decimal-string
// element keys used by the data model.
func ExpandKeys(spec string) ([]string, error) {
	zs, err := Expand(spec)
	if err != nil {
		return nil, err
	}
	keys := make([]string, len(zs))
	for i, z := range zs {
		keys[i] = strconv.Itoa(z)
	}
	return keys, nil
}

// Compact renders a list of atomic numbers as the range notation Expand
// accepts: [1 2 3 6 7 8 10] -> "H-Li,C-O,Ne". Input is de-duplicated and
// sorted first. Runs of two render as a pair ("H,He"), not a range.
// Numbers outside the table render as bare integers.
func Compact(zs []int) string {
	if len(zs) == 0 {
		return ""
	}

	uniq := make([]int, 0, len(zs))
	seen := map[int]bool{}
	for _, z := range zs {
		if !seen[z] {
			seen[z] = true
			uniq = append(uniq, z)
		}
	}
	sort.Ints(uniq)

	sym := func(z int) string {
		s, err := Symbol(z)
		if err != nil {
			return strconv.Itoa(z)
		}
		return s
	}

	var parts []string
	for i := 0; i < len(uniq); {
		start := uniq[i]
		end := start
		i++
		for i < len(uniq) && uniq[i] == end+1 {
			end = uniq[i]
			i++
		}
		switch {
		case start == end:
			parts = append(parts, sym(start))
		case end == start+1:
			parts = append(parts, sym(start)+","+sym(end))
		default:
			parts = append(parts, sym(start)+"-"+sym(end))
		}
	}
	return strings.Join(parts, ",")
}

// CompactKeys is Compact over the decimal-string element keys used by
// the data model. Keys that are not atomic numbers pass through
// unchanged, after the numeric ones.
func CompactKeys(keys []string) string {
	zs := make([]int, 0, len(keys))
	var extra []string
	for _, k := range keys {
		z, err := strconv.Atoi(k)
		if err != nil {
			extra = append(extra, k)
			continue
		}
		zs = append(zs, z)
	}
	parts := make([]string, 0, 2)
	if s := Compact(zs); s != "" {
		parts = append(parts, s)
	}
	parts = append(parts, extra...)
	return strings.Join(parts, ",")
}
