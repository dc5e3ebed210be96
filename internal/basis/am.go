package basis

import (
	"fmt"
	"strings"
)

// amLetters maps angular momentum values to their conventional letters.
// The sequence follows spectroscopic convention: j is skipped, and after
// z the alphabet wraps to the letters not already used.
const amLetters = "spdfghiklmnoqrtuvwxyzabce"

// AMLetter returns the conventional letter for a single angular momentum
// value (0 -> "s", 1 -> "p", 2 -> "d", ...).
func AMLetter(am int) (string, error) {
	if am < 0 || am >= len(amLetters) {
		return "", NewStructuralViolation("angular momentum %d out of range [0, %d]", am, len(amLetters)-1)
	}
	return string(amLetters[am]), nil
}

// AMSymbol returns the combined letter form of an angular momentum list,
// e.g. [0] -> "s", [0 1] -> "sp", [0 1 2] -> "spd".
func AMSymbol(am []int) (string, error) {
	if len(am) == 0 {
		return "", NewStructuralViolation("empty angular momentum list")
	}
	var sb strings.Builder
	for _, l := range am {
		c, err := AMLetter(l)
		if err != nil {
			return "", err
		}
		sb.WriteString(c)
	}
	return sb.String(), nil
}

// ParseAMSymbol converts a letter form back to an angular momentum list,
// e.g. "spd" -> [0 1 2]. Parsing is case-insensitive.
func ParseAMSymbol(s string) ([]int, error) {
	if s == "" {
		return nil, fmt.Errorf("empty angular momentum symbol")
	}
	am := make([]int, 0, len(s))
	for _, c := range strings.ToLower(s) {
		idx := strings.IndexRune(amLetters, c)
		if idx < 0 {
			return nil, fmt.Errorf("unknown angular momentum letter %q", c)
		}
		am = append(am, idx)
	}
	return am, nil
}
