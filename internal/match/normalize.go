package match

import (
	"strings"
	"unicode"
)

// Unqualified strips pointer and slice markers and any package qualifier or
// import path from a reference:
//   - "example.com/geo.Point" -> "Point"
//   - "*geo.Point" -> "Point"
//   - "example.com/geo" -> "geo"
func Unqualified(ref string) string {
	ref = strings.TrimLeft(strings.TrimSpace(ref), "*[]")
	if i := strings.LastIndexAny(ref, "./"); i >= 0 {
		return ref[i+1:]
	}

	return ref
}

// NormalizeIdent reduces a reference to its unqualified name, lower cased and
// without separators: "geo.Char_Sequence" -> "charsequence".
func NormalizeIdent(ref string) string {
	name := Unqualified(ref)

	var b strings.Builder

	b.Grow(len(name))

	for _, r := range name {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}
