package match

// Levenshtein returns the edit distance between a and b counted in runes, so
// non-ASCII identifiers are measured per character.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	row := make([]int, len(ra)+1)
	for i := range row {
		row[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		diag := row[0]
		row[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			next := min(row[i]+1, row[i-1]+1, diag+cost)
			diag, row[i] = row[i], next
		}
	}

	return row[len(ra)]
}

// Similarity maps the edit distance of a and b onto [0, 1], 1 meaning equal.
func Similarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1
	}

	return 1 - float64(Levenshtein(a, b))/float64(longest)
}

// Score compares two type or package references after normalization, so
// "geo.Pont" against "example.com/geo.Point" compares "pont" with "point".
func Score(ref, candidate string) float64 {
	return Similarity(NormalizeIdent(ref), NormalizeIdent(candidate))
}
