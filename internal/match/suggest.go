package match

import (
	"fmt"
	"sort"
)

// MinSuggestScore is the lowest normalized similarity Suggest accepts.
const MinSuggestScore = 0.6

// Suggest returns the candidate closest to name, comparing unqualified names.
// The candidate is returned as given, qualifier included. Candidates equal to
// name are skipped; ties go to the lexically smaller candidate.
func Suggest(name string, candidates []string) (string, bool) {
	sorted := append([]string(nil), candidates...)
	sort.Strings(sorted)

	best, bestScore := "", MinSuggestScore

	for _, c := range sorted {
		if c == name {
			continue
		}

		score := Score(name, c)
		if score > bestScore || (score == bestScore && best == "") {
			best, bestScore = c, score
		}
	}

	return best, best != ""
}

// DidYouMean returns " (did you mean X?)" for the closest candidate, or "".
func DidYouMean(name string, candidates []string) string {
	s, ok := Suggest(name, candidates)
	if !ok {
		return ""
	}

	return fmt.Sprintf(" (did you mean %s?)", s)
}
