package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"a", "a", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"ABC", "abc", 3},
		{"Point", "Pont", 1},
		{"userid", "userId", 1},
		{"Größe", "Grösse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, Levenshtein(tt.a, tt.b))
			assert.Equal(t, tt.expected, Levenshtein(tt.b, tt.a), "symmetry")
		})
	}
}

func TestSimilarity(t *testing.T) {
	assert.InDelta(t, 1.0, Similarity("", ""), 0.001)
	assert.InDelta(t, 1.0, Similarity("point", "point"), 0.001)
	assert.InDelta(t, 0.0, Similarity("abc", "xyz"), 0.001)
	assert.InDelta(t, 1.0-3.0/7.0, Similarity("kitten", "sitting"), 0.001)
	assert.InDelta(t, 0.8, Similarity("Größe", "Größn"), 0.001)
}

func TestScore(t *testing.T) {
	assert.InDelta(t, 1.0, Score("userId", "user_id"), 0.001)
	assert.InDelta(t, 1.0, Score("bundle.CharSequence", "charsequence"), 0.001)
	assert.InDelta(t, 0.8, Score("geo.Pont", "example.com/geo.Point"), 0.001)
	assert.InDelta(t, 1.0, Score("geo", "example.com/other/geo"), 0.001)
	assert.Less(t, Score("Email", "Password"), 0.5)
}

func BenchmarkScore(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Score("bundle.CharSequenceArrayList", "char_sequence_list")
	}
}
