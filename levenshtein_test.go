package simlab

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"abc", "abc", 0},
		{"kitten", "sitting", 3},
		{"flaw", "lawn", 2},
		{"ab", "ba", 2}, // no transposition
		{"café", "cafe", 1},
		{"日本語", "日本", 1},
		{"Hello", "hello", 1}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			if got := LevenshteinDistance(tt.a, tt.b); got != tt.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := LevenshteinDistance(tt.b, tt.a); got != tt.want {
				t.Errorf("LevenshteinDistance(%q, %q) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestLevenshteinSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		document string
		want     float64
	}{
		{"both empty", "", "", 1},
		{"empty query", "", "abc", 0},
		{"empty document", "abc", "", 0},
		{"case-insensitive", "Hello", "hELLO", 1},
		{"kitten sitting", "kitten", "sitting", 1 - 3.0/7.0},
		{"completely different", "abc", "xyz", 0},
		{"multibyte characters counted once", "café", "cafe", 0.75},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LevenshteinSimilarity(tt.query, tt.document); !approxEqual(got, tt.want) {
				t.Errorf("LevenshteinSimilarity(%q, %q) = %v, want %v", tt.query, tt.document, got, tt.want)
			}
		})
	}
}

func TestLevenshteinSimilarityPunctuationCounts(t *testing.T) {
	// edit distance works on raw characters, so punctuation is not stripped
	if got := LevenshteinSimilarity("cat", "cat."); !approxEqual(got, 0.75) {
		t.Errorf("LevenshteinSimilarity(cat, cat.) = %v, want 0.75", got)
	}
}
