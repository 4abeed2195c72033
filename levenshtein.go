package simlab

import "strings"

// LevenshteinDistance returns the minimum number of single-character
// insertions, deletions, or substitutions needed to turn a into b.
// Characters are Unicode code points; the comparison is case-sensitive.
//
// Time complexity: O(len(a) × len(b)); memory: O(min(len(a), len(b))).
func LevenshteinDistance(a, b string) int {
	return editDistance([]rune(a), []rune(b))
}

// LevenshteinSimilarity returns 1 - distance / maxLength for the lowercased
// query and document, so identical texts score 1 and texts sharing no
// aligned characters approach 0. Two empty strings score exactly 1.
func LevenshteinSimilarity(query, document string) float64 {
	return levenshteinMethodImpl.Score(query, document, nil)
}

// levenshteinMethod implements normalized edit-distance similarity.
// It works on raw characters and needs no tokenizer.
type levenshteinMethod struct{}

func (m levenshteinMethod) Kind() MethodKind {
	return Levenshtein
}

func (m levenshteinMethod) Score(query, document string, _ []string) float64 {
	a := []rune(strings.ToLower(query))
	b := []rune(strings.ToLower(document))

	maxLen := max(len(a), len(b))
	if maxLen == 0 {
		return 1
	}
	return 1 - float64(editDistance(a, b))/float64(maxLen)
}

// editDistance computes the Levenshtein distance with two rolling rows.
func editDistance(a, b []rune) int {
	// keep the shorter string on the inner loop
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i, ca := range a {
		curr[0] = i + 1
		for j, cb := range b {
			cost := 1
			if ca == cb {
				cost = 0
			}
			curr[j+1] = min(
				prev[j+1]+1,  // deletion
				curr[j]+1,    // insertion
				prev[j]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
