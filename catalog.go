package simlab

// MethodInfo describes a similarity method for presentation next to its scores.
type MethodInfo struct {
	// Name is the human-readable method name
	Name string `json:"name" yaml:"name"`
	// Description is a one-sentence summary
	Description string `json:"description" yaml:"description"`
	// Formula is the scoring formula in plain notation
	Formula string `json:"formula" yaml:"formula"`
	// Pros lists the method's strengths
	Pros []string `json:"pros" yaml:"pros"`
	// Cons lists the method's weaknesses
	Cons []string `json:"cons" yaml:"cons"`
	// BestFor is a one-line usage recommendation
	BestFor string `json:"best_for" yaml:"best_for"`
	// Color is a display hint as a hex RGB string
	Color string `json:"color" yaml:"color"`
}

var catalog = map[MethodKind]MethodInfo{
	Jaccard: {
		Name:        "Jaccard Similarity",
		Description: "Set-based similarity measuring overlap between word sets",
		Formula:     "|A ∩ B| / |A ∪ B|",
		Pros: []string{
			"Simple and intuitive",
			"Fast computation",
			"Good for keyword matching",
			"No word frequency bias",
		},
		Cons: []string{
			"Ignores word frequency",
			"No semantic understanding",
			"Treats all words equally",
			"No word order consideration",
		},
		BestFor: "Exact word matching, duplicate detection, simple keyword search",
		Color:   "#ef4444",
	},
	Cosine: {
		Name:        "Cosine Similarity",
		Description: "Vector-based similarity using word frequency counts",
		Formula:     "cos(θ) = (A · B) / (||A|| × ||B||)",
		Pros: []string{
			"Considers word frequency",
			"Scale-invariant",
			"Widely used standard",
			"Better than Jaccard for longer texts",
		},
		Cons: []string{
			"Still no semantic understanding",
			"Ignores word order",
			"Vulnerable to synonyms",
			"Requires same vocabulary",
		},
		BestFor: "Document similarity, text classification, information retrieval",
		Color:   "#10b981",
	},
	TFIDF: {
		Name:        "TF-IDF + Cosine",
		Description: "Weighted similarity giving importance to rare words",
		Formula:     "TF-IDF(w) = TF(w) × log(N / DF(w))",
		Pros: []string{
			"Reduces common word impact",
			"Highlights distinctive terms",
			"Industry standard for search",
			"Better precision",
		},
		Cons: []string{
			"Requires document corpus",
			"Still no semantics",
			"Computationally expensive",
			"Doesn't handle synonyms",
		},
		BestFor: "Search engines, document ranking, keyword extraction",
		Color:   "#2563eb",
	},
	Levenshtein: {
		Name:        "Levenshtein Distance",
		Description: "Character-level edit distance between strings",
		Formula:     "min(insertions, deletions, substitutions)",
		Pros: []string{
			"Handles typos well",
			"Character-level precision",
			"Good for spelling correction",
			"Detects near-duplicates",
		},
		Cons: []string{
			"Very slow for long texts",
			"No semantic meaning",
			"Poor for reworded content",
			"Sensitive to length differences",
		},
		BestFor: "Spell checking, fuzzy matching, DNA sequencing",
		Color:   "#f59e0b",
	},
	WordOverlap: {
		Name:        "Word Overlap",
		Description: "Simple ratio of matching words to query words",
		Formula:     "|matching words| / |query words|",
		Pros: []string{
			"Extremely fast",
			"Very simple to understand",
			"Good baseline metric",
			"No preprocessing needed",
		},
		Cons: []string{
			"Too simplistic",
			"Ignores document length",
			"No weighting scheme",
			"Poor precision",
		},
		BestFor: "Quick baseline, initial filtering, keyword presence check",
		Color:   "#8b5cf6",
	},
}

// GetMethodInfo returns descriptive metadata for every method kind.
// The returned map is a copy and may be modified freely.
func GetMethodInfo() map[MethodKind]MethodInfo {
	out := make(map[MethodKind]MethodInfo, len(catalog))
	for k := range catalog {
		out[k], _ = Info(k)
	}
	return out
}

// Info returns the metadata of a single method kind.
func Info(kind MethodKind) (MethodInfo, bool) {
	info, ok := catalog[kind]
	if !ok {
		return MethodInfo{}, false
	}
	info.Pros = append([]string(nil), info.Pros...)
	info.Cons = append([]string(nil), info.Cons...)
	return info, true
}
