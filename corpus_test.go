package simlab

import (
	"math"
	"testing"
)

const epsilon = 1e-12

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestTermCounts(t *testing.T) {
	counts := TermCounts([]string{"a", "b", "a", "c", "a"})
	want := map[string]int{"a": 3, "b": 1, "c": 1}
	if len(counts) != len(want) {
		t.Fatalf("len(TermCounts()) = %d, want %d", len(counts), len(want))
	}
	for term, c := range want {
		if counts[term] != c {
			t.Errorf("TermCounts()[%q] = %d, want %d", term, counts[term], c)
		}
	}
}

func TestTermFrequency(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   map[string]float64
	}{
		{
			name:   "empty sequence",
			tokens: nil,
			want:   map[string]float64{},
		},
		{
			name:   "single token",
			tokens: []string{"cat"},
			want:   map[string]float64{"cat": 1},
		},
		{
			name:   "repeated tokens",
			tokens: []string{"a", "b", "a", "c"},
			want:   map[string]float64{"a": 0.5, "b": 0.25, "c": 0.25},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tf := TermFrequency(tt.tokens)
			if len(tf) != len(tt.want) {
				t.Fatalf("len(TermFrequency()) = %d, want %d", len(tf), len(tt.want))
			}
			var sum float64
			for term, f := range tt.want {
				if !approxEqual(tf[term], f) {
					t.Errorf("tf[%q] = %v, want %v", term, tf[term], f)
				}
				sum += tf[term]
			}
			if len(tt.tokens) > 0 && !approxEqual(sum, 1) {
				t.Errorf("sum of frequencies = %v, want 1", sum)
			}
		})
	}
}

func TestInverseDocumentFrequency(t *testing.T) {
	texts := []string{"the cat sat", "the dog ran", "the bird flew"}
	idf := InverseDocumentFrequency(texts)

	if got := idf["the"]; got != 0 {
		t.Errorf("idf[the] = %v, want 0 (present in every text)", got)
	}
	for _, term := range []string{"cat", "sat", "dog", "ran", "bird", "flew"} {
		if got, want := idf[term], math.Log(3); !approxEqual(got, want) {
			t.Errorf("idf[%q] = %v, want %v", term, got, want)
		}
	}
	if len(idf) != 7 {
		t.Errorf("len(idf) = %d, want 7", len(idf))
	}
}

func TestInverseDocumentFrequencyEmpty(t *testing.T) {
	if idf := InverseDocumentFrequency(nil); len(idf) != 0 {
		t.Errorf("InverseDocumentFrequency(nil) has %d entries, want 0", len(idf))
	}
}

func TestInverseDocumentFrequencyTermsComeFromCorpus(t *testing.T) {
	texts := SampleDocuments()
	idf := InverseDocumentFrequency(texts)
	c := NewCorpus(texts, nil)
	for term, w := range idf {
		if c.DocumentFrequency(term) == 0 {
			t.Errorf("idf term %q appears in no text", term)
		}
		if w < 0 {
			t.Errorf("idf[%q] = %v, want >= 0", term, w)
		}
	}
}

func TestCorpusDocumentFrequency(t *testing.T) {
	c := NewCorpus([]string{"cat cat cat", "cat dog", "", "Dog!"}, nil)

	if c.Len() != 4 {
		t.Errorf("Len() = %d, want 4", c.Len())
	}

	tests := []struct {
		term string
		want int
	}{
		{"cat", 2},
		{"dog", 2},
		{"bird", 0},
	}
	for _, tt := range tests {
		if got := c.DocumentFrequency(tt.term); got != tt.want {
			t.Errorf("DocumentFrequency(%q) = %d, want %d", tt.term, got, tt.want)
		}
	}

	// the empty text still counts towards N
	if got, want := c.IDF()["cat"], math.Log(2); !approxEqual(got, want) {
		t.Errorf("idf[cat] = %v, want %v", got, want)
	}
}

func TestCorpusWithSegmentingTokenizer(t *testing.T) {
	c := NewCorpus([]string{"dog-eat-dog", "dog"}, SegmentingTokenizer{})
	if got := c.DocumentFrequency("dog"); got != 2 {
		t.Errorf("DocumentFrequency(dog) = %d, want 2", got)
	}
	if got := c.DocumentFrequency("eat"); got != 1 {
		t.Errorf("DocumentFrequency(eat) = %d, want 1", got)
	}
}
