package simlab

import (
	"math"

	"github.com/RoaringBitmap/roaring"
)

// TermCounts returns the number of occurrences of each token.
func TermCounts(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens))
	for _, t := range tokens {
		counts[t]++
	}
	return counts
}

// TermFrequency returns each token's relative frequency within tokens:
// its occurrence count divided by len(tokens). The frequencies sum to 1.
// An empty sequence yields an empty map.
func TermFrequency(tokens []string) map[string]float64 {
	tf := make(map[string]float64, len(tokens))
	if len(tokens) == 0 {
		return tf
	}
	total := float64(len(tokens))
	for t, c := range TermCounts(tokens) {
		tf[t] = float64(c) / total
	}
	return tf
}

// InverseDocumentFrequency tokenizes texts with the default tokenizer and
// returns ln(N / df) for every token that appears in at least one text, where
// N is len(texts) and df is the number of texts containing the token.
// A token found in every text scores ln(1) = 0. Empty texts yields an empty map.
func InverseDocumentFrequency(texts []string) map[string]float64 {
	return NewCorpus(texts, nil).IDF()
}

// Corpus holds document-frequency statistics for a fixed set of texts.
//
// Like an inverted index it keeps a posting bitmap per term (term -> indices of
// the texts containing it); the document frequency of a term is the bitmap's
// cardinality. A Corpus is built for one comparison and never updated.
type Corpus struct {
	// inverted index: term -> text indices
	postings map[string]*roaring.Bitmap
	// number of texts, including ones that tokenize to nothing
	numTexts int
}

// NewCorpus builds statistics over texts using tok. A nil tok selects the
// default tokenizer.
func NewCorpus(texts []string, tok Tokenizer) *Corpus {
	if tok == nil {
		tok = defaultTokenizer
	}
	c := &Corpus{
		postings: make(map[string]*roaring.Bitmap),
		numTexts: len(texts),
	}
	for i, text := range texts {
		for _, t := range tok.Tokenize(text) {
			if c.postings[t] == nil {
				c.postings[t] = roaring.New()
			}
			c.postings[t].Add(uint32(i))
		}
	}
	return c
}

// Len returns the number of texts in the corpus.
func (c *Corpus) Len() int {
	return c.numTexts
}

// DocumentFrequency returns the number of texts containing term at least once.
func (c *Corpus) DocumentFrequency(term string) int {
	if bm := c.postings[term]; bm != nil {
		return int(bm.GetCardinality())
	}
	return 0
}

// IDF returns a fresh table of ln(N / df) for every term of the corpus.
func (c *Corpus) IDF() map[string]float64 {
	idf := make(map[string]float64, len(c.postings))
	n := float64(c.numTexts)
	for t, bm := range c.postings {
		idf[t] = math.Log(n / float64(bm.GetCardinality()))
	}
	return idf
}
