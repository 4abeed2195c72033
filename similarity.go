package simlab

import (
	"fmt"
	"maps"
	"math"
	"slices"
)

// MethodKind identifies one of the similarity algorithms.
// The set of kinds is closed; see Kinds.
type MethodKind string

const (
	// Jaccard is the ratio of shared distinct words to all distinct words.
	// Formula: |A ∩ B| / |A ∪ B|
	Jaccard MethodKind = "jaccard"

	// Cosine is the cosine of the angle between raw word-count vectors.
	// Formula: (A · B) / (||A|| × ||B||)
	Cosine MethodKind = "cosine"

	// TFIDF is the cosine between TF-IDF weighted vectors, with IDF taken over
	// the documents of the current comparison plus the query.
	TFIDF MethodKind = "tfidf"

	// Levenshtein is 1 - editDistance / maxLength over lowercased characters.
	Levenshtein MethodKind = "levenshtein"

	// WordOverlap is the share of distinct query words found in the document.
	// Formula: |A ∩ B| / |A|
	WordOverlap MethodKind = "word_overlap"
)

// Kinds returns every method kind in canonical order.
func Kinds() []MethodKind {
	return []MethodKind{Jaccard, Cosine, TFIDF, Levenshtein, WordOverlap}
}

// Valid reports whether k is one of the known method kinds.
func (k MethodKind) Valid() bool {
	switch k {
	case Jaccard, Cosine, TFIDF, Levenshtein, WordOverlap:
		return true
	}
	return false
}

// ParseMethodKind converts s to a MethodKind.
func ParseMethodKind(s string) (MethodKind, error) {
	k := MethodKind(s)
	if !k.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMethodKind, s)
	}
	return k, nil
}

// Method scores how similar a document is to a query.
// Implementations are stateless and safe for concurrent use.
type Method interface {
	// Kind returns the kind of the method
	Kind() MethodKind

	// Score returns the similarity of document to query in [0, 1].
	// documents is the full document set of the comparison; only corpus-aware
	// methods (TFIDF) look at it.
	Score(query, document string, documents []string) float64
}

// Singleton instances of the methods bound to the default tokenizer.
var (
	jaccardMethodImpl     = jaccardMethod{tok: defaultTokenizer}
	cosineMethodImpl      = cosineMethod{tok: defaultTokenizer}
	tfidfMethodImpl       = tfidfMethod{tok: defaultTokenizer}
	levenshteinMethodImpl = levenshteinMethod{}
	wordOverlapMethodImpl = wordOverlapMethod{tok: defaultTokenizer}
)

// NewMethod returns a singleton Method for kind using the default tokenizer.
// Returns ErrUnknownMethodKind if the kind is not recognized.
//
// Example:
//
//	m, err := NewMethod(Jaccard)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	score := m.Score("brown fox", "the quick brown fox", nil)
func NewMethod(kind MethodKind) (Method, error) {
	switch kind {
	case Jaccard:
		return jaccardMethodImpl, nil
	case Cosine:
		return cosineMethodImpl, nil
	case TFIDF:
		return tfidfMethodImpl, nil
	case Levenshtein:
		return levenshteinMethodImpl, nil
	case WordOverlap:
		return wordOverlapMethodImpl, nil
	default:
		return nil, ErrUnknownMethodKind
	}
}

// NewMethodWithTokenizer returns a Method for kind that tokenizes with tok.
// Levenshtein works on characters and ignores tok.
func NewMethodWithTokenizer(kind MethodKind, tok Tokenizer) (Method, error) {
	if tok == nil {
		return NewMethod(kind)
	}
	switch kind {
	case Jaccard:
		return jaccardMethod{tok: tok}, nil
	case Cosine:
		return cosineMethod{tok: tok}, nil
	case TFIDF:
		return tfidfMethod{tok: tok}, nil
	case Levenshtein:
		return levenshteinMethodImpl, nil
	case WordOverlap:
		return wordOverlapMethod{tok: tok}, nil
	default:
		return nil, ErrUnknownMethodKind
	}
}

// JaccardSimilarity returns |tokens(query) ∩ tokens(document)| / |tokens(query) ∪ tokens(document)|
// over distinct tokens. If either side has no tokens the score is 0.
func JaccardSimilarity(query, document string) float64 {
	return jaccardMethodImpl.Score(query, document, nil)
}

// CosineSimilarity returns the cosine between the raw token-count vectors of
// query and document. If either side has no tokens the score is 0.
func CosineSimilarity(query, document string) float64 {
	return cosineMethodImpl.Score(query, document, nil)
}

// TFIDFSimilarity returns the cosine between the TF-IDF vectors of query and
// document, with IDF computed over documents plus the query.
func TFIDFSimilarity(query, document string, documents []string) float64 {
	return tfidfMethodImpl.Score(query, document, documents)
}

// WordOverlapSimilarity returns the share of distinct query tokens that also
// occur in document. It is asymmetric: the denominator is the query only.
func WordOverlapSimilarity(query, document string) float64 {
	return wordOverlapMethodImpl.Score(query, document, nil)
}

// jaccardMethod implements Jaccard similarity over token sets.
type jaccardMethod struct {
	tok Tokenizer
}

func (m jaccardMethod) Kind() MethodKind {
	return Jaccard
}

func (m jaccardMethod) Score(query, document string, _ []string) float64 {
	q, d := tokenSets(m.tok, query, document)
	if q.IsEmpty() || d.IsEmpty() {
		return 0
	}
	union := q.OrCardinality(d)
	if union == 0 {
		return 0
	}
	return float64(q.AndCardinality(d)) / float64(union)
}

// cosineMethod implements cosine similarity over raw token counts.
type cosineMethod struct {
	tok Tokenizer
}

func (m cosineMethod) Kind() MethodKind {
	return Cosine
}

func (m cosineMethod) Score(query, document string, _ []string) float64 {
	q := TermCounts(m.tok.Tokenize(query))
	d := TermCounts(m.tok.Tokenize(document))
	if len(q) == 0 || len(d) == 0 {
		return 0
	}

	var dot, qNorm, dNorm float64
	for t, qc := range q {
		qNorm += float64(qc * qc)
		dot += float64(qc * d[t])
	}
	for _, dc := range d {
		dNorm += float64(dc * dc)
	}
	return cosineOf(dot, qNorm, dNorm)
}

// tfidfMethod implements cosine similarity over TF-IDF weighted vectors.
// IDF is rebuilt on every call from the documents passed in, so scores depend
// on the document set of the comparison.
type tfidfMethod struct {
	tok Tokenizer
}

func (m tfidfMethod) Kind() MethodKind {
	return TFIDF
}

func (m tfidfMethod) Score(query, document string, documents []string) float64 {
	qTokens := m.tok.Tokenize(query)
	dTokens := m.tok.Tokenize(document)
	if len(qTokens) == 0 || len(dTokens) == 0 {
		return 0
	}

	texts := make([]string, 0, len(documents)+1)
	texts = append(texts, documents...)
	texts = append(texts, query)
	return tfidfCosine(qTokens, dTokens, NewCorpus(texts, m.tok).IDF())
}

// tfidfCosine computes the cosine of two token sequences weighted by a fixed
// IDF table.
func tfidfCosine(qTokens, dTokens []string, idf map[string]float64) float64 {
	q := weigh(TermFrequency(qTokens), idf)
	d := weigh(TermFrequency(dTokens), idf)

	// sum in term order so repeated calls produce bit-identical scores
	var dot, qNorm, dNorm float64
	for _, t := range slices.Sorted(maps.Keys(q)) {
		qNorm += q[t] * q[t]
		dot += q[t] * d[t]
	}
	for _, t := range slices.Sorted(maps.Keys(d)) {
		dNorm += d[t] * d[t]
	}
	return cosineOf(dot, qNorm, dNorm)
}

// weigh multiplies each term frequency by its IDF. Terms missing from idf
// weigh zero.
func weigh(tf, idf map[string]float64) map[string]float64 {
	w := make(map[string]float64, len(tf))
	for t, f := range tf {
		w[t] = f * idf[t]
	}
	return w
}

// cosineOf turns a dot product and two squared norms into a cosine clamped
// to [0, 1]. A zero norm yields 0.
func cosineOf(dot, aNormSq, bNormSq float64) float64 {
	if aNormSq == 0 || bNormSq == 0 {
		return 0
	}
	s := dot / math.Sqrt(aNormSq*bNormSq)
	return math.Max(0, math.Min(1, s))
}

// wordOverlapMethod implements the query-coverage ratio.
type wordOverlapMethod struct {
	tok Tokenizer
}

func (m wordOverlapMethod) Kind() MethodKind {
	return WordOverlap
}

func (m wordOverlapMethod) Score(query, document string, _ []string) float64 {
	q, d := tokenSets(m.tok, query, document)
	if q.IsEmpty() {
		return 0
	}
	return float64(q.AndCardinality(d)) / float64(q.GetCardinality())
}
