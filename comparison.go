package simlab

import (
	"encoding/json"
	"fmt"
	"math"
	"runtime"
	"sort"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"
)

// Result is the score of one document under one method.
type Result struct {
	DocID    int     `json:"doc_id"`   // zero-based position in the document set
	Document string  `json:"document"` // document text
	Score    float64 `json:"score"`    // similarity in [0, 1]
}

// Ranking is the outcome of one method over the document set.
// Results are sorted by score descending; equal scores keep document order.
// If the method failed, Err is set and Results is empty.
type Ranking struct {
	Kind    MethodKind
	Results []Result
	Err     error
}

// Comparison is the outcome of running every configured method for one query.
type Comparison struct {
	// Query is the query that was scored
	Query string
	// Documents is the document set actually used, including the default set
	// when the caller passed none
	Documents []string
	// Rankings holds one ranking per method, in method order
	Rankings []*Ranking
	// MethodInfo is the catalog entry of every method
	MethodInfo map[MethodKind]MethodInfo
}

// Ranking returns the ranking for kind, or nil if kind was not run.
func (c *Comparison) Ranking(kind MethodKind) *Ranking {
	for _, r := range c.Rankings {
		if r.Kind == kind {
			return r
		}
	}
	return nil
}

// Scores returns the scores of kind indexed by document position, or nil if
// kind was not run or failed.
func (c *Comparison) Scores(kind MethodKind) []float64 {
	r := c.Ranking(kind)
	if r == nil || r.Err != nil {
		return nil
	}
	scores := make([]float64, len(c.Documents))
	for _, res := range r.Results {
		scores[res.DocID] = res.Score
	}
	return scores
}

// MarshalJSON encodes the comparison as
// {"query", "documents", "results": {kind: [...]}, "errors": {kind: msg}, "method_info": {...}}.
func (c *Comparison) MarshalJSON() ([]byte, error) {
	results := make(map[MethodKind][]Result, len(c.Rankings))
	var errs map[MethodKind]string
	for _, r := range c.Rankings {
		results[r.Kind] = r.Results
		if r.Err != nil {
			if errs == nil {
				errs = make(map[MethodKind]string)
			}
			errs[r.Kind] = r.Err.Error()
		}
	}
	return json.Marshal(struct {
		Query      string                    `json:"query"`
		Documents  []string                  `json:"documents"`
		Results    map[MethodKind][]Result   `json:"results"`
		Errors     map[MethodKind]string     `json:"errors,omitempty"`
		MethodInfo map[MethodKind]MethodInfo `json:"method_info"`
	}{
		Query:      c.Query,
		Documents:  c.Documents,
		Results:    results,
		Errors:     errs,
		MethodInfo: c.MethodInfo,
	})
}

// ComparerOption configures a Comparer.
type ComparerOption func(*Comparer)

// WithDefaultDocuments sets the document set used when Compare is called
// without documents. The slice is copied.
func WithDefaultDocuments(docs []string) ComparerOption {
	return func(c *Comparer) {
		c.defaults = append(make([]string, 0, len(docs)), docs...)
	}
}

// WithMethods restricts the comparison to the given kinds, in the given order.
func WithMethods(kinds ...MethodKind) ComparerOption {
	return func(c *Comparer) {
		c.kinds = append([]MethodKind(nil), kinds...)
	}
}

// WithTokenizer sets the tokenizer of the word-based methods.
func WithTokenizer(tok Tokenizer) ComparerOption {
	return func(c *Comparer) {
		c.tok = tok
	}
}

// WithWorkers bounds the number of goroutines scoring in parallel.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) ComparerOption {
	return func(c *Comparer) {
		c.workers = n
	}
}

// Comparer runs several similarity methods over a document set and ranks the
// results of each method independently.
//
// A Comparer holds only configuration; every call to Compare builds its
// statistics from scratch. It is safe for concurrent use.
type Comparer struct {
	defaults []string
	kinds    []MethodKind
	tok      Tokenizer
	workers  int
	methods  []Method
}

// NewComparer creates a Comparer. Without options it runs all five methods
// over the built-in sample documents using the default tokenizer.
//
// Returns ErrUnknownMethodKind if WithMethods names an unknown kind.
//
// Example:
//
//	cmp, _ := NewComparer(WithMethods(Jaccard, TFIDF))
//	res, err := cmp.Compare("brown fox", nil)
func NewComparer(opts ...ComparerOption) (*Comparer, error) {
	c := &Comparer{
		defaults: SampleDocuments(),
		kinds:    Kinds(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.workers < 1 {
		c.workers = runtime.GOMAXPROCS(0)
	}

	seen := make(map[MethodKind]bool, len(c.kinds))
	for _, kind := range c.kinds {
		if seen[kind] {
			continue
		}
		seen[kind] = true
		m, err := NewMethodWithTokenizer(kind, c.tok)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, kind)
		}
		c.methods = append(c.methods, m)
	}
	return c, nil
}

// DefaultDocuments returns a copy of the document set used when Compare is
// given none.
func (c *Comparer) DefaultDocuments() []string {
	return append(make([]string, 0, len(c.defaults)), c.defaults...)
}

// Compare scores every document against query under each configured method.
//
// A nil documents slice selects the default document set; a non-nil empty
// slice yields empty rankings. The query and every document must be valid
// UTF-8, otherwise an error wrapping ErrInvalidInput is returned and nothing
// is scored.
//
// A method that panics or produces a score outside [0, 1] gets its
// Ranking.Err set; the other methods are unaffected.
func (c *Comparer) Compare(query string, documents []string) (*Comparison, error) {
	if documents == nil {
		documents = c.DefaultDocuments()
	} else {
		documents = append(make([]string, 0, len(documents)), documents...)
	}
	if err := validateInput(query, documents); err != nil {
		return nil, err
	}

	// score matrix: method x document, each cell written by one goroutine
	scores := make([][]float64, len(c.methods))
	errs := make([][]error, len(c.methods))

	var g errgroup.Group
	g.SetLimit(c.workers)
	for m, method := range c.methods {
		scores[m] = make([]float64, len(documents))
		errs[m] = make([]error, len(documents))
		for i, doc := range documents {
			g.Go(func() error {
				scores[m][i], errs[m][i] = scoreDocument(method, query, doc, documents)
				return nil
			})
		}
	}
	_ = g.Wait()

	res := &Comparison{
		Query:      query,
		Documents:  documents,
		Rankings:   make([]*Ranking, len(c.methods)),
		MethodInfo: GetMethodInfo(),
	}
	for m, method := range c.methods {
		res.Rankings[m] = rank(method.Kind(), documents, scores[m], errs[m])
	}
	return res, nil
}

// rank sorts one method's scores into a Ranking. The first per-document error
// fails the whole ranking.
func rank(kind MethodKind, documents []string, scores []float64, errs []error) *Ranking {
	r := &Ranking{Kind: kind, Results: make([]Result, 0, len(documents))}
	for i, err := range errs {
		if err != nil {
			r.Err = fmt.Errorf("document %d: %w", i, err)
			return r
		}
	}
	for i, doc := range documents {
		r.Results = append(r.Results, Result{DocID: i, Document: doc, Score: scores[i]})
	}
	sort.SliceStable(r.Results, func(i, j int) bool {
		return r.Results[i].Score > r.Results[j].Score
	})
	return r
}

// scoreDocument runs one method on one document and checks the score bounds.
func scoreDocument(method Method, query, doc string, documents []string) (score float64, err error) {
	defer func() {
		if p := recover(); p != nil {
			score, err = 0, fmt.Errorf("%w: %s: %v", ErrMethodFailed, method.Kind(), p)
		}
	}()

	score = method.Score(query, doc, documents)
	if math.IsNaN(score) || score < 0 || score > 1 {
		return 0, fmt.Errorf("%w: %s scored %v", ErrScoreOutOfRange, method.Kind(), score)
	}
	return score, nil
}

func validateInput(query string, documents []string) error {
	if !utf8.ValidString(query) {
		return fmt.Errorf("%w: query is not valid UTF-8", ErrInvalidInput)
	}
	for i, doc := range documents {
		if !utf8.ValidString(doc) {
			return fmt.Errorf("%w: document %d is not valid UTF-8", ErrInvalidInput, i)
		}
	}
	return nil
}

var defaultComparer, _ = NewComparer()

// CompareAllMethods scores documents against query under all five methods.
// A nil documents slice selects the built-in sample documents.
//
// Example:
//
//	res, err := CompareAllMethods("brown fox", nil)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, r := range res.Ranking(Jaccard).Results {
//	    fmt.Printf("%d %.3f %s\n", r.DocID, r.Score, r.Document)
//	}
func CompareAllMethods(query string, documents []string) (*Comparison, error) {
	return defaultComparer.Compare(query, documents)
}
