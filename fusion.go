package simlab

import (
	"fmt"
	"sort"
)

// FusionKind defines the strategy used to merge the rankings of several
// methods into one consensus ranking.
type FusionKind string

const (
	// WeightedSumFusion adds up the scores of each method times its weight
	// finalScore = sum(score_m * weight_m)
	WeightedSumFusion FusionKind = "weighted_sum"

	// ReciprocalRankFusion (RRF) combines results based on their ranks
	// More robust to differences in score scales between methods
	ReciprocalRankFusion FusionKind = "reciprocal_rank"

	// MaxFusion takes the best score any method gave a document
	MaxFusion FusionKind = "max"

	// MinFusion takes the worst score any method gave a document
	MinFusion FusionKind = "min"
)

// Fusion combines per-method rankings into one ranking.
//
// Different strategies handle scale differences between methods differently:
// - WeightedSum: Direct weighted combination of scores
// - ReciprocalRank: Rank-based fusion (ignores raw score scale)
// - Max/Min: Best or worst score across methods
type Fusion interface {
	// Kind returns the kind of fusion strategy
	Kind() FusionKind

	// Combine merges rankings over a document set of size n into fused scores
	// indexed by document position.
	Combine(rankings []*Ranking, n int) []float64
}

// FusionConfig holds configuration for fusion strategies
type FusionConfig struct {
	// Weights is the weight per method (used by WeightedSumFusion).
	// Methods missing from the map weigh 1.
	Weights map[MethodKind]float64

	// K is the constant used in Reciprocal Rank Fusion (default: 60)
	// Lower k gives more weight to top-ranked items
	K float64
}

// DefaultFusionConfig returns the default fusion configuration
func DefaultFusionConfig() *FusionConfig {
	return &FusionConfig{
		Weights: map[MethodKind]float64{},
		K:       60.0,
	}
}

// Singleton instances for stateless fusion strategies
var (
	maxFusionInstance = &maxFusion{}
	minFusionInstance = &minFusion{}
)

// NewFusion creates a new fusion strategy with the given configuration.
// A nil config selects DefaultFusionConfig.
func NewFusion(kind FusionKind, config *FusionConfig) (Fusion, error) {
	if config == nil {
		config = DefaultFusionConfig()
	}

	switch kind {
	case WeightedSumFusion:
		return &weightedSumFusion{config: config}, nil
	case ReciprocalRankFusion:
		return &reciprocalRankFusion{config: config}, nil
	case MaxFusion:
		return maxFusionInstance, nil
	case MinFusion:
		return minFusionInstance, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFusionKind, kind)
	}
}

// Consensus merges the successful rankings of c with f and returns one list
// sorted by fused score descending; equal scores keep document order.
// Failed rankings are left out. With no successful ranking every document
// scores 0.
func (c *Comparison) Consensus(f Fusion) []Result {
	ok := make([]*Ranking, 0, len(c.Rankings))
	for _, r := range c.Rankings {
		if r.Err == nil {
			ok = append(ok, r)
		}
	}

	fused := make([]float64, len(c.Documents))
	if len(ok) > 0 {
		fused = f.Combine(ok, len(c.Documents))
	}

	results := make([]Result, len(c.Documents))
	for i, doc := range c.Documents {
		results[i] = Result{DocID: i, Document: doc, Score: fused[i]}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// ============================================================================
// WEIGHTED SUM FUSION
// ============================================================================

// weightedSumFusion combines scores using weighted sum
//
// Use case: When you want direct control over the relative importance of
// the methods. Simple and interpretable.
type weightedSumFusion struct {
	config *FusionConfig
}

func (f *weightedSumFusion) Kind() FusionKind {
	return WeightedSumFusion
}

func (f *weightedSumFusion) Combine(rankings []*Ranking, n int) []float64 {
	combined := make([]float64, n)
	for _, r := range rankings {
		w, ok := f.config.Weights[r.Kind]
		if !ok {
			w = 1
		}
		for _, res := range r.Results {
			combined[res.DocID] += res.Score * w
		}
	}
	return combined
}

// ============================================================================
// RECIPROCAL RANK FUSION (RRF)
// ============================================================================

// reciprocalRankFusion uses rank-based score combination
//
// Use case: Levenshtein scores cluster high while Jaccard scores cluster low,
// so raw scores do not compare across methods. RRF only uses ranks.
//
// Formula: score = sum(1 / (k + rank_m)) for each method's ranking, where
// rank is 0-indexed position in the ranking.
//
// Reference: https://plg.uwaterloo.ca/~gvcormac/cormacksigir09-rrf.pdf
type reciprocalRankFusion struct {
	config *FusionConfig
}

func (f *reciprocalRankFusion) Kind() FusionKind {
	return ReciprocalRankFusion
}

func (f *reciprocalRankFusion) Combine(rankings []*Ranking, n int) []float64 {
	combined := make([]float64, n)
	k := f.config.K
	for _, r := range rankings {
		for rank, res := range r.Results {
			combined[res.DocID] += 1.0 / (k + float64(rank))
		}
	}
	return combined
}

// ============================================================================
// MAX FUSION
// ============================================================================

// maxFusion takes the maximum score across methods
//
// Use case: When you want documents that excel under at least one method
type maxFusion struct{}

func (f *maxFusion) Kind() FusionKind {
	return MaxFusion
}

func (f *maxFusion) Combine(rankings []*Ranking, n int) []float64 {
	combined := make([]float64, n)
	for _, r := range rankings {
		for _, res := range r.Results {
			combined[res.DocID] = max(combined[res.DocID], res.Score)
		}
	}
	return combined
}

// ============================================================================
// MIN FUSION
// ============================================================================

// minFusion takes the minimum score across methods
//
// Use case: When you want documents that every method agrees on
type minFusion struct{}

func (f *minFusion) Kind() FusionKind {
	return MinFusion
}

func (f *minFusion) Combine(rankings []*Ranking, n int) []float64 {
	combined := make([]float64, n)
	for i := range combined {
		combined[i] = 1
	}
	for _, r := range rankings {
		for _, res := range r.Results {
			combined[res.DocID] = min(combined[res.DocID], res.Score)
		}
	}
	return combined
}
