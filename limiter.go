package simlab

// sanitizeK ensures k is within valid bounds [1, maxResults].
//
// If k is <= 0 or exceeds maxResults, it returns maxResults.
func sanitizeK(k, maxResults int) int {
	if k <= 0 || k > maxResults {
		return maxResults
	}
	return k
}

// Top returns the k best results of the ranking.
// k <= 0 or k larger than the ranking returns every result.
//
// Usage:
//
//	best := res.Ranking(TFIDF).Top(3)
func (r *Ranking) Top(k int) []Result {
	return r.Results[:sanitizeK(k, len(r.Results))]
}

// Autocut returns the results before the cutoff-th jump in the score curve.
// A cutoff of -1 returns every result.
//
// Usage:
//
//	relevant := res.Ranking(Jaccard).Autocut(1)
func (r *Ranking) Autocut(cutoff int) []Result {
	if cutoff == -1 || len(r.Results) == 0 {
		return r.Results
	}

	scores := make([]float64, len(r.Results))
	for i, res := range r.Results {
		scores[i] = res.Score
	}
	return r.Results[:Autocut(scores, cutoff)]
}

// Autocut determines optimal cutoff point in a score distribution.
//
// It analyzes the normalized difference between actual scores and ideal linear
// distribution to find local maxima (extrema). Returns the index before the
// Nth extremum where N is the cutOff parameter. Flat distributions are never cut.
//
// Parameters:
//   - yValues: sorted slice of score values
//   - cutOff: number of extrema to encounter before cutting
//
// Returns the index at which to cut the results.
func Autocut(yValues []float64, cutOff int) int {
	n := len(yValues)
	if n <= 1 {
		return n
	}
	span := yValues[n-1] - yValues[0]
	if span == 0 {
		return n
	}

	diff := make([]float64, n)
	step := 1. / (float64(n) - 1.)
	for i := range yValues {
		xValue := float64(i) * step
		yValueNorm := (yValues[i] - yValues[0]) / span
		diff[i] = yValueNorm - xValue
	}

	extremaCount := 0
	for i := 1; i < n; i++ {
		var isExtremum bool
		if i == n-1 {
			// for last element there is no "next" point
			isExtremum = i >= 2 && diff[i] > diff[i-1] && diff[i] > diff[i-2]
		} else {
			isExtremum = diff[i] > diff[i-1] && diff[i] > diff[i+1]
		}
		if isExtremum {
			extremaCount++
			if extremaCount >= cutOff {
				return i
			}
		}
	}
	return n
}
