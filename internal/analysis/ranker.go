package analysis

import (
	"math"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/types"
)

// Filter sentinels accepted from the presentation layer. A filter whose
// input equals its sentinel is skipped entirely.
const (
	GenreAll  = "All Genres"
	FilterAll = "All"
)

// Weights blend rating, normalized popularity and normalized sentiment into
// the hybrid score. The defaults sum to 1.0; that invariant is asserted in
// tests rather than enforced at runtime.
type Weights struct {
	Rating    float64 `json:"rating"`
	Votes     float64 `json:"votes"`
	Sentiment float64 `json:"sentiment"`
}

// DefaultWeights returns the reference blend (0.5, 0.3, 0.2).
func DefaultWeights() Weights {
	return Weights{Rating: 0.5, Votes: 0.3, Sentiment: 0.2}
}

// Filters are applied in a fixed order: minimum rating, year range, genre,
// actor, director. The year range excludes records with a missing year; the
// actor filter is a substring match over up to 4 cast slots; the director
// filter is an exact match.
type Filters struct {
	Genre     string
	Actor     string
	Director  string
	MinRating float64
	YearFrom  int
	YearTo    int
}

// FiltersFromRequest maps a presentation-layer request onto ranker filters.
func FiltersFromRequest(req types.RecommendRequest) Filters {
	return Filters{
		Genre:     req.Genre,
		Actor:     req.Actor,
		Director:  req.Director,
		MinRating: req.MinRating,
		YearFrom:  req.YearFrom,
		YearTo:    req.YearTo,
	}
}

// Ranker normalizes signals over a working set, computes the hybrid score
// and produces a filtered, score-ordered view. Scores are relative to the
// working set being ranked: re-running over a different subset changes the
// normalization basis and thus the scores.
type Ranker struct {
	weights Weights
}

// NewRanker creates a ranker with the given blend weights.
func NewRanker(weights Weights) *Ranker {
	return &Ranker{weights: weights}
}

// Rank scores the working set and returns the filtered records in descending
// FinalScore order. Ties preserve the original catalog order. The input
// slice is not mutated.
func (r *Ranker) Rank(working []types.DerivedRecord, f Filters) []types.DerivedRecord {
	scored := make([]types.DerivedRecord, len(working))
	copy(scored, working)

	sentiments := make([]float64, len(scored))
	votes := make([]float64, len(scored))
	for i, rec := range scored {
		sentiments[i] = rec.Sentiment
		votes[i] = float64(rec.Votes)
	}
	zSentiment := zscores(sentiments)
	zVotes := zscores(votes)

	for i := range scored {
		scored[i].FinalScore = r.weights.Rating*scored[i].IMDBRating +
			r.weights.Votes*zVotes[i] +
			r.weights.Sentiment*zSentiment[i]
	}

	filtered := scored[:0:0]
	for _, rec := range scored {
		if r.matches(&rec, f) {
			filtered = append(filtered, rec)
		}
	}

	// Stable sort keeps equal scores in catalog order.
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].FinalScore > filtered[j].FinalScore
	})

	return filtered
}

func (r *Ranker) matches(rec *types.DerivedRecord, f Filters) bool {
	if rec.IMDBRating < f.MinRating {
		return false
	}

	if f.YearFrom != 0 || f.YearTo != 0 {
		year, ok := rec.Year()
		if !ok {
			return false
		}
		if f.YearFrom != 0 && year < f.YearFrom {
			return false
		}
		if f.YearTo != 0 && year > f.YearTo {
			return false
		}
	}

	if f.Genre != "" && f.Genre != GenreAll && rec.Genre != f.Genre {
		return false
	}

	if f.Actor != "" && f.Actor != FilterAll {
		found := false
		for _, name := range rec.Cast {
			if strings.Contains(name, f.Actor) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Director != "" && f.Director != FilterAll && rec.Director != f.Director {
		return false
	}

	return true
}

// zscores standardizes a column over the working set. A zero-variance column
// normalizes to all zeros instead of dividing by zero.
func zscores(xs []float64) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}

	m := mean(xs)
	sd := stddev(xs, m)
	if sd == 0 {
		return out
	}

	for i, x := range xs {
		out[i] = (x - m) / sd
	}
	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s / float64(len(xs))
}

func stddev(xs []float64, m float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	s := 0.0
	for _, x := range xs {
		d := x - m
		s += d * d
	}
	return math.Sqrt(s / float64(len(xs)))
}
