package analysis

import (
	"fmt"
	"time"

	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/types"
)

// Options configure one Recommender.
type Options struct {
	ClusterCount int
	Restarts     int
	Seed         int64
	Weights      Weights
	TopN         int
	BaselineSize int
}

// DefaultOptions returns the reference configuration: 5 clusters, 25
// restarts, fixed seed, the (0.5, 0.3, 0.2) blend, top-10 recommendations
// evaluated against a top-50 best-rated baseline.
func DefaultOptions() Options {
	return Options{
		ClusterCount: DefaultClusterCount,
		Restarts:     DefaultRestarts,
		Seed:         DefaultSeed,
		Weights:      DefaultWeights(),
		TopN:         10,
		BaselineSize: 50,
	}
}

// Result is the output of one pipeline invocation: the top-N ranked records
// for the table and charts, the full clustered catalog for the cluster
// scatter chart, and the formatted evaluation summary.
type Result struct {
	Top       []types.DerivedRecord `json:"top"`
	Clustered []types.DerivedRecord `json:"clustered"`
	Metrics   Metrics               `json:"metrics"`
	Summary   string                `json:"summary"`
	Elapsed   time.Duration         `json:"-"`
}

// Recommender runs the full derive → sentiment → cluster → rank → evaluate
// sequence over an immutable catalog. Every invocation recomputes all
// derived attributes from scratch; the catalog itself is never mutated, so
// a single Recommender is safe to share across requests.
type Recommender struct {
	catalog []types.MovieRecord
	opts    Options
	scorer  *LexiconScorer
}

// NewRecommender wraps a loaded catalog. The catalog slice is treated as
// read-only shared state from here on.
func NewRecommender(catalog []types.MovieRecord, opts Options) *Recommender {
	return &Recommender{
		catalog: catalog,
		opts:    opts,
		scorer:  NewLexiconScorer(),
	}
}

// Catalog returns the loaded catalog.
func (r *Recommender) Catalog() []types.MovieRecord {
	return r.catalog
}

// Genres returns the distinct genre labels of the catalog in code order.
func (r *Recommender) Genres() []string {
	return NewGenreEncoder(r.catalog).Labels()
}

// Recommend executes the pipeline for one request. A cluster count that
// exceeds the number of distinct feature points is a fatal configuration
// error and aborts the whole request; filters that match nothing yield an
// empty Top with zero metrics, which is not an error.
func (r *Recommender) Recommend(filters Filters) (*Result, error) {
	start := time.Now()

	derived, err := r.derive()
	if err != nil {
		return nil, err
	}

	ranker := NewRanker(r.opts.Weights)
	ranked := ranker.Rank(derived, filters)

	topN := r.opts.TopN
	if topN > len(ranked) {
		topN = len(ranked)
	}
	top := ranked[:topN]

	recommended := make([]string, len(top))
	for i, rec := range top {
		recommended[i] = rec.Title
	}
	relevant := BaselineTitles(r.catalog, filters.Genre, r.opts.BaselineSize)
	metrics := Evaluate(recommended, relevant)

	return &Result{
		Top:       top,
		Clustered: derived,
		Metrics:   metrics,
		Summary:   metrics.String(),
		Elapsed:   time.Since(start),
	}, nil
}

// derive produces the clustered working set: genre codes, sentiment scores
// and cluster ids for every catalog record.
func (r *Recommender) derive() ([]types.DerivedRecord, error) {
	encoder := NewGenreEncoder(r.catalog)

	overviews := make([]string, len(r.catalog))
	for i, rec := range r.catalog {
		overviews[i] = rec.Overview
	}
	sentiments := r.scorer.ScoreAll(overviews)

	derived := make([]types.DerivedRecord, len(r.catalog))
	points := make([][2]float64, len(r.catalog))
	for i, rec := range r.catalog {
		code, _ := encoder.Code(rec.Genre)
		derived[i] = types.DerivedRecord{
			MovieRecord: rec,
			GenreCode:   code,
			Sentiment:   sentiments[i],
		}
		points[i] = [2]float64{float64(code), sentiments[i]}
	}

	if len(derived) == 0 {
		return derived, nil
	}

	km := &KMeans{K: r.opts.ClusterCount, Restarts: r.opts.Restarts, Seed: r.opts.Seed}
	clusters, err := km.Fit(points)
	if err != nil {
		return nil, fmt.Errorf("clustering failed: %w", err)
	}
	for i := range derived {
		derived[i].Cluster = clusters[i]
	}

	return derived, nil
}
