package analysis

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
)

// Clustering defaults. The seed is fixed so that cluster ids are
// reproducible run to run, and every fit keeps the lowest-inertia result out
// of the restarts.
const (
	DefaultClusterCount = 5
	DefaultRestarts     = 25
	DefaultSeed         = 42

	maxKMeansIterations = 300
)

// ErrTooFewDistinctPoints is returned when the requested cluster count
// exceeds the number of distinct feature points. Silently reducing k would
// make cluster ids incomparable across runs, so this is fatal instead.
var ErrTooFewDistinctPoints = errors.New("fewer distinct feature points than clusters")

// KMeans partitions 2-dimensional points into K clusters. The feature space
// is (genreCode, sentiment) in raw units: no scaling is applied before
// clustering, so the genre-code range dominates the sentiment range.
type KMeans struct {
	K        int
	Restarts int
	Seed     int64
}

// NewKMeans returns a clusterer with the default configuration.
func NewKMeans() *KMeans {
	return &KMeans{K: DefaultClusterCount, Restarts: DefaultRestarts, Seed: DefaultSeed}
}

// Fit assigns every point a cluster id in [0, K). It runs Lloyd's algorithm
// Restarts times from different deterministic initializations and keeps the
// assignment with the lowest inertia.
func (km *KMeans) Fit(points [][2]float64) ([]int, error) {
	if km.K < 1 {
		return nil, fmt.Errorf("invalid cluster count %d", km.K)
	}
	if len(points) == 0 {
		return []int{}, nil
	}

	distinct := distinctPoints(points)
	if len(distinct) < km.K {
		return nil, fmt.Errorf("%w: have %d distinct points, need %d",
			ErrTooFewDistinctPoints, len(distinct), km.K)
	}

	restarts := km.Restarts
	if restarts < 1 {
		restarts = 1
	}

	var best []int
	bestInertia := math.Inf(1)
	for r := 0; r < restarts; r++ {
		rng := rand.New(rand.NewSource(km.Seed + int64(r)))
		assignments, inertia := km.run(points, distinct, rng)
		if inertia < bestInertia {
			bestInertia = inertia
			best = assignments
		}
	}

	return best, nil
}

// run performs one full Lloyd iteration loop from a fresh initialization and
// returns the final assignment and its inertia.
func (km *KMeans) run(points, distinct [][2]float64, rng *rand.Rand) ([]int, float64) {
	// Forgy initialization over the distinct points so no two centroids
	// start on top of each other.
	perm := rng.Perm(len(distinct))
	centroids := make([][2]float64, km.K)
	for i := 0; i < km.K; i++ {
		centroids[i] = distinct[perm[i]]
	}

	assignments := make([]int, len(points))
	for iter := 0; iter < maxKMeansIterations; iter++ {
		changed := false
		for i, p := range points {
			c := nearest(p, centroids)
			if c != assignments[i] {
				assignments[i] = c
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// Recompute centroids; an empty cluster keeps its previous one.
		sums := make([][2]float64, km.K)
		counts := make([]int, km.K)
		for i, p := range points {
			c := assignments[i]
			sums[c][0] += p[0]
			sums[c][1] += p[1]
			counts[c]++
		}
		for c := 0; c < km.K; c++ {
			if counts[c] > 0 {
				centroids[c] = [2]float64{
					sums[c][0] / float64(counts[c]),
					sums[c][1] / float64(counts[c]),
				}
			}
		}
	}

	inertia := 0.0
	for i, p := range points {
		inertia += squaredDistance(p, centroids[assignments[i]])
	}
	return assignments, inertia
}

func nearest(p [2]float64, centroids [][2]float64) int {
	best := 0
	bestDist := squaredDistance(p, centroids[0])
	for c := 1; c < len(centroids); c++ {
		if d := squaredDistance(p, centroids[c]); d < bestDist {
			bestDist = d
			best = c
		}
	}
	return best
}

func squaredDistance(a, b [2]float64) float64 {
	dx := a[0] - b[0]
	dy := a[1] - b[1]
	return dx*dx + dy*dy
}

func distinctPoints(points [][2]float64) [][2]float64 {
	seen := make(map[[2]float64]struct{}, len(points))
	out := make([][2]float64, 0, len(points))
	for _, p := range points {
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
