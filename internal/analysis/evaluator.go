package analysis

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/types"
)

// Metrics holds the set-overlap evaluation of a recommendation list against
// a relevance baseline. Accuracy is computed identically to precision; both
// are defined as the same overlap ratio, a known simplification since no
// negative class exists to define accuracy independently.
type Metrics struct {
	Precision float64 `json:"precision"`
	Accuracy  float64 `json:"accuracy"`
}

// String formats the metrics the way the presentation layer renders them,
// rounded to 3 decimal places.
func (m Metrics) String() string {
	return fmt.Sprintf("Precision: %.3f | Accuracy: %.3f", m.Precision, m.Accuracy)
}

// Evaluate compares recommended titles against the relevance baseline.
// Intersection uses exact title equality and both sides are deduplicated
// before the ratio. An empty recommendation set yields zero metrics by
// convention rather than a division failure.
func Evaluate(recommended, relevant []string) Metrics {
	recSet := dedup(recommended)
	if len(recSet) == 0 {
		return Metrics{}
	}

	relSet := make(map[string]struct{}, len(relevant))
	for _, title := range relevant {
		relSet[title] = struct{}{}
	}

	hits := 0
	for title := range recSet {
		if _, ok := relSet[title]; ok {
			hits++
		}
	}

	ratio := float64(hits) / float64(len(recSet))
	return Metrics{Precision: ratio, Accuracy: ratio}
}

// BaselineTitles builds the "best rated" relevance set: the top-m catalog
// titles by rating, restricted to the requested genre when one is selected.
// Ties keep catalog order.
func BaselineTitles(catalog []types.MovieRecord, genre string, m int) []string {
	pool := make([]types.MovieRecord, 0, len(catalog))
	for _, rec := range catalog {
		if genre != "" && genre != GenreAll && rec.Genre != genre {
			continue
		}
		pool = append(pool, rec)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].IMDBRating > pool[j].IMDBRating
	})

	if m > len(pool) {
		m = len(pool)
	}
	titles := make([]string, 0, m)
	for _, rec := range pool[:m] {
		titles = append(titles, rec.Title)
	}
	return titles
}

func dedup(titles []string) map[string]struct{} {
	set := make(map[string]struct{}, len(titles))
	for _, title := range titles {
		set[title] = struct{}{}
	}
	return set
}
