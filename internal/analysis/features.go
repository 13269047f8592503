package analysis

import (
	"sort"

	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/types"
)

// GenreEncoder assigns each distinct genre label a stable integer code.
// Codes follow the lexicographic order of the distinct labels, so repeated
// runs over the same catalog always produce the same encoding. The clusterer
// and the ranker both rely on that stability.
type GenreEncoder struct {
	codes  map[string]int
	labels []string
}

// NewGenreEncoder builds the encoding from the full catalog. An empty
// catalog yields an empty encoding.
func NewGenreEncoder(records []types.MovieRecord) *GenreEncoder {
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		seen[rec.Genre] = struct{}{}
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	codes := make(map[string]int, len(labels))
	for i, label := range labels {
		codes[label] = i
	}

	return &GenreEncoder{codes: codes, labels: labels}
}

// Code returns the integer code for a genre label. The second return value
// is false for labels that were not part of the catalog.
func (e *GenreEncoder) Code(genre string) (int, bool) {
	code, ok := e.codes[genre]
	return code, ok
}

// Labels returns the distinct genre labels in code order.
func (e *GenreEncoder) Labels() []string {
	out := make([]string, len(e.labels))
	copy(out, e.labels)
	return out
}

// Len returns the number of distinct genres in the encoding.
func (e *GenreEncoder) Len() int {
	return len(e.labels)
}
