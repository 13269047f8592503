package analysis

import (
	"math"
	"testing"

	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(v int) *int { return &v }

func derivedRecord(title, genre string, year int, rating float64, votes int) types.DerivedRecord {
	return types.DerivedRecord{
		MovieRecord: types.MovieRecord{
			Title:       title,
			Genre:       genre,
			ReleaseYear: intPtr(year),
			IMDBRating:  rating,
			Votes:       votes,
		},
	}
}

func TestDefaultWeightsSumToOne(t *testing.T) {
	w := DefaultWeights()
	assert.InDelta(t, 1.0, w.Rating+w.Votes+w.Sentiment, 1e-12)
}

func TestZScores(t *testing.T) {
	tests := []struct {
		name  string
		input []float64
	}{
		{name: "varied column", input: []float64{1, 2, 3, 4, 5, 9, -2}},
		{name: "two values", input: []float64{10, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			z := zscores(tt.input)
			require.Len(t, z, len(tt.input))

			assert.InDelta(t, 0, mean(z), 1e-9)
			assert.InDelta(t, 1, stddev(z, mean(z)), 1e-9)
		})
	}
}

func TestZScoresConstantColumnIsZeroFilled(t *testing.T) {
	z := zscores([]float64{7, 7, 7, 7})
	for _, v := range z {
		assert.Zero(t, v)
	}
}

func TestZScoresEmptyColumn(t *testing.T) {
	assert.Empty(t, zscores(nil))
}

func TestRankSortsDescendingByFinalScore(t *testing.T) {
	ranker := NewRanker(DefaultWeights())

	working := []types.DerivedRecord{
		derivedRecord("low", "Drama", 2000, 6.0, 1000),
		derivedRecord("high", "Drama", 2001, 9.5, 900000),
		derivedRecord("mid", "Drama", 2002, 7.5, 50000),
	}

	ranked := ranker.Rank(working, Filters{})

	require.Len(t, ranked, 3)
	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].FinalScore, ranked[i].FinalScore)
	}
	assert.Equal(t, "high", ranked[0].Title)
	assert.Equal(t, "low", ranked[2].Title)
}

func TestRankTiesPreserveCatalogOrder(t *testing.T) {
	ranker := NewRanker(DefaultWeights())

	// Identical in everything except catalog position.
	first := derivedRecord("first", "Drama", 2005, 8.0, 1000)
	second := derivedRecord("second", "Drama", 2005, 8.0, 1000)
	working := []types.DerivedRecord{first, second}

	ranked := ranker.Rank(working, Filters{})

	require.Len(t, ranked, 2)
	assert.Equal(t, ranked[0].FinalScore, ranked[1].FinalScore)
	assert.Equal(t, "first", ranked[0].Title)
	assert.Equal(t, "second", ranked[1].Title)
}

func TestRankDoesNotMutateInput(t *testing.T) {
	ranker := NewRanker(DefaultWeights())

	working := []types.DerivedRecord{
		derivedRecord("a", "Drama", 2000, 6.0, 1000),
		derivedRecord("b", "Drama", 2001, 9.0, 2000),
	}

	ranker.Rank(working, Filters{})

	assert.Equal(t, "a", working[0].Title)
	assert.Zero(t, working[0].FinalScore)
}

func TestRankFilters(t *testing.T) {
	working := []types.DerivedRecord{
		derivedRecord("old drama", "Drama", 1985, 8.2, 50000),
		derivedRecord("new drama", "Drama", 2010, 8.0, 60000),
		derivedRecord("weak drama", "Drama", 2012, 6.1, 1000),
		derivedRecord("new action", "Action", 2015, 7.9, 80000),
	}
	working[1].Cast = []string{"Alice Johnson", "Bob Stone"}
	working[1].Director = "Jane Smith"
	working[3].Cast = []string{"Carol Danvers"}

	noYear := derivedRecord("timeless", "Drama", 0, 9.0, 500)
	noYear.ReleaseYear = nil
	working = append(working, noYear)

	tests := []struct {
		name     string
		filters  Filters
		expected []string
	}{
		{
			name:     "sentinels disable categorical filters",
			filters:  Filters{Genre: GenreAll, Actor: FilterAll, Director: FilterAll},
			expected: []string{"timeless", "old drama", "new drama", "new action", "weak drama"},
		},
		{
			name:     "minimum rating is inclusive",
			filters:  Filters{MinRating: 7.9},
			expected: []string{"timeless", "old drama", "new drama", "new action"},
		},
		{
			name:     "year range excludes records with a missing year",
			filters:  Filters{YearFrom: 2000, YearTo: 2020},
			expected: []string{"new drama", "new action", "weak drama"},
		},
		{
			name:     "open-ended year range only bounds one side",
			filters:  Filters{YearFrom: 2011},
			expected: []string{"new action", "weak drama"},
		},
		{
			name:     "genre filter matches the exact genre string",
			filters:  Filters{Genre: "Drama", YearFrom: 2000, YearTo: 2020},
			expected: []string{"new drama", "weak drama"},
		},
		{
			name:     "actor filter is a substring match over cast slots",
			filters:  Filters{Actor: "Johnson"},
			expected: []string{"new drama"},
		},
		{
			name:     "director filter is an exact match",
			filters:  Filters{Director: "Jane Smith"},
			expected: []string{"new drama"},
		},
		{
			name: "combined filters intersect",
			filters: Filters{
				Genre:     "Drama",
				Actor:     "Alice",
				Director:  "Jane Smith",
				MinRating: 7.0,
				YearFrom:  2000,
				YearTo:    2020,
			},
			expected: []string{"new drama"},
		},
		{
			name:     "filters can exclude everything",
			filters:  Filters{Genre: "Western"},
			expected: []string{},
		},
	}

	ranker := NewRanker(DefaultWeights())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := ranker.Rank(working, tt.filters)

			titles := make([]string, 0, len(ranked))
			for _, rec := range ranked {
				titles = append(titles, rec.Title)
			}
			assert.ElementsMatch(t, tt.expected, titles)
		})
	}
}

func TestRankCombinedFiltersEqualIntersection(t *testing.T) {
	working := []types.DerivedRecord{
		derivedRecord("a", "Drama", 2005, 8.5, 10000),
		derivedRecord("b", "Drama", 1990, 8.5, 20000),
		derivedRecord("c", "Action", 2010, 9.0, 30000),
		derivedRecord("d", "Drama", 2012, 6.5, 40000),
		derivedRecord("e", "Drama", 2015, 7.2, 50000),
	}

	ranker := NewRanker(DefaultWeights())

	byRating := titleSet(ranker.Rank(working, Filters{MinRating: 7.0}))
	byYear := titleSet(ranker.Rank(working, Filters{YearFrom: 2000, YearTo: 2020}))
	byGenre := titleSet(ranker.Rank(working, Filters{Genre: "Drama"}))

	combined := titleSet(ranker.Rank(working, Filters{
		MinRating: 7.0,
		YearFrom:  2000,
		YearTo:    2020,
		Genre:     "Drama",
	}))

	expected := make(map[string]struct{})
	for title := range byRating {
		_, inYear := byYear[title]
		_, inGenre := byGenre[title]
		if inYear && inGenre {
			expected[title] = struct{}{}
		}
	}
	assert.Equal(t, expected, combined)
}

func titleSet(records []types.DerivedRecord) map[string]struct{} {
	set := make(map[string]struct{}, len(records))
	for _, rec := range records {
		set[rec.Title] = struct{}{}
	}
	return set
}

func TestRankScoresAreRelativeToWorkingSet(t *testing.T) {
	ranker := NewRanker(DefaultWeights())

	full := []types.DerivedRecord{
		derivedRecord("a", "Drama", 2000, 8.0, 100),
		derivedRecord("b", "Drama", 2001, 8.0, 100000),
		derivedRecord("c", "Drama", 2002, 8.0, 100),
	}
	subset := full[:2]

	fullRanked := ranker.Rank(full, Filters{})
	subsetRanked := ranker.Rank(subset, Filters{})

	fullScore := scoreOf(t, fullRanked, "a")
	subsetScore := scoreOf(t, subsetRanked, "a")
	assert.False(t, math.Abs(fullScore-subsetScore) < 1e-12,
		"normalization basis should change with the working set")
}

func scoreOf(t *testing.T, records []types.DerivedRecord, title string) float64 {
	t.Helper()
	for _, rec := range records {
		if rec.Title == title {
			return rec.FinalScore
		}
	}
	t.Fatalf("title %q not found", title)
	return 0
}
