package analysis

import (
	"fmt"
	"testing"

	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syntheticCatalog builds n records with ratings in [6,9] and years in
// [1990,2020], spread across a handful of genres and synopses.
func syntheticCatalog(n int) []types.MovieRecord {
	genres := []string{"Drama", "Action", "Comedy", "Thriller", "Sci-Fi"}
	overviews := []string{
		"A heroic triumph of love and friendship",
		"A brutal murder drags the city into terror",
		"An ordinary week in an ordinary town",
		"A corrupt conspiracy threatens everything",
		"A wonderful adventure full of hope",
	}

	records := make([]types.MovieRecord, n)
	for i := 0; i < n; i++ {
		year := 1990 + (i*7)%31 // 1990..2020
		records[i] = types.MovieRecord{
			Title:       fmt.Sprintf("Movie %03d", i),
			ReleaseYear: &year,
			Genre:       genres[i%len(genres)],
			Director:    fmt.Sprintf("Director %d", i%10),
			Cast:        []string{fmt.Sprintf("Actor %d", i%20)},
			IMDBRating:  6.0 + float64(i%31)/10.0, // 6.0..9.0
			Votes:       1000 + i*137,
			Overview:    overviews[i%len(overviews)],
		}
	}
	return records
}

func TestRecommendEndToEnd(t *testing.T) {
	rec := NewRecommender(syntheticCatalog(100), DefaultOptions())

	result, err := rec.Recommend(Filters{
		Genre:     GenreAll,
		Actor:     FilterAll,
		Director:  FilterAll,
		MinRating: 7.0,
		YearFrom:  2000,
		YearTo:    2020,
	})
	require.NoError(t, err)

	assert.LessOrEqual(t, len(result.Top), 10)
	assert.NotEmpty(t, result.Top)

	for i, r := range result.Top {
		assert.GreaterOrEqual(t, r.IMDBRating, 7.0)
		year, ok := r.Year()
		require.True(t, ok)
		assert.GreaterOrEqual(t, year, 2000)
		assert.LessOrEqual(t, year, 2020)
		if i > 0 {
			assert.GreaterOrEqual(t, result.Top[i-1].FinalScore, r.FinalScore)
		}
	}

	// The clustered view covers the whole catalog regardless of filters.
	assert.Len(t, result.Clustered, 100)
	for _, r := range result.Clustered {
		assert.GreaterOrEqual(t, r.Cluster, 0)
		assert.Less(t, r.Cluster, DefaultClusterCount)
	}

	assert.Contains(t, result.Summary, "Precision: ")
	assert.Contains(t, result.Summary, "| Accuracy: ")
}

func TestRecommendIsReproducible(t *testing.T) {
	rec := NewRecommender(syntheticCatalog(80), DefaultOptions())
	filters := Filters{Genre: GenreAll, Actor: FilterAll, Director: FilterAll}

	first, err := rec.Recommend(filters)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		again, err := rec.Recommend(filters)
		require.NoError(t, err)
		assert.Equal(t, first.Top, again.Top)
		assert.Equal(t, first.Clustered, again.Clustered)
		assert.Equal(t, first.Metrics, again.Metrics)
	}
}

func TestRecommendIdenticalRecordsKeepCatalogOrder(t *testing.T) {
	year := 2005
	twin := types.MovieRecord{
		ReleaseYear: &year,
		Genre:       "Drama",
		Director:    "Someone",
		IMDBRating:  8.0,
		Votes:       5000,
		Overview:    "A wonderful story of hope",
	}

	catalog := syntheticCatalog(40)
	first := twin
	first.Title = "Twin A"
	second := twin
	second.Title = "Twin B"
	catalog = append(catalog, first, second)

	opts := DefaultOptions()
	opts.TopN = len(catalog)
	rec := NewRecommender(catalog, opts)

	result, err := rec.Recommend(Filters{Genre: GenreAll, Actor: FilterAll, Director: FilterAll})
	require.NoError(t, err)

	posA, posB := -1, -1
	for i, r := range result.Top {
		switch r.Title {
		case "Twin A":
			posA = i
		case "Twin B":
			posB = i
		}
	}
	require.NotEqual(t, -1, posA)
	require.NotEqual(t, -1, posB)
	assert.Less(t, posA, posB, "identical records must keep their catalog order")
}

func TestRecommendClusterCountExceedsDistinctPoints(t *testing.T) {
	// Every record shares one genre and one overview, so there is exactly
	// one distinct (genreCode, sentiment) point.
	year := 2000
	catalog := make([]types.MovieRecord, 10)
	for i := range catalog {
		catalog[i] = types.MovieRecord{
			Title:       fmt.Sprintf("Movie %d", i),
			ReleaseYear: &year,
			Genre:       "Drama",
			IMDBRating:  7.5,
			Votes:       1000,
			Overview:    "identical synopsis",
		}
	}

	rec := NewRecommender(catalog, DefaultOptions())
	_, err := rec.Recommend(Filters{})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTooFewDistinctPoints)
}

func TestRecommendFiltersCanExcludeEverything(t *testing.T) {
	rec := NewRecommender(syntheticCatalog(50), DefaultOptions())

	result, err := rec.Recommend(Filters{Genre: "Documentary"})
	require.NoError(t, err)

	assert.Empty(t, result.Top)
	assert.Zero(t, result.Metrics.Precision)
	assert.Zero(t, result.Metrics.Accuracy)
	assert.Equal(t, "Precision: 0.000 | Accuracy: 0.000", result.Summary)
}

func TestRecommenderGenres(t *testing.T) {
	rec := NewRecommender(syntheticCatalog(20), DefaultOptions())
	assert.Equal(t, []string{"Action", "Comedy", "Drama", "Sci-Fi", "Thriller"}, rec.Genres())
}

func TestRecommenderEmptyCatalog(t *testing.T) {
	rec := NewRecommender(nil, DefaultOptions())

	result, err := rec.Recommend(Filters{})
	require.NoError(t, err)
	assert.Empty(t, result.Top)
	assert.Empty(t, result.Clustered)
}
