package types

// MovieRecord is one row of the loaded catalog. Fields mirror the reference
// dataset schema; ReleaseYear is nil when the source value was absent or
// unparseable.
type MovieRecord struct {
	Title       string   `json:"title"`
	ReleaseYear *int     `json:"release_year"`
	Genre       string   `json:"genre"`
	Director    string   `json:"director"`
	Cast        []string `json:"cast"`
	IMDBRating  float64  `json:"imdb_rating"`
	Votes       int      `json:"votes"`
	Overview    string   `json:"overview"`
}

// Year returns the release year and whether it is known.
func (m *MovieRecord) Year() (int, bool) {
	if m.ReleaseYear == nil {
		return 0, false
	}
	return *m.ReleaseYear, true
}

// DerivedRecord is a MovieRecord augmented by the pipeline. GenreCode and
// Sentiment are set by feature derivation, Cluster by the clusterer and
// FinalScore by the ranker; none of them mutate the underlying catalog row.
type DerivedRecord struct {
	MovieRecord
	GenreCode  int     `json:"genre_code"`
	Sentiment  float64 `json:"sentiment"`
	Cluster    int     `json:"cluster"`
	FinalScore float64 `json:"final_score"`
}

// RecommendRequest carries the per-request filter parameters accepted from
// the presentation layer. Genre uses the "All Genres" sentinel, Actor and
// Director use "All"; YearFrom/YearTo are inclusive bounds.
type RecommendRequest struct {
	Genre     string  `json:"genre"`
	Actor     string  `json:"actor"`
	Director  string  `json:"director"`
	MinRating float64 `json:"min_rating"`
	YearFrom  int     `json:"year_from"`
	YearTo    int     `json:"year_to"`
}
