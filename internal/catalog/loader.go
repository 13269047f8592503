package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/cine-rec-o-meter/internal/types"
)

// Column names of the reference dataset. Poster_Link is accepted in the
// input but dropped before the records are built.
var requiredColumns = []string{
	"Series_Title",
	"Released_Year",
	"Genre",
	"Director",
	"Star1",
	"Star2",
	"Star3",
	"Star4",
	"IMDB_Rating",
	"No_of_Votes",
	"Overview",
}

// Load reads the movie catalog from a CSV file at path.
func Load(path string) ([]types.MovieRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	records, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
	}

	slog.Info("Catalog loaded", "path", path, "records", len(records))
	return records, nil
}

// Read parses catalog rows from r. The first row must be a header containing
// every required column; extra columns are ignored. Rows with a malformed
// rating or vote count are skipped with a warning, while a malformed release
// year only makes the year missing on that record.
func Read(r io.Reader) ([]types.MovieRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("catalog header is missing column %q", name)
		}
	}

	var records []types.MovieRecord
	line := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("failed to parse catalog row %d: %w", line, err)
		}

		rec, ok := buildRecord(row, cols, line)
		if !ok {
			continue
		}
		records = append(records, rec)
	}

	return records, nil
}

func buildRecord(row []string, cols map[string]int, line int) (types.MovieRecord, bool) {
	field := func(name string) string {
		idx := cols[name]
		if idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	rating, err := strconv.ParseFloat(field("IMDB_Rating"), 64)
	if err != nil {
		slog.Warn("Skipping catalog row with malformed rating", "line", line, "value", field("IMDB_Rating"))
		return types.MovieRecord{}, false
	}

	votes, err := strconv.Atoi(strings.ReplaceAll(field("No_of_Votes"), ",", ""))
	if err != nil || votes < 0 {
		slog.Warn("Skipping catalog row with malformed vote count", "line", line, "value", field("No_of_Votes"))
		return types.MovieRecord{}, false
	}

	rec := types.MovieRecord{
		Title:      field("Series_Title"),
		Genre:      field("Genre"),
		Director:   field("Director"),
		IMDBRating: rating,
		Votes:      votes,
		Overview:   field("Overview"),
	}

	// Unparseable years become missing, not zero.
	if year, err := strconv.Atoi(field("Released_Year")); err == nil {
		rec.ReleaseYear = &year
	}

	for _, star := range []string{"Star1", "Star2", "Star3", "Star4"} {
		if name := field(star); name != "" {
			rec.Cast = append(rec.Cast, name)
		}
	}

	return rec, true
}
