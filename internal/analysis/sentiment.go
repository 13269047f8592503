package analysis

import (
	"log/slog"
	"strings"
	"unicode"
)

// LexiconScorer turns a synopsis into a scalar polarity value by summing the
// lexicon weight of every known word. Unknown words contribute nothing, so an
// empty or unscorable text lands on zero.
type LexiconScorer struct {
	lexicon map[string]float64
}

// NewLexiconScorer creates a scorer backed by the built-in polarity lexicon.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{lexicon: defaultLexicon}
}

// Score returns the summed polarity of a single text.
func (s *LexiconScorer) Score(text string) float64 {
	total := 0.0
	for _, word := range tokenize(text) {
		total += s.lexicon[word]
	}
	return total
}

// ScoreAll scores one text per record, aligned by position. If the scoring
// step cannot produce exactly one value per input, the whole output is
// replaced by the mean of whatever was produced, broadcast to every record.
// That degrade-to-neutral fallback is a known approximation, not per-record
// imputation; no record is ever dropped.
func (s *LexiconScorer) ScoreAll(texts []string) []float64 {
	scores := make([]float64, 0, len(texts))
	for _, text := range texts {
		scores = append(scores, s.Score(text))
	}

	if len(scores) != len(texts) {
		slog.Warn("Sentiment output length mismatch, broadcasting mean",
			"want", len(texts), "got", len(scores))
		m := 0.0
		for _, v := range scores {
			m += v
		}
		if len(scores) > 0 {
			m /= float64(len(scores))
		}
		broadcast := make([]float64, len(texts))
		for i := range broadcast {
			broadcast[i] = m
		}
		return broadcast
	}

	return scores
}

// tokenize lowercases the text, strips everything but letters and splits on
// whitespace. One- and two-letter fragments are discarded.
func tokenize(text string) []string {
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}

	var words []string
	for _, word := range strings.Fields(b.String()) {
		if len(word) > 2 {
			words = append(words, word)
		}
	}
	return words
}
