package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLexiconScorerScore(t *testing.T) {
	scorer := NewLexiconScorer()

	tests := []struct {
		name string
		text string
		sign int // -1 negative, 0 neutral, +1 positive
	}{
		{
			name: "empty text is neutral",
			text: "",
			sign: 0,
		},
		{
			name: "unknown words are neutral",
			text: "the protagonist walks through the city",
			sign: 0,
		},
		{
			name: "positive synopsis scores positive",
			text: "A heroic friendship leads to triumph and happiness",
			sign: 1,
		},
		{
			name: "negative synopsis scores negative",
			text: "A brutal murder drags the city into terror and tragedy",
			sign: -1,
		},
		{
			name: "punctuation and case do not matter",
			text: "LOVE, love... LOVE!",
			sign: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := scorer.Score(tt.text)
			switch tt.sign {
			case 0:
				assert.Zero(t, score)
			case 1:
				assert.Positive(t, score)
			case -1:
				assert.Negative(t, score)
			}
		})
	}
}

func TestScoreAllAlignsWithInput(t *testing.T) {
	scorer := NewLexiconScorer()

	texts := []string{
		"a wonderful triumph of love",
		"",
		"murder and betrayal in a corrupt city",
		"completely unknown vocabulary here",
	}

	scores := scorer.ScoreAll(texts)

	assert.Len(t, scores, len(texts))
	assert.Positive(t, scores[0])
	assert.Zero(t, scores[1])
	assert.Negative(t, scores[2])
	assert.Zero(t, scores[3])
}

func TestScoreAllEmptyTextsAreUniformlyNeutral(t *testing.T) {
	scorer := NewLexiconScorer()

	texts := make([]string, 50)
	scores := scorer.ScoreAll(texts)

	assert.Len(t, scores, len(texts))
	for _, s := range scores {
		assert.Equal(t, scores[0], s)
	}
	assert.Zero(t, scores[0])
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "strips punctuation and lowercases",
			text:     "Love, War & Peace!",
			expected: []string{"love", "war", "peace"},
		},
		{
			name:     "drops short fragments",
			text:     "it is a he an war",
			expected: []string{"war"},
		},
		{
			name:     "empty text tokenizes to nothing",
			text:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tokenize(tt.text))
		})
	}
}
