// Package sentiment derives a bounded mood adjustment from the free-text
// day rating. The technique is isolated behind the Analyzer interface so it
// can change (lexicon, external service, no-op) without touching the scorer.
package sentiment

import (
	"strings"
	"unicode"
)

// Default analyzer configuration constants.
const (
	defaultWordWeight = 0.25
	defaultLimit      = 1.0
)

// Analyzer maps free text to a bounded adjustment value.
type Analyzer interface {
	// Adjustment returns a value in [-limit, +limit]; neutral text yields 0.
	Adjustment(text string) float64
}

// Option applies a configuration option to the LexiconAnalyzer.
type Option func(*LexiconAnalyzer)

// WithLimit sets the absolute bound on the returned adjustment.
func WithLimit(limit float64) Option {
	return func(a *LexiconAnalyzer) {
		if limit > 0 {
			a.limit = limit
		}
	}
}

// WithLexicon replaces the default word lexicon.
func WithLexicon(lexicon map[string]float64) Option {
	return func(a *LexiconAnalyzer) {
		if len(lexicon) == 0 {
			return
		}
		a.lexicon = make(map[string]float64, len(lexicon))
		for word, weight := range lexicon {
			a.lexicon[strings.ToLower(word)] = weight
		}
	}
}

// LexiconAnalyzer implements Analyzer with a fixed word lexicon. Matching is
// case-insensitive on whole words; unknown words contribute nothing.
type LexiconAnalyzer struct {
	lexicon map[string]float64
	limit   float64
}

// NewLexiconAnalyzer creates an analyzer with the default lexicon.
func NewLexiconAnalyzer(opts ...Option) *LexiconAnalyzer {
	a := &LexiconAnalyzer{
		lexicon: defaultLexicon(),
		limit:   defaultLimit,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Adjustment sums the lexicon weights of the words in text and clamps the
// total to [-limit, +limit].
func (a *LexiconAnalyzer) Adjustment(text string) float64 {
	total := 0.0
	for _, word := range tokenize(text) {
		total += a.lexicon[word]
	}
	if total > a.limit {
		return a.limit
	}
	if total < -a.limit {
		return -a.limit
	}
	return total
}

// tokenize splits text into lowercase words on any non-letter rune.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

func defaultLexicon() map[string]float64 {
	lexicon := make(map[string]float64)
	positive := []string{
		"great", "good", "amazing", "wonderful", "happy", "fun",
		"relaxed", "relaxing", "productive", "calm", "excellent",
		"energized", "loved", "enjoyed", "fantastic", "peaceful",
	}
	negative := []string{
		"bad", "terrible", "awful", "sad", "stressed", "stressful",
		"tired", "exhausted", "anxious", "lonely", "horrible",
		"miserable", "angry", "overwhelmed", "drained", "rough",
	}
	for _, word := range positive {
		lexicon[word] = defaultWordWeight
	}
	for _, word := range negative {
		lexicon[word] = -defaultWordWeight
	}
	return lexicon
}
