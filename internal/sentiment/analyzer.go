package sentiment

import (
	"context"
	"strings"
	"unicode"

	"github.com/perchsocial/perch/internal/domain"
)

// Analyzer scores free text against the AFINN lexicon.
type Analyzer struct {
	lexicon map[string]float64
}

var _ domain.SentimentAnalyzer = (*Analyzer)(nil)

// NewAnalyzer creates an analyzer backed by the bundled AFINN lexicon.
func NewAnalyzer() *Analyzer {
	return &Analyzer{lexicon: afinnLexicon}
}

// Analyze returns the mean word valence of text. Tokens absent from the
// lexicon count as zero, so a long neutral sentence with one charged word
// scores close to zero. Empty or all-punctuation text scores exactly zero.
func (a *Analyzer) Analyze(_ context.Context, text string) (float64, error) {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return 0, nil
	}

	var sum float64
	for _, token := range tokens {
		sum += a.lexicon[token]
	}
	return sum / float64(len(tokens)), nil
}

// tokenize lowercases the text and splits it on anything that is not a
// letter, digit, or apostrophe. Apostrophes survive so contractions like
// "can't" match lexicon entries.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
