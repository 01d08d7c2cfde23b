package tokenizer

import (
	"iter"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/badele/textstats/internal/types"
)

// ASCIIPunctuation is the default set of characters stripped from both ends
// of every token.
const ASCIIPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

var _ types.WordSource = (*Normalizer)(nil)

type Option func(*Normalizer)

// WithPunctuation replaces the set of characters stripped from token boundaries.
func WithPunctuation(set string) Option {
	return func(n *Normalizer) {
		n.punctuation = set
	}
}

// Normalizer splits raw text on whitespace and reduces each token to its
// canonical word form. A Normalizer is not safe for concurrent use because
// the underlying caser keeps state between calls.
type Normalizer struct {
	punctuation string
	caser       cases.Caser
}

func NewNormalizer(opts ...Option) *Normalizer {
	n := &Normalizer{
		punctuation: ASCIIPunctuation,
		caser:       cases.Lower(language.Und),
	}

	for _, opt := range opts {
		opt(n)
	}

	return n
}

// Punctuation returns the boundary strip set in use.
func (n *Normalizer) Punctuation() string {
	return n.punctuation
}

// Normalize strips boundary punctuation from token and lowercases it.
// It reports false when nothing is left.
func (n *Normalizer) Normalize(token string) (string, bool) {
	word := strings.Trim(token, n.punctuation)
	if word == "" {
		return "", false
	}

	return n.caser.String(word), true
}

// Words yields the normalized words of text in document order. Tokens that
// are reduced to nothing are skipped.
func (n *Normalizer) Words(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for token := range strings.FieldsSeq(text) {
			word, ok := n.Normalize(token)
			if !ok {
				continue
			}

			if !yield(word) {
				return
			}
		}
	}
}

// NormalizeWords returns the normalized words of text using the default
// punctuation set.
func NormalizeWords(text string) []string {
	n := NewNormalizer()

	words := make([]string, 0)
	for word := range n.Words(text) {
		words = append(words, word)
	}

	return words
}
