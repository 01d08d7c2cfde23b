package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Empty", "", []string{}},
		{"WhitespaceOnly", "   \n\t  ", []string{}},
		{"Punctuation", "Hello, world! Hello everyone.", []string{"hello", "world", "hello", "everyone"}},
		{"InteriorApostrophe", "can't can't", []string{"can't", "can't"}},
		{"CaseFolding", "Hi, hi. HI!", []string{"hi", "hi", "hi"}},
		{"PunctuationOnlyTokens", "-- ... !? word", []string{"word"}},
		{"InteriorHyphen", "(state-of-the-art)", []string{"state-of-the-art"}},
		{"Brackets", "[{\"quoted\"}]", []string{"quoted"}},
		{"MixedWhitespace", "a\tb\r\nc\rd", []string{"a", "b", "c", "d"}},
		{"Unicode", "Naïve CAFÉ", []string{"naïve", "café"}},
		{"DigitsKept", "#42 3.14.", []string{"42", "3.14"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeWords(tt.input))
		})
	}
}

func TestNormalizeDiscardsEmpty(t *testing.T) {
	n := NewNormalizer()

	word, ok := n.Normalize("?!")
	assert.False(t, ok)
	assert.Empty(t, word)

	word, ok = n.Normalize("'Quoted'")
	assert.True(t, ok)
	assert.Equal(t, "quoted", word)
}

func TestWithPunctuation(t *testing.T) {
	n := NewNormalizer(WithPunctuation("*"))

	word, ok := n.Normalize("*Bold.*")
	assert.True(t, ok)
	assert.Equal(t, "bold.", word)
	assert.Equal(t, "*", n.Punctuation())
}

func TestWordsStopsEarly(t *testing.T) {
	n := NewNormalizer()

	var got []string
	for word := range n.Words("one two three four") {
		got = append(got, word)
		if len(got) == 2 {
			break
		}
	}

	assert.Equal(t, []string{"one", "two"}, got)
}
