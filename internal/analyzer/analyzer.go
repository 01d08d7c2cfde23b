// Package analyzer derives line count, word count and most common word from
// raw text.
package analyzer

import (
	"github.com/badele/textstats/internal/frequency"
	"github.com/badele/textstats/internal/tokenizer"
	"github.com/badele/textstats/internal/types"
)

type Analyzer struct {
	opts []tokenizer.Option
}

// NewAnalyzer creates an analyzer; opts configure the normalizer built for
// each call.
func NewAnalyzer(opts ...tokenizer.Option) *Analyzer {
	return &Analyzer{opts: opts}
}

// Table builds the frequency table of text.
func (a *Analyzer) Table(text string) *frequency.Table {
	n := tokenizer.NewNormalizer(a.opts...)
	return frequency.Build(n.Words(text))
}

// Analyze computes all statistics with a single tokenization pass.
func (a *Analyzer) Analyze(text string) types.Statistics {
	table := a.Table(text)
	word, _ := table.MostCommon()

	return types.Statistics{
		LineCount:      CountLines(text),
		WordCount:      table.TotalCount(),
		DistinctWords:  table.Len(),
		MostCommonWord: word,
	}
}

func (a *Analyzer) CountWords(text string) int {
	return a.Table(text).TotalCount()
}

func (a *Analyzer) MostCommonWord(text string) (string, bool) {
	return a.Table(text).MostCommon()
}

// Analyze uses the default punctuation set.
func Analyze(text string) types.Statistics {
	return NewAnalyzer().Analyze(text)
}

func CountWords(text string) int {
	return NewAnalyzer().CountWords(text)
}

func MostCommonWord(text string) (string, bool) {
	return NewAnalyzer().MostCommonWord(text)
}

// CountLines counts lines split on "\n", "\r\n" and "\r". A terminator at the
// very end does not open a new line and empty text has no line.
func CountLines(text string) int {
	lines := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines++
		case '\r':
			lines++
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
		}
	}

	if n := len(text); n > 0 && text[n-1] != '\n' && text[n-1] != '\r' {
		lines++
	}

	return lines
}
