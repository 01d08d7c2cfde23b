// Package textstats provides a public API for computing text statistics.
//
// This package provides functions to:
//   - Read text files or streams and convert them to UTF-8 (utf8, cp437, cp850, iso-8859-1)
//   - Normalize text into lowercase words with boundary punctuation stripped
//   - Count lines, words and find the most common word
//   - Export statistics as plain text, JSON or a table
//
// Example usage:
//
//	import "github.com/badele/textstats/pkg/textstats"
//
//	text, _ := textstats.ReadFile("book.txt", "utf8")
//	stats := textstats.Analyze(text)
//	word, ok := stats.MostCommon()
package textstats

import (
	"io"

	"github.com/badele/textstats/internal/analyzer"
	"github.com/badele/textstats/internal/exporter"
	"github.com/badele/textstats/internal/frequency"
	"github.com/badele/textstats/internal/reader"
	"github.com/badele/textstats/internal/tokenizer"
	"github.com/badele/textstats/internal/types"
)

// Type aliases for public API
type (
	// Statistics holds line count, word count and most common word
	Statistics = types.Statistics

	// Selection chooses which statistics are exported
	Selection = types.Selection

	// Report bundles statistics with their source name and selection
	Report = types.Report

	// WordCount is one entry of a frequency table
	WordCount = types.WordCount

	// FrequencyTable counts words in first-seen order
	FrequencyTable = frequency.Table

	// Normalizer turns raw text into normalized words
	Normalizer = tokenizer.Normalizer

	// NormalizerOption configures a Normalizer
	NormalizerOption = tokenizer.Option

	// Analyzer computes statistics with a configured Normalizer
	Analyzer = analyzer.Analyzer
)

// ASCIIPunctuation is the default set of characters stripped from token boundaries
const ASCIIPunctuation = tokenizer.ASCIIPunctuation

// Reader error kinds, to be checked with errors.Is
var (
	ErrNotFound            = reader.ErrNotFound
	ErrNotAFile            = reader.ErrNotAFile
	ErrPermission          = reader.ErrPermission
	ErrUnsupportedEncoding = reader.ErrUnsupportedEncoding
	ErrInvalidUTF8         = reader.ErrInvalidUTF8
)

// Analyze computes line count, word count and most common word of text.
// It never fails: empty or punctuation-only text gives zero counts and no
// most common word.
func Analyze(text string) Statistics {
	return analyzer.Analyze(text)
}

// CountLines counts lines split on "\n", "\r\n" and "\r".
func CountLines(text string) int {
	return analyzer.CountLines(text)
}

// CountWords counts normalized words.
func CountWords(text string) int {
	return analyzer.CountWords(text)
}

// MostCommonWord returns the most frequent normalized word; on ties the word
// seen first in the text wins.
func MostCommonWord(text string) (string, bool) {
	return analyzer.MostCommonWord(text)
}

// NormalizeWords returns the normalized words of text in document order.
func NormalizeWords(text string) []string {
	return tokenizer.NormalizeWords(text)
}

// NewNormalizer creates a Normalizer.
func NewNormalizer(opts ...NormalizerOption) *Normalizer {
	return tokenizer.NewNormalizer(opts...)
}

// WithPunctuation replaces the set of characters stripped from token boundaries.
func WithPunctuation(set string) NormalizerOption {
	return tokenizer.WithPunctuation(set)
}

// NewAnalyzer creates an Analyzer using the given normalizer options.
func NewAnalyzer(opts ...NormalizerOption) *Analyzer {
	return analyzer.NewAnalyzer(opts...)
}

// BuildFrequencyTable counts words in the given order.
func BuildFrequencyTable(words []string) *FrequencyTable {
	return frequency.FromSlice(words)
}

// ReadFile reads a regular file and converts it from sourceEncoding to UTF-8.
func ReadFile(path, sourceEncoding string) (string, error) {
	return reader.ReadFile(path, sourceEncoding)
}

// ReadFrom reads r fully and converts it from sourceEncoding to UTF-8.
func ReadFrom(r io.Reader, sourceEncoding string) (string, error) {
	return reader.ReadFrom(r, sourceEncoding)
}

// ConvertToUTF8 converts byte data from a source encoding to UTF-8.
// Supported encodings: "utf8", "cp437", "cp850", "iso-8859-1"
func ConvertToUTF8(data []byte, sourceEncoding string) ([]byte, error) {
	return reader.ConvertToUTF8(data, sourceEncoding)
}

// Export renders a report in the given format ("text", "json" or "table").
func Export(w io.Writer, format string, report Report) error {
	export, err := exporter.Lookup(format)
	if err != nil {
		return err
	}
	return export(w, report)
}
