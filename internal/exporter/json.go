package exporter

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/badele/textstats/internal/types"
)

// mostCommonJSON marshals to null when the text has no word.
type mostCommonJSON struct {
	word  string
	found bool
}

func (m mostCommonJSON) MarshalJSON() ([]byte, error) {
	if !m.found {
		return []byte("null"), nil
	}
	return json.Marshal(m.word)
}

type StatisticsJSONOutput struct {
	Source         string          `json:"source,omitempty"`
	Lines          *int            `json:"lines,omitempty"`
	Words          *int            `json:"words,omitempty"`
	DistinctWords  *int            `json:"distinct_words,omitempty"`
	MostCommonWord *mostCommonJSON `json:"most_common_word,omitempty"`
}

// ExportJSON writes the selected statistics as an indented JSON object.
func ExportJSON(w io.Writer, report types.Report) error {
	stats := report.Stats
	sel := report.Selection.Resolve()

	output := StatisticsJSONOutput{Source: report.Source}
	if sel.Lines {
		output.Lines = &stats.LineCount
	}
	if sel.Words {
		output.Words = &stats.WordCount
		output.DistinctWords = &stats.DistinctWords
	}
	if sel.Common {
		word, found := stats.MostCommon()
		output.MostCommonWord = &mostCommonJSON{word: word, found: found}
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("JSON serialization error: %w", err)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
