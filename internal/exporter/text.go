package exporter

import (
	"fmt"
	"io"

	"github.com/badele/textstats/internal/types"
)

// NoneLabel is displayed when the text has no most common word.
const NoneLabel = "(none)"

func mostCommonLabel(stats types.Statistics) string {
	if word, ok := stats.MostCommon(); ok {
		return word
	}
	return NoneLabel
}

// ExportText writes the selected statistics as "Label: value" lines
func ExportText(w io.Writer, report types.Report) error {
	stats := report.Stats
	sel := report.Selection.Resolve()

	if sel.Lines {
		if _, err := fmt.Fprintf(w, "Lines: %d\n", stats.LineCount); err != nil {
			return err
		}
	}

	if sel.Words {
		if _, err := fmt.Fprintf(w, "Words: %d\n", stats.WordCount); err != nil {
			return err
		}
	}

	if sel.Common {
		if _, err := fmt.Fprintf(w, "Most common word: %s\n", mostCommonLabel(stats)); err != nil {
			return err
		}
	}

	return nil
}
