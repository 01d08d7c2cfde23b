package exporter

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/badele/textstats/internal/types"
)

const (
	labelWidth = 18
	valueWidth = 36
)

// ExportTable writes the selected statistics inside a box-drawing table.
func ExportTable(w io.Writer, report types.Report) error {
	stats := report.Stats
	sel := report.Selection.Resolve()

	var rows [][2]string
	if report.Source != "" {
		rows = append(rows, [2]string{"Source", report.Source})
	}
	if sel.Lines {
		rows = append(rows, [2]string{"Lines", strconv.Itoa(stats.LineCount)})
	}
	if sel.Words {
		rows = append(rows, [2]string{"Words", strconv.Itoa(stats.WordCount)})
		rows = append(rows, [2]string{"Distinct words", strconv.Itoa(stats.DistinctWords)})
	}
	if sel.Common {
		rows = append(rows, [2]string{"Most common word", mostCommonLabel(stats)})
	}

	hline := func(left, mid, right string) string {
		return left + strings.Repeat("─", labelWidth+2) + mid + strings.Repeat("─", valueWidth+2) + right
	}

	var b strings.Builder
	fmt.Fprintln(&b, hline("┌", "┬", "┐"))
	fmt.Fprintf(&b, "│ %s │ %s │\n", pad("Statistic", labelWidth), pad("Value", valueWidth))
	fmt.Fprintln(&b, hline("├", "┼", "┤"))
	for _, row := range rows {
		fmt.Fprintf(&b, "│ %s │ %s │\n",
			pad(truncate(row[0], labelWidth), labelWidth),
			pad(truncate(row[1], valueWidth), valueWidth))
	}
	fmt.Fprintln(&b, hline("└", "┴", "┘"))

	_, err := io.WriteString(w, b.String())
	return err
}

// pad right-pads s with spaces up to width terminal columns.
func pad(s string, width int) string {
	if n := uniseg.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// truncate escapes control characters and shortens s to maxWidth columns
// without splitting a grapheme cluster.
func truncate(s string, maxWidth int) string {
	s = strconv.Quote(s)
	s = s[1 : len(s)-1]

	if uniseg.StringWidth(s) <= maxWidth {
		return s
	}

	var b strings.Builder
	width := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		cluster := gr.Str()
		cw := uniseg.StringWidth(cluster)
		if width+cw > maxWidth-3 {
			break
		}
		b.WriteString(cluster)
		width += cw
	}

	return b.String() + "..."
}
