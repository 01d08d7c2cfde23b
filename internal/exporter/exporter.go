package exporter

import (
	"fmt"
	"io"
	"slices"

	"github.com/badele/textstats/internal/types"
)

// ExportFunc renders a report to w.
type ExportFunc func(w io.Writer, report types.Report) error

var exporters = map[string]ExportFunc{
	"text":  ExportText,
	"json":  ExportJSON,
	"table": ExportTable,
}

// Formats returns the supported output format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(exporters))
	for name := range exporters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func Lookup(format string) (ExportFunc, error) {
	export, ok := exporters[format]
	if !ok {
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
	return export, nil
}
