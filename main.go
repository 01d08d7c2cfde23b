package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/badele/textstats/internal/analyzer"
	"github.com/badele/textstats/internal/exporter"
	"github.com/badele/textstats/internal/reader"
	"github.com/badele/textstats/internal/tokenizer"
	"github.com/badele/textstats/internal/types"
)

var version = "dev"

type CLI struct {
	File        string `short:"f" placeholder:"PATH" help:"Text file to analyze. If omitted, reads from stdin (pipe)."`
	Lines       bool   `short:"l" help:"Print number of lines."`
	Words       bool   `short:"w" help:"Print number of words."`
	Common      bool   `short:"c" help:"Print most common word."`
	Format      string `short:"o" enum:"text,json,table" default:"text" env:"TEXTSTATS_FORMAT" help:"Output format (${enum})."`
	Encoding    string `short:"e" enum:"utf8,cp437,cp850,iso-8859-1" default:"utf8" env:"TEXTSTATS_ENCODING" help:"Input encoding (${enum})."`
	Punctuation string `placeholder:"CHARS" help:"Characters stripped from both ends of each word (default: ASCII punctuation)."`
	Debug       bool   `short:"d" help:"Display debug information on stderr."`

	Version kong.VersionFlag `help:"Show version and exit."`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cli CLI

	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("textstats"),
		kong.Description("Display line count, word count and most common word of a text file.\nIf no statistic is selected, all of them are displayed."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
		kong.Vars{"version": version},
		kong.UsageOnError(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	if _, err := parser.Parse(args); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	// --help and --version ask to exit once printed
	if exitCode >= 0 {
		return exitCode
	}

	text, source, err := readInput(cli.File, cli.Encoding, stdin)
	if err != nil {
		fmt.Fprintln(stderr, inputErrorMessage(source, err))
		return 1
	}

	var opts []tokenizer.Option
	if cli.Punctuation != "" {
		opts = append(opts, tokenizer.WithPunctuation(cli.Punctuation))
	}

	stats := analyzer.NewAnalyzer(opts...).Analyze(text)

	if cli.Debug {
		fmt.Fprintf(stderr, "=== source: %s ===\n", source)
		fmt.Fprintf(stderr, "=== size: %d bytes (%s) ===\n", len(text), cli.Encoding)
		fmt.Fprintf(stderr, "=== distinct words: %d ===\n", stats.DistinctWords)
	}

	export, err := exporter.Lookup(cli.Format)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}

	report := types.Report{
		Stats: stats,
		Selection: types.Selection{
			Lines:  cli.Lines,
			Words:  cli.Words,
			Common: cli.Common,
		},
	}
	if cli.Format != "text" {
		report.Source = source
	}

	if err := export(stdout, report); err != nil {
		fmt.Fprintf(stderr, "Error writing output: %v\n", err)
		return 1
	}

	return 0
}

// readInput reads the file at path, or stdin when path is empty and stdin
// is not an interactive terminal.
func readInput(path, encoding string, stdin io.Reader) (string, string, error) {
	if path != "" {
		text, err := reader.ReadFile(path, encoding)
		return text, path, err
	}

	if f, ok := stdin.(*os.File); ok {
		stat, err := f.Stat()
		if err != nil {
			return "", "stdin", fmt.Errorf("checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return "", "stdin", errNoInput
		}
	}

	text, err := reader.ReadFrom(stdin, encoding)
	return text, "stdin", err
}

var errNoInput = errors.New("no input: use --file PATH or pipe text to stdin")

func inputErrorMessage(source string, err error) string {
	switch {
	case errors.Is(err, errNoInput):
		return fmt.Sprintf("Error: %v", err)
	case errors.Is(err, reader.ErrNotFound):
		return fmt.Sprintf("Error: The path '%s' does not exist.", source)
	case errors.Is(err, reader.ErrNotAFile):
		return fmt.Sprintf("Error: The path '%s' is not a file.", source)
	case errors.Is(err, reader.ErrPermission):
		return fmt.Sprintf("Error: Permission denied when trying to read '%s'.", source)
	default:
		return fmt.Sprintf("Error: Could not read '%s': %v", source, err)
	}
}
