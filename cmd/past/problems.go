package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/past/pkg/observability"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

const problemExcerptLen = 80

type problemsOptions struct {
	sourceOptions

	format  string
	workers int
}

// ProblemRecord locates one construct the mapper does not model.
type ProblemRecord struct {
	Path   string    `json:"path"`
	Line   int       `json:"line"`
	Column int       `json:"column"`
	Span   node.Span `json:"span"`
	Text   string    `json:"text"`
}

func problemsCmd(flags *globalFlags) *cobra.Command {
	opts := &problemsOptions{}

	cmd := &cobra.Command{
		Use:   "problems [files...]",
		Short: "List Rust constructs that map to Problem nodes",
		Long: `List every construct that the mapper could not model, with its position.

Examples:
  past problems src/lib.rs
  past problems --all -f json crates/`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProblems(cmd, flags, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "text", "output format (text, json)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "scan every Rust file below the given directories")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel workers")
	cmd.Flags().StringVar(&opts.rev, "rev", "", "read files at this git revision")
	cmd.Flags().StringVar(&opts.repo, "repo", ".", "git repository used with --rev")

	return cmd
}

func runProblems(cmd *cobra.Command, flags *globalFlags, args []string, opts *problemsOptions) error {
	if opts.format != "text" && opts.format != formatJSON {
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, opts.format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := setup(ctx, flags, observability.ModeCLI, nil)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	files, err := a.mapInputs(ctx, cmd, args, &parseOptions{sourceOptions: opts.sourceOptions, workers: opts.workers})
	if err != nil {
		return err
	}

	records := collectProblems(files)

	if opts.format == formatJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		if encodeErr := enc.Encode(records); encodeErr != nil {
			return fmt.Errorf("failed to encode JSON: %w", encodeErr)
		}

		return nil
	}

	printProblems(cmd.OutOrStdout(), records, len(files))

	return nil
}

func collectProblems(files []*node.SourceFile) []ProblemRecord {
	records := []ProblemRecord{}

	for _, file := range files {
		for _, p := range node.FileProblems(file) {
			line, column := lineColumn(file.Root.Text, p.Span.StartOffset)

			records = append(records, ProblemRecord{
				Path:   file.Path,
				Line:   line,
				Column: column,
				Span:   p.Span,
				Text:   p.Text,
			})
		}
	}

	return records
}

// lineColumn converts a byte offset to a 1-based line and byte column.
func lineColumn(text string, offset uint32) (int, int) {
	prefix := text[:min(int(offset), len(text))]
	line := strings.Count(prefix, "\n") + 1
	column := len(prefix) - strings.LastIndexByte(prefix, '\n')

	return line, column
}

func printProblems(w io.Writer, records []ProblemRecord, fileCount int) {
	for _, r := range records {
		color.New(color.Bold).Fprintf(w, "%s:%d:%d: ", r.Path, r.Line, r.Column)
		color.New(color.FgYellow).Fprint(w, "unmodeled syntax: ")
		fmt.Fprintln(w, sanitizeForTerminal(excerpt(r.Text, problemExcerptLen)))
	}

	paint := color.New(color.FgGreen)
	if len(records) > 0 {
		paint = color.New(color.FgYellow)
	}

	paint.Fprintf(w, "%d problem(s) in %d file(s)\n", len(records), fileCount)
}
