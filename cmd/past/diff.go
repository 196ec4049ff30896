package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/past/pkg/gitlib"
	"github.com/Sumatoshi-tech/past/pkg/observability"
	"github.com/Sumatoshi-tech/past/pkg/past"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

const (
	diffFormatUnified = "unified"
	diffFormatSummary = "summary"
	changeExcerptLen  = 60
)

// ErrDiffArgs is returned for a wrong number of diff operands.
var ErrDiffArgs = errors.New("diff needs two files, or one path with --from and --to")

type diffOptions struct {
	output string
	format string
	repo   string
	from   string
	to     string
	deep   bool
}

// ChangeRecord is the serialized form of one structural change.
type ChangeRecord struct {
	Type       string     `json:"type"`
	Kind       string     `json:"kind"`
	Name       string     `json:"name,omitempty"`
	BeforeSpan *node.Span `json:"before_span,omitempty"`
	AfterSpan  *node.Span `json:"after_span,omitempty"`
	Before     string     `json:"before,omitempty"`
	After      string     `json:"after,omitempty"`
}

// diffResult is the outcome of comparing two versions of a file.
type diffResult struct {
	BeforeLabel string         `json:"before"`
	AfterLabel  string         `json:"after"`
	Changes     []ChangeRecord `json:"changes"`

	beforeText string
	afterText  string
}

func diffCmd(flags *globalFlags) *cobra.Command {
	opts := &diffOptions{}

	cmd := &cobra.Command{
		Use:   "diff <before.rs> <after.rs> | diff --from REV --to REV <path>",
		Short: "Compare two versions of a Rust file",
		Long: `Compare two versions of a Rust file and report the structural changes
between their PAST trees: items added, removed or modified.

Examples:
  past diff old.rs new.rs                        # Text diff and item changes
  past diff -f summary old.rs new.rs             # Counts per change type
  past diff -f json --deep old.rs new.rs         # Every changed node as JSON
  past diff --from HEAD~1 --to HEAD src/lib.rs   # Two revisions of a file`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiff(cmd, flags, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", diffFormatUnified, "output format (unified, summary, json)")
	cmd.Flags().StringVar(&opts.repo, "repo", ".", "git repository used with --from and --to")
	cmd.Flags().StringVar(&opts.from, "from", "", "revision of the old version")
	cmd.Flags().StringVar(&opts.to, "to", "", "revision of the new version")
	cmd.Flags().BoolVar(&opts.deep, "deep", false, "report changes to nested nodes, not only items")

	return cmd
}

func runDiff(cmd *cobra.Command, flags *globalFlags, args []string, opts *diffOptions) (err error) {
	switch opts.format {
	case diffFormatUnified, diffFormatSummary, formatJSON:
	default:
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

	result, err := a.diffInputs(ctx, args, opts)
	if err != nil {
		return err
	}

	out, err := openOutput(opts.output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, out.Close())
	}()

	return writeDiff(out, result, opts.format)
}

func (a *app) diffInputs(ctx context.Context, args []string, opts *diffOptions) (*diffResult, error) {
	var (
		beforeLabel, afterLabel string
		beforeText, afterText   []byte
		beforeID, afterID       gitlib.Hash
	)

	switch {
	case opts.from != "" || opts.to != "":
		if len(args) != 1 || opts.from == "" || opts.to == "" {
			return nil, ErrDiffArgs
		}

		repo, err := gitlib.OpenRepository(opts.repo)
		if err != nil {
			return nil, err
		}
		defer repo.Free()

		beforeID, beforeText, err = readRevision(repo, opts.from, args[0])
		if err != nil {
			return nil, err
		}

		afterID, afterText, err = readRevision(repo, opts.to, args[0])
		if err != nil {
			return nil, err
		}

		beforeLabel, afterLabel = opts.from+":"+args[0], opts.to+":"+args[0]
	case len(args) == 2:
		maxSize, err := a.cfg.Parser.MaxFileSizeBytes()
		if err != nil {
			return nil, err
		}

		beforeText, err = past.ReadSource(args[0], maxSize)
		if err != nil {
			return nil, err
		}

		afterText, err = past.ReadSource(args[1], maxSize)
		if err != nil {
			return nil, err
		}

		beforeLabel, afterLabel = args[0], args[1]
	default:
		return nil, ErrDiffArgs
	}

	before, err := a.parseBlob(ctx, beforeID, beforeLabel, beforeText)
	if err != nil {
		return nil, err
	}

	after, err := a.parseBlob(ctx, afterID, afterLabel, afterText)
	if err != nil {
		return nil, err
	}

	return buildDiff(before, after, opts.deep), nil
}

// readRevision reads path at rev. A path missing at rev reads as empty, so
// added and deleted files diff as whole-file additions or removals.
func readRevision(repo *gitlib.Repository, rev, path string) (gitlib.Hash, []byte, error) {
	id, content, err := repo.ReadBlob(rev, path)
	if errors.Is(err, gitlib.ErrPathNotFound) {
		return gitlib.Hash{}, nil, nil
	}

	return id, content, err
}

func buildDiff(before, after *node.SourceFile, deep bool) *diffResult {
	changes := past.DetectFileChanges(before, after)
	if !deep {
		changes = past.ItemChanges(changes)
	}

	records := make([]ChangeRecord, 0, len(changes))
	for _, change := range changes {
		records = append(records, changeRecord(change))
	}

	return &diffResult{
		BeforeLabel: before.Path,
		AfterLabel:  after.Path,
		Changes:     records,
		beforeText:  before.Root.Text,
		afterText:   after.Root.Text,
	}
}

func changeRecord(change past.Change) ChangeRecord {
	n := change.Node()

	record := ChangeRecord{
		Type: change.Type.String(),
		Kind: string(n.Kind()),
		Name: past.NameOf(n),
	}

	if !node.IsNil(change.Before) {
		span := change.Before.Env().Span
		record.BeforeSpan = &span
		record.Before = change.Before.Env().Text
	}

	if !node.IsNil(change.After) {
		span := change.After.Env().Span
		record.AfterSpan = &span
		record.After = change.After.Env().Text
	}

	return record
}

func writeDiff(w io.Writer, result *diffResult, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)

		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
	case diffFormatSummary:
		printChangeSummary(w, result.Changes)
	default:
		printUnifiedDiff(w, result)
		fmt.Fprintln(w)
		printChangeList(w, result.Changes)
	}

	return nil
}

// printUnifiedDiff prints a line diff of the two sources.
func printUnifiedDiff(w io.Writer, result *diffResult) {
	color.New(color.Bold).Fprintf(w, "--- %s\n+++ %s\n", result.BeforeLabel, result.AfterLabel)

	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lines := dmp.DiffLinesToChars(result.beforeText, result.afterText)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(beforeChars, afterChars, false), lines)

	for _, d := range diffs {
		prefix, paint := " ", color.New(color.Reset)

		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix, paint = "-", color.New(color.FgRed)
		case diffmatchpatch.DiffInsert:
			prefix, paint = "+", color.New(color.FgGreen)
		case diffmatchpatch.DiffEqual:
		}

		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}

			paint.Fprint(w, prefix+strings.TrimSuffix(line, "\n")+"\n")
		}
	}
}

func printChangeList(w io.Writer, changes []ChangeRecord) {
	if len(changes) == 0 {
		fmt.Fprintln(w, "No structural changes.")

		return
	}

	fmt.Fprintf(w, "Structural changes (%d):\n", len(changes))

	for _, change := range changes {
		paint := color.New(color.FgYellow)

		switch change.Type {
		case past.ChangeAdded.String():
			paint = color.New(color.FgGreen)
		case past.ChangeRemoved.String():
			paint = color.New(color.FgRed)
		}

		label := change.Kind
		if change.Name != "" {
			label += " " + change.Name
		}

		text := change.After
		if text == "" {
			text = change.Before
		}

		paint.Fprintf(w, "  %-8s %s: %s\n", change.Type, label, sanitizeForTerminal(excerpt(text, changeExcerptLen)))
	}
}

func printChangeSummary(w io.Writer, changes []ChangeRecord) {
	summary := make(map[string]int)
	for _, change := range changes {
		summary[change.Type]++
	}

	types := make([]string, 0, len(summary))
	for changeType := range summary {
		types = append(types, changeType)
	}

	sort.Strings(types)

	fmt.Fprintf(w, "Change Summary:\n")

	for _, changeType := range types {
		fmt.Fprintf(w, "  %s: %d\n", changeType, summary[changeType])
	}
}
