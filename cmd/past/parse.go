package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/past/pkg/observability"
	"github.com/Sumatoshi-tech/past/pkg/past/pkg/node"
)

type parseOptions struct {
	sourceOptions

	output   string
	format   string
	workers  int
	progress bool
}

func parseCmd(flags *globalFlags) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse [files...]",
		Short: "Parse Rust source files into PAST",
		Long: `Parse Rust source files into the Portable AST.

Examples:
  past parse src/lib.rs                      # Map a single file
  cat lib.rs | past parse -                  # Map stdin
  past parse -f yaml src/lib.rs              # Output as YAML
  past parse -o tree.json.lz4 src/lib.rs     # Write an LZ4-compressed file
  past parse --all                           # Map every .rs file below .
  past parse --all -w 8 -f none crates/      # Map only, 8 workers
  past parse --rev HEAD~3 src/lib.rs         # Map a file as of a revision`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, flags, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file, .lz4 to compress (default: stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", formatJSON, "output format (json, compact, yaml, none)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "map every Rust file below the given directories")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel workers (default: parser.workers or GOMAXPROCS)")
	cmd.Flags().BoolVarP(&opts.progress, "progress", "p", false, "report progress on stderr")
	cmd.Flags().StringVar(&opts.rev, "rev", "", "read files at this git revision")
	cmd.Flags().StringVar(&opts.repo, "repo", ".", "git repository used with --rev")

	return cmd
}

func runParse(cmd *cobra.Command, flags *globalFlags, args []string, opts *parseOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := checkFormat(opts.format); err != nil {
		return err
	}

	a, err := setup(ctx, flags, observability.ModeCLI, nil)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	files, err := a.mapInputs(ctx, cmd, args, opts)
	if err != nil {
		return err
	}

	return writeSources(cmd, files, opts.output, opts.format)
}

// mapInputs maps stdin when no file is named, otherwise every named or
// collected file.
func (a *app) mapInputs(ctx context.Context, cmd *cobra.Command, args []string, opts *parseOptions) ([]*node.SourceFile, error) {
	if !opts.all && (len(args) == 0 || (len(args) == 1 && args[0] == stdinPath)) {
		file, err := a.parseStdin(ctx, cmd.InOrStdin())
		if err != nil {
			return nil, err
		}

		return []*node.SourceFile{file}, nil
	}

	set, err := a.openSources(args, opts.sourceOptions)
	if err != nil {
		return nil, err
	}
	defer set.close()

	var progress io.Writer
	if opts.progress {
		progress = cmd.ErrOrStderr()
	}

	files, err := a.parseAll(ctx, set, opts.workers, progress)
	if err != nil {
		return nil, err
	}

	if progress != nil {
		var size uint64
		for _, file := range files {
			size += uint64(len(file.Root.Text))
		}

		fmt.Fprintf(progress, "mapped %s files, %s\n", humanize.Comma(int64(len(files))), humanize.IBytes(size))
	}

	return files, nil
}

func writeSources(cmd *cobra.Command, files []*node.SourceFile, output, format string) (err error) {
	if format == formatNone {
		return nil
	}

	out, err := openOutput(output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	defer func() {
		err = errors.Join(err, out.Close())
	}()

	enc, err := newSourceEncoder(out, format)
	if err != nil {
		return err
	}

	for _, file := range files {
		if encodeErr := enc.Encode(file); encodeErr != nil {
			return fmt.Errorf("write %s: %w", file.Path, encodeErr)
		}
	}

	return enc.Close()
}
