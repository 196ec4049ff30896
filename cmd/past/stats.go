package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/past/pkg/observability"
	"github.com/Sumatoshi-tech/past/pkg/report"
)

const defaultTopKinds = 25

type statsOptions struct {
	sourceOptions

	html    string
	title   string
	top     int
	files   bool
	workers int
}

func statsCmd(flags *globalFlags) *cobra.Command {
	opts := &statsOptions{}

	cmd := &cobra.Command{
		Use:   "stats [files...]",
		Short: "Show node kind statistics for Rust files",
		Long: `Count the PAST node kinds of the given files and print them as a table,
or render them as an HTML chart page.

Examples:
  past stats src/lib.rs
  past stats --all --files .
  past stats --all --html kinds.html --top 15 .`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, flags, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.html, "html", "", "write an HTML chart page to this file")
	cmd.Flags().StringVar(&opts.title, "title", "", "title of the HTML page")
	cmd.Flags().IntVar(&opts.top, "top", defaultTopKinds, "number of kinds listed before folding the rest (0 for all)")
	cmd.Flags().BoolVar(&opts.files, "files", false, "also print one row per file")
	cmd.Flags().BoolVar(&opts.all, "all", false, "scan every Rust file below the given directories")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "parallel workers")
	cmd.Flags().StringVar(&opts.rev, "rev", "", "read files at this git revision")
	cmd.Flags().StringVar(&opts.repo, "repo", ".", "git repository used with --rev")

	return cmd
}

func runStats(cmd *cobra.Command, flags *globalFlags, args []string, opts *statsOptions) (err error) {
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

	summary := report.Summarize(files...)

	if opts.html != "" {
		out, openErr := openOutput(opts.html, cmd.OutOrStdout())
		if openErr != nil {
			return openErr
		}

		defer func() {
			err = errors.Join(err, out.Close())
		}()

		if htmlErr := summary.WriteHTML(out, opts.title, opts.top); htmlErr != nil {
			return htmlErr
		}

		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s\n", opts.html)

		return nil
	}

	if opts.files {
		if tableErr := summary.WriteFileTable(cmd.OutOrStdout()); tableErr != nil {
			return tableErr
		}
	}

	return summary.WriteKindTable(cmd.OutOrStdout(), opts.top)
}
