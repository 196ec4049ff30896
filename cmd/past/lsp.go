package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/past/pkg/lsp"
	"github.com/Sumatoshi-tech/past/pkg/observability"
)

func lspCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the PAST language server (LSP)",
		Long: `Start a language server on stdio for Rust files. It reports constructs the
mapper does not model as warnings and serves hovers and document symbols.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			a, err := setup(ctx, flags, observability.ModeLSP, nil)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			return lsp.NewServer(a.parser, a.logger).Run()
		},
	}
}
