package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/past/pkg/mcp"
	"github.com/Sumatoshi-tech/past/pkg/observability"
)

func mcpCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start the MCP server on stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
parse_rust_code, parse_rust_source and past_problems tools. Logs go to stderr.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			a, err := setup(ctx, flags, observability.ModeMCP, nil)
			if err != nil {
				return err
			}
			defer a.close(ctx)

			server, err := mcp.NewServer(mcp.ServerDeps{
				Logger:  a.logger,
				Parser:  a.parser,
				Metrics: a.red,
				Tracer:  a.providers.Tracer,
			})
			if err != nil {
				return err
			}

			return server.Run(ctx)
		},
	}
}
