// Package main provides the past CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/past/pkg/version"
)

const (
	formatJSON    = "json"
	formatCompact = "compact"
	formatYAML    = "yaml"
	formatNone    = "none"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	verbose    bool
	quiet      bool
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "past",
		Short: "Rust to Portable AST mapper",
		Long: `past maps Rust source files onto the Portable AST (PAST): a closed,
JSON-safe tree of typed nodes, each carrying its source text, byte span and
doc comment.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default is ./.past.yaml or $HOME/.past.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().BoolVarP(&flags.quiet, "quiet", "q", false, "only log errors")

	rootCmd.AddCommand(
		parseCmd(flags),
		validateCmd(),
		diffCmd(flags),
		problemsCmd(flags),
		statsCmd(flags),
		serveCmd(flags),
		mcpCmd(flags),
		lspCmd(flags),
		versionCmd(),
	)

	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
