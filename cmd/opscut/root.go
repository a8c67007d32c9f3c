package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for OpsCut.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "opscut",
		Short: "Cloud cost optimization marketing site",
		Long: `OpsCut serves the cloud cost optimization site and its scripted
infrastructure scan.

Use "serve" to run the web site, or "scan" to replay the scan in the
terminal and print a Markdown report.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewScanCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
