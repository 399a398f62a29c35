// Package commands wires the scope command-line interface.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/forzencookie/scope-ai-sub007/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var repoDir string

	rootCmd := &cobra.Command{
		Use:     "scope",
		Short:   "Swedish bookkeeping: VAT returns, financial statements and INK2",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&repoDir, "repo", ".", "repository directory")

	rootCmd.AddCommand(
		newInitCommand(),
		newImportCommand(&repoDir),
		newVATCommand(&repoDir),
		newReportCommand(&repoDir),
		newINK2Command(&repoDir),
		newVerifyCommand(&repoDir),
	)

	return rootCmd
}
