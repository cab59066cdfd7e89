// Package commands wires the clearbooks CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clearbooks-dev/clearbooks/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "clearbooks",
		Short:   "Plain-files double-entry bookkeeping and reporting",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newCompareCommand())
	rootCmd.AddCommand(newReconcileCommand())

	return rootCmd
}

// booksRoot resolves the --dir flag shared by every data command.
func booksRoot(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = "."
	}
	return dir
}
