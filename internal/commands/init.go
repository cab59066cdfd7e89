package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearbooks-dev/clearbooks/internal/accounts"
	"github.com/clearbooks-dev/clearbooks/internal/books"
	"github.com/clearbooks-dev/clearbooks/internal/config"
	"github.com/clearbooks-dev/clearbooks/internal/gitops"
	"github.com/clearbooks-dev/clearbooks/internal/runlog"
)

func newInitCommand() *cobra.Command {
	var name string
	var entityType string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new books repository",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}
			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}
			return runInit(absDir, name, entityType, noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&entityType, "entity-type", "llc_single_member", "entity type")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "skip git repository setup")

	return cmd
}

func runInit(dir, name, entityType string, noGit bool) error {
	cfg := config.Default(name, entityType)
	cfg.CategoryAccounts = accounts.DefaultCategoryAccounts()

	if _, err := books.Create(dir, cfg, accounts.DefaultChart(entityType)); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Join(dir, "import", "processed"), 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "import", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}
	gitignore := "exports/\n.clearbooks-cache/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if err := runlog.Append(dir, []runlog.Record{{
		Timestamp: time.Now().UTC(),
		Action:    runlog.ActionInit,
		Details:   "Initialized books for " + name,
	}}); err != nil {
		return fmt.Errorf("writing run log: %w", err)
	}

	if noGit {
		fmt.Printf("Initialized books at %s\n", dir)
		return nil
	}

	if err := gitops.Init(dir); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.CommitAll(dir, "init: "+name, cfg.Git.AuthorName, cfg.Git.AuthorEmail)
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized books at %s (%s)\n", dir, hash)
	return nil
}
