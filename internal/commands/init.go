package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dealerbooks/dealerbooks/internal/accounts"
	"github.com/dealerbooks/dealerbooks/internal/config"
	"github.com/dealerbooks/dealerbooks/internal/gitops"
	"github.com/dealerbooks/dealerbooks/internal/journal"
)

func newInitCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new book",
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

			return runInit(cmd.OutOrStdout(), absDir, name)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func runInit(out io.Writer, dir, name string) error {
	cfgPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	for _, d := range []string{"accounts", journal.Dir} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(name)
	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	if err := accounts.NewChart(accounts.DefaultChart()).Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	// Credentials never belong in version control.
	gitignore := cfg.Backend.SessionFile + "\n.env\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if !cfg.Git.AutoCommit || !gitops.Available() {
		fmt.Fprintf(out, "Initialized book for %s at %s (not versioned)\n", name, dir)
		return nil
	}

	if err := gitops.Init(dir); err != nil {
		return err
	}
	hash, err := gitops.Commit(dir, "init: Initialize "+name, gitAuthor(cfg))
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized book for %s at %s (%s)\n", name, dir, hash)
	return nil
}

func gitAuthor(cfg *config.Config) gitops.Author {
	return gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
}
