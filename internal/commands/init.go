package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/forzencookie/scope-ai-sub007/internal/accounts"
	"github.com/forzencookie/scope-ai-sub007/internal/config"
	"github.com/forzencookie/scope-ai-sub007/internal/filinglog"
	"github.com/forzencookie/scope-ai-sub007/internal/gitops"
)

func newInitCommand() *cobra.Command {
	var name, orgnr, yearStart, entityType string
	var noGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new bookkeeping repository",
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

			cfg := config.Default(name, orgnr)
			cfg.Fiscal.YearStart = yearStart
			cfg.Business.EntityType = entityType
			if noGit {
				cfg.Git.AutoCommit = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			return runInit(cmd.Context(), cmd.OutOrStdout(), absDir, cfg, !noGit)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "company name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().StringVar(&orgnr, "orgnr", "", "organisationsnummer, NNNNNN-NNNN (required)")
	_ = cmd.MarkFlagRequired("orgnr")
	cmd.Flags().StringVar(&entityType, "entity-type", accounts.EntityAktiebolag, "aktiebolag or enskild_firma")
	cmd.Flags().StringVar(&yearStart, "year-start", "01-01", "first day of the fiscal year, MM-DD")
	cmd.Flags().BoolVar(&noGit, "no-git", false, "do not create a git repository")

	return cmd
}

func runInit(ctx context.Context, out io.Writer, dir string, cfg *config.Config, withGit bool) error {
	if _, err := os.Stat(filepath.Join(dir, config.FileName)); err == nil {
		return fmt.Errorf("%s already contains %s", dir, config.FileName)
	}

	dirs := []string{
		"accounts",
		"logs",
		"exports",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	chart := accounts.NewService(accounts.DefaultChart(cfg.Business.EntityType))
	if err := chart.Save(dir); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	if err := filinglog.Append(dir); err != nil {
		return fmt.Errorf("writing filing log: %w", err)
	}

	gitignore := "exports/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "import", "processed", ".gitkeep"), []byte{}, 0o644); err != nil {
		return fmt.Errorf("writing .gitkeep: %w", err)
	}

	if !withGit {
		fmt.Fprintf(out, "Initialized %s at %s\n", cfg.Business.Name, dir)
		return nil
	}

	if err := gitops.Init(ctx, dir); err != nil {
		return err
	}
	hash, err := gitops.CommitAll(ctx, dir, "init: "+cfg.Business.Name, gitops.Author{
		Name:  cfg.Git.AuthorName,
		Email: cfg.Git.AuthorEmail,
	})
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized %s at %s (%s)\n", cfg.Business.Name, dir, hash)
	return nil
}
