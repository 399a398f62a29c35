package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/accounts"
	"github.com/forzencookie/scope-ai-sub007/internal/config"
	"github.com/forzencookie/scope-ai-sub007/internal/gitops"
	"github.com/forzencookie/scope-ai-sub007/internal/journal"
	"github.com/forzencookie/scope-ai-sub007/internal/logger"
)

// workspace is an opened bookkeeping repository.
type workspace struct {
	root     string
	cfg      *config.Config
	log      zerolog.Logger
	accounts *accounts.Service
	journal  *journal.Service
}

func openWorkspace(repoDir string, logOut io.Writer) (*workspace, error) {
	root, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(root, config.FileName))
	if err != nil {
		return nil, fmt.Errorf("opening repository %s: %w", root, err)
	}

	chart, err := accounts.Load(root)
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Out: logOut}).
		With().Str("company", cfg.Business.OrgNr).Logger()

	return &workspace{
		root:     root,
		cfg:      cfg,
		log:      log,
		accounts: chart,
		journal:  journal.NewService(root, chart),
	}, nil
}

// commit records every change in git when auto-commit is on and the
// repository is tracked.
func (w *workspace) commit(ctx context.Context, message string) error {
	if !w.cfg.Git.AutoCommit || !gitops.IsRepo(w.root) {
		return nil
	}
	hash, err := gitops.CommitAll(ctx, w.root, message, gitops.Author{
		Name:  w.cfg.Git.AuthorName,
		Email: w.cfg.Git.AuthorEmail,
	})
	if err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	if hash != "" {
		w.log.Info().Str("commit", hash).Msg(message)
	}
	return nil
}

// rel returns path relative to the repository root where possible.
func (w *workspace) rel(path string) string {
	if r, err := filepath.Rel(w.root, path); err == nil {
		return r
	}
	return path
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil || year < 1900 || year > 9999 {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}

func kr(d decimal.Decimal) string {
	return d.StringFixed(2)
}
