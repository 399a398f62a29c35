package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/forzencookie/scope-ai-sub007/internal/importer"
	"github.com/forzencookie/scope-ai-sub007/internal/journal"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

func newImportCommand(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "import",
		Short: "Import SIE files waiting in import/ into the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(*repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runImport(cmd.Context(), cmd.OutOrStdout(), w, importer.DefaultRegistry())
		},
	}
}

func runImport(ctx context.Context, out io.Writer, w *workspace, reg *importer.Registry) error {
	files, err := reg.Scan(w.root)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "Nothing to import")
		return nil
	}

	var imported []string
	for _, f := range files {
		batch, err := reg.ParseFile(f)
		if err != nil {
			return err
		}
		if batch.OrgNr != "" && w.cfg.Business.OrgNr != "" && batch.OrgNr != w.cfg.Business.OrgNr {
			w.log.Warn().
				Str("file", f.Name).
				Str("orgnr", batch.OrgNr).
				Msg("import file belongs to another company")
		}

		if n := w.accounts.Add(batch.Accounts...); n > 0 {
			if err := w.accounts.Save(w.root); err != nil {
				return err
			}
			w.log.Info().Int("accounts", n).Str("file", f.Name).Msg("chart of accounts extended")
		}

		vers := batch.Verifications
		if opening, ok := batch.OpeningVerification(); ok {
			first, err := w.needsOpening(opening)
			if err != nil {
				return err
			}
			if first {
				vers = append([]model.Verification{opening}, vers...)
			}
		}

		for _, v := range vers {
			verID, err := w.journal.Append(v)
			if err != nil {
				return fmt.Errorf("importing %s: %q: %w", f.Name, v.Description, err)
			}
			w.log.Debug().Str("verification", verID).Str("file", f.Name).Msg("appended")
		}

		if err := importer.MarkProcessed(w.root, f.Name); err != nil {
			return err
		}
		fmt.Fprintf(out, "Imported %s: %d verifications\n", f.Name, len(vers))
		imported = append(imported, f.Name)
	}

	return w.commit(ctx, "import: "+strings.Join(imported, ", "))
}

// needsOpening reports whether the journal has no month before the
// opening verification's month, i.e. the import starts the books. Later
// years' opening balances repeat what the journal already holds.
func (w *workspace) needsOpening(opening model.Verification) (bool, error) {
	months, err := w.journal.Months()
	if err != nil {
		return false, err
	}
	first := journal.Month{Year: opening.Date.Year(), Month: int(opening.Date.Month())}.Start()
	for _, m := range months {
		if m.Start().Before(first) {
			return false, nil
		}
	}
	return true, nil
}
