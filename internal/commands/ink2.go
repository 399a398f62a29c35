package commands

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
	"github.com/forzencookie/scope-ai-sub007/internal/filinglog"
	"github.com/forzencookie/scope-ai-sub007/internal/ink2"
)

func newINK2Command(repoDir *string) *cobra.Command {
	var sruDir string

	cmd := &cobra.Command{
		Use:   "ink2 <year>",
		Short: "Compute the INK2, INK2R and INK2S income tax declarations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}
			w, err := openWorkspace(*repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runINK2(cmd.Context(), cmd.OutOrStdout(), w, year, sruDir, time.Now)
		},
	}

	cmd.Flags().StringVar(&sruDir, "sru", "", "write INFO.SRU and BLANKETTER.SRU into this directory")

	return cmd
}

func runINK2(ctx context.Context, out io.Writer, w *workspace, year int, sruDir string, now func() time.Time) error {
	start, end, err := w.cfg.FiscalYear(year)
	if err != nil {
		return err
	}
	period, err := ink2.NewTaxPeriod(start, end)
	if err != nil {
		return err
	}
	vers, err := w.journal.ReadUntil(end)
	if err != nil {
		return err
	}

	co := ink2.Company{OrgNr: w.cfg.Business.OrgNr, Name: w.cfg.Business.Name}
	calc := ink2.NewCalculator(ink2.WithLogger(w.log))
	decls := calc.GenerateDeclarations(co, period, balance.Closing(vers, start, end))

	for _, d := range decls {
		printDeclaration(out, d)
	}

	if sruDir == "" {
		return nil
	}
	if !filepath.IsAbs(sruDir) {
		sruDir = filepath.Join(w.root, sruDir)
	}
	if err := ink2.WriteSRU(sruDir, co, decls, now()); err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %s and %s in %s\n", ink2.InfoFile, ink2.FormsFile, sruDir)

	var taxable string
	for _, d := range decls {
		if d.BlankettType == ink2.FormINK2S {
			taxable = ink2.TaxableResult(d.Fields).StringFixed(0)
		}
	}
	entry := filinglog.Entry{
		Timestamp: now(),
		Kind:      filinglog.KindINK2,
		Period:    period.Code(),
		Event:     filinglog.EventGenerated,
		Amount:    taxable,
		File:      w.rel(filepath.Join(sruDir, ink2.FormsFile)),
	}
	if err := filinglog.Append(w.root, entry); err != nil {
		return err
	}
	return w.commit(ctx, "ink2: "+period.Code())
}

func printDeclaration(out io.Writer, d ink2.Declaration) {
	title(out, "%s %s %s", d.BlankettType, d.Period, d.OrgNr)
	rows := make([][]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		rows = append(rows, []string{strconv.Itoa(f.Code), f.Value()})
	}
	writeTable(out, rows)
	fmt.Fprintln(out)
}
