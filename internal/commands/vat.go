package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/forzencookie/scope-ai-sub007/internal/buildinfo"
	"github.com/forzencookie/scope-ai-sub007/internal/filinglog"
	"github.com/forzencookie/scope-ai-sub007/internal/importer"
	"github.com/forzencookie/scope-ai-sub007/internal/vat"
)

type vatOptions struct {
	transactions     string
	invoices         string
	supplierInvoices string
	receipts         string
	xmlOut           string
	markSubmitted    bool
}

func (o vatOptions) fromDocuments() bool {
	return o.invoices != "" || o.supplierInvoices != "" || o.receipts != ""
}

func newVATCommand(repoDir *string) *cobra.Command {
	var opts vatOptions

	cmd := &cobra.Command{
		Use:   `vat "Qn YYYY"`,
		Short: "Compute the quarterly VAT return (momsdeklaration)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.transactions != "" && opts.fromDocuments() {
				return fmt.Errorf("--transactions cannot be combined with document sources")
			}
			w, err := openWorkspace(*repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runVAT(cmd.Context(), cmd.OutOrStdout(), w, args[0], opts, time.Now)
		},
	}

	cmd.Flags().StringVar(&opts.transactions, "transactions", "", "flat VAT transactions CSV instead of the ledger")
	cmd.Flags().StringVar(&opts.invoices, "invoices", "", "customer invoices CSV")
	cmd.Flags().StringVar(&opts.supplierInvoices, "supplier-invoices", "", "supplier invoices CSV")
	cmd.Flags().StringVar(&opts.receipts, "receipts", "", "receipts CSV")
	cmd.Flags().StringVar(&opts.xmlOut, "xml", "", "write the eSKD XML file to this path")
	cmd.Flags().BoolVar(&opts.markSubmitted, "mark-submitted", false, "record the return as submitted")

	return cmd
}

func runVAT(ctx context.Context, out io.Writer, w *workspace, period string, opts vatOptions, now func() time.Time) error {
	calc := vat.NewCalculator(vat.WithLogger(w.log), vat.WithClock(now))

	report, err := w.vatReport(calc, period, opts)
	if err != nil {
		return err
	}

	entries, err := filinglog.Read(w.root)
	if err != nil {
		return err
	}
	if filinglog.Submitted(entries, filinglog.KindVAT, report.Period.String()) {
		report = report.MarkSubmitted()
	}

	var logged []filinglog.Entry
	if opts.xmlOut != "" {
		path, err := writeVATXML(opts.xmlOut, w, report)
		if err != nil {
			return err
		}
		logged = append(logged, filinglog.Entry{
			Timestamp: now(),
			Kind:      filinglog.KindVAT,
			Period:    report.Period.String(),
			Event:     filinglog.EventGenerated,
			Amount:    report.Ruta49.StringFixed(0),
			File:      w.rel(path),
		})
		fmt.Fprintf(out, "Wrote %s\n", path)
	}
	if opts.markSubmitted && report.Status != vat.StatusSubmitted {
		report = report.MarkSubmitted()
		logged = append(logged, filinglog.Entry{
			Timestamp: now(),
			Kind:      filinglog.KindVAT,
			Period:    report.Period.String(),
			Event:     filinglog.EventSubmitted,
			Amount:    report.Ruta49.StringFixed(0),
		})
	}

	printVATReport(out, report)

	if len(logged) == 0 {
		return nil
	}
	if err := filinglog.Append(w.root, logged...); err != nil {
		return err
	}
	return w.commit(ctx, "vat: "+report.Period.String())
}

func (w *workspace) vatReport(calc *vat.Calculator, period string, opts vatOptions) (vat.Report, error) {
	switch {
	case opts.transactions != "":
		txns, err := importer.ReadTransactionsFile(opts.transactions)
		if err != nil {
			return vat.Report{}, err
		}
		return calc.FromTransactions(txns, period)

	case opts.fromDocuments():
		var docs vat.Documents
		var err error
		if docs.CustomerInvoices, err = importer.ReadDocumentsFile(opts.invoices); err != nil {
			return vat.Report{}, err
		}
		if docs.SupplierInvoices, err = importer.ReadDocumentsFile(opts.supplierInvoices); err != nil {
			return vat.Report{}, err
		}
		if docs.Receipts, err = importer.ReadDocumentsFile(opts.receipts); err != nil {
			return vat.Report{}, err
		}
		return calc.FromDocuments(docs, period)

	default:
		p, err := vat.ParsePeriod(period)
		if err != nil {
			return vat.Report{}, err
		}
		vers, err := w.journal.ReadRange(p.Start(), p.End())
		if err != nil {
			return vat.Report{}, err
		}
		return calc.FromLedger(vers, period)
	}
}

func writeVATXML(path string, w *workspace, r vat.Report) (string, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(w.root, path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := vat.WriteXML(f, r, w.cfg.Business.OrgNr, "scope "+buildinfo.Version); err != nil {
		return "", err
	}
	return path, f.Close()
}

func printVATReport(out io.Writer, r vat.Report) {
	title(out, "Momsdeklaration %s (due %s, %s)", r.Period, r.DueDate.Format("2006-01-02"), r.Status)

	var rows [][]string
	for _, f := range r.Fields() {
		if f.Value.IsZero() && f.Ruta != 49 {
			continue
		}
		rows = append(rows, []string{fmt.Sprintf("Ruta %02d", f.Ruta), kr(f.Value)})
	}
	writeTable(out, rows)

	fmt.Fprintf(out, "\nUtgående moms %s, ingående moms %s, att betala %s\n", kr(r.SalesVAT), kr(r.InputVAT), kr(r.NetVAT))
}
