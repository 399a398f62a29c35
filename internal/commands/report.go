package commands

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
	"github.com/forzencookie/scope-ai-sub007/internal/statements"
)

const (
	reportIncome  = "income"
	reportBalance = "balance"
)

type reportOptions struct {
	detail  bool
	compare bool
}

func newReportCommand(repoDir *string) *cobra.Command {
	var opts reportOptions

	cmd := &cobra.Command{
		Use:       "report income|balance <year>",
		Short:     "Print the income statement or balance sheet for a fiscal year",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{reportIncome, reportBalance},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := args[0]
			if kind != reportIncome && kind != reportBalance {
				return fmt.Errorf("unknown report %q: want income or balance", kind)
			}
			year, err := parseYear(args[1])
			if err != nil {
				return err
			}
			w, err := openWorkspace(*repoDir, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runReport(cmd.OutOrStdout(), w, kind, year, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.detail, "detail", false, "show accounts within each section")
	cmd.Flags().BoolVar(&opts.compare, "compare", false, "include the previous fiscal year")

	return cmd
}

func runReport(out io.Writer, w *workspace, kind string, year int, opts reportOptions) error {
	start, end, err := w.cfg.FiscalYear(year)
	if err != nil {
		return err
	}
	vers, err := w.journal.ReadUntil(end)
	if err != nil {
		return err
	}

	window := balance.Aggregate
	if kind == reportBalance {
		window = balance.Closing
	}
	current := window(vers, start, end)
	var previous balance.Balances
	if opts.compare {
		previous = window(vers, start.AddDate(-1, 0, 0), start.AddDate(0, 0, -1))
	}

	calc := statements.NewCalculator(statements.WithNames(w.accounts), statements.WithLogger(w.log))

	heading := "Resultaträkning"
	if kind == reportBalance {
		heading = "Balansräkning"
	}
	title(out, "%s %s, %s to %s", heading, w.cfg.Business.Name, start.Format("2006-01-02"), end.Format("2006-01-02"))

	if opts.detail {
		sections := calc.IncomeSections(current, previous)
		if kind == reportBalance {
			sections = calc.BalanceSections(current, previous)
		}
		printSections(out, sections)
		return nil
	}

	if kind == reportBalance {
		var prev []statements.Line
		if previous != nil {
			prev = calc.BalanceSheet(previous).Lines()
		}
		printLines(out, calc.BalanceSheet(current).Lines(), prev)
		return nil
	}
	var prev []statements.Line
	if previous != nil {
		prev = calc.IncomeStatement(previous).Lines()
	}
	printLines(out, calc.IncomeStatement(current).Lines(), prev)
	return nil
}

// printLines prints flat statement lines; previous, when set, has the
// same labels in the same order.
func printLines(out io.Writer, lines, previous []statements.Line) {
	rows := make([][]string, 0, len(lines))
	for i, l := range lines {
		label := l.Label
		if l.Highlight {
			label = highlightPrefix + label
		}
		row := []string{label, kr(l.Value)}
		if previous != nil {
			row = append(row, kr(previous[i].Value))
		}
		rows = append(rows, row)
	}
	writeTable(out, rows)
}

func printSections(out io.Writer, sections []statements.Section) {
	var rows [][]string
	for _, s := range sections {
		if s.Highlight {
			rows = append(rows, []string{highlightPrefix + s.Title, kr(s.Total), prevCell(s.PreviousTotal)})
			continue
		}
		rows = append(rows, []string{s.Title, "", ""})
		for _, it := range s.Items {
			label := it.Label
			if it.Account != "" {
				label = it.Account + " " + label
			}
			rows = append(rows, []string{"  " + label, kr(it.Value), prevCell(it.PreviousValue)})
		}
		rows = append(rows, []string{"  Summa " + s.Title, kr(s.Total), prevCell(s.PreviousTotal)})
	}
	writeTable(out, rows)
}

func prevCell(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return kr(*d)
}
