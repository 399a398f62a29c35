package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// highlightPrefix marks subtotal rows.
const highlightPrefix = "= "

// writeTable prints rows as borderless aligned columns. Every column after
// the first holds amounts and is right-aligned; highlighted rows are bold
// when out is a terminal.
func writeTable(out io.Writer, rows [][]string) {
	if len(rows) == 0 {
		return
	}
	r := lipgloss.NewRenderer(out)
	cell := r.NewStyle().PaddingRight(2)
	amount := cell.Align(lipgloss.Right)

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if col > 0 {
				s = amount
			}
			if row >= 0 && row < len(rows) && strings.HasPrefix(rows[row][0], highlightPrefix) {
				s = s.Bold(true)
			}
			return s
		}).
		Rows(rows...)

	fmt.Fprintln(out, t.String())
}

// title prints a bold heading followed by a blank line.
func title(out io.Writer, format string, args ...any) {
	r := lipgloss.NewRenderer(out)
	fmt.Fprintln(out, r.NewStyle().Bold(true).Render(fmt.Sprintf(format, args...)))
	fmt.Fprintln(out)
}
