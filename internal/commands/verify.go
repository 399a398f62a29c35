package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func newVerifyCommand(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <year>",
		Short: "Check every journal month of a calendar year for bookkeeping errors",
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
			return runVerify(cmd.OutOrStdout(), w, year)
		},
	}
}

func runVerify(out io.Writer, w *workspace, year int) error {
	errs, err := w.journal.Verify(year)
	if err != nil {
		return err
	}
	if len(errs) == 0 {
		fmt.Fprintf(out, "%d: journal OK\n", year)
		return nil
	}
	for _, e := range errs {
		fmt.Fprintln(out, e.Error())
	}
	return fmt.Errorf("%d: %d validation errors", year, len(errs))
}
