package ink2

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidFiscalYear is returned when a fiscal year ends before it starts.
var ErrInvalidFiscalYear = errors.New("invalid fiscal year")

// TaxPeriod is the fiscal year a declaration covers.
type TaxPeriod struct {
	Start time.Time
	End   time.Time
}

// NewTaxPeriod validates and returns the fiscal year [start, end].
func NewTaxPeriod(start, end time.Time) (TaxPeriod, error) {
	if end.Before(start) {
		return TaxPeriod{}, fmt.Errorf("%w: %s ends before %s",
			ErrInvalidFiscalYear, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}
	return TaxPeriod{Start: start, End: end}, nil
}

// Code is the SRU period: the taxation year (the year after the fiscal
// year ends) plus a filing-window suffix from the end month.
func (p TaxPeriod) Code() string {
	return fmt.Sprintf("%dP%d", p.End.Year()+1, window(p.End.Month()))
}

func window(m time.Month) int {
	switch {
	case m <= time.April:
		return 1
	case m <= time.June:
		return 2
	case m <= time.August:
		return 3
	default:
		return 4
	}
}

func (p TaxPeriod) String() string {
	return p.Start.Format(time.DateOnly) + "–" + p.End.Format(time.DateOnly)
}
