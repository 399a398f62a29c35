package vat

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// InvalidPeriodError reports a period string that is not of the form "Qn YYYY".
type InvalidPeriodError struct {
	Input string
}

func (e *InvalidPeriodError) Error() string {
	return fmt.Sprintf("invalid VAT period %q: expected \"Qn YYYY\" with n in 1-4", e.Input)
}

// Period is one calendar quarter.
type Period struct {
	Quarter int
	Year    int
}

var periodPattern = regexp.MustCompile(`^Q([1-4])\s+(\d{4})$`)

// ParsePeriod parses "Q1 2025".
func ParsePeriod(s string) (Period, error) {
	m := periodPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Period{}, &InvalidPeriodError{Input: s}
	}
	q, _ := strconv.Atoi(m[1])
	y, _ := strconv.Atoi(m[2])
	return Period{Quarter: q, Year: y}, nil
}

func (p Period) String() string { return fmt.Sprintf("Q%d %d", p.Quarter, p.Year) }

// Start is midnight UTC on the first day of the quarter.
func (p Period) Start() time.Time {
	return time.Date(p.Year, time.Month((p.Quarter-1)*3+1), 1, 0, 0, 0, 0, time.UTC)
}

// End is the last instant of the quarter's final day.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 3, 0).Add(-time.Nanosecond)
}

// Code is the eSKD period label: year and last month of the quarter, "202503".
func (p Period) Code() string {
	return fmt.Sprintf("%04d%02d", p.Year, p.Quarter*3)
}

// DueDate is the statutory filing deadline for the quarter. Q4 falls due in
// the following year.
func (p Period) DueDate() time.Time {
	switch p.Quarter {
	case 1:
		return time.Date(p.Year, time.May, 12, 0, 0, 0, 0, time.UTC)
	case 2:
		return time.Date(p.Year, time.August, 17, 0, 0, 0, 0, time.UTC)
	case 3:
		return time.Date(p.Year, time.November, 12, 0, 0, 0, 0, time.UTC)
	default:
		return time.Date(p.Year+1, time.February, 12, 0, 0, 0, 0, time.UTC)
	}
}
