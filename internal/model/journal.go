package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Posting is one row of a verification (one side of a double entry).
type Posting struct {
	Account     string          // BAS account number, e.g. "1930"
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
	Description string
}

// Verification is a balanced journal entry. Within a verification
// sum(Debit) == sum(Credit); the calculators rely on that without checking.
type Verification struct {
	ID          string // "YYYY-MM-NNN"
	Date        time.Time
	Description string
	SourceType  string // "sie", "manual", ...
	Rows        []Posting
}

// Totals returns the summed debit and credit of all rows.
func (v Verification) Totals() (debit, credit decimal.Decimal) {
	for _, r := range v.Rows {
		debit = debit.Add(r.Debit)
		credit = credit.Add(r.Credit)
	}
	return debit, credit
}

// Balanced reports whether debits equal credits.
func (v Verification) Balanced() bool {
	d, c := v.Totals()
	return d.Equal(c)
}
