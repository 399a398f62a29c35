package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/id"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryID     string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryID, e.Description)
}

// AccountChecker tests whether an account exists in the chart of accounts.
type AccountChecker interface {
	Exists(code string) bool
}

var hundred = decimal.NewFromInt(100)

func cents(d decimal.Decimal) bool {
	return d.Mul(hundred).Equal(d.Mul(hundred).Floor())
}

// ValidateMonth checks the verifications of one month file:
//  1. debits equal credits per verification
//  2. each row is exactly one of debit or credit
//  3. every account is in the chart
//  4. the date falls within the month
//  5. verification numbers are unique and run 1..N
//  6. amounts have at most two decimals
func ValidateMonth(vers []model.Verification, accounts AccountChecker, year, month int) []ValidationError {
	var errs []ValidationError

	for _, v := range vers {
		if d, c := v.Totals(); !d.Equal(c) {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryID:     v.ID,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", d.StringFixed(2), c.StringFixed(2)),
			})
		}

		if v.Date.Year() != year || int(v.Date.Month()) != month {
			errs = append(errs, ValidationError{
				Invariant:   4,
				EntryID:     v.ID,
				Description: fmt.Sprintf("date %s not in %04d-%02d", v.Date.Format(dateFormat), year, month),
			})
		}

		for i, p := range v.Rows {
			rowID := id.Row(v.ID, i)
			if p.Debit.IsZero() == p.Credit.IsZero() {
				errs = append(errs, ValidationError{
					Invariant:   2,
					EntryID:     rowID,
					Description: "row must have exactly one of debit or credit",
				})
			}
			if p.Debit.IsNegative() || p.Credit.IsNegative() {
				errs = append(errs, ValidationError{
					Invariant:   2,
					EntryID:     rowID,
					Description: "debit and credit must not be negative",
				})
			}
			if !accounts.Exists(p.Account) {
				errs = append(errs, ValidationError{
					Invariant:   3,
					EntryID:     rowID,
					Description: fmt.Sprintf("unknown account %s", p.Account),
				})
			}
			if !cents(p.Debit) {
				errs = append(errs, ValidationError{
					Invariant:   6,
					EntryID:     rowID,
					Description: fmt.Sprintf("debit %s has more than 2 decimal places", p.Debit),
				})
			}
			if !cents(p.Credit) {
				errs = append(errs, ValidationError{
					Invariant:   6,
					EntryID:     rowID,
					Description: fmt.Sprintf("credit %s has more than 2 decimal places", p.Credit),
				})
			}
		}
	}

	seqSeen := make(map[int]string)
	for _, v := range vers {
		_, _, seq, err := id.Parse(v.ID)
		if err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     v.ID,
				Description: fmt.Sprintf("invalid verification ID: %v", err),
			})
			continue
		}
		if _, dup := seqSeen[seq]; dup {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     v.ID,
				Description: fmt.Sprintf("duplicate sequence %d", seq),
			})
		}
		seqSeen[seq] = v.ID
	}
	for i := 1; i <= len(seqSeen); i++ {
		if _, ok := seqSeen[i]; !ok {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryID:     fmt.Sprintf("seq %d", i),
				Description: fmt.Sprintf("missing sequence %d in 1..%d", i, len(seqSeen)),
			})
		}
	}

	return errs
}
