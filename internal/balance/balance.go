// Package balance folds ledger postings into per-account balances.
package balance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/bas"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// AccountBalance is the cumulative debit and credit of one account over a
// date window. Balance is Credit - Debit.
type AccountBalance struct {
	Account string
	Debit   decimal.Decimal
	Credit  decimal.Decimal
	Balance decimal.Decimal
}

// Balances is keyed by account code. Accounts without postings in the window
// are absent; callers treat missing and zero alike.
type Balances map[string]AccountBalance

// Aggregate sums the postings of every verification dated within
// [start, end] inclusive.
func Aggregate(verifications []model.Verification, start, end time.Time) Balances {
	out := make(Balances)
	for _, v := range verifications {
		if v.Date.Before(start) || v.Date.After(end) {
			continue
		}
		for _, p := range v.Rows {
			b := out[p.Account]
			b.Account = p.Account
			b.Debit = b.Debit.Add(p.Debit)
			b.Credit = b.Credit.Add(p.Credit)
			out[p.Account] = b
		}
	}
	for k, b := range out {
		b.Balance = b.Credit.Sub(b.Debit)
		out[k] = b
	}
	return out
}

// RetainedEarnings receives results of earlier years that were never
// closed to equity.
const RetainedEarnings = "2098"

// Closing returns year-end balances for the fiscal year [start, end]:
// balance sheet accounts are cumulative up to end, result accounts cover
// the year only. Results from before start still sitting on result accounts
// are carried on RetainedEarnings so the ledger keeps summing to zero.
func Closing(verifications []model.Verification, start, end time.Time) Balances {
	out := Aggregate(verifications, time.Time{}, end)
	year := Aggregate(verifications, start, end)

	carried := decimal.Zero
	for code, b := range out {
		if !inAny(code, []bas.Range{bas.ProfitAndLoss}) {
			continue
		}
		carried = carried.Add(b.Balance)
		delete(out, code)
	}
	for code, b := range year {
		if !inAny(code, []bas.Range{bas.ProfitAndLoss}) {
			continue
		}
		carried = carried.Sub(b.Balance)
		out[code] = b
	}

	if !carried.IsZero() {
		re := out[RetainedEarnings]
		re.Account = RetainedEarnings
		if carried.IsPositive() {
			re.Credit = re.Credit.Add(carried)
		} else {
			re.Debit = re.Debit.Add(carried.Neg())
		}
		re.Balance = re.Credit.Sub(re.Debit)
		out[RetainedEarnings] = re
	}
	return out
}

// Get returns the balance of an account, zero-valued when absent.
func (b Balances) Get(account string) AccountBalance {
	if ab, ok := b[account]; ok {
		return ab
	}
	return AccountBalance{Account: account}
}

// Sum returns the summed net balance of all accounts within the ranges.
func (b Balances) Sum(ranges ...bas.Range) decimal.Decimal {
	total := decimal.Zero
	for code, ab := range b {
		if inAny(code, ranges) {
			total = total.Add(ab.Balance)
		}
	}
	return total
}

// SumDebit returns the summed debit side of all accounts within the ranges.
func (b Balances) SumDebit(ranges ...bas.Range) decimal.Decimal {
	total := decimal.Zero
	for code, ab := range b {
		if inAny(code, ranges) {
			total = total.Add(ab.Debit)
		}
	}
	return total
}

// SumCredit returns the summed credit side of all accounts within the ranges.
func (b Balances) SumCredit(ranges ...bas.Range) decimal.Decimal {
	total := decimal.Zero
	for code, ab := range b {
		if inAny(code, ranges) {
			total = total.Add(ab.Credit)
		}
	}
	return total
}

// Accounts returns the codes within the ranges, sorted ascending.
func (b Balances) Accounts(ranges ...bas.Range) []string {
	var out []string
	for code := range b {
		if inAny(code, ranges) {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}

// Unclassified returns accounts with a non-zero balance that fall outside
// every entry of the table, sorted ascending.
func (b Balances) Unclassified(t bas.Table) []string {
	var out []string
	for code, ab := range b {
		if ab.Balance.IsZero() {
			continue
		}
		if _, ok := t.Classify(code); !ok {
			out = append(out, code)
		}
	}
	sort.Strings(out)
	return out
}

func inAny(code string, ranges []bas.Range) bool {
	n, ok := bas.Number(code)
	if !ok {
		return false
	}
	for _, r := range ranges {
		if r.Contains(n) {
			return true
		}
	}
	return false
}
