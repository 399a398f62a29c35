// Package statements builds the income statement and balance sheet from
// account balances, either as flat summary lines or as drill-down sections
// with per-account detail.
package statements

import (
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
	"github.com/forzencookie/scope-ai-sub007/internal/bas"
)

// presence is the magnitude at or below which an account is not listed as
// a drill-down item. Section totals still include it.
var presence = decimal.RequireFromString("0.01")

// Line is one row of a flat statement.
type Line struct {
	Label     string
	Value     decimal.Decimal
	Highlight bool
}

// Calculator is stateless apart from its label lookup and logger.
type Calculator struct {
	names bas.Namer
	log   zerolog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithNames sets the account label lookup for drill-down items.
func WithNames(n bas.Namer) Option {
	return func(c *Calculator) { c.names = n }
}

// WithLogger sets the logger used to report unmapped accounts.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calculator) { c.log = l }
}

// NewCalculator returns a Calculator labelling accounts from the static BAS names.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{names: bas.StaticNames{}, log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// warnUnmapped logs accounts with a balance that no range of t covers.
// When scope is given, only accounts inside it are considered.
func (c *Calculator) warnUnmapped(b balance.Balances, t bas.Table, statement string, scope ...bas.Range) {
	for _, code := range b.Unclassified(t) {
		if len(scope) > 0 && !inScope(code, scope) {
			continue
		}
		c.log.Warn().
			Str("account", code).
			Str("statement", statement).
			Str("balance", b[code].Balance.String()).
			Msg("account outside every statement range")
	}
}

func inScope(code string, scope []bas.Range) bool {
	n, ok := bas.Number(code)
	if !ok {
		return false
	}
	for _, r := range scope {
		if r.Contains(n) {
			return true
		}
	}
	return false
}

// yearResult is the net of every profit-and-loss account. The balance
// sheet carries it under equity so assets equal equity and liabilities
// before the year is closed.
func yearResult(b balance.Balances) decimal.Decimal {
	return b.Sum(bas.ProfitAndLoss)
}
