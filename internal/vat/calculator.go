// Package vat computes the Swedish VAT declaration (SKV 4700) for a quarter.
//
// Three adapters feed one builder: ledger postings, flat transactions with a
// signed VAT amount, and source documents. All of them produce the same
// Report and apply the same back-calculation and totals.
package vat

import (
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

var (
	rate25 = decimal.RequireFromString("0.25")
	rate12 = decimal.RequireFromString("0.12")
	rate6  = decimal.RequireFromString("0.06")
)

// Calculator is stateless apart from its injected clock and logger.
type Calculator struct {
	now func() time.Time
	log zerolog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithClock injects the time source used for status.
func WithClock(now func() time.Time) Option {
	return func(c *Calculator) { c.now = now }
}

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calculator) { c.log = l }
}

// NewCalculator returns a Calculator reading the system clock by default.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{now: time.Now, log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// build finalizes a draft whose rutor have been filled by an adapter.
func (c *Calculator) build(p Period, r Report) Report {
	r.Period = p
	r.DueDate = p.DueDate()
	r.Status = StatusUpcoming
	if c.now().After(r.DueDate) {
		r.Status = StatusOverdue
	}

	r.Ruta05 = salesBase(r.Ruta10, rate25)
	r.Ruta06 = salesBase(r.Ruta11, rate12)
	r.Ruta07 = salesBase(r.Ruta12, rate6)

	r.SalesVAT = sum(r.Ruta10, r.Ruta11, r.Ruta12, r.Ruta30, r.Ruta31, r.Ruta32, r.Ruta60, r.Ruta61, r.Ruta62)
	r.InputVAT = r.Ruta48
	r.NetVAT = r.SalesVAT.Sub(r.InputVAT)
	r.Ruta49 = r.NetVAT
	return r
}

// salesBase back-calculates the taxable base from output VAT. Only positive
// VAT yields a base.
func salesBase(vat, rate decimal.Decimal) decimal.Decimal {
	if !vat.IsPositive() {
		return decimal.Zero
	}
	return vat.Div(rate).Round(0)
}

func sum(ds ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, d := range ds {
		total = total.Add(d)
	}
	return total
}
