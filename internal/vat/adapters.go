package vat

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
	"github.com/forzencookie/scope-ai-sub007/internal/bas"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// FromLedger computes the report from journal verifications. Output VAT is
// the credit side of 2610-2639 accounts, input VAT the debit side of 2640-2649.
func (c *Calculator) FromLedger(verifications []model.Verification, period string) (Report, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return Report{}, err
	}
	return c.FromBalances(balance.Aggregate(verifications, p.Start(), p.End()), p), nil
}

// FromBalances computes the report from balances already aggregated over the
// period window.
func (c *Calculator) FromBalances(b balance.Balances, p Period) Report {
	var r Report
	r.Ruta10 = b.SumCredit(bas.OutputVAT25)
	r.Ruta11 = b.SumCredit(bas.OutputVAT12)
	r.Ruta12 = b.SumCredit(bas.OutputVAT6)
	r.Ruta48 = b.SumDebit(bas.InputVAT)

	c.log.Debug().
		Str("period", p.String()).
		Int("accounts", len(b)).
		Msg("vat report from ledger")
	return c.build(p, r)
}

// FromTransactions computes the report from flat transactions. A positive VAT
// amount is output VAT in its rate bucket, a negative one is input VAT.
func (c *Calculator) FromTransactions(txns []model.Transaction, period string) (Report, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return Report{}, err
	}

	var r Report
	for _, t := range txns {
		if !within(t.Date, p) || t.VATAmount.IsZero() {
			continue
		}
		if t.VATAmount.IsNegative() {
			r.Ruta48 = r.Ruta48.Add(t.VATAmount.Neg())
			continue
		}
		if !c.addOutput(&r, t.VATRate, t.VATAmount) {
			c.log.Warn().
				Int("vat_rate", t.VATRate).
				Str("description", t.Description).
				Msg("output vat with unsupported rate ignored")
		}
	}
	return c.build(p, r), nil
}

// Documents groups the source documents of a period.
type Documents struct {
	CustomerInvoices []model.Document
	SupplierInvoices []model.Document
	Receipts         []model.Document
}

// FromDocuments computes the report from invoices and receipts. Customer
// invoices give output VAT by rate; supplier invoices and receipts count as
// input VAT regardless of rate.
func (c *Calculator) FromDocuments(docs Documents, period string) (Report, error) {
	p, err := ParsePeriod(period)
	if err != nil {
		return Report{}, err
	}

	var r Report
	for _, d := range docs.CustomerInvoices {
		if !within(d.Date, p) {
			continue
		}
		if !c.addOutput(&r, d.VATRate, d.VATAmount) && !d.VATAmount.IsZero() {
			c.log.Warn().
				Int("vat_rate", d.VATRate).
				Str("invoice", d.Number).
				Msg("customer invoice with unsupported vat rate ignored")
		}
	}
	for _, list := range [][]model.Document{docs.SupplierInvoices, docs.Receipts} {
		for _, d := range list {
			if within(d.Date, p) {
				r.Ruta48 = r.Ruta48.Add(d.VATAmount)
			}
		}
	}
	return c.build(p, r), nil
}

func (c *Calculator) addOutput(r *Report, rate int, amount decimal.Decimal) bool {
	switch rate {
	case 25:
		r.Ruta10 = r.Ruta10.Add(amount)
	case 12:
		r.Ruta11 = r.Ruta11.Add(amount)
	case 6:
		r.Ruta12 = r.Ruta12.Add(amount)
	default:
		return false
	}
	return true
}

func within(t time.Time, p Period) bool {
	return !t.Before(p.Start()) && !t.After(p.End())
}
