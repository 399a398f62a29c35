package vat

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func fixedClock(t time.Time) Option {
	return WithClock(func() time.Time { return t })
}

func ver(d time.Time, rows ...model.Posting) model.Verification {
	return model.Verification{Date: d, Rows: rows}
}

func TestFromLedger_OutputVAT(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2024, 11, 1)))
	vers := []model.Verification{
		ver(date(2024, 11, 5),
			model.Posting{Account: "1510", Debit: dec("1250")},
			model.Posting{Account: "3001", Credit: dec("1000")},
			model.Posting{Account: "2610", Credit: dec("250")},
		),
	}

	r, err := calc.FromLedger(vers, "Q4 2024")
	require.NoError(t, err)
	assert.True(t, r.Ruta10.Equal(dec("250")))
	assert.True(t, r.Ruta05.Equal(dec("1000")))
	assert.True(t, r.SalesVAT.Equal(dec("250")))
	assert.True(t, r.NetVAT.Equal(dec("250")))
	assert.True(t, r.Ruta49.Equal(r.NetVAT))
	assert.Equal(t, StatusUpcoming, r.Status)
	assert.Equal(t, "2025-02-12", r.DueDate.Format("2006-01-02"))
}

func TestFromLedger_InputVAT(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2024, 11, 1)))
	vers := []model.Verification{
		ver(date(2024, 12, 1),
			model.Posting{Account: "5410", Debit: dec("400")},
			model.Posting{Account: "2640", Debit: dec("100")},
			model.Posting{Account: "1930", Credit: dec("500")},
		),
	}

	r, err := calc.FromLedger(vers, "Q4 2024")
	require.NoError(t, err)
	assert.True(t, r.Ruta48.Equal(dec("100")))
	assert.True(t, r.InputVAT.Equal(dec("100")))
	assert.True(t, r.NetVAT.Equal(dec("-100")))
	assert.True(t, r.Ruta49.Equal(dec("-100")))
	assert.True(t, r.Ruta05.IsZero())
}

func TestFromLedger_AllRates(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2025, 1, 1)))
	vers := []model.Verification{
		ver(date(2025, 2, 1),
			model.Posting{Account: "1930", Debit: dec("1484")},
			model.Posting{Account: "2611", Credit: dec("250")},
			model.Posting{Account: "2621", Credit: dec("120")},
			model.Posting{Account: "2631", Credit: dec("114")},
			model.Posting{Account: "3001", Credit: dec("1000")},
		),
		ver(date(2025, 3, 1),
			model.Posting{Account: "2641", Debit: dec("80")},
			model.Posting{Account: "2645", Debit: dec("20")},
			model.Posting{Account: "1930", Credit: dec("100")},
		),
	}

	r, err := calc.FromLedger(vers, "Q1 2025")
	require.NoError(t, err)
	assert.Equal(t, "1000", r.Ruta06.String())
	assert.Equal(t, "1900", r.Ruta07.String())
	assert.Equal(t, "1000", r.Ruta05.String())
	assert.True(t, r.SalesVAT.Equal(dec("484")))
	assert.True(t, r.Ruta48.Equal(dec("100")))
	assert.True(t, r.NetVAT.Equal(dec("384")))
}

func TestFromLedger_OutsideWindowIgnored(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2025, 1, 1)))
	vers := []model.Verification{
		ver(date(2024, 12, 31), model.Posting{Account: "2611", Credit: dec("250")}),
		ver(date(2025, 4, 1), model.Posting{Account: "2611", Credit: dec("250")}),
	}
	r, err := calc.FromLedger(vers, "Q1 2025")
	require.NoError(t, err)
	assert.True(t, r.Ruta10.IsZero())
}

func TestFromLedger_Empty(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2025, 6, 1)))
	r, err := calc.FromLedger(nil, "Q1 2025")
	require.NoError(t, err)
	for _, f := range r.Fields() {
		assert.True(t, f.Value.IsZero(), "ruta %02d", f.Ruta)
	}
	assert.True(t, r.SalesVAT.IsZero())
	assert.True(t, r.InputVAT.IsZero())
	assert.True(t, r.NetVAT.IsZero())
	assert.Equal(t, StatusOverdue, r.Status, "Q1 due 12 May, now is 1 June")
}

func TestFromLedger_InvalidPeriod(t *testing.T) {
	_, err := NewCalculator().FromLedger(nil, "2025")
	var perr *InvalidPeriodError
	require.ErrorAs(t, err, &perr)
}

func TestStatus(t *testing.T) {
	due := Period{2, 2025}.DueDate()
	tests := []struct {
		now  time.Time
		want Status
	}{
		{due.Add(-time.Hour), StatusUpcoming},
		{due, StatusUpcoming},
		{due.Add(time.Second), StatusOverdue},
	}
	for _, tt := range tests {
		calc := NewCalculator(fixedClock(tt.now))
		r, err := calc.FromLedger(nil, "Q2 2025")
		require.NoError(t, err)
		assert.Equal(t, tt.want, r.Status, "now=%s", tt.now)
	}
}

func TestMarkSubmitted(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2030, 1, 1)))
	r, err := calc.FromLedger(nil, "Q1 2025")
	require.NoError(t, err)
	require.Equal(t, StatusOverdue, r.Status)

	s := r.MarkSubmitted()
	assert.Equal(t, StatusSubmitted, s.Status)
	assert.Equal(t, StatusOverdue, r.Status, "original is a value and unchanged")
}

func TestSalesBase(t *testing.T) {
	tests := []struct {
		vat, rate, want string
	}{
		{"1000", "0.25", "4000"},
		{"0", "0.25", "0"},
		{"-50", "0.25", "0"},
		{"33.33", "0.25", "133"},
		{"12", "0.12", "100"},
		{"6.5", "0.06", "108"},
	}
	for _, tt := range tests {
		got := salesBase(dec(tt.vat), dec(tt.rate))
		assert.Equal(t, tt.want, got.String(), "salesBase(%s, %s)", tt.vat, tt.rate)
	}
}

func TestBuild_TotalsIncludeReverseChargeAndImport(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2025, 1, 1)))
	r := calc.build(Period{1, 2025}, Report{
		Ruta10: dec("100"),
		Ruta30: dec("10"),
		Ruta31: dec("20"),
		Ruta32: dec("30"),
		Ruta60: dec("1"),
		Ruta61: dec("2"),
		Ruta62: dec("3"),
		Ruta48: dec("66"),
	})
	assert.True(t, r.SalesVAT.Equal(dec("166")))
	assert.True(t, r.InputVAT.Equal(dec("66")))
	assert.True(t, r.NetVAT.Equal(dec("100")))
	assert.True(t, r.Ruta49.Equal(r.NetVAT))
}

func TestFromTransactions(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2025, 1, 1)))
	txns := []model.Transaction{
		{Date: date(2025, 1, 5), VATAmount: dec("250"), VATRate: 25},
		{Date: date(2025, 1, 6), VATAmount: dec("12"), VATRate: 12},
		{Date: date(2025, 1, 7), VATAmount: dec("6"), VATRate: 6},
		{Date: date(2025, 1, 8), VATAmount: dec("-40"), VATRate: 25},
		{Date: date(2025, 1, 9), VATAmount: dec("-10"), VATRate: 6},
		{Date: date(2025, 5, 9), VATAmount: dec("999"), VATRate: 25},
		{Date: date(2025, 1, 10), VATAmount: dec("7"), VATRate: 7},
	}
	r, err := calc.FromTransactions(txns, "Q1 2025")
	require.NoError(t, err)
	assert.True(t, r.Ruta10.Equal(dec("250")))
	assert.True(t, r.Ruta11.Equal(dec("12")))
	assert.True(t, r.Ruta12.Equal(dec("6")))
	assert.True(t, r.Ruta48.Equal(dec("50")))
	assert.True(t, r.SalesVAT.Equal(dec("268")))
	assert.True(t, r.NetVAT.Equal(dec("218")))
	assert.Equal(t, "1000", r.Ruta05.String())
}

func TestFromTransactions_UnsupportedRateLogged(t *testing.T) {
	var buf bytes.Buffer
	calc := NewCalculator(fixedClock(date(2025, 1, 1)), WithLogger(zerolog.New(&buf)))
	_, err := calc.FromTransactions([]model.Transaction{
		{Date: date(2025, 1, 10), VATAmount: dec("7"), VATRate: 7, Description: "odd"},
	}, "Q1 2025")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "unsupported rate")
	assert.Contains(t, buf.String(), `"vat_rate":7`)
}

func TestFromDocuments(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2025, 1, 1)))
	docs := Documents{
		CustomerInvoices: []model.Document{
			{Number: "1001", Date: date(2025, 7, 2), VATAmount: dec("250"), VATRate: 25},
			{Number: "1002", Date: date(2025, 8, 2), VATAmount: dec("60"), VATRate: 6},
			{Number: "1003", Date: date(2025, 10, 1), VATAmount: dec("100"), VATRate: 25},
		},
		SupplierInvoices: []model.Document{
			{Number: "S1", Date: date(2025, 7, 3), VATAmount: dec("30"), VATRate: 25},
		},
		Receipts: []model.Document{
			{Number: "R1", Date: date(2025, 9, 30), VATAmount: dec("12"), VATRate: 12},
			{Number: "R2", Date: date(2025, 9, 30), VATAmount: dec("3"), VATRate: 0},
		},
	}
	r, err := calc.FromDocuments(docs, "Q3 2025")
	require.NoError(t, err)
	assert.True(t, r.Ruta10.Equal(dec("250")))
	assert.True(t, r.Ruta12.Equal(dec("60")))
	assert.True(t, r.Ruta48.Equal(dec("45")))
	assert.True(t, r.NetVAT.Equal(dec("265")))
	assert.Equal(t, "1000", r.Ruta07.String())
}

func TestAdaptersConverge(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2025, 1, 1)))

	ledger, err := calc.FromLedger([]model.Verification{
		ver(date(2025, 2, 1),
			model.Posting{Account: "1510", Debit: dec("1250")},
			model.Posting{Account: "3001", Credit: dec("1000")},
			model.Posting{Account: "2611", Credit: dec("250")},
		),
		ver(date(2025, 2, 2),
			model.Posting{Account: "4010", Debit: dec("400")},
			model.Posting{Account: "2641", Debit: dec("100")},
			model.Posting{Account: "2440", Credit: dec("500")},
		),
	}, "Q1 2025")
	require.NoError(t, err)

	txns, err := calc.FromTransactions([]model.Transaction{
		{Date: date(2025, 2, 1), VATAmount: dec("250"), VATRate: 25},
		{Date: date(2025, 2, 2), VATAmount: dec("-100"), VATRate: 25},
	}, "Q1 2025")
	require.NoError(t, err)

	docs, err := calc.FromDocuments(Documents{
		CustomerInvoices: []model.Document{{Date: date(2025, 2, 1), VATAmount: dec("250"), VATRate: 25}},
		SupplierInvoices: []model.Document{{Date: date(2025, 2, 2), VATAmount: dec("100"), VATRate: 25}},
	}, "Q1 2025")
	require.NoError(t, err)

	for _, r := range []Report{txns, docs} {
		assert.Equal(t, ledger.Ruta05.String(), r.Ruta05.String())
		assert.Equal(t, ledger.Ruta10.String(), r.Ruta10.String())
		assert.Equal(t, ledger.Ruta48.String(), r.Ruta48.String())
		assert.Equal(t, ledger.NetVAT.String(), r.NetVAT.String())
		assert.Equal(t, ledger.DueDate, r.DueDate)
		assert.Equal(t, ledger.Status, r.Status)
	}
}

func TestFromLedger_Idempotent(t *testing.T) {
	calc := NewCalculator(fixedClock(date(2025, 1, 1)))
	vers := []model.Verification{
		ver(date(2025, 2, 1), model.Posting{Account: "2611", Credit: dec("250")}),
	}
	a, err := calc.FromLedger(vers, "Q1 2025")
	require.NoError(t, err)
	b, err := calc.FromLedger(vers, "Q1 2025")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
