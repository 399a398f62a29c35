package statements

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func entry(d time.Time, debit, credit, amount string) model.Verification {
	return model.Verification{
		Date: d,
		Rows: []model.Posting{
			{Account: debit, Debit: dec(amount)},
			{Account: credit, Credit: dec(amount)},
		},
	}
}

// ledger2025 is a small balanced aktiebolag year. Expected figures:
// net income 2350, total assets 69100.
func ledger2025() []model.Verification {
	return []model.Verification{
		entry(date(2025, 1, 2), "1930", "2081", "50000"),
		entry(date(2025, 1, 5), "1930", "2350", "10000"),
		entry(date(2025, 1, 10), "1220", "1930", "5000"),
		{
			Date: date(2025, 2, 1),
			Rows: []model.Posting{
				{Account: "1510", Debit: dec("12500")},
				{Account: "3001", Credit: dec("10000")},
				{Account: "2611", Credit: dec("2500")},
			},
		},
		{
			Date: date(2025, 2, 3),
			Rows: []model.Posting{
				{Account: "4010", Debit: dec("3000")},
				{Account: "2640", Debit: dec("750")},
				{Account: "2440", Credit: dec("3750")},
			},
		},
		entry(date(2025, 3, 1), "5010", "1930", "2000"),
		entry(date(2025, 3, 25), "7010", "1930", "1500"),
		entry(date(2025, 12, 31), "7832", "1229", "500"),
		entry(date(2025, 12, 31), "7720", "1229", "50"),
		entry(date(2025, 12, 31), "8410", "1930", "100"),
		entry(date(2025, 12, 31), "8811", "2125", "300"),
		entry(date(2025, 12, 31), "8910", "2510", "200"),
	}
}

func balances2025() balance.Balances {
	return balance.Aggregate(ledger2025(), date(2025, 1, 1), date(2025, 12, 31))
}

func TestIncomeStatement_Chain(t *testing.T) {
	s := NewCalculator().IncomeStatement(balances2025())

	tests := []struct {
		name string
		got  decimal.Decimal
		want string
	}{
		{"revenue", s.Revenue, "10000"},
		{"direct costs", s.DirectCosts, "-3000"},
		{"gross profit", s.GrossProfit, "7000"},
		{"other external", s.OtherExternal, "-2000"},
		{"personnel", s.Personnel, "-1500"},
		{"ebitda", s.EBITDA, "3500"},
		{"depreciation", s.Depreciation, "-550"},
		{"ebit", s.EBIT, "2950"},
		{"financial", s.Financial, "-400"},
		{"ebt", s.EBT, "2550"},
		{"tax", s.Tax, "-200"},
		{"net income", s.NetIncome, "2350"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.got.Equal(dec(tt.want)), "got %s want %s", tt.got, tt.want)
		})
	}
}

func TestIncomeStatement_RevenueOnly(t *testing.T) {
	b := balance.Balances{"3001": {Account: "3001", Credit: dec("1000"), Balance: dec("1000")}}
	s := NewCalculator().IncomeStatement(b)
	assert.True(t, s.Revenue.Equal(dec("1000")))
	assert.True(t, s.NetIncome.Equal(dec("1000")))
}

func TestIncomeStatement_Lines(t *testing.T) {
	lines := NewCalculator().IncomeStatement(balances2025()).Lines()
	require.Len(t, lines, 12)

	last := lines[len(lines)-1]
	assert.Equal(t, "Årets resultat", last.Label)
	assert.True(t, last.Highlight)
	assert.True(t, last.Value.Equal(dec("2350")))

	var highlighted int
	for _, l := range lines {
		if l.Highlight {
			highlighted++
		}
	}
	assert.Equal(t, 5, highlighted)
}

func TestBalanceSheet_AccountingEquation(t *testing.T) {
	s := NewCalculator().BalanceSheet(balances2025())

	assert.True(t, s.FixedAssets.Equal(dec("4450")))
	assert.True(t, s.CurrentAssets.Equal(dec("64650")))
	assert.True(t, s.TotalAssets.Equal(dec("69100")))
	assert.True(t, s.Equity.Equal(dec("50000")))
	assert.True(t, s.YearResult.Equal(dec("2350")))
	assert.True(t, s.UntaxedReserves.Equal(dec("300")))
	assert.True(t, s.Provisions.IsZero())
	assert.True(t, s.LongTermLiabilities.Equal(dec("10000")))
	assert.True(t, s.ShortTermLiabilities.Equal(dec("6450")))
	assert.True(t, s.TotalEquityAndLiabilities.Equal(s.TotalAssets),
		"assets %s != equity and liabilities %s", s.TotalAssets, s.TotalEquityAndLiabilities)
}

func TestBalanceSheet_AssetsDisplayedPositive(t *testing.T) {
	b := balance.Balances{"1930": {Account: "1930", Debit: dec("1000"), Balance: dec("-1000")}}
	s := NewCalculator().BalanceSheet(b)
	assert.True(t, s.CurrentAssets.Equal(dec("1000")))
	assert.True(t, s.TotalAssets.Equal(dec("1000")))
}

func TestEmptyStatements(t *testing.T) {
	for _, l := range EmptyIncomeStatement().Lines() {
		assert.True(t, l.Value.IsZero(), l.Label)
	}
	for _, l := range EmptyBalanceSheet().Lines() {
		assert.True(t, l.Value.IsZero(), l.Label)
	}

	calc := NewCalculator()
	assert.True(t, calc.IncomeStatement(balance.Balances{}).NetIncome.IsZero())
	assert.True(t, calc.BalanceSheet(balance.Balances{}).TotalAssets.IsZero())
}

func TestUnmappedAccountsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	calc := NewCalculator(WithLogger(zerolog.New(&buf)))

	b := balance.Balances{
		"0999": {Account: "0999", Balance: dec("-10")},
		"3001": {Account: "3001", Balance: dec("10")},
	}
	s := calc.IncomeStatement(b)
	assert.True(t, s.Revenue.Equal(dec("10")))
	assert.Contains(t, buf.String(), `"account":"0999"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.NotContains(t, buf.String(), `"account":"3001"`)
}
