package statements

import (
	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
	"github.com/forzencookie/scope-ai-sub007/internal/bas"
)

// IncomeStatement is the flat result summary. Values keep the ledger sign
// (credit - debit): revenue positive, costs negative.
type IncomeStatement struct {
	Revenue       decimal.Decimal // 3000-3999
	DirectCosts   decimal.Decimal // 4000-4999
	GrossProfit   decimal.Decimal
	OtherExternal decimal.Decimal // 5000-6999
	Personnel     decimal.Decimal // 7000-7699
	EBITDA        decimal.Decimal
	Depreciation  decimal.Decimal // 7700-7999
	EBIT          decimal.Decimal
	Financial     decimal.Decimal // 8000-8899
	EBT           decimal.Decimal
	Tax           decimal.Decimal // 8900-8999
	NetIncome     decimal.Decimal
}

// IncomeStatement computes the flat income statement.
func (c *Calculator) IncomeStatement(b balance.Balances) IncomeStatement {
	c.warnUnmapped(b, bas.Chart, "income")

	sum := func(cats ...bas.Category) decimal.Decimal {
		var ranges []bas.Range
		for _, cat := range cats {
			ranges = append(ranges, bas.Chart.Ranges(cat)...)
		}
		return b.Sum(ranges...)
	}

	var s IncomeStatement
	s.Revenue = sum(bas.NetSales, bas.CapitalizedWork, bas.OtherOperatingIncome)
	s.DirectCosts = sum(bas.DirectCosts)
	s.OtherExternal = sum(bas.OtherExternalCosts)
	s.Personnel = sum(bas.Personnel)
	s.Depreciation = sum(bas.Depreciation)
	s.Financial = sum(bas.FinancialItems)
	s.Tax = sum(bas.IncomeTax)

	s.GrossProfit = s.Revenue.Add(s.DirectCosts)
	s.EBITDA = s.GrossProfit.Add(s.OtherExternal).Add(s.Personnel)
	s.EBIT = s.EBITDA.Add(s.Depreciation)
	s.EBT = s.EBIT.Add(s.Financial)
	s.NetIncome = s.EBT.Add(s.Tax)
	return s
}

// Lines renders the statement as labelled rows, subtotals highlighted.
func (s IncomeStatement) Lines() []Line {
	return []Line{
		{Label: "Rörelseintäkter", Value: s.Revenue},
		{Label: "Material och varor", Value: s.DirectCosts},
		{Label: "Bruttovinst", Value: s.GrossProfit, Highlight: true},
		{Label: "Övriga externa kostnader", Value: s.OtherExternal},
		{Label: "Personalkostnader", Value: s.Personnel},
		{Label: "Rörelseresultat före avskrivningar", Value: s.EBITDA, Highlight: true},
		{Label: "Avskrivningar", Value: s.Depreciation},
		{Label: "Rörelseresultat", Value: s.EBIT, Highlight: true},
		{Label: "Finansiella poster", Value: s.Financial},
		{Label: "Resultat före skatt", Value: s.EBT, Highlight: true},
		{Label: "Skatt", Value: s.Tax},
		{Label: "Årets resultat", Value: s.NetIncome, Highlight: true},
	}
}

// BalanceSheet is the flat balance summary. Assets are negated for display;
// equity and liabilities keep the ledger sign.
type BalanceSheet struct {
	FixedAssets   decimal.Decimal // 1000-1399
	CurrentAssets decimal.Decimal // 1400-1999
	TotalAssets   decimal.Decimal

	Equity               decimal.Decimal // 2000-2099
	YearResult           decimal.Decimal // 3000-8999, not yet closed to equity
	UntaxedReserves      decimal.Decimal // 2100-2199
	Provisions           decimal.Decimal // 2200-2299
	LongTermLiabilities  decimal.Decimal // 2300-2399
	ShortTermLiabilities decimal.Decimal // 2400-2999

	TotalEquityAndLiabilities decimal.Decimal
}

// BalanceSheet computes the flat balance sheet.
func (c *Calculator) BalanceSheet(b balance.Balances) BalanceSheet {
	c.warnUnmapped(b, bas.Chart, "balance")

	sum := func(cat bas.Category) decimal.Decimal {
		return b.Sum(bas.Chart.Ranges(cat)...)
	}

	var s BalanceSheet
	s.FixedAssets = sum(bas.FixedAssets).Neg()
	s.CurrentAssets = sum(bas.CurrentAssets).Neg()
	s.TotalAssets = s.FixedAssets.Add(s.CurrentAssets)

	s.Equity = sum(bas.Equity)
	s.YearResult = yearResult(b)
	s.UntaxedReserves = sum(bas.UntaxedReserves)
	s.Provisions = sum(bas.Provisions)
	s.LongTermLiabilities = sum(bas.LongTermLiabilities)
	s.ShortTermLiabilities = sum(bas.ShortTermLiabilities)

	s.TotalEquityAndLiabilities = s.Equity.
		Add(s.YearResult).
		Add(s.UntaxedReserves).
		Add(s.Provisions).
		Add(s.LongTermLiabilities).
		Add(s.ShortTermLiabilities)
	return s
}

// Lines renders the balance sheet as labelled rows, totals highlighted.
func (s BalanceSheet) Lines() []Line {
	return []Line{
		{Label: "Anläggningstillgångar", Value: s.FixedAssets},
		{Label: "Omsättningstillgångar", Value: s.CurrentAssets},
		{Label: "Summa tillgångar", Value: s.TotalAssets, Highlight: true},
		{Label: "Eget kapital", Value: s.Equity},
		{Label: "Beräknat resultat", Value: s.YearResult},
		{Label: "Obeskattade reserver", Value: s.UntaxedReserves},
		{Label: "Avsättningar", Value: s.Provisions},
		{Label: "Långfristiga skulder", Value: s.LongTermLiabilities},
		{Label: "Kortfristiga skulder", Value: s.ShortTermLiabilities},
		{Label: "Summa eget kapital och skulder", Value: s.TotalEquityAndLiabilities, Highlight: true},
	}
}

// EmptyIncomeStatement is the zero-activity income statement.
func EmptyIncomeStatement() IncomeStatement {
	z := decimal.Zero
	return IncomeStatement{z, z, z, z, z, z, z, z, z, z, z, z}
}

// EmptyBalanceSheet is the zero-activity balance sheet.
func EmptyBalanceSheet() BalanceSheet {
	z := decimal.Zero
	return BalanceSheet{z, z, z, z, z, z, z, z, z, z}
}
