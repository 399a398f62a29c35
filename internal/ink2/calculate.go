package ink2

import (
	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
	"github.com/forzencookie/scope-ai-sub007/internal/bas"
)

// representationShare is the non-deductible part of representation expense.
var representationShare = decimal.RequireFromString("0.5")

// CalculateBalanceSheet returns the INK2R balance sheet fields.
func CalculateBalanceSheet(b balance.Balances) []Field {
	return apply(BalanceSheetMap, b)
}

// CalculateIncomeStatement returns the INK2R income statement fields
// followed by the book result as either 7450 (profit) or 7550 (loss).
func CalculateIncomeStatement(b balance.Balances) []Field {
	out := apply(IncomeStatementMap, b)

	// Revenue is credit-positive, so a positive net is a profit.
	net := b.Sum(bas.ProfitAndLoss)
	switch {
	case net.IsPositive():
		out = append(out, Field{Code: CodeProfit, Amount: net})
	case net.IsNegative():
		out = append(out, Field{Code: CodeLoss, Amount: net.Abs()})
	}
	return out
}

// CalculateTaxAdjustments derives the INK2S fields from the book result in
// income and the non-deductible expenses in b.
func CalculateTaxAdjustments(income []Field, b balance.Balances) []Field {
	book := decimal.Zero
	if f, ok := Lookup(income, CodeProfit); ok {
		book = book.Add(f.Amount)
	}
	if f, ok := Lookup(income, CodeLoss); ok {
		book = book.Sub(f.Amount)
	}

	var out []Field
	switch {
	case book.IsPositive():
		out = append(out, Field{Code: CodeBookProfit, Amount: book})
	case book.IsNegative():
		out = append(out, Field{Code: CodeBookLoss, Amount: book.Abs()})
	}

	taxable := book

	// Costs carry a negative balance; a positive expense is the negation.
	if tax := b.Sum(bas.Tax).Neg(); tax.IsPositive() {
		out = append(out, Field{Code: CodeTaxAddBack, Amount: tax})
		taxable = taxable.Add(tax)
	}
	if rep := b.Sum(bas.Representation).Neg(); rep.IsPositive() {
		addBack := rep.Mul(representationShare)
		out = append(out, Field{Code: CodeRepresentation, Amount: addBack})
		taxable = taxable.Add(addBack)
	}

	if taxable.IsNegative() {
		return append(out, Field{Code: CodeDeficit, Amount: taxable.Abs()})
	}
	return append(out, Field{Code: CodeSurplus, Amount: taxable})
}

// TaxableResult returns the signed taxable result from adjustment fields.
func TaxableResult(adjustments []Field) decimal.Decimal {
	if f, ok := Lookup(adjustments, CodeDeficit); ok {
		return f.Amount.Neg()
	}
	if f, ok := Lookup(adjustments, CodeSurplus); ok {
		return f.Amount
	}
	return decimal.Zero
}
