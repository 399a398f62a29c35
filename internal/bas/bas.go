// Package bas classifies Swedish BAS chart-of-accounts numbers by numeric range.
//
// The VAT, income-statement, balance-sheet and SRU mappings are all Table
// values; calculators that disagree on a range each carry their own Table.
package bas

import (
	"fmt"
	"sort"
	"strconv"
)

// Range is an inclusive span of four-digit account numbers.
type Range struct {
	Start int
	End   int
}

// R is shorthand for Range{start, end}.
func R(start, end int) Range { return Range{Start: start, End: end} }

// Contains reports whether the account number lies within the range.
func (r Range) Contains(n int) bool { return n >= r.Start && n <= r.End }

func (r Range) String() string { return fmt.Sprintf("%04d-%04d", r.Start, r.End) }

// Number parses the first four characters of an account code.
// Short, empty or non-numeric input returns false.
func Number(code string) (int, bool) {
	if len(code) < 4 {
		return 0, false
	}
	n, err := strconv.Atoi(code[:4])
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// Category is the semantic label of a range.
type Category string

const (
	FixedAssets          Category = "fixed_assets"
	CurrentAssets        Category = "current_assets"
	Equity               Category = "equity"
	UntaxedReserves      Category = "untaxed_reserves"
	Provisions           Category = "provisions"
	LongTermLiabilities  Category = "long_term_liabilities"
	ShortTermLiabilities Category = "short_term_liabilities"
	NetSales             Category = "net_sales"
	CapitalizedWork      Category = "capitalized_work"
	OtherOperatingIncome Category = "other_operating_income"
	DirectCosts          Category = "direct_costs"
	OtherExternalCosts   Category = "other_external_costs"
	Personnel            Category = "personnel"
	Depreciation         Category = "depreciation"
	FinancialItems       Category = "financial_items"
	IncomeTax            Category = "income_tax"
)

// Entry binds a range to a category.
type Entry struct {
	Range    Range
	Category Category
}

// Table is an ordered set of non-overlapping ranges.
type Table []Entry

// Classify returns the category of the entry containing code.
func (t Table) Classify(code string) (Category, bool) {
	n, ok := Number(code)
	if !ok {
		return "", false
	}
	for _, e := range t {
		if e.Range.Contains(n) {
			return e.Category, true
		}
	}
	return "", false
}

// Ranges returns every range labelled with category c.
func (t Table) Ranges(c Category) []Range {
	var out []Range
	for _, e := range t {
		if e.Category == c {
			out = append(out, e.Range)
		}
	}
	return out
}

// Overlaps returns pairs of entries whose ranges intersect. An empty result
// means every account number maps to at most one category.
func (t Table) Overlaps() [][2]Entry {
	sorted := make(Table, len(t))
	copy(sorted, t)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Range.Start < sorted[j].Range.Start })

	var out [][2]Entry
	for i := range sorted {
		for j := i + 1; j < len(sorted) && sorted[j].Range.Start <= sorted[i].Range.End; j++ {
			out = append(out, [2]Entry{sorted[i], sorted[j]})
		}
	}
	return out
}

// Chart is the canonical BAS classification used by Classify.
var Chart = Table{
	{R(1000, 1399), FixedAssets},
	{R(1400, 1999), CurrentAssets},
	{R(2000, 2099), Equity},
	{R(2100, 2199), UntaxedReserves},
	{R(2200, 2299), Provisions},
	{R(2300, 2399), LongTermLiabilities},
	{R(2400, 2999), ShortTermLiabilities},
	{R(3000, 3799), NetSales},
	{R(3800, 3899), CapitalizedWork},
	{R(3900, 3999), OtherOperatingIncome},
	{R(4000, 4999), DirectCosts},
	{R(5000, 6999), OtherExternalCosts},
	{R(7000, 7699), Personnel},
	{R(7700, 7999), Depreciation},
	{R(8000, 8899), FinancialItems},
	{R(8900, 8999), IncomeTax},
}

// Classify maps an account code to its canonical category.
func Classify(code string) (Category, bool) {
	return Chart.Classify(code)
}

// VAT account ranges.
var (
	OutputVAT25 = R(2610, 2619)
	OutputVAT12 = R(2620, 2629)
	OutputVAT6  = R(2630, 2639)
	InputVAT    = R(2640, 2649)

	Representation = R(6070, 6079)
	Tax            = R(8900, 8999)
	ProfitAndLoss  = R(3000, 8999)
)
