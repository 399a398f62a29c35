package statements

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
	"github.com/forzencookie/scope-ai-sub007/internal/bas"
)

// Item is one account inside a drill-down section.
type Item struct {
	Account       string
	Label         string
	Value         decimal.Decimal
	PreviousValue *decimal.Decimal
}

// Section is a titled group of items with its total. Highlight sections
// carry only a total (net result, summa tillgångar).
type Section struct {
	Title         string
	Items         []Item
	Total         decimal.Decimal
	PreviousTotal *decimal.Decimal
	Highlight     bool
}

type sectionDef struct {
	title    string
	category bas.Category
	ranges   []bas.Range
	negate   bool
}

// Drill-down depreciation covers 7800-7899 only, unlike the flat
// statement's 7700-7999. Write-downs in 7700-7799 and 7900-7999 are
// therefore reported as unmapped here.
var incomeSections = []sectionDef{
	{title: "Nettoomsättning", category: bas.NetSales, ranges: []bas.Range{bas.R(3000, 3799)}},
	{title: "Övriga rörelseintäkter", category: bas.OtherOperatingIncome, ranges: []bas.Range{bas.R(3800, 3999)}},
	{title: "Material och varor", category: bas.DirectCosts, ranges: []bas.Range{bas.R(4000, 4999)}},
	{title: "Övriga externa kostnader", category: bas.OtherExternalCosts, ranges: []bas.Range{bas.R(5000, 6999)}},
	{title: "Personalkostnader", category: bas.Personnel, ranges: []bas.Range{bas.R(7000, 7699)}},
	{title: "Avskrivningar", category: bas.Depreciation, ranges: []bas.Range{bas.R(7800, 7899)}},
	{title: "Finansiella poster", category: bas.FinancialItems, ranges: []bas.Range{bas.R(8000, 8899)}},
	{title: "Skatt", category: bas.IncomeTax, ranges: []bas.Range{bas.R(8900, 8999)}},
}

var assetSections = []sectionDef{
	{title: "Anläggningstillgångar", category: bas.FixedAssets, ranges: []bas.Range{bas.R(1000, 1399)}, negate: true},
	{title: "Omsättningstillgångar", category: bas.CurrentAssets, ranges: []bas.Range{bas.R(1400, 1999)}, negate: true},
}

var claimSections = []sectionDef{
	{title: "Eget kapital", category: bas.Equity, ranges: []bas.Range{bas.R(2000, 2099)}},
	{title: "Obeskattade reserver", category: bas.UntaxedReserves, ranges: []bas.Range{bas.R(2100, 2199)}},
	{title: "Avsättningar", category: bas.Provisions, ranges: []bas.Range{bas.R(2200, 2299)}},
	{title: "Långfristiga skulder", category: bas.LongTermLiabilities, ranges: []bas.Range{bas.R(2300, 2399)}},
	{title: "Kortfristiga skulder", category: bas.ShortTermLiabilities, ranges: []bas.Range{bas.R(2400, 2999)}},
}

const (
	netResultTitle   = "Årets resultat"
	totalAssetsTitle = "Summa tillgångar"
	totalClaimsTitle = "Summa eget kapital och skulder"
	yearResultLabel  = "Beräknat resultat"
)

func table(defs ...[]sectionDef) bas.Table {
	var t bas.Table
	for _, group := range defs {
		for _, d := range group {
			for _, r := range d.ranges {
				t = append(t, bas.Entry{Range: r, Category: d.category})
			}
		}
	}
	return t
}

// IncomeDetailTable is the range table behind the drill-down income statement.
func IncomeDetailTable() bas.Table { return table(incomeSections) }

// BalanceDetailTable is the range table behind the drill-down balance sheet.
func BalanceDetailTable() bas.Table { return table(assetSections, claimSections) }

// IncomeSections builds the drill-down income statement. previous may be
// nil; when set, every item and total carries the prior-period value.
func (c *Calculator) IncomeSections(current, previous balance.Balances) []Section {
	c.warnUnmapped(current, IncomeDetailTable(), "income_detail", bas.ProfitAndLoss)

	out := make([]Section, 0, len(incomeSections)+1)
	net := decimal.Zero
	var prevNet decimal.Decimal
	for _, d := range incomeSections {
		s := c.section(d, current, previous)
		net = net.Add(s.Total)
		if s.PreviousTotal != nil {
			prevNet = prevNet.Add(*s.PreviousTotal)
		}
		out = append(out, s)
	}
	result := Section{Title: netResultTitle, Total: net, Highlight: true}
	if previous != nil {
		result.PreviousTotal = ptr(prevNet)
	}
	return append(out, result)
}

// BalanceSections builds the drill-down balance sheet. The unclosed year
// result is appended to equity as its own item so the two highlight totals
// agree on a balanced ledger.
func (c *Calculator) BalanceSections(current, previous balance.Balances) []Section {
	c.warnUnmapped(current, BalanceDetailTable(), "balance_detail", bas.R(1000, 2999))

	out := make([]Section, 0, len(assetSections)+len(claimSections)+2)
	out = c.appendGroup(out, assetSections, current, previous, totalAssetsTitle, nil)
	out = c.appendGroup(out, claimSections, current, previous, totalClaimsTitle, func(s *Section) {
		if s.Title != "Eget kapital" {
			return
		}
		cur := yearResult(current)
		var prev decimal.Decimal
		if previous != nil {
			prev = yearResult(previous)
		}
		s.Total = s.Total.Add(cur)
		if previous != nil {
			s.PreviousTotal = ptr(s.PreviousTotal.Add(prev))
		}
		if !cur.Abs().GreaterThan(presence) && !prev.Abs().GreaterThan(presence) {
			return
		}
		it := Item{Label: yearResultLabel, Value: cur}
		if previous != nil {
			it.PreviousValue = ptr(prev)
		}
		s.Items = append(s.Items, it)
	})
	return out
}

func (c *Calculator) appendGroup(out []Section, defs []sectionDef, current, previous balance.Balances, title string, adjust func(*Section)) []Section {
	total := decimal.Zero
	var prevTotal decimal.Decimal
	for _, d := range defs {
		s := c.section(d, current, previous)
		if adjust != nil {
			adjust(&s)
		}
		total = total.Add(s.Total)
		if s.PreviousTotal != nil {
			prevTotal = prevTotal.Add(*s.PreviousTotal)
		}
		out = append(out, s)
	}
	sum := Section{Title: title, Total: total, Highlight: true}
	if previous != nil {
		sum.PreviousTotal = ptr(prevTotal)
	}
	return append(out, sum)
}

func (c *Calculator) section(d sectionDef, current, previous balance.Balances) Section {
	display := func(v decimal.Decimal) decimal.Decimal {
		if d.negate {
			return v.Neg()
		}
		return v
	}

	codes := present(current, d.ranges)
	if previous != nil {
		codes = union(codes, present(previous, d.ranges))
	}

	// Totals cover every account in range; the listing threshold only
	// decides which items are shown.
	s := Section{Title: d.title, Total: display(current.Sum(d.ranges...))}
	if previous != nil {
		s.PreviousTotal = ptr(display(previous.Sum(d.ranges...)))
	}
	for _, code := range codes {
		it := Item{
			Account: code,
			Label:   c.label(code),
			Value:   display(current.Get(code).Balance),
		}
		if previous != nil {
			it.PreviousValue = ptr(display(previous.Get(code).Balance))
		}
		s.Items = append(s.Items, it)
	}
	return s
}

func (c *Calculator) label(code string) string {
	if name, ok := c.names.Name(code); ok && name != "" {
		return name
	}
	return "Konto " + code
}

// present lists the accounts in ranges whose balance exceeds the listing
// threshold.
func present(b balance.Balances, ranges []bas.Range) []string {
	var out []string
	for _, code := range b.Accounts(ranges...) {
		if b[code].Balance.Abs().GreaterThan(presence) {
			out = append(out, code)
		}
	}
	return out
}

func union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, s := range append(append([]string{}, a...), b...) {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	sort.Strings(out)
	return out
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

// EmptyIncomeSections is the drill-down income statement with no activity.
func EmptyIncomeSections() []Section {
	return NewCalculator().IncomeSections(balance.Balances{}, nil)
}

// EmptyBalanceSections is the drill-down balance sheet with no activity.
func EmptyBalanceSections() []Section {
	return NewCalculator().BalanceSections(balance.Balances{}, nil)
}
