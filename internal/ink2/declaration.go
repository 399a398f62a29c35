package ink2

import (
	"github.com/rs/zerolog"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
)

// Form types.
const (
	FormINK2  = "INK2"
	FormINK2R = "INK2R"
	FormINK2S = "INK2S"
)

// Company identifies the filer.
type Company struct {
	OrgNr string
	Name  string
}

// Declaration is one filled-in form.
type Declaration struct {
	OrgNr        string
	Name         string
	BlankettType string
	Period       string
	Fields       []Field
}

// Result holds the field sets behind the three declarations.
type Result struct {
	BalanceSheet    []Field
	IncomeStatement []Field
	TaxAdjustments  []Field
	Main            []Field
}

// Calculator assembles declarations and reports unmapped accounts.
type Calculator struct {
	log zerolog.Logger
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithLogger sets the logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Calculator) { c.log = l }
}

// NewCalculator returns a Calculator.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{log: zerolog.Nop()}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CalculateAll computes every field set for the fiscal year.
func (c *Calculator) CalculateAll(p TaxPeriod, b balance.Balances) Result {
	for _, code := range b.Unclassified(Table(BalanceSheetMap, IncomeStatementMap)) {
		c.log.Warn().
			Str("account", code).
			Str("period", p.Code()).
			Msg("account has no SRU code")
	}

	r := Result{
		BalanceSheet:    CalculateBalanceSheet(b),
		IncomeStatement: CalculateIncomeStatement(b),
	}
	r.TaxAdjustments = CalculateTaxAdjustments(r.IncomeStatement, b)

	r.Main = []Field{
		{Code: CodeFiscalStart, Text: p.Start.Format("20060102")},
		{Code: CodeFiscalEnd, Text: p.End.Format("20060102")},
	}
	if taxable := TaxableResult(r.TaxAdjustments); taxable.IsNegative() {
		r.Main = append(r.Main, Field{Code: CodeLossTotal, Amount: taxable.Abs()})
	} else {
		r.Main = append(r.Main, Field{Code: CodeIncomeTotal, Amount: taxable})
	}

	c.log.Debug().
		Str("period", p.Code()).
		Int("balance_fields", len(r.BalanceSheet)).
		Int("income_fields", len(r.IncomeStatement)).
		Msg("ink2 calculated")
	return r
}

// GenerateDeclarations returns the INK2, INK2R and INK2S declarations.
func (c *Calculator) GenerateDeclarations(co Company, p TaxPeriod, b balance.Balances) []Declaration {
	r := c.CalculateAll(p, b)
	decl := func(form string, fields []Field) Declaration {
		return Declaration{
			OrgNr:        co.OrgNr,
			Name:         co.Name,
			BlankettType: form,
			Period:       p.Code(),
			Fields:       fields,
		}
	}

	ink2r := append(append([]Field(nil), r.BalanceSheet...), r.IncomeStatement...)
	return []Declaration{
		decl(FormINK2, r.Main),
		decl(FormINK2R, ink2r),
		decl(FormINK2S, r.TaxAdjustments),
	}
}
