// Package ink2 maps account balances onto the SRU codes of the Swedish
// corporate income-tax return: INK2 (main form), INK2R (balance sheet and
// income statement) and INK2S (tax adjustments).
package ink2

import (
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/balance"
	"github.com/forzencookie/scope-ai-sub007/internal/bas"
)

// Field is one SRU code with either an amount or a text value.
type Field struct {
	Code   int
	Amount decimal.Decimal
	Text   string
}

// IsText reports whether the field carries text rather than an amount.
func (f Field) IsText() bool { return f.Text != "" }

// Value renders the field as written to an SRU file: text verbatim,
// amounts in whole kronor.
func (f Field) Value() string {
	if f.IsText() {
		return f.Text
	}
	return f.Amount.Round(0).StringFixed(0)
}

// Mapping binds an SRU code to the BAS range it summarises.
type Mapping struct {
	Code  int
	Range bas.Range
}

// BalanceSheetMap is the INK2R balance sheet, codes 7201-7370.
var BalanceSheetMap = []Mapping{
	// Anläggningstillgångar
	{7201, bas.R(1000, 1099)}, // immateriella
	{7214, bas.R(1100, 1199)}, // byggnader och mark
	{7215, bas.R(1200, 1299)}, // maskiner och inventarier
	{7230, bas.R(1310, 1319)}, // andelar i koncernföretag
	{7232, bas.R(1320, 1329)}, // fordringar hos koncernföretag
	{7231, bas.R(1330, 1339)}, // andelar i intresseföretag
	{7233, bas.R(1350, 1359)}, // andra långfristiga värdepapper
	{7234, bas.R(1360, 1369)}, // lån till delägare
	{7235, bas.R(1370, 1399)}, // andra långfristiga fordringar

	// Omsättningstillgångar
	{7241, bas.R(1410, 1439)}, // råvaror och förnödenheter
	{7242, bas.R(1440, 1449)}, // varor under tillverkning
	{7243, bas.R(1450, 1469)}, // färdiga varor
	{7244, bas.R(1470, 1479)}, // pågående arbeten
	{7245, bas.R(1480, 1499)}, // förskott till leverantörer
	{7251, bas.R(1500, 1559)}, // kundfordringar
	{7252, bas.R(1560, 1579)}, // fordringar hos koncernföretag
	{7261, bas.R(1580, 1699)}, // övriga fordringar
	{7263, bas.R(1700, 1799)}, // förutbetalda kostnader
	{7271, bas.R(1800, 1899)}, // kortfristiga placeringar
	{7281, bas.R(1900, 1999)}, // kassa och bank

	// Eget kapital
	{7301, bas.R(2080, 2089)}, // bundet eget kapital
	{7302, bas.R(2090, 2099)}, // fritt eget kapital

	// Obeskattade reserver
	{7321, bas.R(2110, 2149)}, // periodiseringsfonder
	{7322, bas.R(2150, 2159)}, // ackumulerade överavskrivningar
	{7323, bas.R(2160, 2199)}, // övriga obeskattade reserver

	// Avsättningar
	{7331, bas.R(2210, 2219)}, // pensioner, tryggandelagen
	{7332, bas.R(2220, 2229)}, // övriga pensionsavsättningar
	{7333, bas.R(2230, 2299)}, // övriga avsättningar

	// Långfristiga skulder
	{7350, bas.R(2310, 2329)}, // obligationslån
	{7351, bas.R(2330, 2339)}, // checkräkningskredit
	{7352, bas.R(2340, 2359)}, // övriga skulder till kreditinstitut
	{7353, bas.R(2360, 2369)}, // skulder till koncernföretag
	{7354, bas.R(2370, 2399)}, // övriga långfristiga skulder

	// Kortfristiga skulder
	{7361, bas.R(2410, 2419)}, // skulder till kreditinstitut
	{7362, bas.R(2420, 2429)}, // förskott från kunder
	{7363, bas.R(2430, 2439)}, // pågående arbeten
	{7365, bas.R(2440, 2449)}, // leverantörsskulder
	{7364, bas.R(2450, 2459)}, // fakturerad ej upparbetad intäkt
	{7367, bas.R(2460, 2469)}, // skulder till koncernföretag
	{7360, bas.R(2480, 2489)}, // checkräkningskredit
	{7368, bas.R(2500, 2599)}, // skatteskulder
	{7369, bas.R(2600, 2899)}, // övriga skulder
	{7370, bas.R(2900, 2999)}, // upplupna kostnader
}

// IncomeStatementMap is the INK2R income statement, codes 7410-7528.
var IncomeStatementMap = []Mapping{
	{7410, bas.R(3000, 3799)}, // nettoomsättning
	{7412, bas.R(3800, 3899)}, // aktiverat arbete
	{7413, bas.R(3900, 3999)}, // övriga rörelseintäkter
	{7511, bas.R(4000, 4999)}, // råvaror och förnödenheter
	{7513, bas.R(5000, 6999)}, // övriga externa kostnader
	{7514, bas.R(7000, 7699)}, // personalkostnader
	{7515, bas.R(7700, 7899)}, // av- och nedskrivningar
	{7517, bas.R(7900, 7999)}, // övriga rörelsekostnader
	{7414, bas.R(8000, 8099)}, // resultat från koncernföretag
	{7415, bas.R(8100, 8199)}, // resultat från intresseföretag
	{7416, bas.R(8200, 8299)}, // övriga värdepapper
	{7417, bas.R(8300, 8399)}, // ränteintäkter
	{7522, bas.R(8400, 8499)}, // räntekostnader
	{7525, bas.R(8810, 8819)}, // förändring periodiseringsfonder
	{7419, bas.R(8820, 8829)}, // mottagna koncernbidrag
	{7524, bas.R(8830, 8839)}, // lämnade koncernbidrag
	{7526, bas.R(8850, 8859)}, // förändring överavskrivningar
	{7527, bas.R(8860, 8899)}, // övriga bokslutsdispositioner
	{7528, bas.R(8900, 8999)}, // skatt på årets resultat
}

// Result and tax adjustment codes.
const (
	CodeProfit = 7450
	CodeLoss   = 7550

	CodeBookProfit     = 7650
	CodeBookLoss       = 7750
	CodeTaxAddBack     = 7651
	CodeRepresentation = 7653
	CodeSurplus        = 7670
	CodeDeficit        = 7770

	CodeFiscalStart = 7011
	CodeFiscalEnd   = 7012
	CodeIncomeTotal = 7104
	CodeLossTotal   = 7114
)

// Table returns the mappings as a bas.Table keyed by SRU code, for
// overlap checks and unmapped-account detection.
func Table(maps ...[]Mapping) bas.Table {
	var t bas.Table
	for _, m := range maps {
		for _, e := range m {
			t = append(t, bas.Entry{Range: e.Range, Category: bas.Category(strconv.Itoa(e.Code))})
		}
	}
	return t
}

// apply sums each range and emits abs(sum), omitting ranges that sum to zero.
func apply(maps []Mapping, b balance.Balances) []Field {
	var out []Field
	for _, m := range maps {
		sum := b.Sum(m.Range)
		if sum.IsZero() {
			continue
		}
		out = append(out, Field{Code: m.Code, Amount: sum.Abs()})
	}
	return out
}

// Lookup returns the field with code, if present.
func Lookup(fields []Field, code int) (Field, bool) {
	for _, f := range fields {
		if f.Code == code {
			return f, true
		}
	}
	return Field{}, false
}
