package accounts

import (
	"sort"
	"strconv"

	"github.com/forzencookie/scope-ai-sub007/internal/bas"
	"github.com/forzencookie/scope-ai-sub007/internal/ink2"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// Entity types.
const (
	EntityAktiebolag   = "aktiebolag"
	EntityEnskildFirma = "enskild_firma"
)

// soleTraderEquity replaces the aktiebolag equity accounts 2081-2099.
var soleTraderEquity = []model.Account{
	{Number: "2010", Name: "Eget kapital", Type: model.AccountTypeEquity},
	{Number: "2013", Name: "Övriga egna uttag", Type: model.AccountTypeEquity},
	{Number: "2018", Name: "Övriga egna insättningar", Type: model.AccountTypeEquity},
	{Number: "2019", Name: "Årets resultat", Type: model.AccountTypeEquity},
}

// DefaultChart returns the default chart of accounts for an entity type.
// Unknown types get the aktiebolag chart.
func DefaultChart(entityType string) []model.Account {
	chart := basChart()
	if entityType != EntityEnskildFirma {
		return chart
	}

	out := make([]model.Account, 0, len(chart))
	for _, a := range chart {
		if n, _ := bas.Number(a.Number); n >= 2080 && n <= 2099 {
			continue
		}
		out = append(out, a)
	}
	out = append(out, soleTraderEquity...)
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}

// basChart is the common BAS subset with each account's INK2R code.
func basChart() []model.Account {
	sruTable := ink2.Table(ink2.BalanceSheetMap, ink2.IncomeStatementMap)

	out := make([]model.Account, 0, len(bas.Names))
	for number, name := range bas.Names {
		a := model.Account{
			Number: number,
			Name:   name,
			Type:   model.TypeForNumber(number),
		}
		if code, ok := sruTable.Classify(number); ok {
			a.SRU, _ = strconv.Atoi(string(code))
		}
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out
}
