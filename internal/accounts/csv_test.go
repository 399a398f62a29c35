package accounts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forzencookie/scope-ai-sub007/internal/bas"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

func TestRoundTrip(t *testing.T) {
	accounts := []model.Account{
		{Number: "1930", Name: "Företagskonto", Type: model.AccountTypeAsset, SRU: 7281, Description: "Huvudkonto"},
		{Number: "6071", Name: "Representation, avdragsgill", Type: model.AccountTypeExpense},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, accounts))
	assert.True(t, strings.HasPrefix(buf.String(), "number,name,type,sru,description\n"))

	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, accounts, got)
}

func TestUnmarshalAccount_DerivesType(t *testing.T) {
	tests := []struct {
		number string
		want   model.AccountType
	}{
		{"1510", model.AccountTypeAsset},
		{"2081", model.AccountTypeEquity},
		{"2440", model.AccountTypeLiability},
		{"3001", model.AccountTypeRevenue},
		{"7010", model.AccountTypeExpense},
	}
	for _, tt := range tests {
		a, err := UnmarshalAccount([]string{tt.number, "x", "", "", ""})
		require.NoError(t, err)
		assert.Equal(t, tt.want, a.Type, tt.number)
		assert.Equal(t, 0, a.SRU)
	}
}

func TestUnmarshalAccount_Errors(t *testing.T) {
	_, err := UnmarshalAccount([]string{"kassa", "x", "", "", ""})
	assert.ErrorContains(t, err, "parsing number")

	_, err = UnmarshalAccount([]string{"1930", "x", "", "abc", ""})
	assert.ErrorContains(t, err, "parsing sru")

	_, err = UnmarshalAccount([]string{"1930"})
	assert.ErrorContains(t, err, "expected 5 fields")
}

func TestDefaultChart(t *testing.T) {
	chart := DefaultChart(EntityAktiebolag)
	require.Len(t, chart, len(bas.Names))

	byNumber := make(map[string]model.Account)
	for i, a := range chart {
		byNumber[a.Number] = a
		if i > 0 {
			assert.Less(t, chart[i-1].Number, a.Number, "chart sorted by number")
		}
		assert.NotEmpty(t, a.Type, a.Number)
	}

	tests := []struct {
		number string
		typ    model.AccountType
		sru    int
	}{
		{"1930", model.AccountTypeAsset, 7281},
		{"1220", model.AccountTypeAsset, 7215},
		{"2081", model.AccountTypeEquity, 7301},
		{"2440", model.AccountTypeLiability, 7365},
		{"2611", model.AccountTypeLiability, 7369},
		{"3001", model.AccountTypeRevenue, 7410},
		{"7010", model.AccountTypeExpense, 7514},
	}
	for _, tt := range tests {
		a, ok := byNumber[tt.number]
		require.True(t, ok, tt.number)
		assert.Equal(t, tt.typ, a.Type, tt.number)
		assert.Equal(t, tt.sru, a.SRU, tt.number)
	}
}

func TestDefaultChart_UnknownEntityType(t *testing.T) {
	assert.Equal(t, DefaultChart(EntityAktiebolag), DefaultChart("handelsbolag"))
}

func TestDefaultChart_EnskildFirma(t *testing.T) {
	chart := NewService(DefaultChart(EntityEnskildFirma))

	assert.False(t, chart.Exists("2081"), "no share capital")
	assert.False(t, chart.Exists("2099"))
	for _, n := range []string{"2010", "2013", "2018", "2019"} {
		a, ok := chart.Get(n)
		require.True(t, ok, n)
		assert.Equal(t, "equity", string(a.Type))
	}
	assert.True(t, chart.Exists("1930"))
}

func TestDefaultChartRoundTrip(t *testing.T) {
	chart := DefaultChart(EntityAktiebolag)

	var buf bytes.Buffer
	require.NoError(t, WriteAccounts(&buf, chart))
	got, err := ReadAccounts(&buf)
	require.NoError(t, err)
	assert.Equal(t, chart, got)
}
