package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Number      string // BAS account number, first four digits significant
	Name        string
	Type        AccountType
	SRU         int // informational, written to chart-of-accounts.csv; INK2 fields come from range maps
	Description string
}

// TypeForNumber derives the account type from the leading BAS class digit.
func TypeForNumber(number string) AccountType {
	if number == "" {
		return ""
	}
	switch number[0] {
	case '1':
		return AccountTypeAsset
	case '2':
		if len(number) >= 2 && number[1] == '0' {
			return AccountTypeEquity
		}
		return AccountTypeLiability
	case '3':
		return AccountTypeRevenue
	case '4', '5', '6', '7', '8':
		return AccountTypeExpense
	}
	return ""
}
