package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/forzencookie/scope-ai-sub007/internal/bas"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// Header is the CSV header for chart-of-accounts.csv.
var Header = []string{"number", "name", "type", "sru", "description"}

const (
	numFields = 5
	colNumber = 0
	colName   = 1
	colType   = 2
	colSRU    = 3
	colDesc   = 4
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colNumber] = acct.Number
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	if acct.SRU != 0 {
		row[colSRU] = strconv.Itoa(acct.SRU)
	}
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account. An empty type is
// derived from the account class.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if _, ok := bas.Number(record[colNumber]); !ok {
		return model.Account{}, fmt.Errorf("parsing number %q: not a BAS account number", record[colNumber])
	}

	var sru int
	if record[colSRU] != "" {
		var err error
		sru, err = strconv.Atoi(record[colSRU])
		if err != nil {
			return model.Account{}, fmt.Errorf("parsing sru %q: %w", record[colSRU], err)
		}
	}

	typ := model.AccountType(record[colType])
	if typ == "" {
		typ = model.TypeForNumber(record[colNumber])
	}

	return model.Account{
		Number:      record[colNumber],
		Name:        record[colName],
		Type:        typ,
		SRU:         sru,
		Description: record[colDesc],
	}, nil
}
