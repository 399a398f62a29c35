package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/bas"
	"github.com/forzencookie/scope-ai-sub007/internal/id"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// Header is the CSV header for journal.csv. One line per posting; the
// verification text and source are repeated on every row.
const Header = "row_id,date,account,verification_text,row_text,debit,credit,source_type"

const (
	numFields  = 8
	dateFormat = "2006-01-02"
	colRowID   = 0
	colDate    = 1
	colAccount = 2
	colVerText = 3
	colRowText = 4
	colDebit   = 5
	colCredit  = 6
	colSource  = 7
)

// ReadVerifications reads a journal.csv and groups its rows into
// verifications, in file order.
func ReadVerifications(r io.Reader) ([]model.Verification, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	var out []model.Verification
	index := make(map[string]int)
	for i, rec := range records[1:] {
		rowID, v, p, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		verID := id.Of(rowID)
		n, seen := index[verID]
		if !seen {
			v.ID = verID
			index[verID] = len(out)
			out = append(out, v)
			n = len(out) - 1
		}
		out[n].Rows = append(out[n].Rows, p)
	}
	return out, nil
}

// WriteVerifications writes verifications to a journal.csv writer (including header).
func WriteVerifications(w io.Writer, vers []model.Verification) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for _, v := range vers {
		for _, row := range Marshal(v) {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing %s: %w", v.ID, err)
			}
		}
	}
	return cw.Error()
}

// AppendVerifications appends to an existing journal.csv writer (no header).
func AppendVerifications(w io.Writer, vers []model.Verification) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for _, v := range vers {
		for _, row := range Marshal(v) {
			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing %s: %w", v.ID, err)
			}
		}
	}
	return cw.Error()
}

// Marshal converts a verification to CSV rows, one per posting.
func Marshal(v model.Verification) [][]string {
	out := make([][]string, 0, len(v.Rows))
	for i, p := range v.Rows {
		row := make([]string, numFields)
		row[colRowID] = id.Row(v.ID, i)
		row[colDate] = v.Date.Format(dateFormat)
		row[colAccount] = p.Account
		row[colVerText] = v.Description
		row[colRowText] = p.Description
		if !p.Debit.IsZero() {
			row[colDebit] = p.Debit.StringFixed(2)
		}
		if !p.Credit.IsZero() {
			row[colCredit] = p.Credit.StringFixed(2)
		}
		row[colSource] = v.SourceType
		out = append(out, row)
	}
	return out
}

// unmarshalRow parses one CSV row into its row ID, the verification
// envelope it belongs to (without rows) and the posting itself.
func unmarshalRow(record []string) (string, model.Verification, model.Posting, error) {
	var v model.Verification
	var p model.Posting
	if len(record) != numFields {
		return "", v, p, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := time.Parse(dateFormat, record[colDate])
	if err != nil {
		return "", v, p, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}
	if _, ok := bas.Number(record[colAccount]); !ok {
		return "", v, p, fmt.Errorf("parsing account %q: not a BAS account number", record[colAccount])
	}

	var debit, credit decimal.Decimal
	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return "", v, p, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}
	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return "", v, p, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	v = model.Verification{
		Date:        date,
		Description: record[colVerText],
		SourceType:  record[colSource],
	}
	p = model.Posting{
		Account:     record[colAccount],
		Debit:       debit,
		Credit:      credit,
		Description: record[colRowText],
	}
	return record[colRowID], v, p, nil
}
