package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// TransactionsHeader is the header of a flat VAT transactions file.
const TransactionsHeader = "date,description,amount,vat_amount,vat_rate"

// DocumentsHeader is the header of a source-document file.
const DocumentsHeader = "kind,number,date,counterparty,net_amount,vat_amount,vat_rate"

const dateFormat = "2006-01-02"

// ReadTransactions reads a flat transactions CSV.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	records, err := readCSV(r, TransactionsHeader)
	if err != nil {
		return nil, err
	}

	var out []model.Transaction
	for i, rec := range records {
		var t model.Transaction
		var err error
		if t.Date, err = time.Parse(dateFormat, rec[0]); err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[0], err)
		}
		t.Description = rec[1]
		if t.Amount, err = amount(rec[2]); err != nil {
			return nil, fmt.Errorf("row %d: parsing amount: %w", i+2, err)
		}
		if t.VATAmount, err = amount(rec[3]); err != nil {
			return nil, fmt.Errorf("row %d: parsing vat_amount: %w", i+2, err)
		}
		if t.VATRate, err = rate(rec[4]); err != nil {
			return nil, fmt.Errorf("row %d: parsing vat_rate: %w", i+2, err)
		}
		out = append(out, t)
	}
	return out, nil
}

// ReadDocuments reads a source-document CSV.
func ReadDocuments(r io.Reader) ([]model.Document, error) {
	records, err := readCSV(r, DocumentsHeader)
	if err != nil {
		return nil, err
	}

	var out []model.Document
	for i, rec := range records {
		d := model.Document{
			Kind:         model.DocumentKind(rec[0]),
			Number:       rec[1],
			Counterparty: rec[3],
		}
		switch d.Kind {
		case model.DocumentCustomerInvoice, model.DocumentSupplierInvoice, model.DocumentReceipt:
		default:
			return nil, fmt.Errorf("row %d: unknown document kind %q", i+2, rec[0])
		}
		var err error
		if d.Date, err = time.Parse(dateFormat, rec[2]); err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[2], err)
		}
		if d.NetAmount, err = amount(rec[4]); err != nil {
			return nil, fmt.Errorf("row %d: parsing net_amount: %w", i+2, err)
		}
		if d.VATAmount, err = amount(rec[5]); err != nil {
			return nil, fmt.Errorf("row %d: parsing vat_amount: %w", i+2, err)
		}
		if d.VATRate, err = rate(rec[6]); err != nil {
			return nil, fmt.Errorf("row %d: parsing vat_rate: %w", i+2, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// ReadDocumentsFile reads a source-document CSV from path; an empty path
// yields no documents.
func ReadDocumentsFile(path string) ([]model.Document, error) {
	if path == "" {
		return nil, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadDocuments(f)
}

// ReadTransactionsFile reads a transactions CSV from path.
func ReadTransactionsFile(path string) ([]model.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()
	return ReadTransactions(f)
}

// readCSV checks the header and returns the data rows.
func readCSV(r io.Reader, header string) ([][]string, error) {
	want := strings.Split(header, ",")
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(want)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	for i, col := range records[0] {
		if strings.TrimSpace(strings.ToLower(col)) != want[i] {
			return nil, fmt.Errorf("unexpected header %q, want %q", strings.Join(records[0], ","), header)
		}
	}
	return records[1:], nil
}

func amount(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(strings.ReplaceAll(s, ",", "."))
}

func rate(s string) (int, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "%")
	if s == "" {
		return 0, nil
	}
	return strconv.Atoi(s)
}
