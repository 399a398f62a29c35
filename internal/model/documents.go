package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is a flat bank/cash transaction carrying its VAT component.
// VATAmount > 0 is output VAT (sales), VATAmount < 0 is input VAT (purchases).
type Transaction struct {
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	VATAmount   decimal.Decimal
	VATRate     int // percent: 25, 12, 6 or 0
}

// DocumentKind identifies the source document type.
type DocumentKind string

const (
	DocumentCustomerInvoice DocumentKind = "customer_invoice"
	DocumentSupplierInvoice DocumentKind = "supplier_invoice"
	DocumentReceipt         DocumentKind = "receipt"
)

// Document is a customer invoice, supplier invoice or receipt.
type Document struct {
	Kind         DocumentKind
	Number       string
	Date         time.Time
	Counterparty string
	NetAmount    decimal.Decimal
	VATAmount    decimal.Decimal
	VATRate      int
}
