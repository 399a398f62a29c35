package vat

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status is the filing state of a VAT period.
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusSubmitted Status = "submitted"
	StatusOverdue   Status = "overdue"
)

// Report holds every SKV 4700 field for one period. Fields default to zero.
type Report struct {
	Period  Period
	DueDate time.Time
	Status  Status

	// Momspliktig försäljning / uttag.
	Ruta05 decimal.Decimal // sales base, 25 %
	Ruta06 decimal.Decimal // sales base, 12 %
	Ruta07 decimal.Decimal // sales base, 6 %
	Ruta08 decimal.Decimal // rental income, voluntary VAT liability

	// Utgående moms på försäljning.
	Ruta10 decimal.Decimal // 25 %
	Ruta11 decimal.Decimal // 12 %
	Ruta12 decimal.Decimal // 6 %

	// Inköp med omvänd skattskyldighet.
	Ruta20 decimal.Decimal // goods from another EU country
	Ruta21 decimal.Decimal // services from another EU country
	Ruta22 decimal.Decimal // services from outside the EU
	Ruta23 decimal.Decimal // goods bought in Sweden
	Ruta24 decimal.Decimal // other services bought in Sweden

	// Utgående moms på inköp i rutorna 20-24.
	Ruta30 decimal.Decimal // 25 %
	Ruta31 decimal.Decimal // 12 %
	Ruta32 decimal.Decimal // 6 %

	// Försäljning m.m. som är undantagen från moms.
	Ruta35 decimal.Decimal
	Ruta36 decimal.Decimal
	Ruta37 decimal.Decimal
	Ruta38 decimal.Decimal
	Ruta39 decimal.Decimal
	Ruta40 decimal.Decimal
	Ruta41 decimal.Decimal
	Ruta42 decimal.Decimal

	Ruta48 decimal.Decimal // ingående moms att dra av
	Ruta49 decimal.Decimal // moms att betala eller få tillbaka
	Ruta50 decimal.Decimal // import base

	// Utgående moms på import.
	Ruta60 decimal.Decimal
	Ruta61 decimal.Decimal
	Ruta62 decimal.Decimal

	SalesVAT decimal.Decimal
	InputVAT decimal.Decimal
	NetVAT   decimal.Decimal
}

// MarkSubmitted returns a copy of r with status submitted. Submission is
// external workflow state; the calculator never derives it.
func (r Report) MarkSubmitted() Report {
	r.Status = StatusSubmitted
	return r
}

// Field is one numbered box of the declaration.
type Field struct {
	Ruta  int
	Value decimal.Decimal
}

// Fields lists every declaration box in form order.
func (r Report) Fields() []Field {
	return []Field{
		{5, r.Ruta05}, {6, r.Ruta06}, {7, r.Ruta07}, {8, r.Ruta08},
		{10, r.Ruta10}, {11, r.Ruta11}, {12, r.Ruta12},
		{20, r.Ruta20}, {21, r.Ruta21}, {22, r.Ruta22}, {23, r.Ruta23}, {24, r.Ruta24},
		{30, r.Ruta30}, {31, r.Ruta31}, {32, r.Ruta32},
		{35, r.Ruta35}, {36, r.Ruta36}, {37, r.Ruta37}, {38, r.Ruta38},
		{39, r.Ruta39}, {40, r.Ruta40}, {41, r.Ruta41}, {42, r.Ruta42},
		{48, r.Ruta48}, {49, r.Ruta49}, {50, r.Ruta50},
		{60, r.Ruta60}, {61, r.Ruta61}, {62, r.Ruta62},
	}
}
