package vat

import (
	"encoding/xml"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

type eskdUpload struct {
	XMLName             xml.Name      `xml:"eSKDUpload"`
	Version             string        `xml:"Version,attr"`
	Avsandare           eskdSender    `xml:"Avsandare"`
	Organisationsnummer string        `xml:"Organisationsnummer"`
	Momsdeklaration     eskdVATReturn `xml:"Momsdeklaration"`
}

type eskdSender struct {
	Program string `xml:"Program"`
}

type eskdVATReturn struct {
	Period string `xml:"Period"`

	Ruta05 string `xml:"Ruta05"`
	Ruta06 string `xml:"Ruta06"`
	Ruta07 string `xml:"Ruta07"`
	Ruta08 string `xml:"Ruta08"`
	Ruta10 string `xml:"Ruta10"`
	Ruta11 string `xml:"Ruta11"`
	Ruta12 string `xml:"Ruta12"`
	Ruta20 string `xml:"Ruta20"`
	Ruta21 string `xml:"Ruta21"`
	Ruta22 string `xml:"Ruta22"`
	Ruta23 string `xml:"Ruta23"`
	Ruta24 string `xml:"Ruta24"`
	Ruta30 string `xml:"Ruta30"`
	Ruta31 string `xml:"Ruta31"`
	Ruta32 string `xml:"Ruta32"`
	Ruta35 string `xml:"Ruta35"`
	Ruta36 string `xml:"Ruta36"`
	Ruta37 string `xml:"Ruta37"`
	Ruta38 string `xml:"Ruta38"`
	Ruta39 string `xml:"Ruta39"`
	Ruta40 string `xml:"Ruta40"`
	Ruta41 string `xml:"Ruta41"`
	Ruta42 string `xml:"Ruta42"`
	Ruta48 string `xml:"Ruta48"`
	Ruta50 string `xml:"Ruta50,omitempty"`
	Ruta60 string `xml:"Ruta60,omitempty"`
	Ruta61 string `xml:"Ruta61,omitempty"`
	Ruta62 string `xml:"Ruta62,omitempty"`

	AttBetalaEllerFaTillbaka string `xml:"AttBetalaEllerFaTillbaka"`
}

// WriteXML encodes r as a simplified eSKD upload. Amounts are whole kronor;
// rutor 50 and 60-62 are written only when non-zero.
func WriteXML(w io.Writer, r Report, orgnr, program string) error {
	doc := eskdUpload{
		Version:             "6.0",
		Avsandare:           eskdSender{Program: program},
		Organisationsnummer: orgnr,
		Momsdeklaration: eskdVATReturn{
			Period:                   r.Period.Code(),
			Ruta05:                   kronor(r.Ruta05),
			Ruta06:                   kronor(r.Ruta06),
			Ruta07:                   kronor(r.Ruta07),
			Ruta08:                   kronor(r.Ruta08),
			Ruta10:                   kronor(r.Ruta10),
			Ruta11:                   kronor(r.Ruta11),
			Ruta12:                   kronor(r.Ruta12),
			Ruta20:                   kronor(r.Ruta20),
			Ruta21:                   kronor(r.Ruta21),
			Ruta22:                   kronor(r.Ruta22),
			Ruta23:                   kronor(r.Ruta23),
			Ruta24:                   kronor(r.Ruta24),
			Ruta30:                   kronor(r.Ruta30),
			Ruta31:                   kronor(r.Ruta31),
			Ruta32:                   kronor(r.Ruta32),
			Ruta35:                   kronor(r.Ruta35),
			Ruta36:                   kronor(r.Ruta36),
			Ruta37:                   kronor(r.Ruta37),
			Ruta38:                   kronor(r.Ruta38),
			Ruta39:                   kronor(r.Ruta39),
			Ruta40:                   kronor(r.Ruta40),
			Ruta41:                   kronor(r.Ruta41),
			Ruta42:                   kronor(r.Ruta42),
			Ruta48:                   kronor(r.Ruta48),
			Ruta50:                   nonZero(r.Ruta50),
			Ruta60:                   nonZero(r.Ruta60),
			Ruta61:                   nonZero(r.Ruta61),
			Ruta62:                   nonZero(r.Ruta62),
			AttBetalaEllerFaTillbaka: kronor(r.Ruta49),
		},
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("writing xml header: %w", err)
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding eSKD: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("writing eSKD: %w", err)
	}
	return nil
}

func kronor(d decimal.Decimal) string {
	return d.Round(0).StringFixed(0)
}

func nonZero(d decimal.Decimal) string {
	if d.Round(0).IsZero() {
		return ""
	}
	return kronor(d)
}
