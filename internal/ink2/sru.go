package ink2

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/encoding/charmap"
)

// SRU file names expected by the Skatteverket filing service.
const (
	InfoFile  = "INFO.SRU"
	FormsFile = "BLANKETTER.SRU"
)

// SRUOrgNr formats an organisation number for SRU files: digits only,
// with the 16 century prefix for ten-digit legal-entity numbers.
func SRUOrgNr(orgnr string) string {
	digits := strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, orgnr)
	if len(digits) == 10 {
		return "16" + digits
	}
	return digits
}

// InfoSRU renders INFO.SRU for the filer.
func InfoSRU(co Company) string {
	var b strings.Builder
	b.WriteString("#DATABESKRIVNING_START\n")
	b.WriteString("#PRODUKT SRU\n")
	b.WriteString("#FILNAMN " + FormsFile + "\n")
	b.WriteString("#DATABESKRIVNING_SLUT\n")
	b.WriteString("#MEDIELEV_START\n")
	b.WriteString("#ORGNR " + SRUOrgNr(co.OrgNr) + "\n")
	b.WriteString("#NAMN " + co.Name + "\n")
	b.WriteString("#MEDIELEV_SLUT\n")
	return b.String()
}

// BlanketterSRU renders BLANKETTER.SRU; created stamps every #IDENTITET.
func BlanketterSRU(decls []Declaration, created time.Time) string {
	var b strings.Builder
	for _, d := range decls {
		fmt.Fprintf(&b, "#BLANKETT %s-%s\n", d.BlankettType, d.Period)
		fmt.Fprintf(&b, "#IDENTITET %s %s %s\n",
			SRUOrgNr(d.OrgNr), created.Format("20060102"), created.Format("150405"))
		fmt.Fprintf(&b, "#NAMN %s\n", d.Name)
		for _, f := range d.Fields {
			fmt.Fprintf(&b, "#UPPGIFT %d %s\n", f.Code, f.Value())
		}
		b.WriteString("#BLANKETTSLUT\n")
	}
	b.WriteString("#FIL_SLUT\n")
	return b.String()
}

// WriteSRU writes INFO.SRU and BLANKETTER.SRU into dir, ISO 8859-1 encoded.
func WriteSRU(dir string, co Company, decls []Declaration, created time.Time) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating sru dir: %w", err)
	}
	files := []struct {
		name    string
		content string
	}{
		{InfoFile, InfoSRU(co)},
		{FormsFile, BlanketterSRU(decls, created)},
	}
	enc := charmap.ISO8859_1.NewEncoder()
	for _, f := range files {
		data, err := enc.String(f.content)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", f.name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, f.name), []byte(data), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", f.name, err)
		}
	}
	return nil
}
