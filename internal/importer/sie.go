package importer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"

	"github.com/forzencookie/scope-ai-sub007/internal/bas"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// SIEParser reads SIE type 4 exports. Files are PC8 (code page 437).
type SIEParser struct{}

// Format returns the parser name.
func (p *SIEParser) Format() string { return "sie" }

// Extensions lists the file suffixes SIE exports use.
func (p *SIEParser) Extensions() []string { return []string{".se", ".si", ".sie"} }

const sieDate = "20060102"

// Parse reads a SIE file into a Batch. Only the current year (#RAR 0,
// #IB 0) is kept; #RTRANS and #BTRANS correction rows are ignored.
func (p *SIEParser) Parse(r io.Reader) (*Batch, error) {
	sc := bufio.NewScanner(charmap.CodePage437.NewDecoder().Reader(r))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var b Batch
	var cur *model.Verification
	names := make(map[string]int)
	line := 0

	for sc.Scan() {
		line++
		words := splitWords(sc.Text())
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "#ORGNR":
			b.OrgNr = arg(words, 1)

		case "#FNAMN":
			b.CompanyName = arg(words, 1)

		case "#RAR":
			if arg(words, 1) != "0" {
				continue
			}
			start, err := time.Parse(sieDate, arg(words, 2))
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing #RAR start: %w", line, err)
			}
			end, err := time.Parse(sieDate, arg(words, 3))
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing #RAR end: %w", line, err)
			}
			b.FiscalStart, b.FiscalEnd = start, end

		case "#KONTO":
			number := arg(words, 1)
			if _, ok := bas.Number(number); !ok {
				return nil, fmt.Errorf("line %d: invalid account %q", line, number)
			}
			names[number] = len(b.Accounts)
			b.Accounts = append(b.Accounts, model.Account{
				Number: number,
				Name:   arg(words, 2),
				Type:   model.TypeForNumber(number),
			})

		case "#SRU":
			idx, ok := names[arg(words, 1)]
			if !ok {
				continue
			}
			if code, err := strconv.Atoi(arg(words, 2)); err == nil {
				b.Accounts[idx].SRU = code
			}

		case "#IB":
			if arg(words, 1) != "0" {
				continue
			}
			amount, err := decimal.NewFromString(arg(words, 3))
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing #IB amount: %w", line, err)
			}
			if amount.IsZero() {
				continue
			}
			b.Opening = append(b.Opening, posting(arg(words, 2), amount, "Ingående balans"))

		case "#VER":
			date, err := time.Parse(sieDate, arg(words, 3))
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing #VER date: %w", line, err)
			}
			cur = &model.Verification{
				Date:        date,
				Description: verText(arg(words, 1), arg(words, 2), arg(words, 4)),
				SourceType:  "sie",
			}

		case "#TRANS":
			if cur == nil {
				return nil, fmt.Errorf("line %d: #TRANS outside #VER", line)
			}
			account := arg(words, 1)
			if _, ok := bas.Number(account); !ok {
				return nil, fmt.Errorf("line %d: invalid account %q", line, account)
			}
			amount, err := decimal.NewFromString(arg(words, 3))
			if err != nil {
				return nil, fmt.Errorf("line %d: parsing #TRANS amount: %w", line, err)
			}
			if amount.IsZero() {
				continue
			}
			cur.Rows = append(cur.Rows, posting(account, amount, arg(words, 5)))

		case "}":
			if cur != nil && len(cur.Rows) > 0 {
				b.Verifications = append(b.Verifications, *cur)
			}
			cur = nil
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading SIE: %w", err)
	}
	return &b, nil
}

// posting turns a signed SIE amount into a one-sided row: positive is debit.
func posting(account string, amount decimal.Decimal, text string) model.Posting {
	p := model.Posting{Account: account, Description: text}
	if amount.IsNegative() {
		p.Credit = amount.Neg()
	} else {
		p.Debit = amount
	}
	return p
}

func verText(series, number, text string) string {
	ref := strings.TrimSpace(series + number)
	if ref == "" {
		return text
	}
	if text == "" {
		return ref
	}
	return ref + " " + text
}

func arg(words []string, i int) string {
	if i < len(words) {
		return words[i]
	}
	return ""
}

// splitWords tokenises a SIE line. Quoted strings may contain spaces and
// \" escapes; an object list {...} becomes one word holding its contents.
func splitWords(s string) []string {
	var words []string
	rs := []rune(strings.TrimSpace(s))
	for i := 0; i < len(rs); {
		switch c := rs[i]; {
		case c == ' ' || c == '\t':
			i++

		case c == '"':
			var w strings.Builder
			i++
			for i < len(rs) && rs[i] != '"' {
				if rs[i] == '\\' && i+1 < len(rs) {
					i++
				}
				w.WriteRune(rs[i])
				i++
			}
			i++ // closing quote
			words = append(words, w.String())

		case c == '{':
			end := i + 1
			for end < len(rs) && rs[end] != '}' {
				end++
			}
			if end == len(rs) {
				words = append(words, "{")
				i++
				continue
			}
			words = append(words, strings.TrimSpace(string(rs[i+1:end])))
			i = end + 1

		default:
			start := i
			for i < len(rs) && rs[i] != ' ' && rs[i] != '\t' {
				i++
			}
			words = append(words, string(rs[start:i]))
		}
	}
	return words
}
