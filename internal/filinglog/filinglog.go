// Package filinglog records VAT and income-tax filing events in
// logs/filing-log.csv. The log is the only source of the "submitted"
// status; everything else about a filing is recomputed from the ledger.
package filinglog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Filing kinds.
const (
	KindVAT  = "vat"
	KindINK2 = "ink2"
)

// Events.
const (
	EventGenerated = "generated"
	EventSubmitted = "submitted"
)

// Entry is one row in the filing log.
type Entry struct {
	ID        uuid.UUID // assigned by Append when nil
	Timestamp time.Time
	Kind      string
	Period    string // "Q1 2025" for VAT, SRU period code for INK2
	Event     string
	Amount    string // amount to pay or receive, whole kronor
	File      string // export path relative to the repo root
}

// Header is the CSV header for filing-log.csv.
const Header = "id,timestamp,kind,period,event,amount,file"

const (
	numFields    = 7
	logDir       = "logs"
	logFile      = "logs/filing-log.csv"
	colID        = 0
	colTimestamp = 1
	colKind      = 2
	colPeriod    = 3
	colEvent     = 4
	colAmount    = 5
	colFile      = 6
)

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colID] = e.ID.String()
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colKind] = e.Kind
	row[colPeriod] = e.Period
	row[colEvent] = e.Event
	row[colAmount] = e.Amount
	row[colFile] = e.File
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	id, err := uuid.Parse(record[colID])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing id %q: %w", record[colID], err)
	}
	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	return Entry{
		ID:        id,
		Timestamp: ts,
		Kind:      record[colKind],
		Period:    record[colPeriod],
		Event:     record[colEvent],
		Amount:    record[colAmount],
		File:      record[colFile],
	}, nil
}

// Append writes entries to <repoRoot>/logs/filing-log.csv, creating the file and header if needed.
func Append(repoRoot string, entries ...Entry) error {
	if err := os.MkdirAll(filepath.Join(repoRoot, logDir), 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(repoRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening filing log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, e := range entries {
		if e.ID == uuid.Nil {
			if e.ID, err = uuid.NewV7(); err != nil {
				return fmt.Errorf("generating entry id: %w", err)
			}
		}
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Read returns all entries from <repoRoot>/logs/filing-log.csv.
// Returns an empty slice if the file does not exist.
func Read(repoRoot string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(repoRoot, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening filing log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading filing log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Submitted reports whether the log holds a submitted event for kind and period.
func Submitted(entries []Entry, kind, period string) bool {
	for _, e := range entries {
		if e.Kind == kind && e.Period == period && e.Event == EventSubmitted {
			return true
		}
	}
	return false
}
