package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/forzencookie/scope-ai-sub007/internal/id"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// Service reads and appends the month journal files of a repository.
type Service struct {
	repoRoot string
	accounts AccountChecker
}

// NewService creates a journal Service.
func NewService(repoRoot string, accounts AccountChecker) *Service {
	return &Service{repoRoot: repoRoot, accounts: accounts}
}

// Append numbers v within its month, validates the month with v added,
// and appends it to the month's journal.csv. Returns the verification ID.
func (s *Service) Append(v model.Verification) (string, error) {
	year, month := v.Date.Year(), int(v.Date.Month())

	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return "", err
	}
	v.ID = id.Verification(year, month, nextSeq(existing))

	all := append(existing, v)
	if verrs := ValidateMonth(all, s.accounts, year, month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return "", fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	journalPath := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(journalPath), 0o755); err != nil {
		return "", fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(journalPath); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(journalPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return "", fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return "", fmt.Errorf("writing header: %w", err)
		}
	}
	if err := AppendVerifications(f, []model.Verification{v}); err != nil {
		return "", fmt.Errorf("appending %s: %w", v.ID, err)
	}
	return v.ID, nil
}

// ReadMonth reads all verifications for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.Verification, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	vers, err := ReadVerifications(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return vers, nil
}

// Month identifies one journal file.
type Month struct {
	Year  int
	Month int
}

// Start is midnight UTC on the first day of the month.
func (m Month) Start() time.Time {
	return time.Date(m.Year, time.Month(m.Month), 1, 0, 0, 0, 0, time.UTC)
}

// Months lists the months that have a journal file, oldest first.
func (s *Service) Months() ([]Month, error) {
	matches, err := filepath.Glob(filepath.Join(s.repoRoot, "[0-9][0-9][0-9][0-9]", "[0-9][0-9]", "journal.csv"))
	if err != nil {
		return nil, fmt.Errorf("listing journals: %w", err)
	}

	var out []Month
	for _, m := range matches {
		monthDir := filepath.Dir(m)
		year, _ := strconv.Atoi(filepath.Base(filepath.Dir(monthDir)))
		month, _ := strconv.Atoi(filepath.Base(monthDir))
		if month < 1 || month > 12 {
			continue
		}
		out = append(out, Month{Year: year, Month: month})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out, nil
}

// ReadRange reads the verifications of every month file overlapping
// [start, end]. Verifications are not filtered by date; the balance
// aggregator applies the exact window.
func (s *Service) ReadRange(start, end time.Time) ([]model.Verification, error) {
	months, err := s.Months()
	if err != nil {
		return nil, err
	}

	var out []model.Verification
	for _, m := range months {
		ms := m.Start()
		if !ms.AddDate(0, 1, 0).After(start) || ms.After(end) {
			continue
		}
		vers, err := s.ReadMonth(m.Year, m.Month)
		if err != nil {
			return nil, err
		}
		out = append(out, vers...)
	}
	return out, nil
}

// ReadUntil reads every verification in months up to and including end.
func (s *Service) ReadUntil(end time.Time) ([]model.Verification, error) {
	return s.ReadRange(time.Time{}, end)
}

// Verify validates every month file of the year.
func (s *Service) Verify(year int) ([]ValidationError, error) {
	months, err := s.Months()
	if err != nil {
		return nil, err
	}
	var out []ValidationError
	for _, m := range months {
		if m.Year != year {
			continue
		}
		vers, err := s.ReadMonth(m.Year, m.Month)
		if err != nil {
			return nil, err
		}
		out = append(out, ValidateMonth(vers, s.accounts, m.Year, m.Month)...)
	}
	return out, nil
}

// nextSeq returns the next free sequence number after existing.
func nextSeq(existing []model.Verification) int {
	maxSeq := 0
	for _, v := range existing {
		_, _, seq, err := id.Parse(v.ID)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.repoRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}
