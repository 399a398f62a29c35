package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/forzencookie/scope-ai-sub007/internal/bas"
	"github.com/forzencookie/scope-ai-sub007/internal/model"
)

// Path is the chart of accounts location relative to the repo root.
var Path = filepath.Join("accounts", "chart-of-accounts.csv")

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byNumber map[string]model.Account
}

// NewService creates a Service from a slice of accounts.
func NewService(accounts []model.Account) *Service {
	byNumber := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byNumber[a.Number] = a
	}
	return &Service{accounts: accounts, byNumber: byNumber}
}

// Load reads chart-of-accounts.csv from a repo root and returns a Service.
func Load(repoRoot string) (*Service, error) {
	f, err := os.Open(filepath.Join(repoRoot, Path))
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts), nil
}

// All returns all accounts.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by number.
func (s *Service) Get(number string) (model.Account, bool) {
	a, ok := s.byNumber[number]
	return a, ok
}

// Exists reports whether an account number is in the chart.
func (s *Service) Exists(number string) bool {
	_, ok := s.byNumber[number]
	return ok
}

// Name returns the chart's label for an account, falling back to the
// static BAS names for accounts the chart lacks.
func (s *Service) Name(number string) (string, bool) {
	if a, ok := s.byNumber[number]; ok && a.Name != "" {
		return a.Name, true
	}
	return bas.StaticNames{}.Name(number)
}

// ByType returns all accounts of the given type.
func (s *Service) ByType(accountType model.AccountType) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Type == accountType {
			result = append(result, a)
		}
	}
	return result
}

// Add inserts accounts missing from the chart, keeping existing names.
// It returns how many were added.
func (s *Service) Add(accts ...model.Account) int {
	n := 0
	for _, a := range accts {
		if _, ok := s.byNumber[a.Number]; ok {
			continue
		}
		if a.Type == "" {
			a.Type = model.TypeForNumber(a.Number)
		}
		s.accounts = append(s.accounts, a)
		s.byNumber[a.Number] = a
		n++
	}
	return n
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(repoRoot string) error {
	path := filepath.Join(repoRoot, Path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := WriteAccounts(f, s.accounts); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}
	return nil
}
