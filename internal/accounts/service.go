package accounts

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// Service provides in-memory lookup over the chart of accounts.
type Service struct {
	accounts []model.Account
	byCode   map[string]model.Account
}

// NewService creates a Service from a slice of accounts. It fails when the
// chart is empty, an account code repeats, a category does not belong under
// its type, or a sub-account references an unknown parent.
func NewService(accounts []model.Account) (*Service, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("chart of accounts is empty")
	}

	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		if _, dup := byCode[a.Code]; dup {
			return nil, fmt.Errorf("duplicate account code %s", a.Code)
		}
		if !a.Category.ValidFor(a.Type) {
			return nil, fmt.Errorf("account %s: category %s not valid for type %s", a.Code, a.Category, a.Type)
		}
		byCode[a.Code] = a
	}
	for _, a := range accounts {
		if a.ParentCode == "" {
			continue
		}
		parent, ok := byCode[a.ParentCode]
		if !ok {
			return nil, fmt.Errorf("account %s: unknown parent %s", a.Code, a.ParentCode)
		}
		if parent.Type != a.Type {
			return nil, fmt.Errorf("account %s: parent %s has different type %s", a.Code, parent.Code, parent.Type)
		}
	}
	return &Service{accounts: accounts, byCode: byCode}, nil
}

// Load reads chart-of-accounts.csv from a books root and returns a Service.
func Load(booksRoot string) (*Service, error) {
	path := filepath.Join(booksRoot, "accounts", "chart-of-accounts.csv")
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart of accounts: %w", err)
	}
	defer f.Close()

	accts, err := ReadAccounts(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart of accounts: %w", err)
	}
	return NewService(accts)
}

// All returns all accounts in chart order.
func (s *Service) All() []model.Account {
	return s.accounts
}

// Get returns an account by code.
func (s *Service) Get(code string) (model.Account, bool) {
	a, ok := s.byCode[code]
	return a, ok
}

// Exists reports whether an account code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
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

// ByCategory returns all accounts of the given category.
func (s *Service) ByCategory(category model.AccountCategory) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.Category == category {
			result = append(result, a)
		}
	}
	return result
}

// Children returns the direct sub-accounts of the given account code.
func (s *Service) Children(code string) []model.Account {
	var result []model.Account
	for _, a := range s.accounts {
		if a.ParentCode == code {
			result = append(result, a)
		}
	}
	return result
}

// Save writes the chart of accounts to accounts/chart-of-accounts.csv.
func (s *Service) Save(booksRoot string) error {
	dir := filepath.Join(booksRoot, "accounts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	path := filepath.Join(dir, "chart-of-accounts.csv")
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
