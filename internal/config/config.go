// Package config reads and writes clearbooks.yaml, the per-repository
// configuration for a set of books.
package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// FileName is the config file at the root of a books repository.
const FileName = "clearbooks.yaml"

// Config represents the top-level clearbooks.yaml configuration.
type Config struct {
	Business         BusinessConfig    `yaml:"business"`
	Fiscal           FiscalConfig      `yaml:"fiscal"`
	BankAccounts     []BankAccount     `yaml:"bank_accounts,omitempty"`
	Reconcile        ReconcileConfig   `yaml:"reconcile"`
	CategoryAccounts map[string]string `yaml:"category_accounts,omitempty"`
	Git              GitConfig         `yaml:"git"`
}

// BusinessConfig identifies the business entity.
type BusinessConfig struct {
	Name       string `yaml:"name"`
	EntityType string `yaml:"entity_type"`
	Currency   string `yaml:"currency"`
}

// FiscalConfig defines the fiscal year boundaries.
type FiscalConfig struct {
	YearStart string `yaml:"year_start"` // "MM-DD" format, e.g. "01-01"
}

// BankAccount maps a bank feed to a chart-of-accounts entry.
type BankAccount struct {
	Name        string `yaml:"name"`
	Format      string `yaml:"format"` // statement parser name, e.g. "chase"
	LastFour    string `yaml:"last_four"`
	AccountCode string `yaml:"account_code"`
}

// ReconcileConfig tunes statement matching.
type ReconcileConfig struct {
	DateWindowDays  int     `yaml:"date_window_days"`
	AmountTolerance float64 `yaml:"amount_tolerance"`
}

// Tolerance returns the amount tolerance as a decimal.
func (r ReconcileConfig) Tolerance() decimal.Decimal {
	return decimal.NewFromFloat(r.AmountTolerance)
}

// GitConfig controls git integration.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// BankAccountByCode returns the bank account mapped to a chart code.
func (c *Config) BankAccountByCode(code string) (BankAccount, bool) {
	for _, ba := range c.BankAccounts {
		if ba.AccountCode == code {
			return ba, true
		}
	}
	return BankAccount{}, false
}

// Load reads a clearbooks.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for new books.
func Default(businessName, entityType string) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:       businessName,
			EntityType: entityType,
			Currency:   "USD",
		},
		Fiscal: FiscalConfig{
			YearStart: "01-01",
		},
		Reconcile: ReconcileConfig{
			DateWindowDays:  3,
			AmountTolerance: 0.01,
		},
		Git: GitConfig{
			AutoCommit:  true,
			AuthorName:  "Clearbooks",
			AuthorEmail: "books@clearbooks.dev",
		},
	}
}
