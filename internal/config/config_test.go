package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Biz", "llc_single_member")
	cfg.BankAccounts = []BankAccount{
		{Name: "Chase Checking", Format: "chase", LastFour: "1234", AccountCode: "1010"},
	}
	cfg.CategoryAccounts = map[string]string{
		"consulting": "4010",
		"software":   "5020",
	}

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Business.Name, got.Business.Name)
	assert.Equal(t, cfg.Business.EntityType, got.Business.EntityType)
	assert.Equal(t, cfg.Business.Currency, got.Business.Currency)
	assert.Equal(t, cfg.Fiscal.YearStart, got.Fiscal.YearStart)
	assert.Equal(t, cfg.Reconcile.DateWindowDays, got.Reconcile.DateWindowDays)
	assert.InDelta(t, cfg.Reconcile.AmountTolerance, got.Reconcile.AmountTolerance, 0.0001)
	assert.Equal(t, cfg.Git.AutoCommit, got.Git.AutoCommit)
	assert.Equal(t, cfg.CategoryAccounts, got.CategoryAccounts)
	require.Len(t, got.BankAccounts, 1)
	assert.Equal(t, "Chase Checking", got.BankAccounts[0].Name)
	assert.Equal(t, "1010", got.BankAccounts[0].AccountCode)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Company", "llc_single_member")

	assert.Equal(t, "My Company", cfg.Business.Name)
	assert.Equal(t, "llc_single_member", cfg.Business.EntityType)
	assert.Equal(t, "USD", cfg.Business.Currency)
	assert.Equal(t, "01-01", cfg.Fiscal.YearStart)
	assert.Equal(t, 3, cfg.Reconcile.DateWindowDays)
	assert.True(t, cfg.Reconcile.Tolerance().Equal(decimal.NewFromFloat(0.01)))
	assert.True(t, cfg.Git.AutoCommit)
	assert.Empty(t, cfg.BankAccounts)
}

func TestBankAccountByCode(t *testing.T) {
	cfg := Default("Test Biz", "llc_single_member")
	cfg.BankAccounts = []BankAccount{
		{Name: "Checking", Format: "chase", AccountCode: "1010"},
		{Name: "Savings", Format: "generic", AccountCode: "1020"},
	}

	ba, ok := cfg.BankAccountByCode("1020")
	require.True(t, ok)
	assert.Equal(t, "Savings", ba.Name)

	_, ok = cfg.BankAccountByCode("9999")
	assert.False(t, ok)
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLFormat(t *testing.T) {
	cfg := Default("Test Biz", "llc_single_member")
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	assert.Contains(t, contents, "name: Test Biz")
	assert.Contains(t, contents, "entity_type: llc_single_member")
	assert.Contains(t, contents, "year_start: 01-01")
	assert.Contains(t, contents, "date_window_days: 3")
	assert.Contains(t, contents, "auto_commit: true")
}
