// Package books opens a books repository on disk and exposes the report,
// comparison, and reconciliation operations over it.
package books

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/clearbooks-dev/clearbooks/internal/accounts"
	"github.com/clearbooks-dev/clearbooks/internal/compare"
	"github.com/clearbooks-dev/clearbooks/internal/config"
	"github.com/clearbooks-dev/clearbooks/internal/id"
	"github.com/clearbooks-dev/clearbooks/internal/journal"
	"github.com/clearbooks-dev/clearbooks/internal/model"
	"github.com/clearbooks-dev/clearbooks/internal/reconcile"
	"github.com/clearbooks-dev/clearbooks/internal/report"
)

// Service is an open books repository.
type Service struct {
	Root     string
	Config   *config.Config
	Accounts *accounts.Service
	Journal  *journal.Service
}

// Open loads the config and chart of accounts from a books repository.
func Open(root string) (*Service, error) {
	cfgPath := filepath.Join(root, config.FileName)
	if _, err := os.Stat(cfgPath); err != nil {
		return nil, fmt.Errorf("%s is not a books repository (no %s): %w", root, config.FileName, err)
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	chart, err := accounts.Load(root)
	if err != nil {
		return nil, err
	}
	return &Service{
		Root:     root,
		Config:   cfg,
		Accounts: chart,
		Journal:  journal.NewService(root, chart),
	}, nil
}

// Create lays out a new books repository at root: config, chart of
// accounts, and the import directory.
func Create(root string, cfg *config.Config, chart []model.Account) (*Service, error) {
	if _, err := os.Stat(filepath.Join(root, config.FileName)); err == nil {
		return nil, fmt.Errorf("%s already holds a books repository", root)
	}

	svc, err := accounts.NewService(chart)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Join(root, "import"), 0o755); err != nil {
		return nil, fmt.Errorf("creating import dir: %w", err)
	}
	if err := svc.Save(root); err != nil {
		return nil, err
	}
	if err := config.Save(filepath.Join(root, config.FileName), cfg); err != nil {
		return nil, err
	}
	return &Service{
		Root:     root,
		Config:   cfg,
		Accounts: svc,
		Journal:  journal.NewService(root, svc),
	}, nil
}

// TrialBalance builds the trial balance as of a date.
func (s *Service) TrialBalance(asOf time.Time) (report.TrialBalance, error) {
	entries, err := s.Journal.ReadAll()
	if err != nil {
		return report.TrialBalance{}, err
	}
	return report.BuildTrialBalance(s.Accounts.All(), entries, asOf)
}

// BalanceSheet builds the balance sheet as of a date.
func (s *Service) BalanceSheet(asOf time.Time) (report.BalanceSheet, error) {
	entries, err := s.Journal.ReadAll()
	if err != nil {
		return report.BalanceSheet{}, err
	}
	return report.BuildBalanceSheet(s.Accounts.All(), entries, asOf)
}

// ProfitAndLoss builds the income statement over a date range.
func (s *Service) ProfitAndLoss(start, end time.Time) (report.ProfitAndLoss, error) {
	entries, err := s.Journal.ReadAll()
	if err != nil {
		return report.ProfitAndLoss{}, err
	}
	return report.BuildProfitAndLoss(s.Accounts.All(), entries, start, end)
}

// GeneralLedgers builds per-account ledgers over the whole journal.
func (s *Service) GeneralLedgers() ([]report.GeneralLedger, error) {
	entries, err := s.Journal.ReadAll()
	if err != nil {
		return nil, err
	}
	return report.BuildGeneralLedgers(s.Accounts.All(), entries)
}

// CompareTrialBalance builds a period-over-period trial balance comparison.
func (s *Service) CompareTrialBalance(period compare.Period) (compare.TrialBalanceComparison, error) {
	entries, err := s.Journal.ReadAll()
	if err != nil {
		return compare.TrialBalanceComparison{}, err
	}
	return compare.TrialBalance(s.Accounts.All(), entries, period)
}

// CompareBalanceSheet builds a period-over-period balance sheet comparison.
func (s *Service) CompareBalanceSheet(period compare.Period) (compare.BalanceSheetComparison, error) {
	entries, err := s.Journal.ReadAll()
	if err != nil {
		return compare.BalanceSheetComparison{}, err
	}
	return compare.BalanceSheet(s.Accounts.All(), entries, period)
}

// CompareProfitAndLoss builds a period-over-period income statement
// comparison.
func (s *Service) CompareProfitAndLoss(period compare.Period) (compare.ProfitAndLossComparison, error) {
	entries, err := s.Journal.ReadAll()
	if err != nil {
		return compare.ProfitAndLossComparison{}, err
	}
	return compare.ProfitAndLoss(s.Accounts.All(), entries, period)
}

// ReconcileOptions derives matching options from the repository config,
// falling back to defaults when unset.
func (s *Service) ReconcileOptions() reconcile.Options {
	opts := reconcile.DefaultOptions()
	if s.Config.Reconcile.DateWindowDays > 0 {
		opts.DateWindowDays = s.Config.Reconcile.DateWindowDays
	}
	if s.Config.Reconcile.AmountTolerance > 0 {
		opts.AmountTolerance = s.Config.Reconcile.Tolerance()
	}
	return opts
}

// ReconcileStatement matches a bank statement against the journal lines
// booked to its ledger account and returns the completed run.
func (s *Service) ReconcileStatement(stmt model.BankStatement) (*reconcile.Run, error) {
	if !s.Accounts.Exists(stmt.BankAccountCode) {
		return nil, fmt.Errorf("bank account %s not in chart", stmt.BankAccountCode)
	}
	candidates, err := s.candidateLines(stmt.BankAccountCode)
	if err != nil {
		return nil, err
	}
	run, err := reconcile.NewRun(stmt, candidates, s.ReconcileOptions())
	if err != nil {
		return nil, err
	}
	run.Reconcile()
	return run, nil
}

// candidateLines extracts the posted journal lines on accountCode as
// reconciliation candidates. A debit to a bank asset account is money in,
// matching the statement sign convention.
func (s *Service) candidateLines(accountCode string) ([]reconcile.CandidateEntry, error) {
	entries, err := s.Journal.ReadAll()
	if err != nil {
		return nil, err
	}

	var candidates []reconcile.CandidateEntry
	for _, e := range entries {
		if e.Status != model.StatusPosted {
			continue
		}
		for i, line := range e.Lines {
			if line.AccountCode != accountCode {
				continue
			}
			desc := line.Description
			if desc == "" {
				desc = e.Description
			}
			candidates = append(candidates, reconcile.CandidateEntry{
				ID:          id.FormatLineID(e.Number, i),
				Date:        e.Date,
				Description: desc,
				Amount:      line.Debit.Sub(line.Credit),
				Reference:   e.Reference,
			})
		}
	}
	return candidates, nil
}
