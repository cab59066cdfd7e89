package journal

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/id"
	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	EntryNumber string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.EntryNumber, e.Description)
}

// AccountChecker tests whether an account code exists in the chart of accounts.
type AccountChecker interface {
	Exists(code string) bool
}

// ValidateEntries enforces 5 invariants on a set of journal entries.
func ValidateEntries(entries []model.Entry, accounts AccountChecker) []ValidationError {
	var errs []ValidationError

	// Invariant 1: Every entry balances (sum(debits) == sum(credits)).
	for _, e := range entries {
		if !e.IsBalanced() {
			errs = append(errs, ValidationError{
				Invariant:   1,
				EntryNumber: e.Number,
				Description: fmt.Sprintf("debits (%s) != credits (%s)", e.TotalDebit().StringFixed(2), e.TotalCredit().StringFixed(2)),
			})
		}
	}

	two := decimal.NewFromInt(100)
	for _, e := range entries {
		for i, line := range e.Lines {
			// Invariant 2: Exactly one of debit/credit per line, neither negative.
			hasDebit := !line.Debit.IsZero()
			hasCredit := !line.Credit.IsZero()
			if hasDebit == hasCredit {
				errs = append(errs, ValidationError{
					Invariant:   2,
					EntryNumber: e.Number,
					Description: fmt.Sprintf("line %d must have exactly one of debit or credit", i+1),
				})
			}
			if line.Debit.IsNegative() || line.Credit.IsNegative() {
				errs = append(errs, ValidationError{
					Invariant:   2,
					EntryNumber: e.Number,
					Description: fmt.Sprintf("line %d has a negative amount", i+1),
				})
			}

			// Invariant 3: Valid account references.
			if !accounts.Exists(line.AccountCode) {
				errs = append(errs, ValidationError{
					Invariant:   3,
					EntryNumber: e.Number,
					Description: fmt.Sprintf("unknown account %s", line.AccountCode),
				})
			}

			// Invariant 4: Exact decimals, no more than 2 decimal places.
			if !line.Debit.IsZero() && !line.Debit.Mul(two).Equal(line.Debit.Mul(two).Floor()) {
				errs = append(errs, ValidationError{
					Invariant:   4,
					EntryNumber: e.Number,
					Description: fmt.Sprintf("debit %s has more than 2 decimal places", line.Debit),
				})
			}
			if !line.Credit.IsZero() && !line.Credit.Mul(two).Equal(line.Credit.Mul(two).Floor()) {
				errs = append(errs, ValidationError{
					Invariant:   4,
					EntryNumber: e.Number,
					Description: fmt.Sprintf("credit %s has more than 2 decimal places", line.Credit),
				})
			}
		}
	}

	// Invariant 5: Entry numbers are well-formed and unique.
	seen := make(map[string]bool)
	for _, e := range entries {
		if _, _, _, err := id.ParseEntryNumber(e.Number); err != nil {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryNumber: e.Number,
				Description: fmt.Sprintf("invalid entry number: %v", err),
			})
			continue
		}
		if seen[e.Number] {
			errs = append(errs, ValidationError{
				Invariant:   5,
				EntryNumber: e.Number,
				Description: "duplicate entry number",
			})
		}
		seen[e.Number] = true
	}

	return errs
}
