// Package report builds accounting reports as pure functions over accounts
// and journal entries. Builders never mutate their inputs and depend on no
// ambient state, so identical inputs always produce identical reports.
package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// IntegrityError marks ledger data a report cannot be built from: an
// unbalanced posted entry or a line referencing an unknown account. A partial
// report would be worse than none, so generation aborts.
type IntegrityError struct {
	EntryNumber string
	Detail      string
}

func (e IntegrityError) Error() string {
	return fmt.Sprintf("ledger integrity [%s]: %s", e.EntryNumber, e.Detail)
}

// noDate is the open bound for collectActivity filters.
var noDate time.Time

// activity holds the summed debit and credit lines of one account.
type activity struct {
	debit  decimal.Decimal
	credit decimal.Decimal
}

// touched reports whether any line hit the account.
func (a activity) touched() bool {
	return !a.debit.IsZero() || !a.credit.IsZero()
}

// signed nets activity onto the account type's normal balance side.
func (a activity) signed(t model.AccountType) decimal.Decimal {
	if t.NormalDebit() {
		return a.debit.Sub(a.credit)
	}
	return a.credit.Sub(a.debit)
}

func indexAccounts(accounts []model.Account) (map[string]model.Account, error) {
	if len(accounts) == 0 {
		return nil, fmt.Errorf("no accounts supplied")
	}
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	return byCode, nil
}

// collectActivity sums posted entries within [from, to] per account. A zero
// `from` means no lower bound; a zero `to` means no upper bound. Draft and
// reversed entries never contribute. Unbalanced posted entries and lines on
// unknown accounts abort with an IntegrityError.
func collectActivity(byCode map[string]model.Account, entries []model.Entry, from, to time.Time) (map[string]activity, error) {
	sums := make(map[string]activity)
	for _, e := range entries {
		if e.Status != model.StatusPosted {
			continue
		}
		if !from.IsZero() && e.Date.Before(from) {
			continue
		}
		if !to.IsZero() && e.Date.After(to) {
			continue
		}
		if !e.IsBalanced() {
			return nil, IntegrityError{
				EntryNumber: e.Number,
				Detail: fmt.Sprintf("posted entry is unbalanced (debit %s, credit %s)",
					e.TotalDebit().StringFixed(2), e.TotalCredit().StringFixed(2)),
			}
		}
		for _, line := range e.Lines {
			if _, ok := byCode[line.AccountCode]; !ok {
				return nil, IntegrityError{
					EntryNumber: e.Number,
					Detail:      fmt.Sprintf("line references unknown account %s", line.AccountCode),
				}
			}
			sum := sums[line.AccountCode]
			sum.debit = sum.debit.Add(line.Debit)
			sum.credit = sum.credit.Add(line.Credit)
			sums[line.AccountCode] = sum
		}
	}
	return sums, nil
}

// netIncome computes revenue minus expenses from the given activity.
func netIncome(accounts []model.Account, sums map[string]activity) decimal.Decimal {
	total := decimal.Zero
	for _, a := range accounts {
		sum, ok := sums[a.Code]
		if !ok {
			continue
		}
		switch a.Type {
		case model.AccountTypeRevenue:
			total = total.Add(sum.signed(a.Type))
		case model.AccountTypeExpense:
			total = total.Sub(sum.signed(a.Type))
		}
	}
	return total
}
