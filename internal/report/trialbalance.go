package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// TrialBalanceRow is one account's net balance, on the side it actually
// falls on. An account netting on the "wrong" side of its normal balance is
// reported as-is, never forced over.
type TrialBalanceRow struct {
	Code   string
	Name   string
	Type   model.AccountType
	Debit  decimal.Decimal
	Credit decimal.Decimal
}

// TrialBalance lists every active account's net balance as of a date.
type TrialBalance struct {
	AsOf        time.Time
	Rows        []TrialBalanceRow
	TotalDebit  decimal.Decimal
	TotalCredit decimal.Decimal
	Balanced    bool
}

// BuildTrialBalance nets all posted entries dated on or before asOf into one
// debit- or credit-balance figure per account. A zero asOf means now.
// Zero-activity accounts are excluded from the rows; they contribute nothing
// to the totals either way.
func BuildTrialBalance(accounts []model.Account, entries []model.Entry, asOf time.Time) (TrialBalance, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	byCode, err := indexAccounts(accounts)
	if err != nil {
		return TrialBalance{}, err
	}
	sums, err := collectActivity(byCode, entries, time.Time{}, asOf)
	if err != nil {
		return TrialBalance{}, err
	}

	tb := TrialBalance{
		AsOf:        asOf,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, a := range accounts {
		sum, ok := sums[a.Code]
		if !ok || !sum.touched() {
			continue
		}
		row := TrialBalanceRow{Code: a.Code, Name: a.Name, Type: a.Type}
		net := sum.debit.Sub(sum.credit)
		switch {
		case net.IsPositive():
			row.Debit = net
		case net.IsNegative():
			row.Credit = net.Neg()
		default:
			// Activity that nets to zero still shows as a zero row on the
			// account's normal side.
			row.Debit = decimal.Zero
			row.Credit = decimal.Zero
		}
		tb.Rows = append(tb.Rows, row)
		tb.TotalDebit = tb.TotalDebit.Add(row.Debit)
		tb.TotalCredit = tb.TotalCredit.Add(row.Credit)
	}

	sort.Slice(tb.Rows, func(i, j int) bool { return tb.Rows[i].Code < tb.Rows[j].Code })
	tb.Balanced = tb.TotalDebit.Round(2).Equal(tb.TotalCredit.Round(2))
	return tb, nil
}
