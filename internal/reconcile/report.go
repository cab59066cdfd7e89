package reconcile

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Report summarises a reconciliation run. Discrepancy is presented as data
// for the caller to act on, not treated as an error: a non-zero value means
// the statement's closing balance does not follow from its opening balance
// plus the matched activity.
type Report struct {
	BankAccountCode string

	MatchedCount int
	MatchedTotal decimal.Decimal
	Matches      []Match

	UnmatchedTransactions []UnmatchedTransaction
	UnmatchedEntries      []CandidateEntry

	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Discrepancy    decimal.Decimal
}

// Report builds the summary for the run's current state.
func (r *Run) Report() Report {
	rep := Report{
		BankAccountCode: r.statement.BankAccountCode,
		MatchedTotal:    decimal.Zero,
		OpeningBalance:  r.statement.OpeningBalance,
		ClosingBalance:  r.statement.ClosingBalance,
	}

	for _, m := range r.matches {
		rep.Matches = append(rep.Matches, m)
		if m.Status != StatusMatched {
			continue
		}
		rep.MatchedCount++
		if txn, ok := r.findTransaction(m.BankTransactionID); ok {
			rep.MatchedTotal = rep.MatchedTotal.Add(txn.Amount)
		}
	}

	rep.UnmatchedTransactions = make([]UnmatchedTransaction, len(r.unmatched))
	copy(rep.UnmatchedTransactions, r.unmatched)
	sort.SliceStable(rep.UnmatchedTransactions, func(i, j int) bool {
		a, b := rep.UnmatchedTransactions[i].Transaction, rep.UnmatchedTransactions[j].Transaction
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})

	for _, cand := range r.pool {
		rep.UnmatchedEntries = append(rep.UnmatchedEntries, cand)
	}
	sort.Slice(rep.UnmatchedEntries, func(i, j int) bool {
		a, b := rep.UnmatchedEntries[i], rep.UnmatchedEntries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.ID < b.ID
	})

	rep.Discrepancy = r.statement.ClosingBalance.
		Sub(r.statement.OpeningBalance.Add(rep.MatchedTotal)).
		Round(2)
	return rep
}

// Clean reports whether every statement transaction is matched and the
// balances reconcile exactly.
func (rep Report) Clean() bool {
	return len(rep.UnmatchedTransactions) == 0 && rep.Discrepancy.IsZero()
}
