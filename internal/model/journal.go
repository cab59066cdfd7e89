package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus represents the lifecycle state of a journal entry.
type EntryStatus string

const (
	StatusDraft    EntryStatus = "draft"
	StatusPosted   EntryStatus = "posted"
	StatusReversed EntryStatus = "reversed"
)

// EntryLine is one side of a double-entry: either a debit or a credit
// against a single account, never both.
type EntryLine struct {
	AccountCode string
	AccountName string
	Description string
	Debit       decimal.Decimal // zero if credit side
	Credit      decimal.Decimal // zero if debit side
}

// Entry is a balanced journal entry built from a business transaction.
// Entries are immutable after creation except for status transitions;
// a reversal adds an offsetting entry instead of deleting history.
type Entry struct {
	Number      string // "YYYY-MM-NNN"
	Date        time.Time
	Description string
	Reference   string
	Lines       []EntryLine
	Status      EntryStatus
}

// TotalDebit sums the debit side of all lines.
func (e Entry) TotalDebit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Debit)
	}
	return total
}

// TotalCredit sums the credit side of all lines.
func (e Entry) TotalCredit() decimal.Decimal {
	total := decimal.Zero
	for _, l := range e.Lines {
		total = total.Add(l.Credit)
	}
	return total
}

// IsBalanced reports whether debits equal credits at currency precision
// (2 decimal places).
func (e Entry) IsBalanced() bool {
	return e.TotalDebit().Round(2).Equal(e.TotalCredit().Round(2))
}
