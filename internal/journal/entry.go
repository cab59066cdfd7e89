package journal

import (
	"fmt"
	"time"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// Post transitions a draft entry to posted. Only posted entries count toward
// report balances.
func Post(e *model.Entry) error {
	if e.Status != model.StatusDraft {
		return fmt.Errorf("entry %s: cannot post from status %s", e.Number, e.Status)
	}
	if !e.IsBalanced() {
		return fmt.Errorf("entry %s: cannot post unbalanced entry (debit %s, credit %s)",
			e.Number, e.TotalDebit().StringFixed(2), e.TotalCredit().StringFixed(2))
	}
	e.Status = model.StatusPosted
	return nil
}

// Reverse marks a posted entry reversed and returns the offsetting entry
// (debits and credits swapped, posted under the given number). History is
// never deleted; the pair nets to zero.
func Reverse(e *model.Entry, date time.Time, number string) (model.Entry, error) {
	if e.Status != model.StatusPosted {
		return model.Entry{}, fmt.Errorf("entry %s: cannot reverse from status %s", e.Number, e.Status)
	}

	lines := make([]model.EntryLine, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = model.EntryLine{
			AccountCode: l.AccountCode,
			AccountName: l.AccountName,
			Description: l.Description,
			Debit:       l.Credit,
			Credit:      l.Debit,
		}
	}

	e.Status = model.StatusReversed
	return model.Entry{
		Number:      number,
		Date:        date,
		Description: "Reversal of " + e.Number,
		Reference:   e.Number,
		Lines:       lines,
		Status:      model.StatusPosted,
	}, nil
}
