package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// Posting is one journal line in an account's ledger with the running
// balance after it.
type Posting struct {
	EntryNumber string
	Date        string // "2006-01-02"
	Description string
	Debit       decimal.Decimal
	Credit      decimal.Decimal
	Balance     decimal.Decimal
}

// GeneralLedger is the chronological posting history of one account.
type GeneralLedger struct {
	AccountCode    string
	AccountName    string
	Type           model.AccountType
	OpeningBalance decimal.Decimal
	ClosingBalance decimal.Decimal
	Postings       []Posting
}

// BuildGeneralLedgers produces one ledger per account with activity, each a
// chronological sequence of postings with a running balance signed by the
// account's normal balance side. Ties on the same date order by entry number,
// so output is deterministic. Opening balances are zero (no prior history is
// supplied); closing is the balance after the last posting.
func BuildGeneralLedgers(accounts []model.Account, entries []model.Entry) ([]GeneralLedger, error) {
	byCode, err := indexAccounts(accounts)
	if err != nil {
		return nil, err
	}
	// Integrity pass over the posted entries before building anything.
	if _, err := collectActivity(byCode, entries, noDate, noDate); err != nil {
		return nil, err
	}

	ordered := make([]model.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Status == model.StatusPosted {
			ordered = append(ordered, e)
		}
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		if !ordered[i].Date.Equal(ordered[j].Date) {
			return ordered[i].Date.Before(ordered[j].Date)
		}
		return ordered[i].Number < ordered[j].Number
	})

	ledgers := make(map[string]*GeneralLedger)
	for _, e := range ordered {
		for _, line := range e.Lines {
			acct := byCode[line.AccountCode]
			gl, ok := ledgers[acct.Code]
			if !ok {
				gl = &GeneralLedger{
					AccountCode:    acct.Code,
					AccountName:    acct.Name,
					Type:           acct.Type,
					OpeningBalance: decimal.Zero,
					ClosingBalance: decimal.Zero,
				}
				ledgers[acct.Code] = gl
			}

			delta := line.Debit.Sub(line.Credit)
			if !acct.Type.NormalDebit() {
				delta = delta.Neg()
			}
			gl.ClosingBalance = gl.ClosingBalance.Add(delta)
			desc := line.Description
			if desc == "" {
				desc = e.Description
			}
			gl.Postings = append(gl.Postings, Posting{
				EntryNumber: e.Number,
				Date:        e.Date.Format("2006-01-02"),
				Description: desc,
				Debit:       line.Debit,
				Credit:      line.Credit,
				Balance:     gl.ClosingBalance,
			})
		}
	}

	result := make([]GeneralLedger, 0, len(ledgers))
	for _, gl := range ledgers {
		result = append(result, *gl)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].AccountCode < result[j].AccountCode })
	return result, nil
}
