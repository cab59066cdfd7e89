package journal

import (
	"fmt"

	"github.com/clearbooks-dev/clearbooks/internal/id"
	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// BuildError reports a transaction the builder could not journalize. Skipped
// transactions are surfaced, never silently dropped: a missing entry would
// break the ledger-wide debit=credit invariant without a trace.
type BuildError struct {
	TransactionID string
	Reason        string
}

func (e BuildError) Error() string {
	return fmt.Sprintf("transaction %s: %s", e.TransactionID, e.Reason)
}

// BuildOptions configures how raw transactions map onto the chart.
type BuildOptions struct {
	// DepositAccount is debited when income arrives (a cash or bank account).
	DepositAccount string
	// PaymentAccount is credited when an expense is paid.
	PaymentAccount string
	// CategoryAccounts maps transaction categories to account codes.
	CategoryAccounts map[string]string
	// Status assigned to generated entries. Defaults to posted.
	Status model.EntryStatus
}

// AccountLookup resolves account codes against the chart of accounts.
type AccountLookup interface {
	Get(code string) (model.Account, bool)
	Exists(code string) bool
}

// Builder converts raw business transactions into balanced journal entries.
type Builder struct {
	chart AccountLookup
	opts  BuildOptions
}

// NewBuilder creates a Builder. The deposit and payment accounts must exist
// in the chart and be asset or liability accounts.
func NewBuilder(chart AccountLookup, opts BuildOptions) (*Builder, error) {
	if opts.Status == "" {
		opts.Status = model.StatusPosted
	}
	for _, code := range []string{opts.DepositAccount, opts.PaymentAccount} {
		acct, ok := chart.Get(code)
		if !ok {
			return nil, fmt.Errorf("settlement account %s not in chart", code)
		}
		if acct.Type != model.AccountTypeAsset && acct.Type != model.AccountTypeLiability {
			return nil, fmt.Errorf("settlement account %s must be an asset or liability, got %s", code, acct.Type)
		}
	}
	return &Builder{chart: chart, opts: opts}, nil
}

// Generate builds one balanced two-line entry per transaction. Income debits
// the deposit account and credits the mapped revenue account; an expense
// debits the mapped expense account and credits the payment account. Amounts
// are taken verbatim (no conversion). Entry numbers are sequential per month
// and deterministic for a given input ordering. Transactions that cannot be
// journalized come back as BuildErrors alongside the entries that could.
func (b *Builder) Generate(txns []model.Transaction) ([]model.Entry, []BuildError) {
	var entries []model.Entry
	var errs []BuildError

	seq := make(map[string]int) // "YYYY-MM" -> last used sequence
	for _, txn := range txns {
		entry, err := b.buildEntry(txn, seq)
		if err != nil {
			errs = append(errs, BuildError{TransactionID: txn.ID, Reason: err.Error()})
			continue
		}
		entries = append(entries, entry)
	}
	return entries, errs
}

func (b *Builder) buildEntry(txn model.Transaction, seq map[string]int) (model.Entry, error) {
	if !txn.Amount.IsPositive() {
		return model.Entry{}, fmt.Errorf("amount must be positive, got %s", txn.Amount)
	}

	code, ok := b.opts.CategoryAccounts[txn.Category]
	if !ok {
		return model.Entry{}, fmt.Errorf("category %q has no account mapping", txn.Category)
	}
	mapped, ok := b.chart.Get(code)
	if !ok {
		return model.Entry{}, fmt.Errorf("category %q maps to unknown account %s", txn.Category, code)
	}

	deposit, _ := b.chart.Get(b.opts.DepositAccount)
	payment, _ := b.chart.Get(b.opts.PaymentAccount)

	var debit, credit model.Account
	switch txn.Type {
	case model.TransactionIncome:
		if mapped.Type != model.AccountTypeRevenue {
			return model.Entry{}, fmt.Errorf("income category %q maps to %s account %s", txn.Category, mapped.Type, mapped.Code)
		}
		debit, credit = deposit, mapped
	case model.TransactionExpense:
		if mapped.Type != model.AccountTypeExpense {
			return model.Entry{}, fmt.Errorf("expense category %q maps to %s account %s", txn.Category, mapped.Type, mapped.Code)
		}
		debit, credit = mapped, payment
	default:
		return model.Entry{}, fmt.Errorf("unknown transaction type %q", txn.Type)
	}

	monthKey := txn.Date.Format("2006-01")
	seq[monthKey]++
	number := id.FormatEntryNumber(txn.Date.Year(), int(txn.Date.Month()), seq[monthKey])

	return model.Entry{
		Number:      number,
		Date:        txn.Date,
		Description: txn.Description,
		Reference:   txn.Reference,
		Lines: []model.EntryLine{
			{AccountCode: debit.Code, AccountName: debit.Name, Debit: txn.Amount},
			{AccountCode: credit.Code, AccountName: credit.Name, Credit: txn.Amount},
		},
		Status: b.opts.Status,
	}, nil
}
