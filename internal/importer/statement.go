package importer

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// BuildStatement assembles parsed transactions into a bank statement for
// accountCode. Transactions are sorted by date, the statement period spans
// their dates, and the closing balance is derived from opening plus the
// signed activity. Every transaction gets an id tied to the statement.
func BuildStatement(accountCode string, txns []model.BankTransaction, opening decimal.Decimal) (model.BankStatement, error) {
	if len(txns) == 0 {
		return model.BankStatement{}, fmt.Errorf("statement for account %s has no transactions", accountCode)
	}

	sorted := make([]model.BankTransaction, len(txns))
	copy(sorted, txns)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	stmt := model.BankStatement{
		ID:              uuid.New().String(),
		BankAccountCode: accountCode,
		PeriodStart:     sorted[0].Date,
		PeriodEnd:       sorted[len(sorted)-1].Date,
		OpeningBalance:  opening,
	}

	closing := opening
	for i := range sorted {
		sorted[i].ID = uuid.New().String()
		sorted[i].StatementID = stmt.ID
		closing = closing.Add(sorted[i].Amount)
	}
	stmt.ClosingBalance = closing.Round(2)
	stmt.Transactions = sorted
	return stmt, nil
}

// ToTransactions converts statement activity into ledger transactions so
// the journal builder can book them. Deposits become income, withdrawals
// become expenses, with the category left for the caller's mapping rules.
func ToTransactions(stmt model.BankStatement, categorize func(model.BankTransaction) string) []model.Transaction {
	out := make([]model.Transaction, 0, len(stmt.Transactions))
	for _, bt := range stmt.Transactions {
		t := model.Transaction{
			ID:           bt.ID,
			Date:         bt.Date,
			Description:  bt.Description,
			Counterparty: bt.Description,
			Reference:    bt.Reference,
		}
		if bt.Amount.IsNegative() {
			t.Type = model.TransactionExpense
			t.Amount = bt.Amount.Neg()
		} else {
			t.Type = model.TransactionIncome
			t.Amount = bt.Amount
		}
		if categorize != nil {
			t.Category = categorize(bt)
		}
		out = append(out, t)
	}
	return out
}
