package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType distinguishes money coming into the business from money
// going out.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Transaction is a raw business transaction before journalization.
type Transaction struct {
	ID           string
	Date         time.Time
	Description  string
	Type         TransactionType
	Category     string // mapped to an account code by the journal builder
	Amount       decimal.Decimal
	Counterparty string
	Reference    string
}

// BankTransaction represents a parsed bank feed row. Amounts are signed:
// negative for money leaving the bank account, positive for money arriving.
type BankTransaction struct {
	ID          string
	StatementID string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
	Type        string // bank transaction type (ACH_DEBIT, etc.)
}

// BankStatement is a period of bank activity with the bank's own opening and
// closing balances. Every bank transaction belongs to exactly one statement.
type BankStatement struct {
	ID              string
	BankAccountCode string
	PeriodStart     time.Time
	PeriodEnd       time.Time
	OpeningBalance  decimal.Decimal
	ClosingBalance  decimal.Decimal
	Transactions    []BankTransaction
}
