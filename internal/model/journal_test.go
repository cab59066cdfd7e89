package model

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestEntryTotals(t *testing.T) {
	e := Entry{
		Number: "2026-02-001",
		Date:   time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		Lines: []EntryLine{
			{AccountCode: "1010", Debit: dec("150.00")},
			{AccountCode: "4010", Credit: dec("150.00")},
		},
		Status: StatusPosted,
	}

	assert.True(t, e.TotalDebit().Equal(dec("150.00")))
	assert.True(t, e.TotalCredit().Equal(dec("150.00")))
	assert.True(t, e.IsBalanced())
}

func TestEntryUnbalanced(t *testing.T) {
	e := Entry{
		Lines: []EntryLine{
			{AccountCode: "1010", Debit: dec("150.00")},
			{AccountCode: "4010", Credit: dec("149.99")},
		},
	}
	assert.False(t, e.IsBalanced())
}

func TestEntryBalancedWithinPrecision(t *testing.T) {
	// Sub-cent drift rounds away at currency precision.
	e := Entry{
		Lines: []EntryLine{
			{AccountCode: "1010", Debit: dec("100.0001")},
			{AccountCode: "4010", Credit: dec("100.0002")},
		},
	}
	assert.True(t, e.IsBalanced())
}

func TestCategoryValidFor(t *testing.T) {
	assert.True(t, CategoryCOGS.ValidFor(AccountTypeExpense))
	assert.False(t, CategoryCOGS.ValidFor(AccountTypeRevenue))
	assert.True(t, CategoryCash.ValidFor(AccountTypeAsset))
	assert.False(t, AccountCategory("made_up").ValidFor(AccountTypeAsset))
}

func TestNormalDebit(t *testing.T) {
	assert.True(t, AccountTypeAsset.NormalDebit())
	assert.True(t, AccountTypeExpense.NormalDebit())
	assert.False(t, AccountTypeLiability.NormalDebit())
	assert.False(t, AccountTypeEquity.NormalDebit())
	assert.False(t, AccountTypeRevenue.NormalDebit())
}

func TestIsSubAccount(t *testing.T) {
	assert.False(t, Account{Code: "1010"}.IsSubAccount())
	assert.True(t, Account{Code: "1011", ParentCode: "1010"}.IsSubAccount())
}
