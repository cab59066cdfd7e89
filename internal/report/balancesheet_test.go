package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

func TestBuildBalanceSheet_Equation(t *testing.T) {
	entries := []model.Entry{
		// Owner funds the business.
		postedEntry("2026-01-001", date(2026, 1, 2), "1010", "3010", "10000.00"),
		// A sale and an expense.
		postedEntry("2026-02-001", date(2026, 2, 1), "1010", "4001", "23000.00"),
		postedEntry("2026-02-002", date(2026, 2, 3), "5050", "1010", "5000.00"),
	}

	bs, err := BuildBalanceSheet(testAccounts(), entries, date(2026, 2, 28))
	require.NoError(t, err)

	assert.True(t, bs.TotalAssets.Equal(dec("28000.00")), "got %s", bs.TotalAssets)
	assert.True(t, bs.TotalLiabilities.IsZero())
	assert.True(t, bs.NetIncome.Equal(dec("18000.00")), "got %s", bs.NetIncome)
	assert.True(t, bs.TotalEquity.Equal(dec("28000.00")), "equity includes net income plug, got %s", bs.TotalEquity)
	assert.True(t, bs.Balanced, "assets must equal liabilities plus equity")
	assert.True(t, bs.TotalAssets.Round(2).Equal(bs.TotalLiabilities.Add(bs.TotalEquity).Round(2)))
}

func TestBuildBalanceSheet_CurrentVsNonCurrent(t *testing.T) {
	entries := []model.Entry{
		postedEntry("2026-01-001", date(2026, 1, 2), "1010", "3010", "9000.00"),
		postedEntry("2026-01-002", date(2026, 1, 3), "1500", "1010", "4000.00"),
		postedEntry("2026-01-003", date(2026, 1, 4), "1010", "2500", "6000.00"),
		postedEntry("2026-01-004", date(2026, 1, 5), "5020", "2010", "100.00"),
	}

	bs, err := BuildBalanceSheet(testAccounts(), entries, date(2026, 1, 31))
	require.NoError(t, err)

	require.Len(t, bs.CurrentAssets.Lines, 1)
	assert.Equal(t, "1010", bs.CurrentAssets.Lines[0].Code)
	assert.True(t, bs.CurrentAssets.Total.Equal(dec("11000.00")), "got %s", bs.CurrentAssets.Total)

	require.Len(t, bs.NonCurrentAssets.Lines, 1)
	assert.Equal(t, "1500", bs.NonCurrentAssets.Lines[0].Code)
	assert.True(t, bs.NonCurrentAssets.Total.Equal(dec("4000.00")))

	require.Len(t, bs.CurrentLiabilities.Lines, 1)
	assert.Equal(t, "2010", bs.CurrentLiabilities.Lines[0].Code)
	require.Len(t, bs.LongTermLiabilities.Lines, 1)
	assert.Equal(t, "2500", bs.LongTermLiabilities.Lines[0].Code)

	assert.True(t, bs.Balanced)
}

func TestBuildBalanceSheet_SubAccountRollUp(t *testing.T) {
	accounts := []model.Account{
		{Code: "1010", Name: "Business Checking", Type: model.AccountTypeAsset, Category: model.CategoryBank},
		{Code: "1011", Name: "Payroll Sub", Type: model.AccountTypeAsset, Category: model.CategoryBank, ParentCode: "1010"},
		{Code: "3010", Name: "Owner's Equity", Type: model.AccountTypeEquity, Category: model.CategoryOwnersEquity},
	}
	entries := []model.Entry{
		postedEntry("2026-01-001", date(2026, 1, 2), "1010", "3010", "800.00"),
		postedEntry("2026-01-002", date(2026, 1, 3), "1011", "3010", "200.00"),
	}

	bs, err := BuildBalanceSheet(accounts, entries, date(2026, 1, 31))
	require.NoError(t, err)

	require.Len(t, bs.CurrentAssets.Lines, 1, "sub-account folds into its parent line")
	assert.Equal(t, "1010", bs.CurrentAssets.Lines[0].Code)
	assert.True(t, bs.CurrentAssets.Lines[0].Balance.Equal(dec("1000.00")))
	assert.True(t, bs.Balanced)
}

func TestBuildBalanceSheet_NetIncomeRollsForwardAllHistory(t *testing.T) {
	entries := []model.Entry{
		postedEntry("2025-11-001", date(2025, 11, 5), "1010", "4001", "1000.00"),
		postedEntry("2026-02-001", date(2026, 2, 5), "1010", "4001", "500.00"),
	}

	// As of February, the plug covers November's income too; otherwise the
	// sheet would not balance.
	bs, err := BuildBalanceSheet(testAccounts(), entries, date(2026, 2, 28))
	require.NoError(t, err)
	assert.True(t, bs.NetIncome.Equal(dec("1500.00")), "got %s", bs.NetIncome)
	assert.True(t, bs.Balanced)
}

func TestBuildBalanceSheet_EmptyAccounts(t *testing.T) {
	_, err := BuildBalanceSheet(nil, nil, date(2026, 2, 28))
	assert.ErrorContains(t, err, "no accounts")
}
