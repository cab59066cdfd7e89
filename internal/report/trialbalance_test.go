package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

func TestBuildTrialBalance_SingleSale(t *testing.T) {
	accounts := []model.Account{
		{Code: "1001", Name: "Cash", Type: model.AccountTypeAsset, Category: model.CategoryCash},
		{Code: "4001", Name: "Sales", Type: model.AccountTypeRevenue, Category: model.CategorySales},
	}
	entries := []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 10), "1001", "4001", "15000.00"),
	}

	tb, err := BuildTrialBalance(accounts, entries, date(2026, 2, 28))
	require.NoError(t, err)

	assert.True(t, tb.TotalDebit.Equal(dec("15000.00")), "got %s", tb.TotalDebit)
	assert.True(t, tb.TotalCredit.Equal(dec("15000.00")), "got %s", tb.TotalCredit)
	assert.True(t, tb.Balanced)

	require.Len(t, tb.Rows, 2)
	assert.Equal(t, "1001", tb.Rows[0].Code)
	assert.True(t, tb.Rows[0].Debit.Equal(dec("15000.00")))
	assert.True(t, tb.Rows[0].Credit.IsZero())
	assert.Equal(t, "4001", tb.Rows[1].Code)
	assert.True(t, tb.Rows[1].Credit.Equal(dec("15000.00")))
}

func TestBuildTrialBalance_BalancedIffTotalsEqual(t *testing.T) {
	tb, err := BuildTrialBalance(testAccounts(), []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 1), "1010", "4001", "23000.00"),
		postedEntry("2026-02-002", date(2026, 2, 3), "5050", "1010", "5000.00"),
	}, date(2026, 2, 28))
	require.NoError(t, err)
	assert.Equal(t, tb.TotalDebit.Round(2).Equal(tb.TotalCredit.Round(2)), tb.Balanced)
	assert.True(t, tb.Balanced)
}

func TestBuildTrialBalance_AsOfCutoff(t *testing.T) {
	entries := []model.Entry{
		postedEntry("2026-01-001", date(2026, 1, 15), "1010", "4001", "100.00"),
		postedEntry("2026-02-001", date(2026, 2, 15), "1010", "4001", "900.00"),
	}

	tb, err := BuildTrialBalance(testAccounts(), entries, date(2026, 1, 31))
	require.NoError(t, err)
	assert.True(t, tb.TotalDebit.Equal(dec("100.00")), "February entry must be excluded, got %s", tb.TotalDebit)
}

func TestBuildTrialBalance_IgnoresDrafts(t *testing.T) {
	draft := postedEntry("2026-02-002", date(2026, 2, 12), "1010", "4001", "500.00")
	draft.Status = model.StatusDraft

	tb, err := BuildTrialBalance(testAccounts(), []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 10), "1010", "4001", "100.00"),
		draft,
	}, date(2026, 2, 28))
	require.NoError(t, err)
	assert.True(t, tb.TotalDebit.Equal(dec("100.00")))
}

func TestBuildTrialBalance_ExcludesZeroActivityAccounts(t *testing.T) {
	tb, err := BuildTrialBalance(testAccounts(), []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 10), "1010", "4001", "100.00"),
	}, date(2026, 2, 28))
	require.NoError(t, err)
	require.Len(t, tb.Rows, 2, "only touched accounts appear")
}

func TestBuildTrialBalance_WrongSideBalanceReportedAsIs(t *testing.T) {
	// Credit the checking account past zero: an asset netting on the credit side.
	tb, err := BuildTrialBalance(testAccounts(), []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 1), "5050", "1010", "250.00"),
	}, date(2026, 2, 28))
	require.NoError(t, err)

	var checking TrialBalanceRow
	for _, row := range tb.Rows {
		if row.Code == "1010" {
			checking = row
		}
	}
	assert.True(t, checking.Credit.Equal(dec("250.00")), "overdrawn asset stays on the credit side")
	assert.True(t, checking.Debit.IsZero())
	assert.True(t, tb.Balanced)
}

func TestBuildTrialBalance_Deterministic(t *testing.T) {
	entries := []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 1), "1010", "4001", "23000.00"),
		postedEntry("2026-02-002", date(2026, 2, 3), "5050", "1010", "5000.00"),
	}
	first, err := BuildTrialBalance(testAccounts(), entries, date(2026, 2, 28))
	require.NoError(t, err)
	second, err := BuildTrialBalance(testAccounts(), entries, date(2026, 2, 28))
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestBuildTrialBalance_Errors(t *testing.T) {
	_, err := BuildTrialBalance(nil, nil, date(2026, 2, 28))
	assert.ErrorContains(t, err, "no accounts")

	// Unknown account aborts with an integrity error.
	_, err = BuildTrialBalance(testAccounts(), []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 10), "9999", "4001", "100.00"),
	}, date(2026, 2, 28))
	var ierr IntegrityError
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Detail, "unknown account 9999")

	// Unbalanced posted entry aborts too.
	bad := model.Entry{
		Number: "2026-02-001",
		Date:   date(2026, 2, 10),
		Status: model.StatusPosted,
		Lines: []model.EntryLine{
			{AccountCode: "1010", Debit: dec("100.00")},
			{AccountCode: "4001", Credit: dec("90.00")},
		},
	}
	_, err = BuildTrialBalance(testAccounts(), []model.Entry{bad}, date(2026, 2, 28))
	require.ErrorAs(t, err, &ierr)
	assert.Contains(t, ierr.Detail, "unbalanced")
}
