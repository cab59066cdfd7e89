package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

func TestBuildGeneralLedgers_RunningBalance(t *testing.T) {
	entries := []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 1), "1010", "4001", "23000.00"),
		postedEntry("2026-02-002", date(2026, 2, 3), "5050", "1010", "5000.00"),
		postedEntry("2026-02-003", date(2026, 2, 7), "5020", "1010", "2000.00"),
	}

	ledgers, err := BuildGeneralLedgers(testAccounts(), entries)
	require.NoError(t, err)
	require.Len(t, ledgers, 4, "one ledger per account with activity")

	var checking GeneralLedger
	for _, gl := range ledgers {
		if gl.AccountCode == "1010" {
			checking = gl
		}
	}
	require.Len(t, checking.Postings, 3)
	assert.True(t, checking.OpeningBalance.IsZero())
	assert.True(t, checking.Postings[0].Balance.Equal(dec("23000.00")))
	assert.True(t, checking.Postings[1].Balance.Equal(dec("18000.00")))
	assert.True(t, checking.Postings[2].Balance.Equal(dec("16000.00")))
	assert.True(t, checking.ClosingBalance.Equal(dec("16000.00")))
}

func TestBuildGeneralLedgers_CreditNormalAccount(t *testing.T) {
	entries := []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 1), "1010", "4001", "100.00"),
		postedEntry("2026-02-002", date(2026, 2, 2), "1010", "4001", "50.00"),
	}

	ledgers, err := BuildGeneralLedgers(testAccounts(), entries)
	require.NoError(t, err)

	var sales GeneralLedger
	for _, gl := range ledgers {
		if gl.AccountCode == "4001" {
			sales = gl
		}
	}
	// Revenue grows on the credit side.
	assert.True(t, sales.Postings[0].Balance.Equal(dec("100.00")))
	assert.True(t, sales.ClosingBalance.Equal(dec("150.00")))
}

func TestBuildGeneralLedgers_SameDateOrdersByEntryNumber(t *testing.T) {
	// Deliberately supply out of order.
	entries := []model.Entry{
		postedEntry("2026-02-002", date(2026, 2, 5), "1010", "4001", "20.00"),
		postedEntry("2026-02-001", date(2026, 2, 5), "1010", "4001", "10.00"),
	}

	ledgers, err := BuildGeneralLedgers(testAccounts(), entries)
	require.NoError(t, err)

	var checking GeneralLedger
	for _, gl := range ledgers {
		if gl.AccountCode == "1010" {
			checking = gl
		}
	}
	require.Len(t, checking.Postings, 2)
	assert.Equal(t, "2026-02-001", checking.Postings[0].EntryNumber)
	assert.Equal(t, "2026-02-002", checking.Postings[1].EntryNumber)
	assert.True(t, checking.Postings[0].Balance.Equal(dec("10.00")))
	assert.True(t, checking.Postings[1].Balance.Equal(dec("30.00")))
}

func TestBuildGeneralLedgers_SkipsInactiveAccountsAndDrafts(t *testing.T) {
	draft := postedEntry("2026-02-002", date(2026, 2, 2), "5050", "1010", "999.00")
	draft.Status = model.StatusDraft

	ledgers, err := BuildGeneralLedgers(testAccounts(), []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 1), "1010", "4001", "100.00"),
		draft,
	})
	require.NoError(t, err)
	require.Len(t, ledgers, 2)
	assert.Equal(t, "1010", ledgers[0].AccountCode)
	assert.Equal(t, "4001", ledgers[1].AccountCode)
}

func TestBuildGeneralLedgers_Errors(t *testing.T) {
	_, err := BuildGeneralLedgers(nil, nil)
	assert.ErrorContains(t, err, "no accounts")

	_, err = BuildGeneralLedgers(testAccounts(), []model.Entry{
		postedEntry("2026-02-001", date(2026, 2, 1), "9999", "4001", "100.00"),
	})
	var ierr IntegrityError
	require.ErrorAs(t, err, &ierr)
}
