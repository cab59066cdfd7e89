package journal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

func balancedEntry(number string) model.Entry {
	return model.Entry{
		Number: number,
		Date:   date(2026, 2, 10),
		Lines: []model.EntryLine{
			{AccountCode: "1010", Debit: dec("100.00")},
			{AccountCode: "4010", Credit: dec("100.00")},
		},
		Status: model.StatusPosted,
	}
}

func TestValidateEntries_Clean(t *testing.T) {
	entries := []model.Entry{balancedEntry("2026-02-001"), balancedEntry("2026-02-002")}
	errs := ValidateEntries(entries, testChart())
	assert.Empty(t, errs)
}

func TestValidateEntries_Unbalanced(t *testing.T) {
	e := model.Entry{
		Number: "2026-02-001",
		Date:   date(2026, 2, 10),
		Lines: []model.EntryLine{
			{AccountCode: "1010", Debit: dec("100.00")},
			{AccountCode: "4010", Credit: dec("90.00")},
		},
	}
	errs := ValidateEntries([]model.Entry{e}, testChart())
	require.Len(t, errs, 1)
	assert.Equal(t, 1, errs[0].Invariant)
	assert.Contains(t, errs[0].Description, "debits (100.00) != credits (90.00)")
}

func TestValidateEntries_BothSidesSet(t *testing.T) {
	e := balancedEntry("2026-02-001")
	e.Lines[0].Credit = dec("100.00") // now both sides non-zero

	errs := ValidateEntries([]model.Entry{e}, testChart())
	require.NotEmpty(t, errs)
	found := false
	for _, ve := range errs {
		if ve.Invariant == 2 {
			found = true
			assert.Contains(t, ve.Description, "exactly one of debit or credit")
		}
	}
	assert.True(t, found)
}

func TestValidateEntries_BothSidesZero(t *testing.T) {
	e := balancedEntry("2026-02-001")
	e.Lines = append(e.Lines, model.EntryLine{AccountCode: "1010"})

	errs := ValidateEntries([]model.Entry{e}, testChart())
	require.NotEmpty(t, errs)
	assert.Equal(t, 2, errs[0].Invariant)
}

func TestValidateEntries_NegativeAmount(t *testing.T) {
	e := model.Entry{
		Number: "2026-02-001",
		Date:   date(2026, 2, 10),
		Lines: []model.EntryLine{
			{AccountCode: "1010", Debit: dec("-100.00")},
			{AccountCode: "4010", Credit: dec("-100.00")},
		},
	}
	errs := ValidateEntries([]model.Entry{e}, testChart())
	require.NotEmpty(t, errs)
	hasNegative := false
	for _, ve := range errs {
		if ve.Invariant == 2 && ve.Description == "line 1 has a negative amount" {
			hasNegative = true
		}
	}
	assert.True(t, hasNegative)
}

func TestValidateEntries_UnknownAccount(t *testing.T) {
	e := balancedEntry("2026-02-001")
	e.Lines[1].AccountCode = "9999"

	errs := ValidateEntries([]model.Entry{e}, testChart())
	require.Len(t, errs, 1)
	assert.Equal(t, 3, errs[0].Invariant)
	assert.Contains(t, errs[0].Description, "unknown account 9999")
}

func TestValidateEntries_TooManyDecimalPlaces(t *testing.T) {
	e := model.Entry{
		Number: "2026-02-001",
		Date:   date(2026, 2, 10),
		Lines: []model.EntryLine{
			{AccountCode: "1010", Debit: dec("100.001")},
			{AccountCode: "4010", Credit: dec("100.001")},
		},
	}
	errs := ValidateEntries([]model.Entry{e}, testChart())
	require.Len(t, errs, 2)
	assert.Equal(t, 4, errs[0].Invariant)
	assert.Equal(t, 4, errs[1].Invariant)
}

func TestValidateEntries_DuplicateNumbers(t *testing.T) {
	entries := []model.Entry{balancedEntry("2026-02-001"), balancedEntry("2026-02-001")}
	errs := ValidateEntries(entries, testChart())
	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Invariant)
	assert.Contains(t, errs[0].Description, "duplicate entry number")
}

func TestValidateEntries_MalformedNumber(t *testing.T) {
	e := balancedEntry("not-a-number")
	errs := ValidateEntries([]model.Entry{e}, testChart())
	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Invariant)
}
