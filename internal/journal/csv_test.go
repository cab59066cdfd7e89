package journal

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

func TestWriteReadEntries(t *testing.T) {
	entries := []model.Entry{
		{
			Number:      "2026-02-001",
			Date:        date(2026, 2, 10),
			Description: "Consulting invoice",
			Reference:   "inv-42",
			Status:      model.StatusPosted,
			Lines: []model.EntryLine{
				{AccountCode: "1010", AccountName: "Business Checking", Debit: dec("1500.00")},
				{AccountCode: "4010", AccountName: "Service Revenue", Credit: dec("1500.00")},
			},
		},
		{
			Number:      "2026-02-002",
			Date:        date(2026, 2, 12),
			Description: "Rent",
			Status:      model.StatusDraft,
			Lines: []model.EntryLine{
				{AccountCode: "5050", AccountName: "Rent", Debit: dec("5000.00")},
				{AccountCode: "1010", AccountName: "Business Checking", Credit: dec("5000.00")},
			},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, entries))

	got, err := ReadEntries(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, "2026-02-001", got[0].Number)
	assert.Equal(t, "Consulting invoice", got[0].Description)
	assert.Equal(t, "inv-42", got[0].Reference)
	assert.Equal(t, model.StatusPosted, got[0].Status)
	require.Len(t, got[0].Lines, 2)
	assert.True(t, got[0].Lines[0].Debit.Equal(dec("1500.00")))
	assert.True(t, got[0].Lines[1].Credit.Equal(dec("1500.00")))
	assert.True(t, got[0].IsBalanced())

	assert.Equal(t, model.StatusDraft, got[1].Status)
	assert.Equal(t, date(2026, 2, 12), got[1].Date)
}

func TestReadEntries_GroupsLineSuffixes(t *testing.T) {
	raw := Header + "\n" +
		"2026-02-001a,2026-02-10,1010,Business Checking,Sale,150.00,,,posted\n" +
		"2026-02-001b,2026-02-10,4010,Service Revenue,Sale,,150.00,,posted\n"

	got, err := ReadEntries(strings.NewReader(raw))
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Len(t, got[0].Lines, 2)
	assert.Equal(t, "2026-02-001", got[0].Number)
}

func TestReadEntries_BadAmount(t *testing.T) {
	raw := Header + "\n" +
		"2026-02-001a,2026-02-10,1010,Business Checking,Sale,abc,,,posted\n"

	_, err := ReadEntries(strings.NewReader(raw))
	assert.ErrorContains(t, err, "parsing debit")
}

func TestReadEntries_Empty(t *testing.T) {
	got, err := ReadEntries(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestAppendEntries_NoHeader(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, AppendEntries(&buf, []model.Entry{
		{
			Number: "2026-02-003",
			Date:   date(2026, 2, 15),
			Status: model.StatusPosted,
			Lines: []model.EntryLine{
				{AccountCode: "5020", Debit: dec("4.00")},
				{AccountCode: "1010", Credit: dec("4.00")},
			},
		},
	}))

	assert.False(t, strings.HasPrefix(buf.String(), "line_id"), "append must not repeat the header")
	assert.Contains(t, buf.String(), "2026-02-003a")
	assert.Contains(t, buf.String(), "2026-02-003b")
}
