package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/id"
	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// Header is the CSV header for journal.csv. One row per entry line; rows of
// the same entry share the number prefix and carry 'a', 'b', ... suffixes.
const Header = "line_id,date,account_code,account_name,description,debit,credit,reference,status"

const (
	numFields   = 9
	dateFormat  = "2006-01-02"
	colLineID   = 0
	colDate     = 1
	colAcctCode = 2
	colAcctName = 3
	colDesc     = 4
	colDebit    = 5
	colCredit   = 6
	colRef      = 7
	colStatus   = 8
)

// ReadEntries reads a journal.csv reader and groups rows back into entries.
func ReadEntries(r io.Reader) ([]model.Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading journal CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.Entry
	byNumber := make(map[string]int)
	for i, rec := range records[1:] {
		number, line, err := unmarshalRow(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		idx, seen := byNumber[number]
		if !seen {
			date, derr := time.Parse(dateFormat, rec[colDate])
			if derr != nil {
				return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[colDate], derr)
			}
			entries = append(entries, model.Entry{
				Number:      number,
				Date:        date,
				Description: rec[colDesc],
				Reference:   rec[colRef],
				Status:      model.EntryStatus(rec[colStatus]),
			})
			idx = len(entries) - 1
			byNumber[number] = idx
		}
		entries[idx].Lines = append(entries[idx].Lines, line)
	}
	return entries, nil
}

// WriteEntries writes entries to a journal.csv writer (including header).
func WriteEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	return writeRows(cw, entries)
}

// AppendEntries appends entry rows to an existing journal.csv writer (no header).
func AppendEntries(w io.Writer, entries []model.Entry) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()
	return writeRows(cw, entries)
}

func writeRows(cw *csv.Writer, entries []model.Entry) error {
	for _, e := range entries {
		for i, line := range e.Lines {
			if err := cw.Write(marshalRow(e, i, line)); err != nil {
				return fmt.Errorf("writing entry %s line %d: %w", e.Number, i+1, err)
			}
		}
	}
	return cw.Error()
}

func marshalRow(e model.Entry, lineIdx int, line model.EntryLine) []string {
	row := make([]string, numFields)
	row[colLineID] = id.FormatLineID(e.Number, lineIdx)
	row[colDate] = e.Date.Format(dateFormat)
	row[colAcctCode] = line.AccountCode
	row[colAcctName] = line.AccountName
	if line.Description != "" {
		row[colDesc] = line.Description
	} else {
		row[colDesc] = e.Description
	}

	if !line.Debit.IsZero() {
		row[colDebit] = line.Debit.StringFixed(2)
	}
	if !line.Credit.IsZero() {
		row[colCredit] = line.Credit.StringFixed(2)
	}

	row[colRef] = e.Reference
	row[colStatus] = string(e.Status)
	return row
}

func unmarshalRow(record []string) (string, model.EntryLine, error) {
	if len(record) != numFields {
		return "", model.EntryLine{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	number := id.EntryGroup(record[colLineID])
	if number == "" {
		return "", model.EntryLine{}, fmt.Errorf("empty line_id")
	}

	var debit, credit decimal.Decimal
	var err error
	if record[colDebit] != "" {
		debit, err = decimal.NewFromString(record[colDebit])
		if err != nil {
			return "", model.EntryLine{}, fmt.Errorf("parsing debit %q: %w", record[colDebit], err)
		}
	}
	if record[colCredit] != "" {
		credit, err = decimal.NewFromString(record[colCredit])
		if err != nil {
			return "", model.EntryLine{}, fmt.Errorf("parsing credit %q: %w", record[colCredit], err)
		}
	}

	return number, model.EntryLine{
		AccountCode: record[colAcctCode],
		AccountName: record[colAcctName],
		Description: record[colDesc],
		Debit:       debit,
		Credit:      credit,
	}, nil
}
