// Package runlog keeps an append-only CSV trail of import, report, and
// reconciliation runs inside a books repository.
package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Well-known actions recorded in the run log.
const (
	ActionInit      = "init"
	ActionImport    = "import"
	ActionReport    = "report"
	ActionCompare   = "compare"
	ActionReconcile = "reconcile"
	ActionDataError = "data_error"
)

// Record is one row in the run log.
type Record struct {
	Timestamp  time.Time
	Action     string
	Details    string
	SourceFile string
	EntryCount int
	CommitHash string
}

// Header is the CSV header for run-log.csv.
const Header = "timestamp,action,details,source_file,entry_count,commit_hash"

const (
	numFields     = 6
	logDir        = "logs"
	logFile       = "logs/run-log.csv"
	colTimestamp  = 0
	colAction     = 1
	colDetails    = 2
	colSourceFile = 3
	colEntryCount = 4
	colCommitHash = 5
)

// MarshalRecord converts a Record to a CSV row.
func MarshalRecord(rec Record) []string {
	row := make([]string, numFields)
	row[colTimestamp] = rec.Timestamp.Format(time.RFC3339)
	row[colAction] = rec.Action
	row[colDetails] = rec.Details
	row[colSourceFile] = rec.SourceFile
	row[colEntryCount] = fmt.Sprintf("%d", rec.EntryCount)
	row[colCommitHash] = rec.CommitHash
	return row
}

// UnmarshalRecord converts a CSV row to a Record.
func UnmarshalRecord(row []string) (Record, error) {
	if len(row) != numFields {
		return Record{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	ts, err := time.Parse(time.RFC3339, row[colTimestamp])
	if err != nil {
		return Record{}, fmt.Errorf("parsing timestamp %q: %w", row[colTimestamp], err)
	}
	var count int
	if row[colEntryCount] != "" {
		if _, err := fmt.Sscanf(row[colEntryCount], "%d", &count); err != nil {
			return Record{}, fmt.Errorf("parsing entry count %q: %w", row[colEntryCount], err)
		}
	}

	return Record{
		Timestamp:  ts,
		Action:     row[colAction],
		Details:    row[colDetails],
		SourceFile: row[colSourceFile],
		EntryCount: count,
		CommitHash: row[colCommitHash],
	}, nil
}

// Append writes records to <booksRoot>/logs/run-log.csv, creating the file
// and header if needed.
func Append(booksRoot string, records []Record) error {
	dir := filepath.Join(booksRoot, logDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating logs dir: %w", err)
	}

	path := filepath.Join(booksRoot, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for i, rec := range records {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing record %d: %w", i, err)
		}
	}
	return cw.Error()
}

// Read returns all records from <booksRoot>/logs/run-log.csv. A missing
// file reads as empty.
func Read(booksRoot string) ([]Record, error) {
	path := filepath.Join(booksRoot, logFile)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readRecords(f)
}

func readRecords(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var out []Record
	for i, row := range records[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		out = append(out, rec)
	}
	return out, nil
}
