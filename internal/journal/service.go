package journal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/clearbooks-dev/clearbooks/internal/id"
	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// Service reads and appends journal files under <booksRoot>/YYYY/MM/journal.csv.
type Service struct {
	booksRoot string
	accounts  AccountChecker
}

// NewService creates a journal Service.
func NewService(booksRoot string, accounts AccountChecker) *Service {
	return &Service{booksRoot: booksRoot, accounts: accounts}
}

// Append validates entries together with the already-stored ones and appends
// them to their month files. Entry numbers are reassigned to continue each
// month's sequence, preserving input order.
func (s *Service) Append(entries []model.Entry) ([]model.Entry, error) {
	if len(entries) == 0 {
		return nil, nil
	}

	// Renumber per month, continuing from what is on disk.
	nextSeq := make(map[string]int)
	renumbered := make([]model.Entry, len(entries))
	for i, e := range entries {
		key := e.Date.Format("2006-01")
		if _, ok := nextSeq[key]; !ok {
			seq, err := s.NextEntrySeq(e.Date.Year(), int(e.Date.Month()))
			if err != nil {
				return nil, err
			}
			nextSeq[key] = seq
		}
		e.Number = id.FormatEntryNumber(e.Date.Year(), int(e.Date.Month()), nextSeq[key])
		nextSeq[key]++
		renumbered[i] = e
	}

	// Validate each affected month as a whole before touching any file.
	byMonth := make(map[string][]model.Entry)
	var months []string
	for _, e := range renumbered {
		key := e.Date.Format("2006-01")
		if _, seen := byMonth[key]; !seen {
			months = append(months, key)
		}
		byMonth[key] = append(byMonth[key], e)
	}
	sort.Strings(months)

	for _, key := range months {
		existing, err := s.ReadMonth(parseMonthKey(key))
		if err != nil {
			return nil, err
		}
		all := append(existing, byMonth[key]...)
		if verrs := ValidateEntries(all, s.accounts); len(verrs) > 0 {
			msgs := make([]string, len(verrs))
			for i, ve := range verrs {
				msgs[i] = ve.Error()
			}
			return nil, fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
		}
	}

	for _, key := range months {
		if err := s.appendMonth(key, byMonth[key]); err != nil {
			return nil, err
		}
	}
	return renumbered, nil
}

func (s *Service) appendMonth(monthKey string, entries []model.Entry) error {
	year, month := parseMonthKey(monthKey)
	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating journal dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening journal: %w", err)
	}
	defer f.Close()

	if isNew {
		if _, err := fmt.Fprintln(f, Header); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	if err := AppendEntries(f, entries); err != nil {
		return fmt.Errorf("appending entries: %w", err)
	}
	return nil
}

// ReadMonth reads all entries for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.Entry, error) {
	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening journal %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f)
	if err != nil {
		return nil, fmt.Errorf("reading journal %s: %w", path, err)
	}
	return entries, nil
}

// ReadAll reads every journal file under the books root, ordered by entry
// number.
func (s *Service) ReadAll() ([]model.Entry, error) {
	pattern := filepath.Join(s.booksRoot, "*", "*", "journal.csv")
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("globbing journals: %w", err)
	}
	sort.Strings(paths)

	var all []model.Entry
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening journal %s: %w", path, err)
		}
		entries, err := ReadEntries(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("reading journal %s: %w", path, err)
		}
		all = append(all, entries...)
	}
	sort.SliceStable(all, func(i, j int) bool { return id.Less(all[i].Number, all[j].Number) })
	return all, nil
}

// NextEntrySeq returns the next available sequence number for a month.
func (s *Service) NextEntrySeq(year, month int) (int, error) {
	entries, err := s.ReadMonth(year, month)
	if err != nil {
		return 0, err
	}

	maxSeq := 0
	for _, e := range entries {
		_, _, seq, err := id.ParseEntryNumber(e.Number)
		if err != nil {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.booksRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "journal.csv")
}

func parseMonthKey(key string) (year, month int) {
	fmt.Sscanf(key, "%d-%d", &year, &month)
	return year, month
}
