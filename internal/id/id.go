package id

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatEntryNumber returns an entry number like "2026-02-001".
func FormatEntryNumber(year, month, seq int) string {
	return fmt.Sprintf("%04d-%02d-%03d", year, month, seq)
}

// FormatLineID returns a line ID like "2026-02-001a" (line 0='a', 1='b', etc.).
func FormatLineID(entryNumber string, line int) string {
	return entryNumber + string(rune('a'+line))
}

// ParseEntryNumber parses "2026-02-001" into year, month, seq. Any trailing
// line suffix is ignored.
func ParseEntryNumber(number string) (year, month, seq int, err error) {
	base := EntryGroup(number)

	parts := strings.SplitN(base, "-", 3)
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid entry number format: %q", number)
	}

	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid year in entry number %q: %w", number, err)
	}

	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid month in entry number %q: %w", number, err)
	}

	seq, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid sequence in entry number %q: %w", number, err)
	}

	return year, month, seq, nil
}

// EntryGroup strips the line suffix from a line ID.
// "2026-02-001a" -> "2026-02-001"
func EntryGroup(lineID string) string {
	if len(lineID) == 0 {
		return ""
	}
	i := len(lineID)
	for i > 0 && lineID[i-1] >= 'a' && lineID[i-1] <= 'z' {
		i--
	}
	return lineID[:i]
}

// Less orders entry numbers chronologically then by sequence. The zero-padded
// format makes plain string comparison correct; this names the intent.
func Less(a, b string) bool {
	return a < b
}
