package compare

import (
	"fmt"
	"time"
)

// Period pairs a current and a previous date range for comparison.
type Period struct {
	CurrentStart  time.Time
	CurrentEnd    time.Time
	PreviousStart time.Time
	PreviousEnd   time.Time
}

// Validate fails fast on malformed ranges before any computation.
func (p Period) Validate() error {
	if p.CurrentStart.IsZero() || p.CurrentEnd.IsZero() || p.PreviousStart.IsZero() || p.PreviousEnd.IsZero() {
		return fmt.Errorf("comparison period has unset dates")
	}
	if p.CurrentEnd.Before(p.CurrentStart) {
		return fmt.Errorf("current period end %s is before start %s",
			p.CurrentEnd.Format("2006-01-02"), p.CurrentStart.Format("2006-01-02"))
	}
	if p.PreviousEnd.Before(p.PreviousStart) {
		return fmt.Errorf("previous period end %s is before start %s",
			p.PreviousEnd.Format("2006-01-02"), p.PreviousStart.Format("2006-01-02"))
	}
	return nil
}

// MonthOverMonth resolves the month containing now against the month before it.
func MonthOverMonth(now time.Time) Period {
	curStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	prevStart := curStart.AddDate(0, -1, 0)
	return Period{
		CurrentStart:  curStart,
		CurrentEnd:    curStart.AddDate(0, 1, -1),
		PreviousStart: prevStart,
		PreviousEnd:   curStart.AddDate(0, 0, -1),
	}
}

// QuarterOverQuarter resolves the calendar quarter containing now against the
// quarter before it.
func QuarterOverQuarter(now time.Time) Period {
	quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
	curStart := time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
	prevStart := curStart.AddDate(0, -3, 0)
	return Period{
		CurrentStart:  curStart,
		CurrentEnd:    curStart.AddDate(0, 3, -1),
		PreviousStart: prevStart,
		PreviousEnd:   curStart.AddDate(0, 0, -1),
	}
}

// YearOverYear resolves the calendar year containing now against the year
// before it.
func YearOverYear(now time.Time) Period {
	curStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
	return Period{
		CurrentStart:  curStart,
		CurrentEnd:    time.Date(now.Year(), 12, 31, 0, 0, 0, 0, now.Location()),
		PreviousStart: curStart.AddDate(-1, 0, 0),
		PreviousEnd:   curStart.AddDate(0, 0, -1),
	}
}

// Preset resolves a named preset relative to now.
func Preset(name string, now time.Time) (Period, error) {
	switch name {
	case "month-over-month":
		return MonthOverMonth(now), nil
	case "quarter-over-quarter":
		return QuarterOverQuarter(now), nil
	case "year-over-year":
		return YearOverYear(now), nil
	default:
		return Period{}, fmt.Errorf("unknown comparison preset %q", name)
	}
}
