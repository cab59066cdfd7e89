// Package compare derives period-over-period variance from two report
// snapshots of the same books.
package compare

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Direction classifies the sign of a change.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// AccountComparison is one account's movement between the two periods.
// ChangePercent is nil when the previous value is zero and the current one is
// not: there is no meaningful percentage, and reporting 0 or NaN would hide
// the movement.
type AccountComparison struct {
	Code          string
	Name          string
	Current       decimal.Decimal
	Previous      decimal.Decimal
	Change        decimal.Decimal
	ChangePercent *decimal.Decimal
	Direction     Direction
}

// side is one period's value for an account during merging.
type side struct {
	name  string
	value decimal.Decimal
}

// merge pairs current and previous per-account values into comparisons.
// Accounts present in only one period are kept with the missing side as zero
// so section totals still reconcile. Output is sorted by account code.
func merge(current, previous map[string]side) []AccountComparison {
	codes := make(map[string]bool)
	for code := range current {
		codes[code] = true
	}
	for code := range previous {
		codes[code] = true
	}

	rows := make([]AccountComparison, 0, len(codes))
	for code := range codes {
		cur, curOK := current[code]
		prev, prevOK := previous[code]
		name := cur.name
		if !curOK {
			cur.value = decimal.Zero
			name = prev.name
		}
		if !prevOK {
			prev.value = decimal.Zero
		}
		rows = append(rows, newComparison(code, name, cur.value, prev.value))
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Code < rows[j].Code })
	return rows
}

func newComparison(code, name string, current, previous decimal.Decimal) AccountComparison {
	change := current.Sub(previous)

	c := AccountComparison{
		Code:     code,
		Name:     name,
		Current:  current,
		Previous: previous,
		Change:   change,
	}

	switch {
	case change.IsPositive():
		c.Direction = DirectionUp
	case change.IsNegative():
		c.Direction = DirectionDown
	default:
		c.Direction = DirectionFlat
	}

	if previous.IsZero() {
		if current.IsZero() {
			zero := decimal.Zero
			c.ChangePercent = &zero
		}
		// Previous zero, current non-zero: percentage stays nil.
		return c
	}
	pct := change.Div(previous).Mul(decimal.NewFromInt(100)).Round(2)
	c.ChangePercent = &pct
	return c
}
