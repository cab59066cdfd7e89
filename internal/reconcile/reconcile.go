// Package reconcile matches imported bank statement transactions against
// candidate journal entries. Matching is tiered by confidence: exact amount
// and date, exact amount within a date window, then amount within tolerance
// inside the window. A transaction with more than one candidate at its best
// tier is left unmatched with every candidate listed for manual review.
package reconcile

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// Confidence grades how a match was found.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// MatchStatus tracks review state for a proposed match.
type MatchStatus string

const (
	StatusMatched  MatchStatus = "matched"
	StatusRejected MatchStatus = "rejected"
)

// Options tune the matching tiers.
type Options struct {
	// DateWindowDays bounds how far a candidate's date may drift from the
	// bank transaction's date for medium and low confidence matches.
	DateWindowDays int
	// AmountTolerance bounds the amount difference for low confidence
	// matches, covering fees and rounding on either side.
	AmountTolerance decimal.Decimal
}

// DefaultOptions returns the matching parameters used when the books carry
// no reconcile configuration.
func DefaultOptions() Options {
	return Options{
		DateWindowDays:  3,
		AmountTolerance: decimal.NewFromFloat(0.01),
	}
}

// CandidateEntry is a journal-side candidate for matching. Amount carries
// the same sign convention as bank transactions: positive for money in,
// negative for money out.
type CandidateEntry struct {
	ID          string
	Date        time.Time
	Description string
	Amount      decimal.Decimal
	Reference   string
}

// Match pairs a bank transaction with a candidate entry.
type Match struct {
	ID                string
	BankTransactionID string
	CandidateID       string
	Confidence        Confidence
	Status            MatchStatus
}

// UnmatchedTransaction is a bank transaction the engine could not resolve,
// with the candidates it considered. An empty candidate list means nothing
// plausible was found; two or more means the match was ambiguous.
type UnmatchedTransaction struct {
	Transaction model.BankTransaction
	Candidates  []CandidateEntry
}

// Run holds the working state of one reconciliation pass over a statement.
type Run struct {
	statement model.BankStatement
	opts      Options

	candidates map[string]CandidateEntry
	pool       map[string]CandidateEntry
	matches    []Match
	unmatched  []UnmatchedTransaction
	resolved   map[string]bool
}

// NewRun prepares a reconciliation of statement against candidates. The
// candidate slice is copied into an internal pool; each candidate can back
// at most one match.
func NewRun(statement model.BankStatement, candidates []CandidateEntry, opts Options) (*Run, error) {
	if opts.DateWindowDays < 0 {
		return nil, fmt.Errorf("date window must not be negative, got %d", opts.DateWindowDays)
	}
	if opts.AmountTolerance.IsNegative() {
		return nil, fmt.Errorf("amount tolerance must not be negative, got %s", opts.AmountTolerance)
	}
	all := make(map[string]CandidateEntry, len(candidates))
	pool := make(map[string]CandidateEntry, len(candidates))
	for _, c := range candidates {
		if _, ok := all[c.ID]; ok {
			return nil, fmt.Errorf("duplicate candidate entry %s", c.ID)
		}
		all[c.ID] = c
		pool[c.ID] = c
	}
	return &Run{
		statement:  statement,
		opts:       opts,
		candidates: all,
		pool:       pool,
		resolved:   make(map[string]bool),
	}, nil
}

// Reconcile runs the automatic matching pass. Transactions are processed in
// date order so results are stable regardless of statement file ordering.
func (r *Run) Reconcile() {
	txns := make([]model.BankTransaction, len(r.statement.Transactions))
	copy(txns, r.statement.Transactions)
	sort.SliceStable(txns, func(i, j int) bool {
		if !txns[i].Date.Equal(txns[j].Date) {
			return txns[i].Date.Before(txns[j].Date)
		}
		return txns[i].ID < txns[j].ID
	})

	for _, txn := range txns {
		if r.resolved[txn.ID] {
			continue
		}
		candidates, confidence := r.bestTier(txn)
		switch len(candidates) {
		case 0:
			r.unmatched = append(r.unmatched, UnmatchedTransaction{Transaction: txn})
		case 1:
			r.accept(txn.ID, candidates[0].ID, confidence)
		default:
			// Ambiguous. Leave the pool untouched so a later manual
			// decision can pick any of the candidates.
			r.unmatched = append(r.unmatched, UnmatchedTransaction{
				Transaction: txn,
				Candidates:  candidates,
			})
		}
	}
}

// bestTier returns the candidates at the highest confidence tier that has
// any, searching high to low.
func (r *Run) bestTier(txn model.BankTransaction) ([]CandidateEntry, Confidence) {
	if c := r.collect(txn, func(cand CandidateEntry) bool {
		return cand.Amount.Equal(txn.Amount) && sameDay(cand.Date, txn.Date)
	}); len(c) > 0 {
		return c, ConfidenceHigh
	}
	if c := r.collect(txn, func(cand CandidateEntry) bool {
		return cand.Amount.Equal(txn.Amount) && r.withinWindow(cand.Date, txn.Date)
	}); len(c) > 0 {
		return c, ConfidenceMedium
	}
	if c := r.collect(txn, func(cand CandidateEntry) bool {
		diff := cand.Amount.Sub(txn.Amount).Abs()
		return diff.LessThanOrEqual(r.opts.AmountTolerance) && r.withinWindow(cand.Date, txn.Date)
	}); len(c) > 0 {
		return c, ConfidenceLow
	}
	return nil, ""
}

func (r *Run) collect(txn model.BankTransaction, keep func(CandidateEntry) bool) []CandidateEntry {
	var out []CandidateEntry
	for _, cand := range r.pool {
		if keep(cand) {
			out = append(out, cand)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Run) withinWindow(a, b time.Time) bool {
	days := daysBetween(a, b)
	if days < 0 {
		days = -days
	}
	return days <= r.opts.DateWindowDays
}

func (r *Run) accept(txnID, candidateID string, confidence Confidence) {
	r.matches = append(r.matches, Match{
		ID:                uuid.New().String(),
		BankTransactionID: txnID,
		CandidateID:       candidateID,
		Confidence:        confidence,
		Status:            StatusMatched,
	})
	delete(r.pool, candidateID)
	r.resolved[txnID] = true
}

// MatchTransaction records a manual match between a bank transaction and a
// candidate, resolving an ambiguity or a transaction the automatic pass
// could not place.
func (r *Run) MatchTransaction(txnID, candidateID string) (Match, error) {
	if r.resolved[txnID] {
		return Match{}, fmt.Errorf("bank transaction %s is already matched", txnID)
	}
	txn, ok := r.findTransaction(txnID)
	if !ok {
		return Match{}, fmt.Errorf("bank transaction %s is not on this statement", txnID)
	}
	if _, ok := r.pool[candidateID]; !ok {
		return Match{}, fmt.Errorf("candidate entry %s is not available", candidateID)
	}
	r.dropUnmatched(txn.ID)
	// A human decision outranks any heuristic tier.
	r.accept(txn.ID, candidateID, ConfidenceHigh)
	return r.matches[len(r.matches)-1], nil
}

// RejectMatch undoes a match, returning its candidate to the pool and the
// bank transaction to the unmatched list.
func (r *Run) RejectMatch(matchID string) error {
	for i := range r.matches {
		m := &r.matches[i]
		if m.ID != matchID {
			continue
		}
		if m.Status == StatusRejected {
			return fmt.Errorf("match %s is already rejected", matchID)
		}
		m.Status = StatusRejected
		delete(r.resolved, m.BankTransactionID)
		if txn, ok := r.findTransaction(m.BankTransactionID); ok {
			r.unmatched = append(r.unmatched, UnmatchedTransaction{Transaction: txn})
		}
		// The candidate id stays on the rejected match for the audit
		// trail, but the entry is matchable again.
		if cand, ok := r.candidates[m.CandidateID]; ok {
			r.pool[cand.ID] = cand
		}
		return nil
	}
	return fmt.Errorf("no match with id %s", matchID)
}

func (r *Run) findTransaction(id string) (model.BankTransaction, bool) {
	for _, txn := range r.statement.Transactions {
		if txn.ID == id {
			return txn, true
		}
	}
	return model.BankTransaction{}, false
}

func (r *Run) dropUnmatched(txnID string) {
	for i, u := range r.unmatched {
		if u.Transaction.ID == txnID {
			r.unmatched = append(r.unmatched[:i], r.unmatched[i+1:]...)
			return
		}
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func daysBetween(a, b time.Time) int {
	au := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	bu := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(au.Sub(bu).Hours() / 24)
}
