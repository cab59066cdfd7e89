package report

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// BalanceSheetLine is one account (with sub-accounts folded in) and its
// signed balance.
type BalanceSheetLine struct {
	Code    string
	Name    string
	Balance decimal.Decimal
}

// BalanceSheetSection contains the lines and total for one classification.
type BalanceSheetSection struct {
	Label string
	Lines []BalanceSheetLine
	Total decimal.Decimal
}

// BalanceSheet is the point-in-time statement of financial position.
type BalanceSheet struct {
	AsOf                time.Time
	CurrentAssets       BalanceSheetSection
	NonCurrentAssets    BalanceSheetSection
	CurrentLiabilities  BalanceSheetSection
	LongTermLiabilities BalanceSheetSection
	Equity              BalanceSheetSection
	// NetIncome is revenue minus expenses over all posted history up to
	// AsOf, folded into equity so the sheet balances. Folding full history
	// (not just a current period) keeps the equation holding for every
	// asOf without a separate closing-entry process.
	NetIncome        decimal.Decimal
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	TotalEquity      decimal.Decimal
	Balanced         bool
}

// BuildBalanceSheet partitions asset and liability balances into current and
// non-current sections by category, lists equity flat, and checks
// assets == liabilities + equity at currency precision. Sub-account balances
// roll up into their parent's line. A zero asOf means now.
func BuildBalanceSheet(accounts []model.Account, entries []model.Entry, asOf time.Time) (BalanceSheet, error) {
	if asOf.IsZero() {
		asOf = time.Now()
	}

	byCode, err := indexAccounts(accounts)
	if err != nil {
		return BalanceSheet{}, err
	}
	sums, err := collectActivity(byCode, entries, time.Time{}, asOf)
	if err != nil {
		return BalanceSheet{}, err
	}

	bs := BalanceSheet{
		AsOf:                asOf,
		CurrentAssets:       BalanceSheetSection{Label: "Current Assets", Total: decimal.Zero},
		NonCurrentAssets:    BalanceSheetSection{Label: "Non-Current Assets", Total: decimal.Zero},
		CurrentLiabilities:  BalanceSheetSection{Label: "Current Liabilities", Total: decimal.Zero},
		LongTermLiabilities: BalanceSheetSection{Label: "Long-Term Liabilities", Total: decimal.Zero},
		Equity:              BalanceSheetSection{Label: "Equity", Total: decimal.Zero},
		TotalAssets:         decimal.Zero,
		TotalLiabilities:    decimal.Zero,
		TotalEquity:         decimal.Zero,
	}

	for _, line := range rollUp(accounts, sums) {
		acct := byCode[line.Code]
		switch acct.Type {
		case model.AccountTypeAsset:
			if acct.Category.Current() {
				appendLine(&bs.CurrentAssets, line)
			} else {
				appendLine(&bs.NonCurrentAssets, line)
			}
			bs.TotalAssets = bs.TotalAssets.Add(line.Balance)
		case model.AccountTypeLiability:
			if acct.Category.Current() {
				appendLine(&bs.CurrentLiabilities, line)
			} else {
				appendLine(&bs.LongTermLiabilities, line)
			}
			bs.TotalLiabilities = bs.TotalLiabilities.Add(line.Balance)
		case model.AccountTypeEquity:
			appendLine(&bs.Equity, line)
			bs.TotalEquity = bs.TotalEquity.Add(line.Balance)
		}
	}

	bs.NetIncome = netIncome(accounts, sums)
	bs.TotalEquity = bs.TotalEquity.Add(bs.NetIncome)
	bs.Balanced = bs.TotalAssets.Round(2).Equal(bs.TotalLiabilities.Add(bs.TotalEquity).Round(2))
	return bs, nil
}

func appendLine(section *BalanceSheetSection, line BalanceSheetLine) {
	section.Lines = append(section.Lines, line)
	section.Total = section.Total.Add(line.Balance)
}

// rollUp turns account activity into one line per top-level account, with
// each sub-account's signed balance folded into its parent. The model never
// pre-sums hierarchies; this is where aggregation happens.
func rollUp(accounts []model.Account, sums map[string]activity) []BalanceSheetLine {
	topOf := make(map[string]string, len(accounts))
	byCode := make(map[string]model.Account, len(accounts))
	for _, a := range accounts {
		byCode[a.Code] = a
	}
	var top func(code string) string
	top = func(code string) string {
		if t, ok := topOf[code]; ok {
			return t
		}
		a := byCode[code]
		t := code
		if a.ParentCode != "" {
			t = top(a.ParentCode)
		}
		topOf[code] = t
		return t
	}

	balances := make(map[string]decimal.Decimal)
	for _, a := range accounts {
		sum, ok := sums[a.Code]
		if !ok || !sum.touched() {
			continue
		}
		root := top(a.Code)
		cur, ok := balances[root]
		if !ok {
			cur = decimal.Zero
		}
		balances[root] = cur.Add(sum.signed(a.Type))
	}

	var lines []BalanceSheetLine
	for code, balance := range balances {
		lines = append(lines, BalanceSheetLine{Code: code, Name: byCode[code].Name, Balance: balance})
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].Code < lines[j].Code })
	return lines
}
