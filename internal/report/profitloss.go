package report

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// ProfitAndLossLine is one revenue or expense account's amount for the period.
type ProfitAndLossLine struct {
	Code   string
	Name   string
	Amount decimal.Decimal
}

// ProfitAndLossSection groups accounts by nature.
type ProfitAndLossSection struct {
	Label string
	Lines []ProfitAndLossLine
	Total decimal.Decimal
}

// ProfitAndLoss is the staged income statement for a period. Each stage is
// computed from the previous stage's output with one rounding per stage, so
// rounding never drifts across stages.
type ProfitAndLoss struct {
	Start             time.Time
	End               time.Time
	Revenue           ProfitAndLossSection
	CostOfGoodsSold   ProfitAndLossSection
	OperatingExpenses ProfitAndLossSection
	OtherIncome       ProfitAndLossSection
	OtherExpenses     ProfitAndLossSection
	IncomeTax         ProfitAndLossSection
	GrossProfit       decimal.Decimal
	OperatingIncome   decimal.Decimal
	IncomeBeforeTax   decimal.Decimal
	NetIncome         decimal.Decimal
}

// BuildProfitAndLoss aggregates posted entries dated within [start, end]
// (inclusive) into the staged income statement.
func BuildProfitAndLoss(accounts []model.Account, entries []model.Entry, start, end time.Time) (ProfitAndLoss, error) {
	if start.IsZero() || end.IsZero() {
		return ProfitAndLoss{}, fmt.Errorf("profit and loss requires both start and end dates")
	}
	if end.Before(start) {
		return ProfitAndLoss{}, fmt.Errorf("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	byCode, err := indexAccounts(accounts)
	if err != nil {
		return ProfitAndLoss{}, err
	}
	sums, err := collectActivity(byCode, entries, start, end)
	if err != nil {
		return ProfitAndLoss{}, err
	}

	pl := ProfitAndLoss{
		Start:             start,
		End:               end,
		Revenue:           ProfitAndLossSection{Label: "Revenue", Total: decimal.Zero},
		CostOfGoodsSold:   ProfitAndLossSection{Label: "Cost of Goods Sold", Total: decimal.Zero},
		OperatingExpenses: ProfitAndLossSection{Label: "Operating Expenses", Total: decimal.Zero},
		OtherIncome:       ProfitAndLossSection{Label: "Other Income", Total: decimal.Zero},
		OtherExpenses:     ProfitAndLossSection{Label: "Other Expenses", Total: decimal.Zero},
		IncomeTax:         ProfitAndLossSection{Label: "Income Tax", Total: decimal.Zero},
	}

	for _, a := range accounts {
		sum, ok := sums[a.Code]
		if !ok || !sum.touched() {
			continue
		}
		section := pl.sectionFor(a)
		if section == nil {
			continue // balance sheet accounts
		}
		line := ProfitAndLossLine{Code: a.Code, Name: a.Name, Amount: sum.signed(a.Type)}
		section.Lines = append(section.Lines, line)
		section.Total = section.Total.Add(line.Amount)
	}

	for _, section := range []*ProfitAndLossSection{
		&pl.Revenue, &pl.CostOfGoodsSold, &pl.OperatingExpenses,
		&pl.OtherIncome, &pl.OtherExpenses, &pl.IncomeTax,
	} {
		sort.Slice(section.Lines, func(i, j int) bool { return section.Lines[i].Code < section.Lines[j].Code })
	}

	// Staged subtotals, one rounding per stage.
	pl.GrossProfit = pl.Revenue.Total.Sub(pl.CostOfGoodsSold.Total).Round(2)
	pl.OperatingIncome = pl.GrossProfit.Sub(pl.OperatingExpenses.Total).Round(2)
	pl.IncomeBeforeTax = pl.OperatingIncome.Add(pl.OtherIncome.Total).Sub(pl.OtherExpenses.Total).Round(2)
	pl.NetIncome = pl.IncomeBeforeTax.Sub(pl.IncomeTax.Total).Round(2)
	return pl, nil
}

func (pl *ProfitAndLoss) sectionFor(a model.Account) *ProfitAndLossSection {
	switch a.Type {
	case model.AccountTypeRevenue:
		if a.Category == model.CategoryOtherIncome {
			return &pl.OtherIncome
		}
		return &pl.Revenue
	case model.AccountTypeExpense:
		switch a.Category {
		case model.CategoryCOGS:
			return &pl.CostOfGoodsSold
		case model.CategoryOtherExpense:
			return &pl.OtherExpenses
		case model.CategoryIncomeTax:
			return &pl.IncomeTax
		default:
			return &pl.OperatingExpenses
		}
	}
	return nil
}
