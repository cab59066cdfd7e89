package compare

import (
	"github.com/clearbooks-dev/clearbooks/internal/model"
	"github.com/clearbooks-dev/clearbooks/internal/report"
)

// TrialBalanceComparison pairs two trial balance snapshots with per-account
// variance of net balances (signed on each account's normal side).
type TrialBalanceComparison struct {
	Period   Period
	Current  report.TrialBalance
	Previous report.TrialBalance
	Accounts []AccountComparison
	Totals   AccountComparison
}

// TrialBalance builds trial balances as of each period's end and compares them.
func TrialBalance(accounts []model.Account, entries []model.Entry, period Period) (TrialBalanceComparison, error) {
	if err := period.Validate(); err != nil {
		return TrialBalanceComparison{}, err
	}

	current, err := report.BuildTrialBalance(accounts, entries, period.CurrentEnd)
	if err != nil {
		return TrialBalanceComparison{}, err
	}
	previous, err := report.BuildTrialBalance(accounts, entries, period.PreviousEnd)
	if err != nil {
		return TrialBalanceComparison{}, err
	}

	return TrialBalanceComparison{
		Period:   period,
		Current:  current,
		Previous: previous,
		Accounts: merge(tbSides(current), tbSides(previous)),
		Totals:   newComparison("", "Total Debits", current.TotalDebit, previous.TotalDebit),
	}, nil
}

func tbSides(tb report.TrialBalance) map[string]side {
	sides := make(map[string]side, len(tb.Rows))
	for _, row := range tb.Rows {
		value := row.Debit.Sub(row.Credit)
		if !row.Type.NormalDebit() {
			value = value.Neg()
		}
		sides[row.Code] = side{name: row.Name, value: value}
	}
	return sides
}

// BalanceSheetComparison pairs two balance sheet snapshots with per-account
// variance of rolled-up balances plus the headline totals.
type BalanceSheetComparison struct {
	Period           Period
	Current          report.BalanceSheet
	Previous         report.BalanceSheet
	Accounts         []AccountComparison
	TotalAssets      AccountComparison
	TotalLiabilities AccountComparison
	TotalEquity      AccountComparison
}

// BalanceSheet builds balance sheets as of each period's end and compares them.
func BalanceSheet(accounts []model.Account, entries []model.Entry, period Period) (BalanceSheetComparison, error) {
	if err := period.Validate(); err != nil {
		return BalanceSheetComparison{}, err
	}

	current, err := report.BuildBalanceSheet(accounts, entries, period.CurrentEnd)
	if err != nil {
		return BalanceSheetComparison{}, err
	}
	previous, err := report.BuildBalanceSheet(accounts, entries, period.PreviousEnd)
	if err != nil {
		return BalanceSheetComparison{}, err
	}

	return BalanceSheetComparison{
		Period:           period,
		Current:          current,
		Previous:         previous,
		Accounts:         merge(bsSides(current), bsSides(previous)),
		TotalAssets:      newComparison("", "Total Assets", current.TotalAssets, previous.TotalAssets),
		TotalLiabilities: newComparison("", "Total Liabilities", current.TotalLiabilities, previous.TotalLiabilities),
		TotalEquity:      newComparison("", "Total Equity", current.TotalEquity, previous.TotalEquity),
	}, nil
}

func bsSides(bs report.BalanceSheet) map[string]side {
	sides := make(map[string]side)
	for _, section := range []report.BalanceSheetSection{
		bs.CurrentAssets, bs.NonCurrentAssets,
		bs.CurrentLiabilities, bs.LongTermLiabilities,
		bs.Equity,
	} {
		for _, line := range section.Lines {
			sides[line.Code] = side{name: line.Name, value: line.Balance}
		}
	}
	return sides
}

// ProfitAndLossComparison pairs two income statements with per-account
// variance and the staged subtotal movements.
type ProfitAndLossComparison struct {
	Period          Period
	Current         report.ProfitAndLoss
	Previous        report.ProfitAndLoss
	Accounts        []AccountComparison
	Revenue         AccountComparison
	GrossProfit     AccountComparison
	OperatingIncome AccountComparison
	NetIncome       AccountComparison
}

// ProfitAndLoss builds income statements over each period's range and
// compares them.
func ProfitAndLoss(accounts []model.Account, entries []model.Entry, period Period) (ProfitAndLossComparison, error) {
	if err := period.Validate(); err != nil {
		return ProfitAndLossComparison{}, err
	}

	current, err := report.BuildProfitAndLoss(accounts, entries, period.CurrentStart, period.CurrentEnd)
	if err != nil {
		return ProfitAndLossComparison{}, err
	}
	previous, err := report.BuildProfitAndLoss(accounts, entries, period.PreviousStart, period.PreviousEnd)
	if err != nil {
		return ProfitAndLossComparison{}, err
	}

	return ProfitAndLossComparison{
		Period:          period,
		Current:         current,
		Previous:        previous,
		Accounts:        merge(plSides(current), plSides(previous)),
		Revenue:         newComparison("", "Revenue", current.Revenue.Total, previous.Revenue.Total),
		GrossProfit:     newComparison("", "Gross Profit", current.GrossProfit, previous.GrossProfit),
		OperatingIncome: newComparison("", "Operating Income", current.OperatingIncome, previous.OperatingIncome),
		NetIncome:       newComparison("", "Net Income", current.NetIncome, previous.NetIncome),
	}, nil
}

func plSides(pl report.ProfitAndLoss) map[string]side {
	sides := make(map[string]side)
	for _, section := range []report.ProfitAndLossSection{
		pl.Revenue, pl.CostOfGoodsSold, pl.OperatingExpenses,
		pl.OtherIncome, pl.OtherExpenses, pl.IncomeTax,
	} {
		for _, line := range section.Lines {
			sides[line.Code] = side{name: line.Name, value: line.Amount}
		}
	}
	return sides
}
