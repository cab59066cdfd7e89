package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearbooks-dev/clearbooks/internal/books"
	"github.com/clearbooks-dev/clearbooks/internal/report"
)

const dateLayout = "2006-01-02"

func newReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate financial reports",
	}
	cmd.PersistentFlags().String("dir", ".", "books repository directory")

	cmd.AddCommand(newTrialBalanceCommand())
	cmd.AddCommand(newBalanceSheetCommand())
	cmd.AddCommand(newProfitLossCommand())
	cmd.AddCommand(newGeneralLedgerCommand())
	return cmd
}

func parseDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	val, _ := cmd.Flags().GetString(name)
	if val == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing --%s: %w", name, err)
	}
	return t, nil
}

func newTrialBalanceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tb",
		Short: "Trial balance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseDateFlag(cmd, "as-of")
			if err != nil {
				return err
			}
			svc, err := books.Open(booksRoot(cmd))
			if err != nil {
				return err
			}
			tb, err := svc.TrialBalance(asOf)
			if err != nil {
				return err
			}
			renderTrialBalance(cmd.OutOrStdout(), tb)
			return nil
		},
	}
	cmd.Flags().String("as-of", "", "report date (YYYY-MM-DD), defaults to today")
	return cmd
}

func newBalanceSheetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bs",
		Short: "Balance sheet",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf, err := parseDateFlag(cmd, "as-of")
			if err != nil {
				return err
			}
			svc, err := books.Open(booksRoot(cmd))
			if err != nil {
				return err
			}
			bs, err := svc.BalanceSheet(asOf)
			if err != nil {
				return err
			}
			renderBalanceSheet(cmd.OutOrStdout(), bs)
			return nil
		},
	}
	cmd.Flags().String("as-of", "", "report date (YYYY-MM-DD), defaults to today")
	return cmd
}

func newProfitLossCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pl",
		Short: "Profit and loss statement",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseDateFlag(cmd, "start")
			if err != nil {
				return err
			}
			end, err := parseDateFlag(cmd, "end")
			if err != nil {
				return err
			}
			svc, err := books.Open(booksRoot(cmd))
			if err != nil {
				return err
			}
			pl, err := svc.ProfitAndLoss(start, end)
			if err != nil {
				return err
			}
			renderProfitAndLoss(cmd.OutOrStdout(), pl)
			return nil
		},
	}
	cmd.Flags().String("start", "", "period start (YYYY-MM-DD)")
	cmd.Flags().String("end", "", "period end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")
	return cmd
}

func newGeneralLedgerCommand() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "gl",
		Short: "General ledger",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := books.Open(booksRoot(cmd))
			if err != nil {
				return err
			}
			ledgers, err := svc.GeneralLedgers()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, gl := range ledgers {
				if account != "" && gl.AccountCode != account {
					continue
				}
				renderGeneralLedger(out, gl)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&account, "account", "", "limit to one account code")
	return cmd
}

func renderTrialBalance(w io.Writer, tb report.TrialBalance) {
	fmt.Fprintf(w, "Trial Balance as of %s\n\n", tb.AsOf.Format(dateLayout))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Code\tAccount\tDebit\tCredit")
	for _, row := range tb.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			row.Code, row.Name, money(row.Debit), money(row.Credit))
	}
	fmt.Fprintf(tw, "\tTotal\t%s\t%s\n", money(tb.TotalDebit), money(tb.TotalCredit))
	tw.Flush()
	if !tb.Balanced {
		fmt.Fprintln(w, "\nWARNING: trial balance does not balance")
	}
}

func renderBalanceSheet(w io.Writer, bs report.BalanceSheet) {
	fmt.Fprintf(w, "Balance Sheet as of %s\n\n", bs.AsOf.Format(dateLayout))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, sec := range []report.BalanceSheetSection{
		bs.CurrentAssets, bs.NonCurrentAssets,
		bs.CurrentLiabilities, bs.LongTermLiabilities, bs.Equity,
	} {
		fmt.Fprintf(tw, "%s\t\t\n", sec.Label)
		for _, line := range sec.Lines {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", line.Code, line.Name, money(line.Balance))
		}
		fmt.Fprintf(tw, "  Total %s\t\t%s\n", sec.Label, money(sec.Total))
	}
	fmt.Fprintf(tw, "  Net Income\t\t%s\n", money(bs.NetIncome))
	fmt.Fprintf(tw, "\t\t\n")
	fmt.Fprintf(tw, "Total Assets\t\t%s\n", money(bs.TotalAssets))
	fmt.Fprintf(tw, "Total Liabilities\t\t%s\n", money(bs.TotalLiabilities))
	fmt.Fprintf(tw, "Total Equity\t\t%s\n", money(bs.TotalEquity))
	tw.Flush()
	if !bs.Balanced {
		fmt.Fprintln(w, "\nWARNING: assets do not equal liabilities plus equity")
	}
}

func renderProfitAndLoss(w io.Writer, pl report.ProfitAndLoss) {
	fmt.Fprintf(w, "Profit and Loss, %s to %s\n\n",
		pl.Start.Format(dateLayout), pl.End.Format(dateLayout))
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	section := func(sec report.ProfitAndLossSection) {
		if len(sec.Lines) == 0 {
			return
		}
		fmt.Fprintf(tw, "%s\t\t\n", sec.Label)
		for _, line := range sec.Lines {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", line.Code, line.Name, money(line.Amount))
		}
		fmt.Fprintf(tw, "  Total %s\t\t%s\n", sec.Label, money(sec.Total))
	}
	section(pl.Revenue)
	section(pl.CostOfGoodsSold)
	fmt.Fprintf(tw, "Gross Profit\t\t%s\n", money(pl.GrossProfit))
	section(pl.OperatingExpenses)
	fmt.Fprintf(tw, "Operating Income\t\t%s\n", money(pl.OperatingIncome))
	section(pl.OtherIncome)
	section(pl.OtherExpenses)
	fmt.Fprintf(tw, "Income Before Tax\t\t%s\n", money(pl.IncomeBeforeTax))
	section(pl.IncomeTax)
	fmt.Fprintf(tw, "Net Income\t\t%s\n", money(pl.NetIncome))
	tw.Flush()
}

func renderGeneralLedger(w io.Writer, gl report.GeneralLedger) {
	fmt.Fprintf(w, "%s %s (%s)\n", gl.AccountCode, gl.AccountName, gl.Type)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Date\tEntry\tDescription\tDebit\tCredit\tBalance")
	for _, p := range gl.Postings {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			p.Date, p.EntryNumber, p.Description,
			money(p.Debit), money(p.Credit), money(p.Balance))
	}
	tw.Flush()
	fmt.Fprintf(w, "Closing balance: %s\n\n", money(gl.ClosingBalance))
}
