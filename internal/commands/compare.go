package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/clearbooks-dev/clearbooks/internal/books"
	"github.com/clearbooks-dev/clearbooks/internal/compare"
)

func newCompareCommand() *cobra.Command {
	var preset string
	var kind string

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare a report across two periods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			period, err := comparePeriod(cmd, preset)
			if err != nil {
				return err
			}
			svc, err := books.Open(booksRoot(cmd))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			switch kind {
			case "tb":
				c, err := svc.CompareTrialBalance(period)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "Trial Balance Comparison")
				renderComparisonRows(out, period, c.Accounts)
			case "bs":
				c, err := svc.CompareBalanceSheet(period)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "Balance Sheet Comparison")
				renderComparisonRows(out, period, c.Accounts)
				renderComparisonLine(out, "Total Assets", c.TotalAssets)
				renderComparisonLine(out, "Total Liabilities", c.TotalLiabilities)
				renderComparisonLine(out, "Total Equity", c.TotalEquity)
			case "pl":
				c, err := svc.CompareProfitAndLoss(period)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, "Profit and Loss Comparison")
				renderComparisonRows(out, period, c.Accounts)
				renderComparisonLine(out, "Revenue", c.Revenue)
				renderComparisonLine(out, "Gross Profit", c.GrossProfit)
				renderComparisonLine(out, "Operating Income", c.OperatingIncome)
				renderComparisonLine(out, "Net Income", c.NetIncome)
			default:
				return fmt.Errorf("unknown report type %q (want tb, bs, or pl)", kind)
			}
			return nil
		},
	}

	cmd.Flags().String("dir", ".", "books repository directory")
	cmd.Flags().StringVar(&kind, "report", "pl", "report to compare: tb, bs, or pl")
	cmd.Flags().StringVar(&preset, "preset", "month-over-month", "month-over-month, quarter-over-quarter, or year-over-year")
	cmd.Flags().String("current-start", "", "explicit current period start (YYYY-MM-DD)")
	cmd.Flags().String("current-end", "", "explicit current period end (YYYY-MM-DD)")
	cmd.Flags().String("previous-start", "", "explicit previous period start (YYYY-MM-DD)")
	cmd.Flags().String("previous-end", "", "explicit previous period end (YYYY-MM-DD)")

	return cmd
}

// comparePeriod resolves either the four explicit date flags or the preset.
func comparePeriod(cmd *cobra.Command, preset string) (compare.Period, error) {
	cs, err := parseDateFlag(cmd, "current-start")
	if err != nil {
		return compare.Period{}, err
	}
	if !cs.IsZero() {
		ce, err := parseDateFlag(cmd, "current-end")
		if err != nil {
			return compare.Period{}, err
		}
		ps, err := parseDateFlag(cmd, "previous-start")
		if err != nil {
			return compare.Period{}, err
		}
		pe, err := parseDateFlag(cmd, "previous-end")
		if err != nil {
			return compare.Period{}, err
		}
		period := compare.Period{
			CurrentStart: cs, CurrentEnd: ce,
			PreviousStart: ps, PreviousEnd: pe,
		}
		return period, period.Validate()
	}
	return compare.Preset(preset, time.Now())
}

func renderComparisonRows(w io.Writer, period compare.Period, rows []compare.AccountComparison) {
	fmt.Fprintf(w, "Current %s to %s, previous %s to %s\n\n",
		period.CurrentStart.Format(dateLayout), period.CurrentEnd.Format(dateLayout),
		period.PreviousStart.Format(dateLayout), period.PreviousEnd.Format(dateLayout))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Code\tAccount\tCurrent\tPrevious\tChange\tChange %\t")
	for _, row := range rows {
		pct := "n/a"
		if row.ChangePercent != nil {
			pct = row.ChangePercent.StringFixed(2) + "%"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			row.Code, row.Name, money(row.Current), money(row.Previous),
			money(row.Change), pct, row.Direction)
	}
	tw.Flush()
}

func renderComparisonLine(w io.Writer, label string, c compare.AccountComparison) {
	pct := "n/a"
	if c.ChangePercent != nil {
		pct = c.ChangePercent.StringFixed(2) + "%"
	}
	fmt.Fprintf(w, "%s: %s (was %s, %s, %s)\n",
		label, money(c.Current), money(c.Previous), pct, c.Direction)
}
