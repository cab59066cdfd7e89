package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/clearbooks-dev/clearbooks/internal/books"
	"github.com/clearbooks-dev/clearbooks/internal/importer"
	"github.com/clearbooks-dev/clearbooks/internal/reconcile"
	"github.com/clearbooks-dev/clearbooks/internal/runlog"
)

func newReconcileCommand() *cobra.Command {
	var account string
	var file string
	var format string
	var opening string
	var closing string

	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Reconcile a bank statement against the journal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			openingBal, err := decimal.NewFromString(opening)
			if err != nil {
				return fmt.Errorf("parsing --opening-balance: %w", err)
			}
			var closingBal *decimal.Decimal
			if closing != "" {
				d, err := decimal.NewFromString(closing)
				if err != nil {
					return fmt.Errorf("parsing --closing-balance: %w", err)
				}
				closingBal = &d
			}
			return runReconcile(cmd, booksRoot(cmd), account, file, format, openingBal, closingBal)
		},
	}

	cmd.Flags().String("dir", ".", "books repository directory")
	cmd.Flags().StringVar(&account, "account", "", "bank account code (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&file, "file", "", "statement CSV path (required)")
	_ = cmd.MarkFlagRequired("file")
	cmd.Flags().StringVar(&format, "format", "", "statement format, defaults to the account's configured format")
	cmd.Flags().StringVar(&opening, "opening-balance", "0", "statement opening balance")
	cmd.Flags().StringVar(&closing, "closing-balance", "", "statement closing balance, defaults to opening plus activity")

	return cmd
}

func runReconcile(cmd *cobra.Command, dir, account, file, format string, opening decimal.Decimal, closing *decimal.Decimal) error {
	svc, err := books.Open(dir)
	if err != nil {
		return err
	}
	if format == "" {
		ba, ok := svc.Config.BankAccountByCode(account)
		if !ok {
			return fmt.Errorf("account %s has no configured bank format; pass --format", account)
		}
		format = ba.Format
	}

	bankTxns, err := importer.DefaultRegistry().ParseFile(file, format)
	if err != nil {
		return err
	}
	stmt, err := importer.BuildStatement(account, bankTxns, opening)
	if err != nil {
		return err
	}
	if closing != nil {
		stmt.ClosingBalance = *closing
	}

	run, err := svc.ReconcileStatement(stmt)
	if err != nil {
		return err
	}
	rep := run.Report()
	renderReconcileReport(cmd.OutOrStdout(), rep)

	return runlog.Append(dir, []runlog.Record{{
		Timestamp:  time.Now().UTC(),
		Action:     runlog.ActionReconcile,
		Details:    fmt.Sprintf("Reconciled account %s: %d matched, %d unmatched, discrepancy %s", account, rep.MatchedCount, len(rep.UnmatchedTransactions), money(rep.Discrepancy)),
		SourceFile: file,
		EntryCount: rep.MatchedCount,
	}})
}

func renderReconcileReport(w io.Writer, rep reconcile.Report) {
	fmt.Fprintf(w, "Reconciliation for account %s\n", rep.BankAccountCode)
	fmt.Fprintf(w, "Opening %s, closing %s\n\n", money(rep.OpeningBalance), money(rep.ClosingBalance))
	fmt.Fprintf(w, "Matched: %d transactions totaling %s\n", rep.MatchedCount, money(rep.MatchedTotal))

	if len(rep.UnmatchedTransactions) > 0 {
		fmt.Fprintf(w, "\nUnmatched bank transactions:\n")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, u := range rep.UnmatchedTransactions {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n",
				u.Transaction.Date.Format(dateLayout), u.Transaction.Description, money(u.Transaction.Amount))
			for _, cand := range u.Candidates {
				fmt.Fprintf(tw, "    candidate %s\t%s\t%s\n", cand.ID, cand.Description, money(cand.Amount))
			}
		}
		tw.Flush()
	}

	if len(rep.UnmatchedEntries) > 0 {
		fmt.Fprintf(w, "\nJournal lines with no bank activity:\n")
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		for _, e := range rep.UnmatchedEntries {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", e.ID, e.Date.Format(dateLayout), e.Description, money(e.Amount))
		}
		tw.Flush()
	}

	if rep.Discrepancy.IsZero() {
		fmt.Fprintln(w, "\nNo discrepancy.")
	} else {
		fmt.Fprintf(w, "\nDiscrepancy: %s\n", money(rep.Discrepancy))
	}
}
