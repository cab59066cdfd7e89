package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/clearbooks-dev/clearbooks/internal/books"
	"github.com/clearbooks-dev/clearbooks/internal/gitops"
	"github.com/clearbooks-dev/clearbooks/internal/importer"
	"github.com/clearbooks-dev/clearbooks/internal/journal"
	"github.com/clearbooks-dev/clearbooks/internal/model"
	"github.com/clearbooks-dev/clearbooks/internal/runlog"
)

func newImportCommand() *cobra.Command {
	var account string
	var format string
	var opening string
	var incomeCategory string
	var expenseCategory string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import bank CSVs from import/ and journalize them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			openingBal, err := decimal.NewFromString(opening)
			if err != nil {
				return fmt.Errorf("parsing --opening-balance: %w", err)
			}
			return runImport(booksRoot(cmd), account, format, incomeCategory, expenseCategory, openingBal)
		},
	}

	cmd.Flags().String("dir", ".", "books repository directory")
	cmd.Flags().StringVar(&account, "account", "", "bank account code to book against (required)")
	_ = cmd.MarkFlagRequired("account")
	cmd.Flags().StringVar(&format, "format", "", "statement format, defaults to the account's configured format")
	cmd.Flags().StringVar(&opening, "opening-balance", "0", "statement opening balance")
	cmd.Flags().StringVar(&incomeCategory, "income-category", "service_income", "category for deposits")
	cmd.Flags().StringVar(&expenseCategory, "expense-category", "other", "category for withdrawals")

	return cmd
}

func runImport(dir, account, format, incomeCategory, expenseCategory string, opening decimal.Decimal) error {
	svc, err := books.Open(dir)
	if err != nil {
		return err
	}
	if !svc.Accounts.Exists(account) {
		return fmt.Errorf("account %s not in chart", account)
	}
	if format == "" {
		ba, ok := svc.Config.BankAccountByCode(account)
		if !ok {
			return fmt.Errorf("account %s has no configured bank format; pass --format", account)
		}
		format = ba.Format
	}

	files, err := importer.Scan(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("Nothing to import.")
		return nil
	}

	categories := svc.Config.CategoryAccounts
	builder, err := journal.NewBuilder(svc.Accounts, journal.BuildOptions{
		DepositAccount:   account,
		PaymentAccount:   account,
		CategoryAccounts: categories,
	})
	if err != nil {
		return err
	}

	registry := importer.DefaultRegistry()
	for _, file := range files {
		if err := importFile(dir, svc, builder, registry, file, account, format, incomeCategory, expenseCategory, opening); err != nil {
			return fmt.Errorf("%s: %w", file.Name, err)
		}
	}
	return nil
}

func importFile(dir string, svc *books.Service, builder *journal.Builder, registry *importer.Registry,
	file importer.FileInfo, account, format, incomeCategory, expenseCategory string, opening decimal.Decimal) error {

	bankTxns, err := registry.ParseFile(file.Path, format)
	if err != nil {
		return err
	}
	if len(bankTxns) == 0 {
		fmt.Printf("%s: empty, skipping\n", file.Name)
		return importer.MarkProcessed(dir, file.Name)
	}

	stmt, err := importer.BuildStatement(account, bankTxns, opening)
	if err != nil {
		return err
	}
	txns := importer.ToTransactions(stmt, func(bt model.BankTransaction) string {
		if bt.Amount.IsNegative() {
			return expenseCategory
		}
		return incomeCategory
	})

	entries, buildErrs := builder.Generate(txns)
	for _, be := range buildErrs {
		fmt.Printf("  skipped: %s\n", be.Error())
	}

	written, err := svc.Journal.Append(entries)
	if err != nil {
		return err
	}
	if err := importer.MarkProcessed(dir, file.Name); err != nil {
		return err
	}

	records := []runlog.Record{{
		Timestamp:  time.Now().UTC(),
		Action:     runlog.ActionImport,
		Details:    fmt.Sprintf("Imported %s into account %s", file.Name, account),
		SourceFile: file.Name,
		EntryCount: len(written),
	}}
	for _, be := range buildErrs {
		records = append(records, runlog.Record{
			Timestamp:  time.Now().UTC(),
			Action:     runlog.ActionDataError,
			Details:    be.Error(),
			SourceFile: file.Name,
		})
	}

	if svc.Config.Git.AutoCommit && gitops.IsRepo(dir) {
		hash, err := gitops.CommitAll(dir, "import: "+file.Name,
			svc.Config.Git.AuthorName, svc.Config.Git.AuthorEmail)
		if err != nil {
			return fmt.Errorf("committing import: %w", err)
		}
		for i := range records {
			records[i].CommitHash = hash
		}
	}
	if err := runlog.Append(dir, records); err != nil {
		return err
	}

	fmt.Printf("%s: %d entries (%d skipped)\n", file.Name, len(written), len(buildErrs))
	return nil
}
