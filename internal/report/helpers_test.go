package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func date(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func testAccounts() []model.Account {
	return []model.Account{
		{Code: "1001", Name: "Cash on Hand", Type: model.AccountTypeAsset, Category: model.CategoryCash},
		{Code: "1010", Name: "Business Checking", Type: model.AccountTypeAsset, Category: model.CategoryBank},
		{Code: "1500", Name: "Equipment", Type: model.AccountTypeAsset, Category: model.CategoryFixedAsset},
		{Code: "2010", Name: "Credit Card", Type: model.AccountTypeLiability, Category: model.CategoryCreditCard},
		{Code: "2500", Name: "Term Loan", Type: model.AccountTypeLiability, Category: model.CategoryLongTermDebt},
		{Code: "3010", Name: "Owner's Equity", Type: model.AccountTypeEquity, Category: model.CategoryOwnersEquity},
		{Code: "4001", Name: "Sales", Type: model.AccountTypeRevenue, Category: model.CategorySales},
		{Code: "4900", Name: "Other Income", Type: model.AccountTypeRevenue, Category: model.CategoryOtherIncome},
		{Code: "5000", Name: "Cost of Goods Sold", Type: model.AccountTypeExpense, Category: model.CategoryCOGS},
		{Code: "5050", Name: "Rent", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
		{Code: "5020", Name: "Software & SaaS", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
		{Code: "5060", Name: "Utilities", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
		{Code: "5900", Name: "Other Expenses", Type: model.AccountTypeExpense, Category: model.CategoryOtherExpense},
		{Code: "5950", Name: "Income Tax", Type: model.AccountTypeExpense, Category: model.CategoryIncomeTax},
	}
}

func postedEntry(number string, d time.Time, debitAcct, creditAcct, amount string) model.Entry {
	return model.Entry{
		Number: number,
		Date:   d,
		Status: model.StatusPosted,
		Lines: []model.EntryLine{
			{AccountCode: debitAcct, Debit: dec(amount)},
			{AccountCode: creditAcct, Credit: dec(amount)},
		},
	}
}
