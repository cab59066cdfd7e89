package accounts

import "github.com/clearbooks-dev/clearbooks/internal/model"

// DefaultChart returns the default chart of accounts for an entity type.
func DefaultChart(entityType string) []model.Account {
	switch entityType {
	case "llc_single_member":
		return llcSingleMemberChart()
	default:
		return llcSingleMemberChart()
	}
}

func llcSingleMemberChart() []model.Account {
	return []model.Account{
		{Code: "1001", Name: "Cash on Hand", Type: model.AccountTypeAsset, Category: model.CategoryCash},
		{Code: "1010", Name: "Business Checking", Type: model.AccountTypeAsset, Category: model.CategoryBank, Description: "Primary checking account"},
		{Code: "1020", Name: "Business Savings", Type: model.AccountTypeAsset, Category: model.CategoryBank, Description: "Savings account"},
		{Code: "1200", Name: "Accounts Receivable", Type: model.AccountTypeAsset, Category: model.CategoryReceivable},
		{Code: "1500", Name: "Equipment", Type: model.AccountTypeAsset, Category: model.CategoryFixedAsset, Description: "Computers and office equipment"},
		{Code: "2010", Name: "Credit Card", Type: model.AccountTypeLiability, Category: model.CategoryCreditCard, Description: "Business credit card"},
		{Code: "2100", Name: "Accounts Payable", Type: model.AccountTypeLiability, Category: model.CategoryPayable},
		{Code: "2500", Name: "Term Loan", Type: model.AccountTypeLiability, Category: model.CategoryLongTermDebt},
		{Code: "3010", Name: "Owner's Equity", Type: model.AccountTypeEquity, Category: model.CategoryOwnersEquity, Description: "Owner's equity"},
		{Code: "3020", Name: "Retained Earnings", Type: model.AccountTypeEquity, Category: model.CategoryRetainedEarnings},
		{Code: "4010", Name: "Service Revenue", Type: model.AccountTypeRevenue, Category: model.CategoryServiceRevenue},
		{Code: "4020", Name: "Product Revenue", Type: model.AccountTypeRevenue, Category: model.CategorySales},
		{Code: "4900", Name: "Other Income", Type: model.AccountTypeRevenue, Category: model.CategoryOtherIncome},
		{Code: "5000", Name: "Cost of Goods Sold", Type: model.AccountTypeExpense, Category: model.CategoryCOGS},
		{Code: "5010", Name: "Advertising & Marketing", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense, TaxLine: "schedule_c_8", Description: "Advertising costs"},
		{Code: "5020", Name: "Software & SaaS", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense, TaxLine: "schedule_c_18", Description: "Software subscriptions"},
		{Code: "5030", Name: "Office Supplies", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense, TaxLine: "schedule_c_18", Description: "Office supplies and expenses"},
		{Code: "5040", Name: "Professional Services", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense, TaxLine: "schedule_c_17", Description: "Legal, accounting, consulting"},
		{Code: "5050", Name: "Rent", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
		{Code: "5060", Name: "Utilities", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
		{Code: "5900", Name: "Other Expenses", Type: model.AccountTypeExpense, Category: model.CategoryOtherExpense},
		{Code: "5950", Name: "Income Tax", Type: model.AccountTypeExpense, Category: model.CategoryIncomeTax},
	}
}

// DefaultCategoryAccounts maps transaction categories to account codes for
// the default chart. The journal builder consults this mapping when turning
// raw transactions into entries.
func DefaultCategoryAccounts() map[string]string {
	return map[string]string{
		"service_income": "4010",
		"product_income": "4020",
		"other_income":   "4900",
		"cogs":           "5000",
		"advertising":    "5010",
		"software":       "5020",
		"office":         "5030",
		"professional":   "5040",
		"rent":           "5050",
		"utilities":      "5060",
		"other":          "5900",
		"tax":            "5950",
	}
}
