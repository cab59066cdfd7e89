package model

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "asset"
	AccountTypeLiability AccountType = "liability"
	AccountTypeEquity    AccountType = "equity"
	AccountTypeRevenue   AccountType = "revenue"
	AccountTypeExpense   AccountType = "expense"
)

// NormalDebit reports whether the type carries a positive balance on the
// debit side (assets and expenses) rather than the credit side.
func (t AccountType) NormalDebit() bool {
	return t == AccountTypeAsset || t == AccountTypeExpense
}

// AccountCategory refines an account type for report placement.
type AccountCategory string

const (
	CategoryCash             AccountCategory = "cash"
	CategoryBank             AccountCategory = "bank"
	CategoryReceivable       AccountCategory = "accounts_receivable"
	CategoryOtherCurrent     AccountCategory = "other_current_asset"
	CategoryFixedAsset       AccountCategory = "fixed_asset"
	CategoryPayable          AccountCategory = "accounts_payable"
	CategoryCreditCard       AccountCategory = "credit_card"
	CategoryCurrentLiability AccountCategory = "other_current_liability"
	CategoryLongTermDebt     AccountCategory = "long_term_liability"
	CategoryOwnersEquity     AccountCategory = "owners_equity"
	CategoryRetainedEarnings AccountCategory = "retained_earnings"
	CategorySales            AccountCategory = "sales"
	CategoryServiceRevenue   AccountCategory = "service_revenue"
	CategoryOtherIncome      AccountCategory = "other_income"
	CategoryCOGS             AccountCategory = "cost_of_goods_sold"
	CategoryOperatingExpense AccountCategory = "operating_expense"
	CategoryOtherExpense     AccountCategory = "other_expense"
	CategoryIncomeTax        AccountCategory = "income_tax"
)

// categoryTypes maps each category to the one account type it may appear under.
var categoryTypes = map[AccountCategory]AccountType{
	CategoryCash:             AccountTypeAsset,
	CategoryBank:             AccountTypeAsset,
	CategoryReceivable:       AccountTypeAsset,
	CategoryOtherCurrent:     AccountTypeAsset,
	CategoryFixedAsset:       AccountTypeAsset,
	CategoryPayable:          AccountTypeLiability,
	CategoryCreditCard:       AccountTypeLiability,
	CategoryCurrentLiability: AccountTypeLiability,
	CategoryLongTermDebt:     AccountTypeLiability,
	CategoryOwnersEquity:     AccountTypeEquity,
	CategoryRetainedEarnings: AccountTypeEquity,
	CategorySales:            AccountTypeRevenue,
	CategoryServiceRevenue:   AccountTypeRevenue,
	CategoryOtherIncome:      AccountTypeRevenue,
	CategoryCOGS:             AccountTypeExpense,
	CategoryOperatingExpense: AccountTypeExpense,
	CategoryOtherExpense:     AccountTypeExpense,
	CategoryIncomeTax:        AccountTypeExpense,
}

// ValidFor reports whether the category is allowed under the given type.
func (c AccountCategory) ValidFor(t AccountType) bool {
	want, ok := categoryTypes[c]
	return ok && want == t
}

// Current reports whether an asset or liability category is a current
// (short-term) classification on the balance sheet.
func (c AccountCategory) Current() bool {
	switch c {
	case CategoryCash, CategoryBank, CategoryReceivable, CategoryOtherCurrent,
		CategoryPayable, CategoryCreditCard, CategoryCurrentLiability:
		return true
	}
	return false
}

// Account represents a row in chart-of-accounts.csv.
type Account struct {
	Code        string
	Name        string
	Type        AccountType
	Category    AccountCategory
	Currency    string
	ParentCode  string // empty = top-level
	TaxLine     string
	Description string
}

// IsSubAccount reports whether the account rolls up under a parent account.
// Parent and child balances are never auto-summed here; the report builders
// aggregate hierarchies at generation time.
func (a Account) IsSubAccount() bool {
	return a.ParentCode != ""
}
