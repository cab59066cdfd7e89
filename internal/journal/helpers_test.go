package journal

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

// mockChart implements AccountLookup and AccountChecker over a fixed set.
type mockChart struct {
	accounts map[string]model.Account
}

func newMockChart(accts ...model.Account) *mockChart {
	m := &mockChart{accounts: make(map[string]model.Account)}
	for _, a := range accts {
		m.accounts[a.Code] = a
	}
	return m
}

func (m *mockChart) Get(code string) (model.Account, bool) {
	a, ok := m.accounts[code]
	return a, ok
}

func (m *mockChart) Exists(code string) bool {
	_, ok := m.accounts[code]
	return ok
}

func testChart() *mockChart {
	return newMockChart(
		model.Account{Code: "1010", Name: "Business Checking", Type: model.AccountTypeAsset, Category: model.CategoryBank},
		model.Account{Code: "4010", Name: "Service Revenue", Type: model.AccountTypeRevenue, Category: model.CategoryServiceRevenue},
		model.Account{Code: "5020", Name: "Software & SaaS", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
		model.Account{Code: "5050", Name: "Rent", Type: model.AccountTypeExpense, Category: model.CategoryOperatingExpense},
	)
}

func testMapping() map[string]string {
	return map[string]string{
		"service_income": "4010",
		"software":       "5020",
		"rent":           "5050",
	}
}
