package accounts

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

const (
	numFields   = 8
	colCode     = 0
	colName     = 1
	colType     = 2
	colCategory = 3
	colParent   = 4
	colCurrency = 5
	colTaxLine  = 6
	colDesc     = 7
)

// ReadAccounts reads chart-of-accounts.csv.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading accounts CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var accounts []model.Account
	for i, rec := range records[1:] {
		acct, err := UnmarshalAccount(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		accounts = append(accounts, acct)
	}
	return accounts, nil
}

// WriteAccounts writes chart-of-accounts.csv.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"code", "name", "type", "category", "parent_code", "currency", "tax_line", "description"}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, acct := range accounts {
		if err := cw.Write(MarshalAccount(acct)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalAccount converts an Account to a CSV row.
func MarshalAccount(acct model.Account) []string {
	row := make([]string, numFields)
	row[colCode] = acct.Code
	row[colName] = acct.Name
	row[colType] = string(acct.Type)
	row[colCategory] = string(acct.Category)
	row[colParent] = acct.ParentCode
	row[colCurrency] = acct.Currency
	row[colTaxLine] = acct.TaxLine
	row[colDesc] = acct.Description
	return row
}

// UnmarshalAccount converts a CSV row to an Account.
func UnmarshalAccount(record []string) (model.Account, error) {
	if len(record) != numFields {
		return model.Account{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	if record[colCode] == "" {
		return model.Account{}, fmt.Errorf("empty account code")
	}

	return model.Account{
		Code:        record[colCode],
		Name:        record[colName],
		Type:        model.AccountType(record[colType]),
		Category:    model.AccountCategory(record[colCategory]),
		ParentCode:  record[colParent],
		Currency:    record[colCurrency],
		TaxLine:     record[colTaxLine],
		Description: record[colDesc],
	}, nil
}
