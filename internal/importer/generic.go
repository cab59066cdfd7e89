package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/clearbooks-dev/clearbooks/internal/model"
)

// GenericParser parses a plain date,description,amount CSV with a header
// row and ISO dates. It covers banks without a dedicated parser.
type GenericParser struct{}

const (
	genericNumFields = 3
	genericColDate   = 0
	genericColDesc   = 1
	genericColAmount = 2
)

func (p *GenericParser) Format() string { return "generic" }

func (p *GenericParser) Parse(r io.Reader) ([]model.BankTransaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = genericNumFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading generic CSV: %w", err)
	}
	if len(records) <= 1 {
		return nil, nil
	}

	var txns []model.BankTransaction
	for i, rec := range records[1:] {
		date, err := time.Parse("2006-01-02", rec[genericColDate])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing date %q: %w", i+2, rec[genericColDate], err)
		}
		amount, err := decimal.NewFromString(rec[genericColAmount])
		if err != nil {
			return nil, fmt.Errorf("row %d: parsing amount %q: %w", i+2, rec[genericColAmount], err)
		}
		desc := rec[genericColDesc]
		txns = append(txns, model.BankTransaction{
			Date:        date,
			Description: desc,
			Amount:      amount,
			Reference:   bankRef("generic", date, desc),
		})
	}
	return txns, nil
}
