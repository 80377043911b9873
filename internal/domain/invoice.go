package domain

import "github.com/shopspring/decimal"

// Invoice holds a priced booking. Total is always CostOfFlight + Tax; Tax is
// zero when the tax service could not be reached.
type Invoice struct {
	CostOfFlight decimal.Decimal
	Tax          decimal.Decimal
	Total        decimal.Decimal
}

func NewInvoice(costOfFlight, tax decimal.Decimal) Invoice {
	return Invoice{
		CostOfFlight: costOfFlight,
		Tax:          tax,
		Total:        costOfFlight.Add(tax),
	}
}
