package domain

import "github.com/shopspring/decimal"

func init() {
	// Money serializes as a plain JSON number, matching the layout of the
	// persisted document and the API contract.
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is a catalog entry. Stock is the only field that changes at
// runtime, and only by the purchase engine decrementing it; products are
// never deleted.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Emoji       string          `json:"emoji"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}
