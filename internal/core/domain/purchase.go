package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// StatusCompleted is the only purchase status in the current design:
// purchases are recorded atomically at commit time and never mutated after.
const StatusCompleted = "completed"

// PurchaseItem is one line of a purchase. Name, price and emoji are captured
// from the product at transaction time, so later catalog edits never change
// recorded history.
type PurchaseItem struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Emoji       string          `json:"emoji"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

// Purchase is an append-only record of a committed order.
type Purchase struct {
	ID           int64           `json:"id"`
	UserID       int64           `json:"userId"`
	Items        []PurchaseItem  `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
	PurchaseDate time.Time       `json:"purchaseDate"`
	Status       string          `json:"status"`
}

// TotalQuantity returns the number of units across all line items.
func (p *Purchase) TotalQuantity() int {
	n := 0
	for _, item := range p.Items {
		n += item.Quantity
	}
	return n
}
