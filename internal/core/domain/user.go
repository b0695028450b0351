package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// User models a registered customer. PasswordHash is part of the persisted
// document but must never appear in API responses or logs; the transport
// layer maps users to response types that omit it.
type User struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	PasswordHash   string          `json:"password"`
	RegisteredAt   time.Time       `json:"registeredAt"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	TotalPurchases int             `json:"totalPurchases"`
}

// ApplyPurchase folds a committed purchase into the user's running totals.
// Must be called exactly once per purchase, inside the same store update
// that appends the purchase record.
func (u *User) ApplyPurchase(p *Purchase) {
	u.TotalSpent = u.TotalSpent.Add(p.TotalAmount)
	u.TotalPurchases++
}
