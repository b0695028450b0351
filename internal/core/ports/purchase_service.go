package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
)

// PurchaseItemInput is one requested (product, quantity) pair, in order.
type PurchaseItemInput struct {
	ProductID int64
	Quantity  int
}

// CreatePurchaseInput carries all data needed to process an order.
type CreatePurchaseInput struct {
	UserID int64
	Items  []PurchaseItemInput
	// IdempotencyKey, when non-empty, makes a retried request return the
	// originally committed purchase instead of charging twice.
	IdempotencyKey string
}

// UserStats is the aggregate view returned by GetUserStats. LastPurchase is
// nil when the user has no purchases yet.
type UserStats struct {
	TotalPurchases int
	TotalSpent     decimal.Decimal
	TotalItems     int
	MemberSince    time.Time
	LastPurchase   *time.Time
}

// PurchaseService defines the purchase engine use cases.
type PurchaseService interface {
	CreatePurchase(ctx context.Context, input CreatePurchaseInput) (*domain.Purchase, error)
	ListUserPurchases(ctx context.Context, userID int64) ([]*domain.Purchase, error)
	GetUserStats(ctx context.Context, userID int64) (*UserStats, error)
}

// PurchaseDeduper abstracts the idempotency store (Redis). Seen reports
// whether the key was already committed and, if so, the purchase id it
// produced.
type PurchaseDeduper interface {
	Seen(ctx context.Context, userID int64, key string) (int64, bool, error)
	Mark(ctx context.Context, userID int64, key string, purchaseID int64) error
}
