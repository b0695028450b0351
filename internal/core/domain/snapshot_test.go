package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestNewSeedSnapshot(t *testing.T) {
	snap := NewSeedSnapshot()

	if len(snap.Users) != 0 || len(snap.Purchases) != 0 {
		t.Fatalf("seed must start with no users or purchases")
	}
	if len(snap.Products) != 3 {
		t.Fatalf("expected 3 seed products, got %d", len(snap.Products))
	}

	album, err := snap.FindProduct(1)
	if err != nil {
		t.Fatalf("seed product 1 missing: %v", err)
	}
	if !album.Price.Equal(decimal.RequireFromString("25.99")) || album.Stock != 100 {
		t.Fatalf("unexpected seed product: %+v", album)
	}
}

func TestSnapshot_FindUserByEmail_Exact(t *testing.T) {
	snap := NewSeedSnapshot()
	snap.Users = append(snap.Users, &User{ID: 1, Email: "alice@example.com"})

	if _, err := snap.FindUserByEmail("alice@example.com"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if _, err := snap.FindUserByEmail("Alice@example.com"); err != ErrUserNotFound {
		t.Fatalf("email comparison must be byte-wise, got %v", err)
	}
}

func TestSnapshot_NextIDs(t *testing.T) {
	snap := NewSeedSnapshot()
	if snap.NextUserID() != 1 || snap.NextPurchaseID() != 1 {
		t.Fatalf("expected ids to start at 1")
	}

	// Gaps must not cause reuse: next id is max+1, not len+1.
	snap.Users = append(snap.Users, &User{ID: 7})
	snap.Purchases = append(snap.Purchases, &Purchase{ID: 3})
	if got := snap.NextUserID(); got != 8 {
		t.Fatalf("expected next user id 8, got %d", got)
	}
	if got := snap.NextPurchaseID(); got != 4 {
		t.Fatalf("expected next purchase id 4, got %d", got)
	}
}

func TestUser_ApplyPurchase(t *testing.T) {
	user := &User{ID: 1, TotalSpent: decimal.Zero}
	purchase := &Purchase{
		ID:           1,
		UserID:       1,
		TotalAmount:  decimal.RequireFromString("77.97"),
		PurchaseDate: time.Now().UTC(),
		Status:       StatusCompleted,
	}

	user.ApplyPurchase(purchase)
	user.ApplyPurchase(&Purchase{TotalAmount: decimal.RequireFromString("0.03")})

	if !user.TotalSpent.Equal(decimal.RequireFromString("78.00")) {
		t.Fatalf("expected 78.00, got %s", user.TotalSpent)
	}
	if user.TotalPurchases != 2 {
		t.Fatalf("expected 2 purchases, got %d", user.TotalPurchases)
	}
}

func TestPurchase_TotalQuantity(t *testing.T) {
	p := &Purchase{Items: []PurchaseItem{{Quantity: 2}, {Quantity: 3}}}
	if p.TotalQuantity() != 5 {
		t.Fatalf("expected 5, got %d", p.TotalQuantity())
	}
}
