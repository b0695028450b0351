package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sirpyerre/merch-store-api/internal/core/domain"
	"github.com/sirpyerre/merch-store-api/internal/core/ports"
)

// PurchaseService is the purchase engine: it validates an order against the
// catalog and current stock, computes exact totals, and commits stock
// decrements, the purchase record, and the user's ledger update in a single
// snapshot save.
type PurchaseService struct {
	store ports.SnapshotStore
	dedup ports.PurchaseDeduper // optional; nil disables idempotent replay
	log   zerolog.Logger
}

func NewPurchaseService(store ports.SnapshotStore, dedup ports.PurchaseDeduper, log zerolog.Logger) *PurchaseService {
	return &PurchaseService{store: store, dedup: dedup, log: log}
}

// CreatePurchase processes an order end to end. Either every effect of the
// order (stock decrements, ledger update, purchase record) is persisted in
// one save, or the request has zero observable effect.
func (s *PurchaseService) CreatePurchase(ctx context.Context, input ports.CreatePurchaseInput) (*domain.Purchase, error) {
	if err := validateItems(input.Items); err != nil {
		return nil, err
	}

	// Idempotent replay: a retried request with the same key returns the
	// purchase committed by the first attempt, without touching stock again.
	if input.IdempotencyKey != "" && s.dedup != nil {
		purchaseID, seen, err := s.dedup.Seen(ctx, input.UserID, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", input.IdempotencyKey).Msg("dedup check failed, processing anyway")
		} else if seen {
			snap, err := s.store.Load(ctx)
			if err != nil {
				return nil, err
			}
			existing, err := snap.FindPurchase(purchaseID)
			if err != nil {
				return nil, err
			}
			s.log.Info().Str("idempotency_key", input.IdempotencyKey).Int64("purchase_id", existing.ID).Msg("idempotent replay")
			return existing, nil
		}
	}

	var purchase *domain.Purchase
	err := s.store.Update(ctx, func(snap *domain.Snapshot) error {
		user, err := snap.FindUserByID(input.UserID)
		if err != nil {
			return err
		}

		// Validate and apply each item against the working copy, in request
		// order. Any failure aborts the update and none of these mutations
		// reach durable storage.
		items := make([]domain.PurchaseItem, 0, len(input.Items))
		total := decimal.Zero
		for _, requested := range input.Items {
			product, err := snap.FindProduct(requested.ProductID)
			if err != nil {
				return fmt.Errorf("%w: product %d", domain.ErrProductNotFound, requested.ProductID)
			}
			if product.Stock < requested.Quantity {
				return fmt.Errorf("%w: product %d", domain.ErrInsufficientStock, product.ID)
			}

			subtotal := product.Price.Mul(decimal.NewFromInt(int64(requested.Quantity)))
			items = append(items, domain.PurchaseItem{
				ProductID:   product.ID,
				ProductName: product.Name,
				Price:       product.Price,
				Quantity:    requested.Quantity,
				Emoji:       product.Emoji,
				Subtotal:    subtotal,
			})
			product.Stock -= requested.Quantity
			total = total.Add(subtotal)
		}

		purchase = &domain.Purchase{
			ID:           snap.NextPurchaseID(),
			UserID:       user.ID,
			Items:        items,
			TotalAmount:  total,
			PurchaseDate: time.Now().UTC(),
			Status:       domain.StatusCompleted,
		}
		snap.Purchases = append(snap.Purchases, purchase)
		user.ApplyPurchase(purchase)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if input.IdempotencyKey != "" && s.dedup != nil {
		if markErr := s.dedup.Mark(ctx, input.UserID, input.IdempotencyKey, purchase.ID); markErr != nil {
			s.log.Warn().Err(markErr).Str("idempotency_key", input.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	s.log.Info().
		Int64("purchase_id", purchase.ID).
		Int64("user_id", purchase.UserID).
		Str("total_amount", purchase.TotalAmount.String()).
		Int("items", len(purchase.Items)).
		Msg("purchase committed")

	return purchase, nil
}

// ListUserPurchases returns the user's purchase history in commit order.
func (s *PurchaseService) ListUserPurchases(ctx context.Context, userID int64) ([]*domain.Purchase, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := snap.FindUserByID(userID); err != nil {
		return nil, err
	}
	return snap.PurchasesByUser(userID), nil
}

// GetUserStats aggregates the user's purchase history. TotalSpent and
// TotalPurchases come from the ledger; TotalItems and LastPurchase are
// derived from the log on read.
func (s *PurchaseService) GetUserStats(ctx context.Context, userID int64) (*ports.UserStats, error) {
	snap, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	user, err := snap.FindUserByID(userID)
	if err != nil {
		return nil, err
	}

	purchases := snap.PurchasesByUser(userID)
	totalItems := 0
	for _, p := range purchases {
		totalItems += p.TotalQuantity()
	}

	stats := &ports.UserStats{
		TotalPurchases: user.TotalPurchases,
		TotalSpent:     user.TotalSpent,
		TotalItems:     totalItems,
		MemberSince:    user.RegisteredAt,
	}
	if len(purchases) > 0 {
		last := purchases[len(purchases)-1].PurchaseDate
		stats.LastPurchase = &last
	}
	return stats, nil
}

func validateItems(items []ports.PurchaseItemInput) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: at least one item is required", domain.ErrInvalidInput)
	}
	for _, item := range items {
		if item.ProductID <= 0 {
			return fmt.Errorf("%w: missing product id", domain.ErrInvalidInput)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("%w: quantity must be positive for product %d", domain.ErrInvalidInput, item.ProductID)
		}
	}
	return nil
}
