package handler

import (
	"github.com/sirpyerre/merch-store-api/internal/core/domain"
	"github.com/sirpyerre/merch-store-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreatePurchaseInput(req createPurchaseRequest, userID int64, idempotencyKey string) ports.CreatePurchaseInput {
	items := make([]ports.PurchaseItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.PurchaseItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return ports.CreatePurchaseInput{
		UserID:         userID,
		Items:          items,
		IdempotencyKey: idempotencyKey,
	}
}

// --- Domain → Response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		RegisteredAt: u.RegisteredAt,
	}
}

func toProfileResponse(u *domain.User) profileResponse {
	return profileResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		RegisteredAt:   u.RegisteredAt,
		TotalSpent:     u.TotalSpent,
		TotalPurchases: u.TotalPurchases,
	}
}

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Name:        p.Name,
		Price:       p.Price,
		Category:    p.Category,
		Emoji:       p.Emoji,
		Description: p.Description,
		Stock:       p.Stock,
	}
}

func toProductListResponse(products []*domain.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p))
	}
	return out
}

func toPurchaseResponse(p *domain.Purchase) purchaseResponse {
	items := make([]purchaseItemResponse, 0, len(p.Items))
	for _, item := range p.Items {
		items = append(items, purchaseItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			Emoji:       item.Emoji,
			Subtotal:    item.Subtotal,
		})
	}
	return purchaseResponse{
		ID:           p.ID,
		UserID:       p.UserID,
		Items:        items,
		TotalAmount:  p.TotalAmount,
		PurchaseDate: p.PurchaseDate,
		Status:       p.Status,
	}
}

func toPurchaseListResponse(purchases []*domain.Purchase) []purchaseResponse {
	out := make([]purchaseResponse, 0, len(purchases))
	for _, p := range purchases {
		out = append(out, toPurchaseResponse(p))
	}
	return out
}

func toStatsResponse(s *ports.UserStats) statsResponse {
	return statsResponse{
		TotalPurchases: s.TotalPurchases,
		TotalSpent:     s.TotalSpent,
		TotalItems:     s.TotalItems,
		MemberSince:    s.MemberSince,
		LastPurchase:   s.LastPurchase,
	}
}
