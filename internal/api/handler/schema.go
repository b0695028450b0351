package handler

import (
	"time"

	"github.com/shopspring/decimal"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required"`
	Password string `json:"password" validate:"required"`
}

type purchaseItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
	Quantity  int   `json:"quantity"  validate:"required,gt=0"`
}

type createPurchaseRequest struct {
	Items []purchaseItemRequest `json:"items" validate:"required,min=1,dive"`
}

// --- Response types ---
//
// Response-only types owned by the transport layer. They are intentionally
// separate from domain types so the JSON contract never leaks internal
// fields — in particular the stored password hash.

type userResponse struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	RegisteredAt time.Time `json:"registeredAt"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type profileResponse struct {
	ID             int64           `json:"id"`
	Name           string          `json:"name"`
	Email          string          `json:"email"`
	RegisteredAt   time.Time       `json:"registeredAt"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	TotalPurchases int             `json:"totalPurchases"`
}

type productResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Emoji       string          `json:"emoji"`
	Description string          `json:"description"`
	Stock       int             `json:"stock"`
}

type purchaseItemResponse struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Emoji       string          `json:"emoji"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type purchaseResponse struct {
	ID           int64                  `json:"id"`
	UserID       int64                  `json:"userId"`
	Items        []purchaseItemResponse `json:"items"`
	TotalAmount  decimal.Decimal        `json:"totalAmount"`
	PurchaseDate time.Time              `json:"purchaseDate"`
	Status       string                 `json:"status"`
}

type statsResponse struct {
	TotalPurchases int             `json:"totalPurchases"`
	TotalSpent     decimal.Decimal `json:"totalSpent"`
	TotalItems     int             `json:"totalItems"`
	MemberSince    time.Time       `json:"memberSince"`
	LastPurchase   *time.Time      `json:"lastPurchase"`
}
