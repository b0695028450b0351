package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sirpyerre/merch-store-api/internal/api/metrics"
	"github.com/sirpyerre/merch-store-api/internal/core/domain"
	"github.com/sirpyerre/merch-store-api/internal/core/ports"
)

// PurchaseHandler handles purchase creation, history and stats.
type PurchaseHandler struct {
	service ports.PurchaseService
}

func NewPurchaseHandler(service ports.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{service: service}
}

// Create handles POST /api/purchase.
//
// @Summary      Create a purchase
// @Tags         purchases
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string                 false  "Idempotency key to prevent duplicate submissions"
// @Param        body             body      createPurchaseRequest  true   "Order items"
// @Success      201              {object}  purchaseResponse
// @Failure      400              {object}  errorResponse
// @Failure      401              {object}  errorResponse
// @Failure      404              {object}  errorResponse
// @Router       /api/purchase [post]
func (h *PurchaseHandler) Create(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createPurchaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	idempotencyKey := c.Request().Header.Get("Idempotency-Key")
	purchase, err := h.service.CreatePurchase(c.Request().Context(), toCreatePurchaseInput(req, userID, idempotencyKey))
	if err != nil {
		observeRejection(err)
		return err
	}

	metrics.PurchasesCreatedTotal.Inc()
	amount, _ := purchase.TotalAmount.Float64()
	metrics.PurchaseAmount.Observe(amount)

	return c.JSON(http.StatusCreated, toPurchaseResponse(purchase))
}

// ListMine handles GET /api/user/purchases.
//
// @Summary      List the authenticated user's purchases
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   purchaseResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/user/purchases [get]
func (h *PurchaseHandler) ListMine(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	purchases, err := h.service.ListUserPurchases(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPurchaseListResponse(purchases))
}

// Stats handles GET /api/user/stats.
//
// @Summary      Get the authenticated user's purchase statistics
// @Tags         purchases
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/user/stats [get]
func (h *PurchaseHandler) Stats(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.service.GetUserStats(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toStatsResponse(stats))
}

func observeRejection(err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		metrics.PurchaseRejectionsTotal.WithLabelValues("invalid_input").Inc()
	case errors.Is(err, domain.ErrUserNotFound):
		metrics.PurchaseRejectionsTotal.WithLabelValues("user_not_found").Inc()
	case errors.Is(err, domain.ErrProductNotFound):
		metrics.PurchaseRejectionsTotal.WithLabelValues("product_not_found").Inc()
	case errors.Is(err, domain.ErrInsufficientStock):
		metrics.PurchaseRejectionsTotal.WithLabelValues("insufficient_stock").Inc()
	}
}
