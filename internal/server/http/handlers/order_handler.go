package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/zoombxu/surplus/internal/domain/errors"
	"github.com/zoombxu/surplus/internal/server/http/dto"
)

// OrderHandler manages customer-facing order endpoints.
type OrderHandler struct {
	facade OrderFacade
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade) *OrderHandler {
	return &OrderHandler{facade: facade}
}

// Place handles POST /api/orders.
func (h *OrderHandler) Place(c *gin.Context) {
	claims := CurrentClaims(c)

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), claims.Name, claims.Subject, dto.ToOrderItems(req.Items), req.TotalPrice)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromOrder(*order))
}

// List handles GET /api/orders.
func (h *OrderHandler) List(c *gin.Context) {
	claims := CurrentClaims(c)

	orders, err := h.facade.Orders(c.Request.Context(), claims.Subject)
	if err != nil {
		writeError(c, err)
		return
	}

	response := make([]dto.OrderResponse, 0, len(orders))
	for _, order := range orders {
		response = append(response, dto.FromOrder(order))
	}
	c.JSON(http.StatusOK, response)
}

// Cancel handles POST /api/orders/:id/cancel.
//
// When the penalty write failed the order is still cancelled, so the
// response stays 200 but carries a warning marking the partial outcome.
func (h *OrderHandler) Cancel(c *gin.Context) {
	claims := CurrentClaims(c)

	order, err := h.facade.CancelOrder(c.Request.Context(), claims.Subject, claims.Name, c.Param("id"))
	if err != nil && !errors.Is(err, domainErrors.ErrPenaltyNotApplied) {
		writeError(c, err)
		return
	}

	response := dto.CancelOrderResponse{OrderResponse: dto.FromOrder(*order)}
	if errors.Is(err, domainErrors.ErrPenaltyNotApplied) {
		response.Warning = "cancellation partially applied"
	}
	c.JSON(http.StatusOK, response)
}

// Profile handles GET /api/profile.
func (h *OrderHandler) Profile(c *gin.Context) {
	claims := CurrentClaims(c)

	profile, remaining, err := h.facade.Profile(c.Request.Context(), claims.Subject)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		Phone:             profile.Phone,
		CancellationCount: profile.CancellationCount,
		PenaltyUntil:      profile.PenaltyUntil,
		RestrictedMinutes: remaining,
	})
}
