package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zoombxu/surplus/internal/domain/model"
	"github.com/zoombxu/surplus/internal/server/http/dto"
)

// AdminOrderHandler manages dashboard order endpoints.
type AdminOrderHandler struct {
	facade AdminOrderFacade
}

// NewAdminOrderHandler constructs AdminOrderHandler.
func NewAdminOrderHandler(facade AdminOrderFacade) *AdminOrderHandler {
	return &AdminOrderHandler{facade: facade}
}

// List handles GET /api/admin/orders.
func (h *AdminOrderHandler) List(c *gin.Context) {
	orders, err := h.facade.AllOrders(c.Request.Context())
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

// UpdateStatus handles PATCH /api/admin/orders/:id/status.
func (h *AdminOrderHandler) UpdateStatus(c *gin.Context) {
	var req dto.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	order, err := h.facade.AdvanceOrder(c.Request.Context(), c.Param("id"), model.OrderStatus(req.Status))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.FromOrder(*order))
}

// Delete handles DELETE /api/admin/orders/:id.
func (h *AdminOrderHandler) Delete(c *gin.Context) {
	if err := h.facade.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
