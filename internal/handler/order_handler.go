package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/indiabills/console/internal/utils"
	"github.com/indiabills/console/pkg/indiabills"
)

// OrderHandler is a thin read surface over upstream orders.
type OrderHandler struct {
	api *indiabills.Client
}

func NewOrderHandler(api *indiabills.Client) *OrderHandler {
	return &OrderHandler{api: api}
}

// List returns the session's orders.
func (h *OrderHandler) List(c *gin.Context) {
	res := h.api.Orders(c.Request.Context())
	if !res.IsOk() {
		// Soft failure: the order list degrades to empty rather than
		// breaking the console shell.
		utils.Success(c, 200, "OK", []any{})
		return
	}
	utils.Success(c, 200, "OK", res.Data())
}

// Get returns one order.
func (h *OrderHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid order id")
		return
	}
	res := h.api.Order(c.Request.Context(), id)
	if !res.IsOk() {
		utils.Error(c, 404, "ORDER_NOT_FOUND", "Order not found")
		return
	}
	utils.Success(c, 200, "OK", res.Data())
}
