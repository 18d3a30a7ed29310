package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/internal/service"
	"github.com/indiabills/console/internal/utils"
)

type CartHandler struct {
	cart *service.CartService
}

func NewCartHandler(cart *service.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// GetSelections lists the current pre-cart selections.
func (h *CartHandler) GetSelections(c *gin.Context) {
	utils.Success(c, 200, "OK", h.cart.Selections())
}

// Select sets a selection for a product.
func (h *CartHandler) Select(c *gin.Context) {
	var sel models.Selection
	if err := c.ShouldBindJSON(&sel); err != nil || sel.ProductID == 0 || sel.Qty <= 0 {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid selection")
		return
	}
	h.cart.Select(sel)
	utils.Success(c, 200, "Selection updated", nil)
}

// Increment bumps a selection's quantity.
func (h *CartHandler) Increment(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}
	h.cart.Increment(id)
	utils.Success(c, 200, "Selection updated", nil)
}

// Decrement lowers a selection's quantity.
func (h *CartHandler) Decrement(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}
	h.cart.Decrement(id)
	utils.Success(c, 200, "Selection updated", nil)
}

// Remove drops a selection.
func (h *CartHandler) Remove(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid product id")
		return
	}
	h.cart.Remove(id)
	utils.Success(c, 200, "Selection removed", nil)
}

// Submit pushes the selections to the server cart.
func (h *CartHandler) Submit(c *gin.Context) {
	if err := h.cart.Submit(c.Request.Context()); err != nil {
		utils.Error(c, 502, "UPSTREAM_REJECTED", err.Error())
		return
	}
	utils.Success(c, 200, "Cart updated", nil)
}
