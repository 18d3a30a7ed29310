package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/indiabills/console/internal/service"
	"github.com/indiabills/console/internal/utils"
)

type CheckoutHandler struct {
	checkout *service.CheckoutService
}

func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Begin enters checkout: reconciles the server cart against the live
// catalog and returns priced items plus totals, reset to the address
// step.
func (h *CheckoutHandler) Begin(c *gin.Context) {
	h.checkout.Begin()

	items, totals, err := h.checkout.Reconcile(c.Request.Context())
	if err != nil {
		utils.Error(c, 502, "UPSTREAM_REJECTED", err.Error())
		return
	}

	utils.Success(c, 200, "OK", gin.H{
		"stage":  h.checkout.Stage(),
		"items":  items,
		"totals": totals,
	})
}

// SelectAddresses records address choices and advances to payment.
// Missing addresses are inline errors, not server faults.
func (h *CheckoutHandler) SelectAddresses(c *gin.Context) {
	var req struct {
		ShippingAddressID int  `json:"shippingAddressId"`
		BillingAddressID  int  `json:"billingAddressId"`
		SameAsShipping    bool `json:"sameAsShipping"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	if err := h.checkout.SelectAddresses(req.ShippingAddressID, req.BillingAddressID, req.SameAsShipping); err != nil {
		switch {
		case errors.Is(err, utils.ErrNoShippingAddress):
			utils.Error(c, 422, "NO_SHIPPING_ADDRESS", "Select a shipping address to continue")
		case errors.Is(err, utils.ErrNoBillingAddress):
			utils.Error(c, 422, "NO_BILLING_ADDRESS", "Select a billing address or mark same as shipping")
		default:
			utils.Error(c, 400, "INVALID_REQUEST", err.Error())
		}
		return
	}

	utils.Success(c, 200, "OK", gin.H{"stage": h.checkout.Stage()})
}

// Back returns to the address step.
func (h *CheckoutHandler) Back(c *gin.Context) {
	h.checkout.Back()
	utils.Success(c, 200, "OK", gin.H{"stage": h.checkout.Stage()})
}

// PlaceOrder runs the order-then-payment sequence. A payment-record
// failure still returns 201 with a payment-pending order: the order
// exists upstream and the retry worker owns the rest.
func (h *CheckoutHandler) PlaceOrder(c *gin.Context) {
	var req struct {
		CustomerID  int    `json:"customerId" binding:"required"`
		PaymentMode string `json:"paymentMode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 400, "INVALID_REQUEST", "Invalid request body")
		return
	}

	order, err := h.checkout.PlaceOrder(c.Request.Context(), req.CustomerID, req.PaymentMode)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmptyCart):
			utils.Error(c, 422, "EMPTY_CART", "Cart is empty")
		case errors.Is(err, utils.ErrNoShippingAddress):
			utils.Error(c, 422, "NO_SHIPPING_ADDRESS", "Complete the address step first")
		default:
			utils.Error(c, 502, "UPSTREAM_REJECTED", err.Error())
		}
		return
	}

	utils.Success(c, 201, "Order placed", order)
}
