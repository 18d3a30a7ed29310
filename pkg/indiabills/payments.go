package indiabills

import (
	"context"

	"github.com/indiabills/console/internal/models"
)

// CreatePayment records a payment against an order. Step two of the
// place-order sequence.
func (c *Client) CreatePayment(ctx context.Context, payment models.Payment) Result[models.Payment] {
	return postJSON[models.Payment](ctx, c, "/payments", payment)
}

// VerifyPaymentRequest carries the gateway callback fields. Signature
// verification happens upstream, never in the console.
type VerifyPaymentRequest struct {
	OrderID          int    `json:"orderId"`
	GatewayOrderID   string `json:"gatewayOrderId"`
	GatewayPaymentID string `json:"gatewayPaymentId"`
	GatewaySignature string `json:"gatewaySignature"`
}

// VerifyPayment asks the upstream API to verify a gateway signature.
func (c *Client) VerifyPayment(ctx context.Context, req VerifyPaymentRequest) Result[bool] {
	return postJSON[bool](ctx, c, "/payments/verify", req)
}
