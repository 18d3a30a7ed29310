package indiabills

import (
	"context"
	"fmt"

	"github.com/indiabills/console/internal/models"
)

// CheckoutRequest converts the server cart into an order.
type CheckoutRequest struct {
	CustomerID        int    `json:"customerId"`
	ShippingAddressID int    `json:"shippingAddressId"`
	BillingAddressID  int    `json:"billingAddressId"`
	PaymentMode       string `json:"paymentMode"`
}

// CheckoutCart checks the server cart out into an order. Step one of
// the two-step place-order sequence; CreatePayment is step two.
func (c *Client) CheckoutCart(ctx context.Context, req CheckoutRequest) Result[models.Order] {
	return postJSON[models.Order](ctx, c, "/orders/checkout", req)
}

// Order fetches a single order.
func (c *Client) Order(ctx context.Context, id int) Result[models.Order] {
	return getJSON[models.Order](ctx, c, fmt.Sprintf("/orders/%d", id), nil)
}

// Orders lists orders for the current session.
func (c *Client) Orders(ctx context.Context) Result[[]models.Order] {
	return getJSON[[]models.Order](ctx, c, "/orders", nil)
}
