package indiabills

import (
	"context"
	"fmt"

	"github.com/indiabills/console/internal/models"
)

// Suppliers lists supplier records.
func (c *Client) Suppliers(ctx context.Context) Result[[]models.Supplier] {
	return getJSON[[]models.Supplier](ctx, c, "/suppliers", nil)
}

// Warehouses lists warehouse records.
func (c *Client) Warehouses(ctx context.Context) Result[[]models.Warehouse] {
	return getJSON[[]models.Warehouse](ctx, c, "/warehouses", nil)
}

// Batches lists stock batches for a product.
func (c *Client) Batches(ctx context.Context, productID int) Result[[]models.Batch] {
	return getJSON[[]models.Batch](ctx, c, fmt.Sprintf("/products/%d/batches", productID), nil)
}

// Subscriptions lists a customer's recurring billing plans.
func (c *Client) Subscriptions(ctx context.Context, customerID int) Result[[]models.Subscription] {
	return getJSON[[]models.Subscription](ctx, c, fmt.Sprintf("/customers/%d/subscriptions", customerID), nil)
}
