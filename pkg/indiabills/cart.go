package indiabills

import (
	"context"

	"github.com/indiabills/console/internal/models"
)

// Cart fetches the server-side cart: product references and quantities
// only. Joining with catalog data is the caller's job.
func (c *Client) Cart(ctx context.Context) Result[[]models.CartRow] {
	return getJSON[[]models.CartRow](ctx, c, "/cart", nil)
}

// SaveCart replaces the server-side cart with the given rows.
func (c *Client) SaveCart(ctx context.Context, rows []models.CartRow) Result[struct{}] {
	return putJSON[struct{}](ctx, c, "/cart", rows)
}

// ClearCart empties the server-side cart.
func (c *Client) ClearCart(ctx context.Context) Result[struct{}] {
	return deleteJSON[struct{}](ctx, c, "/cart")
}
