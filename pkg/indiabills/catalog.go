package indiabills

import (
	"context"
	"fmt"
	"net/url"

	"github.com/indiabills/console/internal/models"
)

// Products lists the product catalog, optionally filtered by category.
func (c *Client) Products(ctx context.Context, category string) Result[[]models.Product] {
	var query url.Values
	if category != "" {
		query = url.Values{"category": {category}}
	}
	return getJSON[[]models.Product](ctx, c, "/products", query)
}

// Product fetches a single catalog row.
func (c *Client) Product(ctx context.Context, id int) Result[models.Product] {
	return getJSON[models.Product](ctx, c, fmt.Sprintf("/products/%d", id), nil)
}

// Categories lists catalog categories.
func (c *Client) Categories(ctx context.Context) Result[[]models.Category] {
	return getJSON[[]models.Category](ctx, c, "/categories", nil)
}

// Offers lists active promotional offers.
func (c *Client) Offers(ctx context.Context) Result[[]models.Offer] {
	return getJSON[[]models.Offer](ctx, c, "/offers", nil)
}
