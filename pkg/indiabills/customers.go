package indiabills

import (
	"context"
	"fmt"

	"github.com/indiabills/console/internal/models"
)

// CreateCustomer creates a customer record upstream. Local field
// validation must happen before this call; the client does not
// re-validate.
func (c *Client) CreateCustomer(ctx context.Context, customer models.Customer) Result[models.Customer] {
	return postJSON[models.Customer](ctx, c, "/customers", customer)
}

// Customer fetches a single customer.
func (c *Client) Customer(ctx context.Context, id int) Result[models.Customer] {
	return getJSON[models.Customer](ctx, c, fmt.Sprintf("/customers/%d", id), nil)
}

// Customers lists customers for the current organization.
func (c *Client) Customers(ctx context.Context) Result[[]models.Customer] {
	return getJSON[[]models.Customer](ctx, c, "/customers", nil)
}

// Addresses lists a customer's saved addresses.
func (c *Client) Addresses(ctx context.Context, customerID int) Result[[]models.Address] {
	return getJSON[[]models.Address](ctx, c, fmt.Sprintf("/customers/%d/addresses", customerID), nil)
}

// CreateAddress adds an address to a customer.
func (c *Client) CreateAddress(ctx context.Context, customerID int, addr models.Address) Result[models.Address] {
	return postJSON[models.Address](ctx, c, fmt.Sprintf("/customers/%d/addresses", customerID), addr)
}
