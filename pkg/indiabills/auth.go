package indiabills

import (
	"context"

	"github.com/indiabills/console/internal/models"
)

// LoginRequest is the upstream login payload.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the upstream API and returns the session
// including the bearer token used by all subsequent calls.
func (c *Client) Login(ctx context.Context, email, password string) Result[models.Session] {
	return postJSON[models.Session](ctx, c, "/auth/login", LoginRequest{Email: email, Password: password})
}

// Logout invalidates the current session token upstream.
func (c *Client) Logout(ctx context.Context) Result[struct{}] {
	return postJSON[struct{}](ctx, c, "/auth/logout", nil)
}
