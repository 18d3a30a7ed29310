package indiabills

import (
	"context"

	"github.com/indiabills/console/internal/models"
)

// Announcements lists current organization announcements.
func (c *Client) Announcements(ctx context.Context) Result[[]models.Notification] {
	return getJSON[[]models.Notification](ctx, c, "/announcements", nil)
}

// PublishAnnouncement posts a new announcement to the organization
// channel or the shop, depending on its location field.
func (c *Client) PublishAnnouncement(ctx context.Context, n models.Notification) Result[models.Notification] {
	return postJSON[models.Notification](ctx, c, "/announcements", n)
}

// Notes lists notes targeted at the current user.
func (c *Client) Notes(ctx context.Context) Result[[]models.Notification] {
	return getJSON[[]models.Notification](ctx, c, "/notes", nil)
}

// PublishNote posts a note targeted at roles and/or user ids.
func (c *Client) PublishNote(ctx context.Context, n models.Notification) Result[models.Notification] {
	return postJSON[models.Notification](ctx, c, "/notes", n)
}
