package models

import "time"

// NotificationType discriminates the two realtime event payloads.
type NotificationType string

const (
	NotificationAnnouncement NotificationType = "announcement"
	NotificationNote         NotificationType = "note"
)

// Announcement locations. Shop announcements are meant for customers,
// channel announcements for organization staff; the upstream pushes
// both to every connected client and relies on receiver-side filtering.
const (
	LocationShop    = "shop"
	LocationChannel = "channel"
)

// Notification is a transient realtime message. It exists only for the
// lifetime of the session: dismissal is local and nothing is persisted.
type Notification struct {
	ID          string           `json:"id"`
	Type        NotificationType `json:"type"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Location    string           `json:"location,omitempty"`
	ExpiryDate  *time.Time       `json:"expiryDate,omitempty"`
	TargetRoles []Role           `json:"targetRoles,omitempty"`
	TargetUsers []int            `json:"targetUsers,omitempty"`
	ReceivedAt  time.Time        `json:"receivedAt"`
}

// Expired reports whether the notification carries an expiry date in
// the past relative to now.
func (n *Notification) Expired(now time.Time) bool {
	return n.ExpiryDate != nil && n.ExpiryDate.Before(now)
}

// PopupVariant is the toast severity.
type PopupVariant string

const (
	PopupSuccess PopupVariant = "success"
	PopupError   PopupVariant = "error"
)

// Popup is the single active toast. Last write wins; popups are
// overwritten, never queued.
type Popup struct {
	Message string       `json:"message"`
	Variant PopupVariant `json:"variant"`
	Active  bool         `json:"active"`
}
