package realtime

import (
	"time"

	"github.com/indiabills/console/internal/models"
)

// Visible decides whether a notification should be surfaced to the
// given viewer. The upstream pushes every event to every connected
// client; these receiver-side rules are the only filter, so they are
// kept pure and independently testable.
//
// Announcements: location "shop" is for customer/user roles only,
// location "channel" for admin/manager only. Expired announcements are
// never shown. Notes: shown iff the viewer's role is in targetRoles OR
// the viewer's id is in targetUsers (OR, not AND).
func Visible(n models.Notification, role models.Role, userID int, now time.Time) bool {
	if n.Expired(now) {
		return false
	}

	switch n.Type {
	case models.NotificationAnnouncement:
		return announcementVisible(n, role)
	case models.NotificationNote:
		return noteVisible(n, role, userID)
	default:
		return false
	}
}

func announcementVisible(n models.Notification, role models.Role) bool {
	switch n.Location {
	case models.LocationShop:
		return role == models.RoleCustomer || role == models.RoleUser
	case models.LocationChannel:
		return role == models.RoleAdmin || role == models.RoleManager
	default:
		// Unknown locations are not surfaced to anyone.
		return false
	}
}

func noteVisible(n models.Notification, role models.Role, userID int) bool {
	for _, r := range n.TargetRoles {
		if r == role {
			return true
		}
	}
	for _, id := range n.TargetUsers {
		if id == userID {
			return true
		}
	}
	return false
}
