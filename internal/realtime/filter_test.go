package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/indiabills/console/internal/models"
)

func announcement(location string) models.Notification {
	return models.Notification{
		ID:       "a1",
		Type:     models.NotificationAnnouncement,
		Title:    "hello",
		Location: location,
	}
}

func TestAnnouncementVisibility(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		location string
		role     models.Role
		want     bool
	}{
		{"shop shown to customer", models.LocationShop, models.RoleCustomer, true},
		{"shop shown to user", models.LocationShop, models.RoleUser, true},
		{"shop hidden from admin", models.LocationShop, models.RoleAdmin, false},
		{"shop hidden from manager", models.LocationShop, models.RoleManager, false},
		{"channel shown to admin", models.LocationChannel, models.RoleAdmin, true},
		{"channel shown to manager", models.LocationChannel, models.RoleManager, true},
		{"channel hidden from customer", models.LocationChannel, models.RoleCustomer, false},
		{"channel hidden from user", models.LocationChannel, models.RoleUser, false},
		{"unknown location hidden from everyone", "lobby", models.RoleAdmin, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(announcement(tt.location), tt.role, 1, now)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExpiredAnnouncementHidden(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	n := announcement(models.LocationShop)
	n.ExpiryDate = &past
	assert.False(t, Visible(n, models.RoleCustomer, 1, now))

	future := now.Add(time.Hour)
	n.ExpiryDate = &future
	assert.True(t, Visible(n, models.RoleCustomer, 1, now))
}

func TestNoteTargetingIsOrSemantics(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		targetRoles []models.Role
		targetUsers []int
		role        models.Role
		userID      int
		want        bool
	}{
		{"role match", []models.Role{models.RoleAdmin}, nil, models.RoleAdmin, 7, true},
		{"role mismatch", []models.Role{models.RoleAdmin}, nil, models.RoleManager, 7, false},
		{"user id match overrides role mismatch", nil, []int{42}, models.RoleCustomer, 42, true},
		{"either side matching is enough", []models.Role{models.RoleManager}, []int{42}, models.RoleManager, 9, true},
		{"neither side matching", []models.Role{models.RoleAdmin}, []int{42}, models.RoleUser, 9, false},
		{"empty targets match nobody", nil, nil, models.RoleAdmin, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := models.Notification{
				ID:          "n1",
				Type:        models.NotificationNote,
				TargetRoles: tt.targetRoles,
				TargetUsers: tt.targetUsers,
			}
			assert.Equal(t, tt.want, Visible(n, tt.role, tt.userID, now))
		})
	}
}
