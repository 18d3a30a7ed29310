package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiabills/console/internal/localstore"
	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/internal/realtime"
	"github.com/indiabills/console/internal/sse"
	"github.com/indiabills/console/internal/store"
)

func newNotificationFixture(t *testing.T, sess models.Session) (*NotificationService, *realtime.Bus, *store.Store, *sse.Hub) {
	t.Helper()

	local, err := localstore.Open(filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })
	require.NoError(t, local.SetJSON(localstore.KeySession, sess))

	// The session service restores the persisted session on construction.
	sessions := NewSessionService(local, "")
	state := store.New()
	bus := realtime.NewBus()
	hub := sse.NewHub()

	return NewNotificationService(bus, sessions, state, hub), bus, state, hub
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("condition never met")
}

func TestShopAnnouncementReachesCustomer(t *testing.T) {
	svc, bus, state, hub := newNotificationFixture(t, models.Session{ID: 42, Name: "Meera", Role: models.RoleCustomer, Token: "t"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	client := hub.Register("ui-1")
	defer hub.Unregister("ui-1")

	waitFor(t, func() bool { return bus.SubscriberCount() == 1 })

	bus.Publish(models.Notification{
		ID:       "a1",
		Type:     models.NotificationAnnouncement,
		Title:    "Diwali sale",
		Location: models.LocationShop,
	})

	waitFor(t, func() bool { return len(state.Notifications()) == 1 })
	assert.Equal(t, "a1", state.Notifications()[0].ID)
	assert.True(t, state.Popup().Active)
	assert.Equal(t, "Diwali sale", state.Popup().Message)

	select {
	case data := <-client.Events:
		assert.Contains(t, string(data), "Diwali sale")
	case <-time.After(2 * time.Second):
		t.Fatal("SSE client never received the broadcast")
	}
}

func TestChannelAnnouncementFilteredForCustomer(t *testing.T) {
	svc, bus, state, _ := newNotificationFixture(t, models.Session{ID: 42, Name: "Meera", Role: models.RoleCustomer, Token: "t"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	waitFor(t, func() bool { return bus.SubscriberCount() == 1 })

	bus.Publish(models.Notification{
		ID:       "a2",
		Type:     models.NotificationAnnouncement,
		Title:    "Staff only",
		Location: models.LocationChannel,
	})
	// A visible one afterwards proves the filtered one was processed
	// and skipped rather than still in flight.
	bus.Publish(models.Notification{
		ID:       "a3",
		Type:     models.NotificationAnnouncement,
		Title:    "Open offer",
		Location: models.LocationShop,
	})

	waitFor(t, func() bool { return len(state.Notifications()) == 1 })
	assert.Equal(t, "a3", state.Notifications()[0].ID)
}

func TestTargetedNoteReachesUserByID(t *testing.T) {
	svc, bus, state, _ := newNotificationFixture(t, models.Session{ID: 42, Name: "Meera", Role: models.RoleCustomer, Token: "t"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go svc.Run(ctx)

	waitFor(t, func() bool { return bus.SubscriberCount() == 1 })

	bus.Publish(models.Notification{
		ID:          "n1",
		Type:        models.NotificationNote,
		Title:       "Your invoice is ready",
		TargetRoles: []models.Role{models.RoleAdmin},
		TargetUsers: []int{42},
	})

	waitFor(t, func() bool { return len(state.Notifications()) == 1 })

	svc.Dismiss("n1")
	assert.Empty(t, svc.List())
}
