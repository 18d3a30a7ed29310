package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/internal/realtime"
	"github.com/indiabills/console/internal/sse"
	"github.com/indiabills/console/internal/store"
)

// NotificationService consumes the realtime bus, applies the
// role/location/target visibility rules for the current session and
// surfaces what passes: into the state store, onto the SSE hub and as
// a popup. Everything is session-transient; nothing is persisted and
// dismissal never reaches the upstream.
type NotificationService struct {
	bus      *realtime.Bus
	sessions *SessionService
	state    *store.Store
	hub      *sse.Hub
}

// NewNotificationService constructs a NotificationService.
func NewNotificationService(bus *realtime.Bus, sessions *SessionService, state *store.Store, hub *sse.Hub) *NotificationService {
	return &NotificationService{bus: bus, sessions: sessions, state: state, hub: hub}
}

// Run subscribes to the bus and processes events until the context is
// canceled.
func (s *NotificationService) Run(ctx context.Context) {
	events, cancel := s.bus.Subscribe()
	defer cancel()

	log.Info().Msg("Notification service started")
	for {
		select {
		case n, ok := <-events:
			if !ok {
				return
			}
			s.handle(n)
		case <-ctx.Done():
			log.Info().Msg("Notification service stopped")
			return
		}
	}
}

func (s *NotificationService) handle(n models.Notification) {
	sess, err := s.sessions.Current()
	if err != nil {
		// No session, nobody to show anything to.
		return
	}

	if !realtime.Visible(n, sess.Role, sess.ID, time.Now()) {
		log.Debug().Str("notification_id", n.ID).Str("role", string(sess.Role)).Msg("Notification filtered out")
		return
	}

	s.state.PushNotification(n)
	s.state.SetPopup(models.Popup{Message: n.Title, Variant: models.PopupSuccess, Active: true})
	s.hub.Broadcast(n)

	log.Info().
		Str("notification_id", n.ID).
		Str("type", string(n.Type)).
		Str("title", n.Title).
		Msg("Notification surfaced")
}

// List returns the live notifications for the current session.
func (s *NotificationService) List() []models.Notification {
	return s.state.Notifications()
}

// Dismiss removes a notification locally.
func (s *NotificationService) Dismiss(id string) {
	s.state.DismissNotification(id)
}
