package realtime

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/config"
	"github.com/indiabills/console/internal/models"
)

// frame is the wire shape of an upstream push: an event name and its
// JSON payload.
type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Channel maintains the single long-lived WebSocket connection to the
// upstream events endpoint and feeds decoded notifications into the
// bus. There is no ack, no replay on reconnect and no dedup: events
// pushed while the channel is down are simply missed.
type Channel struct {
	cfg config.RealtimeConfig
	bus *Bus
}

// NewChannel constructs a channel publishing into bus.
func NewChannel(cfg config.RealtimeConfig, bus *Bus) *Channel {
	return &Channel{cfg: cfg, bus: bus}
}

// Run connects and reads until the context is canceled, reconnecting
// with exponential backoff between attempts.
func (ch *Channel) Run(ctx context.Context) {
	if ch.cfg.URL == "" {
		log.Warn().Msg("Realtime channel disabled: no URL configured")
		return
	}

	backoff := ch.cfg.ReconnectMin
	for {
		if err := ch.connectAndRead(ctx); err != nil {
			log.Error().Err(err).Dur("backoff", backoff).Msg("Realtime channel dropped")
		}

		select {
		case <-ctx.Done():
			log.Info().Msg("Realtime channel stopped")
			return
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > ch.cfg.ReconnectMax {
			backoff = ch.cfg.ReconnectMax
		}
	}
}

func (ch *Channel) connectAndRead(ctx context.Context) error {
	dialer := websocket.Dialer{HandshakeTimeout: ch.cfg.HandshakeTimeout}
	conn, _, err := dialer.DialContext(ctx, ch.cfg.URL, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	log.Info().Str("url", ch.cfg.URL).Msg("Realtime channel connected")

	// Close the connection when the context is canceled so ReadMessage
	// unblocks.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		ch.handleFrame(payload)
	}
}

func (ch *Channel) handleFrame(payload []byte) {
	var f frame
	if err := json.Unmarshal(payload, &f); err != nil {
		log.Warn().Err(err).Msg("Dropping malformed realtime frame")
		return
	}

	var n models.Notification
	switch f.Event {
	case EventNewAnnouncement:
		n.Type = models.NotificationAnnouncement
	case EventNewNote:
		n.Type = models.NotificationNote
	default:
		log.Debug().Str("event", f.Event).Msg("Ignoring unknown realtime event")
		return
	}

	if err := json.Unmarshal(f.Data, &n); err != nil {
		log.Warn().Err(err).Str("event", f.Event).Msg("Dropping undecodable realtime payload")
		return
	}
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	n.ReceivedAt = time.Now()

	ch.bus.Publish(n)
}
