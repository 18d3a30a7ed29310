package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiabills/console/internal/models"
)

func TestBusFanOut(t *testing.T) {
	bus := NewBus()

	a, cancelA := bus.Subscribe()
	b, cancelB := bus.Subscribe()
	defer cancelA()
	defer cancelB()

	assert.Equal(t, 2, bus.SubscriberCount())

	bus.Publish(models.Notification{ID: "x"})

	select {
	case n := <-a:
		assert.Equal(t, "x", n.ID)
	case <-time.After(time.Second):
		t.Fatal("subscriber a never received the event")
	}
	select {
	case n := <-b:
		assert.Equal(t, "x", n.ID)
	case <-time.After(time.Second):
		t.Fatal("subscriber b never received the event")
	}
}

func TestBusUnsubscribeClosesChannel(t *testing.T) {
	bus := NewBus()

	ch, cancel := bus.Subscribe()
	cancel()

	_, open := <-ch
	require.False(t, open)
	assert.Equal(t, 0, bus.SubscriberCount())

	// Publishing after unsubscribe must not panic.
	bus.Publish(models.Notification{ID: "y"})
}
