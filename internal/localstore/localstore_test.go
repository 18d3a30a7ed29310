package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiabills/console/internal/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestKVRoundTrip(t *testing.T) {
	s := openTestStore(t)

	_, ok, err := s.Get(KeyTitle)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set(KeyTitle, "IndiaBills"))
	value, ok, err := s.Get(KeyTitle)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "IndiaBills", value)

	// Upsert overwrites.
	require.NoError(t, s.Set(KeyTitle, "IndiaBills Console"))
	value, _, err = s.Get(KeyTitle)
	require.NoError(t, err)
	assert.Equal(t, "IndiaBills Console", value)

	require.NoError(t, s.Delete(KeyTitle))
	_, ok, err = s.Get(KeyTitle)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionPersistsAsJSON(t *testing.T) {
	s := openTestStore(t)

	in := models.Session{ID: 7, Name: "Ravi", Role: models.RoleManager, Token: "tok"}
	require.NoError(t, s.SetJSON(KeySession, in))

	var out models.Session
	ok, err := s.GetJSON(KeySession, &out)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in, out)
}

func TestPendingPaymentLifecycle(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.AddPendingPayment(models.PendingPayment{
		OrderID: 77, CustomerID: 5, Amount: 600, Mode: "upi", LastError: "boom",
	}))
	// Re-adding the same order id must not duplicate.
	require.NoError(t, s.AddPendingPayment(models.PendingPayment{
		OrderID: 77, CustomerID: 5, Amount: 600, Mode: "upi", LastError: "boom again",
	}))

	pending, err := s.PendingPayments()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "boom again", pending[0].LastError)
	assert.Equal(t, 0, pending[0].Attempts)

	require.NoError(t, s.BumpPendingPayment(77, "still down"))
	pending, err = s.PendingPayments()
	require.NoError(t, err)
	assert.Equal(t, 1, pending[0].Attempts)
	assert.Equal(t, "still down", pending[0].LastError)

	require.NoError(t, s.RemovePendingPayment(77))
	pending, err = s.PendingPayments()
	require.NoError(t, err)
	assert.Empty(t, pending)
}
