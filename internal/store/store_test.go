package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiabills/console/internal/models"
)

func TestAddCartItemMergesByProductID(t *testing.T) {
	s := New()

	s.AddCartItem(models.CartItem{ProductID: 1, Name: "soap", Price: 30, Qty: 1})
	s.AddCartItem(models.CartItem{ProductID: 2, Name: "rice", Price: 80, Qty: 2})
	s.AddCartItem(models.CartItem{ProductID: 1, Name: "soap", Price: 30, Qty: 5})

	items := s.CartItems()
	require.Len(t, items, 2)
	assert.Equal(t, 5, items[0].Qty)
}

func TestRemoveCartItemFiltersOut(t *testing.T) {
	s := New()
	s.SetCartItems([]models.CartItem{
		{ProductID: 1, Qty: 1},
		{ProductID: 2, Qty: 2},
	})

	s.RemoveCartItem(1)
	s.RemoveCartItem(99) // absent ids are a no-op

	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].ProductID)
}

func TestUpdateCartItemIgnoresUnknownID(t *testing.T) {
	s := New()
	s.SetCartItems([]models.CartItem{{ProductID: 1, Qty: 1}})

	s.UpdateCartItem(1, 4)
	s.UpdateCartItem(7, 9)

	items := s.CartItems()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Qty)
}

func TestPopupLastWriteWins(t *testing.T) {
	s := New()

	s.SetPopup(models.Popup{Message: "first", Variant: models.PopupSuccess, Active: true})
	s.SetPopup(models.Popup{Message: "second", Variant: models.PopupError, Active: true})

	p := s.Popup()
	assert.Equal(t, "second", p.Message)
	assert.Equal(t, models.PopupError, p.Variant)

	s.DismissPopup()
	assert.False(t, s.Popup().Active)
}

func TestSelectionIncrementDecrement(t *testing.T) {
	s := New()

	s.IncrementSelection(3)
	s.IncrementSelection(3)
	sels := s.Selections()
	require.Len(t, sels, 1)
	assert.Equal(t, 2, sels[0].Qty)

	s.DecrementSelection(3)
	s.DecrementSelection(3)
	assert.Empty(t, s.Selections())

	// Decrementing an absent selection is a no-op.
	s.DecrementSelection(3)
	assert.Empty(t, s.Selections())
}

func TestNotificationDismissIsLocal(t *testing.T) {
	s := New()
	s.PushNotification(models.Notification{ID: "a"})
	s.PushNotification(models.Notification{ID: "b"})

	s.DismissNotification("a")

	ns := s.Notifications()
	require.Len(t, ns, 1)
	assert.Equal(t, "b", ns[0].ID)
}

func TestStoresAreIndependent(t *testing.T) {
	a := New()
	b := New()

	a.AddCartItem(models.CartItem{ProductID: 1, Qty: 1})
	assert.Empty(t, b.CartItems())
}
