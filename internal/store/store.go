// Package store holds the in-memory console state: cart items, pre-cart
// selections, the active popup, cached customer data and live
// notifications. It is a best-effort UI cache, never a source of truth;
// the upstream cart stays authoritative. The store performs no
// validation at its boundary, callers pass well-formed values.
package store

import (
	"sync"

	"github.com/indiabills/console/internal/models"
)

// Store is an explicit, injectable state container. Each console
// instance (and each test) constructs its own; nothing here is a
// package-level singleton.
type Store struct {
	mu            sync.RWMutex
	cartItems     []models.CartItem
	selections    map[int]models.Selection
	popup         models.Popup
	customers     map[int]models.Customer
	notifications []models.Notification
}

// New returns an empty store.
func New() *Store {
	return &Store{
		selections: make(map[int]models.Selection),
		customers:  make(map[int]models.Customer),
	}
}

// --- Cart: pure replace and merge-by-key operations ---

// SetCartItems replaces the whole cart sub-state.
func (s *Store) SetCartItems(items []models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartItems = append([]models.CartItem(nil), items...)
}

// CartItems returns a snapshot of the cart.
func (s *Store) CartItems() []models.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CartItem(nil), s.cartItems...)
}

// AddCartItem updates the line with the same product id, or appends.
func (s *Store) AddCartItem(item models.CartItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cartItems {
		if s.cartItems[i].ProductID == item.ProductID {
			s.cartItems[i] = item
			return
		}
	}
	s.cartItems = append(s.cartItems, item)
}

// UpdateCartItem sets the quantity of an existing line. Unknown
// product ids are ignored.
func (s *Store) UpdateCartItem(productID, qty int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cartItems {
		if s.cartItems[i].ProductID == productID {
			s.cartItems[i].Qty = qty
			return
		}
	}
}

// RemoveCartItem filters the line with the given product id out.
func (s *Store) RemoveCartItem(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.cartItems[:0]
	for _, it := range s.cartItems {
		if it.ProductID != productID {
			kept = append(kept, it)
		}
	}
	s.cartItems = kept
}

// ClearCart drops all cart lines.
func (s *Store) ClearCart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartItems = nil
}

// --- Selections (pre-cart shopping picks) ---

// Select sets or replaces the selection for a product.
func (s *Store) Select(sel models.Selection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections[sel.ProductID] = sel
}

// IncrementSelection bumps a selection's quantity by one, creating it
// at qty 1 when absent.
func (s *Store) IncrementSelection(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.selections[productID]
	if !ok {
		sel = models.Selection{ProductID: productID}
	}
	sel.Qty++
	s.selections[productID] = sel
}

// DecrementSelection lowers a selection's quantity by one and removes
// it when it reaches zero.
func (s *Store) DecrementSelection(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sel, ok := s.selections[productID]
	if !ok {
		return
	}
	sel.Qty--
	if sel.Qty <= 0 {
		delete(s.selections, productID)
		return
	}
	s.selections[productID] = sel
}

// RemoveSelection drops a selection entirely.
func (s *Store) RemoveSelection(productID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.selections, productID)
}

// Selections returns a snapshot of all selections.
func (s *Store) Selections() []models.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Selection, 0, len(s.selections))
	for _, sel := range s.selections {
		out = append(out, sel)
	}
	return out
}

// ClearSelections drops all selections, used after submit.
func (s *Store) ClearSelections() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selections = make(map[int]models.Selection)
}

// --- Popup: single active toast, last write wins ---

// SetPopup overwrites the active popup. Popups are never queued; a
// popup raised during another popup's lifetime simply replaces it.
func (s *Store) SetPopup(p models.Popup) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup = p
}

// Popup returns the current popup state.
func (s *Store) Popup() models.Popup {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.popup
}

// DismissPopup deactivates the current popup.
func (s *Store) DismissPopup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.popup.Active = false
}

// --- Customer cache ---

// PutCustomer caches a customer record by id.
func (s *Store) PutCustomer(c models.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers[c.ID] = c
}

// CustomerByID returns a cached customer, if any.
func (s *Store) CustomerByID(id int) (models.Customer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.customers[id]
	return c, ok
}

// --- Notifications (session-transient, dismissal is local-only) ---

// PushNotification appends a live notification.
func (s *Store) PushNotification(n models.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications = append(s.notifications, n)
}

// Notifications returns a snapshot of live notifications.
func (s *Store) Notifications() []models.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Notification(nil), s.notifications...)
}

// DismissNotification removes a notification by id. The upstream is
// not informed; dismissal only affects this console instance.
func (s *Store) DismissNotification(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept
}
