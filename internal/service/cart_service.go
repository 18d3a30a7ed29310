package service

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/internal/store"
	"github.com/indiabills/console/pkg/indiabills"
)

// CartService manages the pre-cart shopping selections in the state
// store and their submission to the server-side cart. The server cart
// is authoritative; the store is a best-effort mirror.
type CartService struct {
	api   *indiabills.Client
	state *store.Store
}

// NewCartService constructs a CartService.
func NewCartService(api *indiabills.Client, state *store.Store) *CartService {
	return &CartService{api: api, state: state}
}

// Select sets the selection for a product.
func (s *CartService) Select(sel models.Selection) {
	s.state.Select(sel)
}

// Increment bumps a product's selected quantity.
func (s *CartService) Increment(productID int) {
	s.state.IncrementSelection(productID)
}

// Decrement lowers a product's selected quantity, removing the
// selection at zero.
func (s *CartService) Decrement(productID int) {
	s.state.DecrementSelection(productID)
}

// Remove drops a product's selection.
func (s *CartService) Remove(productID int) {
	s.state.RemoveSelection(productID)
}

// Selections returns the current selections.
func (s *CartService) Selections() []models.Selection {
	return s.state.Selections()
}

// Submit replaces the server cart with the current selections and
// clears them on success.
func (s *CartService) Submit(ctx context.Context) error {
	selections := s.state.Selections()
	rows := make([]models.CartRow, 0, len(selections))
	for _, sel := range selections {
		rows = append(rows, models.CartRow{ProductID: sel.ProductID, Qty: sel.Qty})
	}

	res := s.api.SaveCart(ctx, rows)
	if !res.IsOk() {
		log.Error().Int("status", res.Status()).Str("error", res.Message()).Msg("Cart submit failed")
		s.state.SetPopup(models.Popup{Message: "Could not update cart", Variant: models.PopupError, Active: true})
		return errUpstream(res.Status(), res.Message())
	}

	s.state.ClearSelections()
	s.state.SetPopup(models.Popup{Message: "Cart updated", Variant: models.PopupSuccess, Active: true})
	return nil
}

// ServerCart fetches the raw server cart rows.
func (s *CartService) ServerCart(ctx context.Context) ([]models.CartRow, error) {
	res := s.api.Cart(ctx)
	if !res.IsOk() {
		return nil, errUpstream(res.Status(), res.Message())
	}
	return res.Data(), nil
}
