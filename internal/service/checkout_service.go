package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/config"
	"github.com/indiabills/console/internal/localstore"
	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/internal/store"
	"github.com/indiabills/console/internal/utils"
	"github.com/indiabills/console/pkg/indiabills"
)

// Stage is the checkout step. The flow is linear: address, then
// payment, with an explicit Back action as the only reverse edge.
type Stage string

const (
	StageAddress Stage = "address"
	StagePayment Stage = "payment"
)

// CheckoutService owns cart reconciliation, totals and the two-step
// place-order sequence. Order creation and payment recording are two
// separate upstream calls with no transaction spanning them: when the
// payment call fails the order stays (the upstream has no rollback),
// and the failure is recorded locally as a pending payment for the
// retry worker to settle.
type CheckoutService struct {
	api   *indiabills.Client
	state *store.Store
	local *localstore.Store
	cfg   config.CheckoutConfig

	mu                sync.Mutex
	stage             Stage
	shippingAddressID int
	billingAddressID  int
	sameAsShipping    bool
}

// NewCheckoutService constructs a CheckoutService.
func NewCheckoutService(api *indiabills.Client, state *store.Store, local *localstore.Store, cfg config.CheckoutConfig) *CheckoutService {
	return &CheckoutService{api: api, state: state, local: local, cfg: cfg, stage: StageAddress}
}

// Totals prices a reconciled cart. Delivery is a step function: free
// above the configured subtotal threshold, a flat fee otherwise.
func (s *CheckoutService) Totals(items []models.CartItem) models.CartTotals {
	var subtotal, mrpTotal int
	for _, it := range items {
		subtotal += it.Price * it.Qty
		mrpTotal += it.MRP * it.Qty
	}

	delivery := s.cfg.DeliveryFee
	if subtotal > s.cfg.FreeDeliveryAbove {
		delivery = 0
	}

	discount := mrpTotal - subtotal
	if discount < 0 {
		discount = 0
	}

	return models.CartTotals{
		Subtotal: subtotal,
		Discount: discount,
		Delivery: delivery,
		Total:    subtotal + delivery,
	}
}

// Reconcile joins the server cart with live catalog data into display
// cart items and recomputes totals. Called on every checkout entry,
// never cached across navigation. Cart rows whose product no longer
// exists in the catalog are dropped.
func (s *CheckoutService) Reconcile(ctx context.Context) ([]models.CartItem, models.CartTotals, error) {
	cartRes := s.api.Cart(ctx)
	if !cartRes.IsOk() {
		return nil, models.CartTotals{}, errUpstream(cartRes.Status(), cartRes.Message())
	}
	rows := cartRes.Data()

	productsRes := s.api.Products(ctx, "")
	if !productsRes.IsOk() {
		return nil, models.CartTotals{}, errUpstream(productsRes.Status(), productsRes.Message())
	}

	byID := make(map[int]models.Product, len(productsRes.Data()))
	for _, p := range productsRes.Data() {
		byID[p.ID] = p
	}

	items := make([]models.CartItem, 0, len(rows))
	for _, row := range rows {
		p, ok := byID[row.ProductID]
		if !ok {
			log.Warn().Int("product_id", row.ProductID).Msg("Cart row has no catalog match, dropping")
			continue
		}
		items = append(items, models.CartItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.SalePrice,
			MRP:       p.MRP,
			Qty:       row.Qty,
		})
	}

	s.state.SetCartItems(items)
	return items, s.Totals(items), nil
}

// Stage returns the current checkout step.
func (s *CheckoutService) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

// Begin resets the flow to the address step.
func (s *CheckoutService) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = StageAddress
	s.shippingAddressID = 0
	s.billingAddressID = 0
	s.sameAsShipping = false
}

// SelectAddresses records the address choices and advances to the
// payment step. Entry into payment requires a shipping address, and a
// billing address unless sameAsShipping is set; violations come back
// as error values, never panics.
func (s *CheckoutService) SelectAddresses(shippingID, billingID int, sameAsShipping bool) error {
	if shippingID == 0 {
		return utils.ErrNoShippingAddress
	}
	if !sameAsShipping && billingID == 0 {
		return utils.ErrNoBillingAddress
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.shippingAddressID = shippingID
	if sameAsShipping {
		s.billingAddressID = shippingID
	} else {
		s.billingAddressID = billingID
	}
	s.sameAsShipping = sameAsShipping
	s.stage = StagePayment
	return nil
}

// Back returns from the payment step to the address step.
func (s *CheckoutService) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stage = StageAddress
}

// PlaceOrder runs the two-step sequence: check the cart out into an
// order, then create the payment record. The two calls are strictly
// sequential because the second needs the first's order id. A payment
// failure does not undo the order; it is logged, surfaced as a
// payment-pending order and queued for retry.
func (s *CheckoutService) PlaceOrder(ctx context.Context, customerID int, paymentMode string) (*models.Order, error) {
	s.mu.Lock()
	if s.stage != StagePayment {
		s.mu.Unlock()
		return nil, utils.ErrNoShippingAddress
	}
	req := indiabills.CheckoutRequest{
		CustomerID:        customerID,
		ShippingAddressID: s.shippingAddressID,
		BillingAddressID:  s.billingAddressID,
		PaymentMode:       paymentMode,
	}
	s.mu.Unlock()

	items := s.state.CartItems()
	if len(items) == 0 {
		return nil, utils.ErrEmptyCart
	}
	totals := s.Totals(items)

	orderRes := s.api.CheckoutCart(ctx, req)
	if !orderRes.IsOk() {
		log.Error().Int("status", orderRes.Status()).Str("error", orderRes.Message()).Msg("Order checkout failed")
		s.state.SetPopup(models.Popup{Message: "Could not place order", Variant: models.PopupError, Active: true})
		return nil, errUpstream(orderRes.Status(), orderRes.Message())
	}
	order := orderRes.Data()

	// The order exists upstream from this point on, whatever happens to
	// the payment call below.
	s.state.ClearCart()
	s.Begin()
	s.bumpInvoiceCount()

	payRes := s.api.CreatePayment(ctx, models.Payment{
		OrderID:    order.ID,
		CustomerID: order.CustomerID,
		Amount:     totals.Total,
		Mode:       paymentMode,
	})
	if !payRes.IsOk() {
		log.Error().
			Int("order_id", order.ID).
			Int("status", payRes.Status()).
			Str("error", payRes.Message()).
			Msg("Payment record creation failed, order kept; queueing for retry")

		order.Status = models.OrderPaymentPending
		if err := s.local.AddPendingPayment(models.PendingPayment{
			OrderID:    order.ID,
			CustomerID: order.CustomerID,
			Amount:     totals.Total,
			Mode:       paymentMode,
			LastError:  payRes.Message(),
		}); err != nil {
			log.Error().Err(err).Int("order_id", order.ID).Msg("Failed to queue pending payment")
		}

		s.state.SetPopup(models.Popup{
			Message: "Order placed; payment record pending",
			Variant: models.PopupError,
			Active:  true,
		})
		return &order, nil
	}

	order.Status = models.OrderPaid
	s.state.SetPopup(models.Popup{Message: "Order placed", Variant: models.PopupSuccess, Active: true})
	return &order, nil
}

// RetryPendingPayment re-attempts one queued payment record. Returns
// true when the record was settled.
func (s *CheckoutService) RetryPendingPayment(ctx context.Context, p models.PendingPayment) bool {
	res := s.api.CreatePayment(ctx, models.Payment{
		OrderID:    p.OrderID,
		CustomerID: p.CustomerID,
		Amount:     p.Amount,
		Mode:       p.Mode,
	})
	if !res.IsOk() {
		if err := s.local.BumpPendingPayment(p.OrderID, res.Message()); err != nil {
			log.Error().Err(err).Int("order_id", p.OrderID).Msg("Failed to bump pending payment")
		}
		return false
	}

	if err := s.local.RemovePendingPayment(p.OrderID); err != nil {
		log.Error().Err(err).Int("order_id", p.OrderID).Msg("Failed to settle pending payment")
	}
	log.Info().Int("order_id", p.OrderID).Int("attempts", p.Attempts+1).Msg("Pending payment settled")
	return true
}

// bumpInvoiceCount maintains the persisted invoiceCount key.
func (s *CheckoutService) bumpInvoiceCount() {
	var count int
	if _, err := s.local.GetJSON(localstore.KeyInvoiceCount, &count); err != nil {
		log.Warn().Err(err).Msg("Failed to read invoice count")
		return
	}
	if err := s.local.SetJSON(localstore.KeyInvoiceCount, count+1); err != nil {
		log.Warn().Err(err).Msg("Failed to bump invoice count")
	}
}
