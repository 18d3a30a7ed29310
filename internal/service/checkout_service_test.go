package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/indiabills/console/internal/config"
	"github.com/indiabills/console/internal/localstore"
	"github.com/indiabills/console/internal/models"
	"github.com/indiabills/console/internal/store"
	"github.com/indiabills/console/internal/utils"
	"github.com/indiabills/console/pkg/indiabills"
)

var checkoutCfg = config.CheckoutConfig{FreeDeliveryAbove: 499, DeliveryFee: 40}

// upstream is a scriptable stand-in for the IndiaBills backend.
type upstream struct {
	srv          *httptest.Server
	failPayments atomic.Bool
	paymentCalls atomic.Int32
}

func newUpstream(t *testing.T) *upstream {
	t.Helper()
	u := &upstream{}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/cart", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []models.CartRow{
			{ProductID: 1, Qty: 2},
			{ProductID: 99, Qty: 1}, // no catalog match, must be dropped
		})
	})
	mux.HandleFunc("GET /v1/products", func(w http.ResponseWriter, r *http.Request) {
		writeData(w, []models.Product{
			{ID: 1, Name: "Basmati Rice 5kg", SalePrice: 300, MRP: 350},
			{ID: 2, Name: "Sunflower Oil 1l", SalePrice: 100, MRP: 120},
		})
	})
	mux.HandleFunc("POST /v1/orders/checkout", func(w http.ResponseWriter, r *http.Request) {
		var req indiabills.CheckoutRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		writeData(w, models.Order{ID: 77, CustomerID: req.CustomerID, Status: models.OrderCreated})
	})
	mux.HandleFunc("POST /v1/payments", func(w http.ResponseWriter, r *http.Request) {
		u.paymentCalls.Add(1)
		if u.failPayments.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			fmt.Fprint(w, `{"status":500,"error":"payment service unavailable"}`)
			return
		}
		var p models.Payment
		require.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		p.ID = 1001
		writeData(w, p)
	})

	u.srv = httptest.NewServer(mux)
	t.Cleanup(u.srv.Close)
	return u
}

func writeData(w http.ResponseWriter, data any) {
	raw, _ := json.Marshal(data)
	fmt.Fprintf(w, `{"status":200,"data":%s}`, raw)
}

func newCheckout(t *testing.T, u *upstream) (*CheckoutService, *store.Store, *localstore.Store) {
	t.Helper()

	local, err := localstore.Open(filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = local.Close() })

	api := indiabills.NewClient(indiabills.Config{BaseURL: u.srv.URL})
	state := store.New()
	return NewCheckoutService(api, state, local, checkoutCfg), state, local
}

func TestTotalsDeliveryStepFunction(t *testing.T) {
	svc := NewCheckoutService(nil, store.New(), nil, checkoutCfg)

	tests := []struct {
		name  string
		items []models.CartItem
		want  models.CartTotals
	}{
		{
			name:  "above threshold ships free",
			items: []models.CartItem{{Price: 300, MRP: 300, Qty: 2}},
			want:  models.CartTotals{Subtotal: 600, Discount: 0, Delivery: 0, Total: 600},
		},
		{
			name:  "below threshold pays flat fee",
			items: []models.CartItem{{Price: 100, MRP: 100, Qty: 2}},
			want:  models.CartTotals{Subtotal: 200, Discount: 0, Delivery: 40, Total: 240},
		},
		{
			name:  "exactly at threshold still pays",
			items: []models.CartItem{{Price: 499, MRP: 499, Qty: 1}},
			want:  models.CartTotals{Subtotal: 499, Discount: 0, Delivery: 40, Total: 539},
		},
		{
			name:  "empty cart",
			items: nil,
			want:  models.CartTotals{Subtotal: 0, Discount: 0, Delivery: 40, Total: 40},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.Totals(tt.items))
		})
	}
}

func TestTotalsDiscountInvariant(t *testing.T) {
	svc := NewCheckoutService(nil, store.New(), nil, checkoutCfg)

	items := []models.CartItem{
		{Price: 300, MRP: 350, Qty: 2},
		{Price: 100, MRP: 120, Qty: 3},
	}
	totals := svc.Totals(items)

	// discount == Σ(mrp×qty) − Σ(price×qty)
	assert.Equal(t, (350*2+120*3)-(300*2+100*3), totals.Discount)
	assert.GreaterOrEqual(t, totals.Discount, 0)
	assert.Equal(t, totals.Subtotal+totals.Delivery, totals.Total)
}

func TestReconcileJoinsCartWithCatalog(t *testing.T) {
	u := newUpstream(t)
	svc, state, _ := newCheckout(t, u)

	items, totals, err := svc.Reconcile(context.Background())
	require.NoError(t, err)

	// The row without a catalog match is dropped.
	require.Len(t, items, 1)
	assert.Equal(t, models.CartItem{ProductID: 1, Name: "Basmati Rice 5kg", Price: 300, MRP: 350, Qty: 2}, items[0])
	assert.Equal(t, models.CartTotals{Subtotal: 600, Discount: 100, Delivery: 0, Total: 600}, totals)

	// The reconciled cart is mirrored into the state store.
	assert.Equal(t, items, state.CartItems())
}

func TestAddressStepGatesPayment(t *testing.T) {
	u := newUpstream(t)
	svc, _, _ := newCheckout(t, u)

	svc.Begin()
	assert.Equal(t, StageAddress, svc.Stage())

	assert.ErrorIs(t, svc.SelectAddresses(0, 0, false), utils.ErrNoShippingAddress)
	assert.ErrorIs(t, svc.SelectAddresses(5, 0, false), utils.ErrNoBillingAddress)
	assert.Equal(t, StageAddress, svc.Stage())

	require.NoError(t, svc.SelectAddresses(5, 0, true))
	assert.Equal(t, StagePayment, svc.Stage())

	svc.Back()
	assert.Equal(t, StageAddress, svc.Stage())
}

func TestPlaceOrderRequiresPaymentStage(t *testing.T) {
	u := newUpstream(t)
	svc, _, _ := newCheckout(t, u)

	svc.Begin()
	_, err := svc.PlaceOrder(context.Background(), 5, "upi")
	assert.ErrorIs(t, err, utils.ErrNoShippingAddress)
}

func TestPlaceOrderHappyPath(t *testing.T) {
	u := newUpstream(t)
	svc, state, local := newCheckout(t, u)

	svc.Begin()
	_, _, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.SelectAddresses(5, 0, true))

	order, err := svc.PlaceOrder(context.Background(), 5, "upi")
	require.NoError(t, err)
	assert.Equal(t, 77, order.ID)
	assert.Equal(t, models.OrderPaid, order.Status)

	// Cart cleared, flow reset, nothing queued for retry.
	assert.Empty(t, state.CartItems())
	assert.Equal(t, StageAddress, svc.Stage())
	pending, err := local.PendingPayments()
	require.NoError(t, err)
	assert.Empty(t, pending)

	assert.Equal(t, models.PopupSuccess, state.Popup().Variant)
}

func TestPaymentFailureKeepsOrder(t *testing.T) {
	u := newUpstream(t)
	svc, state, local := newCheckout(t, u)

	svc.Begin()
	_, _, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.SelectAddresses(5, 0, true))

	u.failPayments.Store(true)
	order, err := svc.PlaceOrder(context.Background(), 5, "upi")

	// The order exists even though the payment call failed: no rollback.
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Equal(t, 77, order.ID)
	assert.Equal(t, models.OrderPaymentPending, order.Status)
	assert.Equal(t, int32(1), u.paymentCalls.Load())

	// The failure is queued as a compensation record.
	pending, err := local.PendingPayments()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 77, pending[0].OrderID)
	assert.Equal(t, 600, pending[0].Amount)
	assert.Contains(t, pending[0].LastError, "payment service unavailable")

	assert.Equal(t, models.PopupError, state.Popup().Variant)
}

func TestRetrySettlesPendingPayment(t *testing.T) {
	u := newUpstream(t)
	svc, _, local := newCheckout(t, u)

	svc.Begin()
	_, _, err := svc.Reconcile(context.Background())
	require.NoError(t, err)
	require.NoError(t, svc.SelectAddresses(5, 0, true))

	u.failPayments.Store(true)
	_, err = svc.PlaceOrder(context.Background(), 5, "upi")
	require.NoError(t, err)

	pending, err := local.PendingPayments()
	require.NoError(t, err)
	require.Len(t, pending, 1)

	// Still failing: the record stays and the attempt counter moves.
	assert.False(t, svc.RetryPendingPayment(context.Background(), pending[0]))
	pending, err = local.PendingPayments()
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 1, pending[0].Attempts)

	// Upstream recovers: the record settles.
	u.failPayments.Store(false)
	assert.True(t, svc.RetryPendingPayment(context.Background(), pending[0]))
	pending, err = local.PendingPayments()
	require.NoError(t, err)
	assert.Empty(t, pending)
}
