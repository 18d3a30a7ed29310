package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/indiabills/console/internal/localstore"
	"github.com/indiabills/console/internal/service"
)

// PaymentRetryWorker periodically re-attempts queued payment records:
// orders whose checkout succeeded but whose payment-creation call
// failed. It is the compensating half of the checkout saga.
type PaymentRetryWorker struct {
	checkout *service.CheckoutService
	local    *localstore.Store
	interval time.Duration
}

// NewPaymentRetryWorker constructs a PaymentRetryWorker.
func NewPaymentRetryWorker(checkout *service.CheckoutService, local *localstore.Store, interval time.Duration) *PaymentRetryWorker {
	return &PaymentRetryWorker{
		checkout: checkout,
		local:    local,
		interval: interval,
	}
}

// Start begins the periodic retry loop until context is canceled.
func (w *PaymentRetryWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting payment retry worker")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Payment retry worker stopped")
			return
		}
	}
}

func (w *PaymentRetryWorker) run(ctx context.Context) {
	pending, err := w.local.PendingPayments()
	if err != nil {
		log.Error().Err(err).Msg("Failed to list pending payments")
		return
	}
	if len(pending) == 0 {
		return
	}
	log.Info().Int("count", len(pending)).Msg("Processing pending payments")

	for _, p := range pending {
		// Respect cancellation between items
		select {
		case <-ctx.Done():
			return
		default:
		}

		if !w.checkout.RetryPendingPayment(ctx, p) {
			log.Warn().
				Int("order_id", p.OrderID).
				Int("attempts", p.Attempts+1).
				Msg("Pending payment retry failed")
		}
	}
}
