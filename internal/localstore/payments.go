package localstore

import (
	"time"

	"github.com/indiabills/console/internal/models"
)

// AddPendingPayment records a payment that could not be created
// upstream after its order succeeded. Idempotent per order id.
func (s *Store) AddPendingPayment(p models.PendingPayment) error {
	_, err := s.db.Exec(`
		INSERT INTO pending_payments (order_id, customer_id, amount, mode, attempts, last_error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(order_id) DO UPDATE SET
			attempts = excluded.attempts,
			last_error = excluded.last_error
	`, p.OrderID, p.CustomerID, p.Amount, p.Mode, p.Attempts, p.LastError, time.Now().UTC())
	return err
}

// PendingPayments lists all unsettled payment records, oldest first.
func (s *Store) PendingPayments() ([]models.PendingPayment, error) {
	var out []models.PendingPayment
	err := s.db.Select(&out, `
		SELECT order_id, customer_id, amount, mode, attempts, last_error, created_at
		FROM pending_payments
		ORDER BY created_at ASC
	`)
	return out, err
}

// BumpPendingPayment increments the attempt counter and records the
// latest failure reason.
func (s *Store) BumpPendingPayment(orderID int, lastError string) error {
	_, err := s.db.Exec(`
		UPDATE pending_payments SET attempts = attempts + 1, last_error = ? WHERE order_id = ?
	`, lastError, orderID)
	return err
}

// RemovePendingPayment settles a record once the payment exists upstream.
func (s *Store) RemovePendingPayment(orderID int) error {
	_, err := s.db.Exec(`DELETE FROM pending_payments WHERE order_id = ?`, orderID)
	return err
}
