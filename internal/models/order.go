package models

import "time"

// OrderStatus tracks an order through the checkout saga. An order whose
// payment-record call failed stays visible as payment-pending until the
// retry worker settles it.
type OrderStatus string

const (
	OrderCreated        OrderStatus = "created"
	OrderPaymentPending OrderStatus = "payment-pending"
	OrderPaid           OrderStatus = "paid"
)

// Order is the upstream order created from a checked-out cart.
type Order struct {
	ID         int         `json:"id"`
	CustomerID int         `json:"customerId"`
	Items      []CartItem  `json:"items"`
	Totals     CartTotals  `json:"totals"`
	Status     OrderStatus `json:"status"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// Payment is the payment record referencing an order. Gateway order id
// and signature come back from the payment provider via the upstream
// API; the console never computes signatures itself.
type Payment struct {
	ID               int       `json:"id,omitempty"`
	OrderID          int       `json:"orderId"`
	CustomerID       int       `json:"customerId"`
	Amount           int       `json:"amount"`
	Mode             string    `json:"mode"`
	GatewayOrderID   string    `json:"gatewayOrderId,omitempty"`
	GatewaySignature string    `json:"gatewaySignature,omitempty"`
	CreatedAt        time.Time `json:"createdAt,omitempty"`
}

// PendingPayment is the locally persisted compensation record written
// when order creation succeeded but the payment call failed.
type PendingPayment struct {
	OrderID    int       `db:"order_id" json:"orderId"`
	CustomerID int       `db:"customer_id" json:"customerId"`
	Amount     int       `db:"amount" json:"amount"`
	Mode       string    `db:"mode" json:"mode"`
	Attempts   int       `db:"attempts" json:"attempts"`
	LastError  string    `db:"last_error" json:"lastError,omitempty"`
	CreatedAt  time.Time `db:"created_at" json:"createdAt"`
}
