package utils

import "errors"

// Common application errors used across services.
var (
	ErrInvalidToken       = errors.New("INVALID_TOKEN")
	ErrNoSession          = errors.New("NO_SESSION")
	ErrSessionExpired     = errors.New("SESSION_EXPIRED")
	ErrEmptyCart          = errors.New("EMPTY_CART")
	ErrNoShippingAddress  = errors.New("NO_SHIPPING_ADDRESS")
	ErrNoBillingAddress   = errors.New("NO_BILLING_ADDRESS")
	ErrOrderNotFound      = errors.New("ORDER_NOT_FOUND")
	ErrProductNotFound    = errors.New("PRODUCT_NOT_FOUND")
	ErrSelectionNotFound  = errors.New("SELECTION_NOT_FOUND")
	ErrUpstreamRejected   = errors.New("UPSTREAM_REJECTED")
	ErrPaymentNotRecorded = errors.New("PAYMENT_NOT_RECORDED")
)
