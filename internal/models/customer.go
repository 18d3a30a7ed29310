package models

import "time"

// CustomerKind distinguishes retail customers from GST-registered
// business customers, which carry mandatory tax identifiers.
type CustomerKind string

const (
	CustomerRetail   CustomerKind = "retail"
	CustomerBusiness CustomerKind = "business"
)

// Customer is the customer-creation payload and the cached customer
// view model. Business customers must carry a valid GSTIN; PAN and
// Aadhaar are optional but validated when present.
type Customer struct {
	ID        int          `json:"id,omitempty"`
	Kind      CustomerKind `json:"kind"`
	Name      string       `json:"name" validate:"required"`
	Email     string       `json:"email" validate:"omitempty,email"`
	Phone     string       `json:"phone" validate:"required,inphone"`
	GSTIN     string       `json:"gstin,omitempty" validate:"omitempty,gstin"`
	PAN       string       `json:"pan,omitempty" validate:"omitempty,pan"`
	Aadhaar   string       `json:"aadhaar,omitempty" validate:"omitempty,aadhaar"`
	CreatedAt time.Time    `json:"createdAt,omitempty"`
}

// Address is a shipping or billing address.
type Address struct {
	ID      int    `json:"id,omitempty"`
	Type    string `json:"type,omitempty"`
	Line1   string `json:"line1" validate:"required"`
	Line2   string `json:"line2,omitempty"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	PinCode string `json:"pinCode" validate:"required,pincode"`
}
