package models

import "time"

// Supplier is an upstream supplier record, read-only in the console.
type Supplier struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	GSTIN   string `json:"gstin,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	PinCode string `json:"pinCode,omitempty"`
}

// Warehouse is an upstream warehouse record.
type Warehouse struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location,omitempty"`
	PinCode  string `json:"pinCode,omitempty"`
}

// Batch is a stock batch tied to a product and warehouse.
type Batch struct {
	ID          int        `json:"id"`
	ProductID   int        `json:"productId"`
	WarehouseID int        `json:"warehouseId"`
	Quantity    int        `json:"quantity"`
	CostPrice   int        `json:"costPrice,omitempty"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
}

// Subscription is a recurring billing plan attached to a customer.
type Subscription struct {
	ID         int        `json:"id"`
	CustomerID int        `json:"customerId"`
	PlanName   string     `json:"planName"`
	Amount     int        `json:"amount"`
	Interval   string     `json:"interval"`
	Active     bool       `json:"active"`
	NextBillAt *time.Time `json:"nextBillAt,omitempty"`
}
