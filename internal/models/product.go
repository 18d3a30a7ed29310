package models

import "time"

// Product is a catalog row as served by the upstream API.
// SalePrice is the price charged at checkout; MRP is the printed
// maximum retail price used for discount display.
type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Brand       string    `json:"brand,omitempty"`
	SalePrice   int       `json:"salePrice"`
	MRP         int       `json:"mrp"`
	HSNCode     string    `json:"hsnCode,omitempty"`
	TaxRate     float64   `json:"taxRate,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	Description string    `json:"description,omitempty"`
	InStock     bool      `json:"inStock"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Category is a catalog grouping. Cached locally alongside offers.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Offer is a promotional banner entry from the upstream catalog.
type Offer struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	ImageURL  string     `json:"imageUrl,omitempty"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}
