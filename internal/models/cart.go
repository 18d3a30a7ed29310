package models

// CartRow is a raw server-side cart entry: a product reference and a
// quantity, nothing else. Display fields come from the catalog join.
type CartRow struct {
	ProductID int `json:"productId"`
	Qty       int `json:"qty"`
}

// CartItem is a reconciled cart line: a CartRow joined with its
// catalog product. Recomputed on every checkout entry, never cached
// across navigation.
type CartItem struct {
	ProductID int    `json:"productId"`
	Name      string `json:"name"`
	Price     int    `json:"price"`
	MRP       int    `json:"mrp"`
	Qty       int    `json:"qty"`
}

// Selection is a pre-cart shopping selection keyed by product id.
type Selection struct {
	ProductID int    `json:"productId"`
	Variant   string `json:"variant,omitempty"`
	Qty       int    `json:"qty"`
}

// CartTotals is the priced summary of a reconciled cart.
type CartTotals struct {
	Subtotal int `json:"subtotal"`
	Discount int `json:"discount"`
	Delivery int `json:"delivery"`
	Total    int `json:"total"`
}
