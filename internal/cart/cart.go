package cart

// Item describes a product along with its quantity in the cart. Name, price
// and image are snapshotted from the catalog when the item is added, so the
// checkout summary survives later catalog edits.
type Item struct {
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url,omitempty"`
	Quantity    int     `json:"quantity"`
}

// Cart is the per-session cart state. Sessions are identified by a
// client-generated id; the checkout flow is the only writer besides the
// cart endpoints themselves.
type Cart struct {
	SessionID string `json:"session_id"`
	Items     []Item `json:"items"`
	UpdatedAt string `json:"updated_at,omitempty"`
}

// Total returns the sum of line totals.
func (c Cart) Total() float64 {
	var total float64
	for _, it := range c.Items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
