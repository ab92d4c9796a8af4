package order

// Order statuses. An order never reaches StatusConfirmed without an observed
// approved/paid gateway status (enforced by the reconciliation flow).
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusFailed    = "failed"
)

// Order is the store's own record of a purchase attempt, distinct from the
// gateway's payment record.
type Order struct {
	ID              string  `json:"id"`
	CustomerName    string  `json:"customer_name"`
	CustomerEmail   string  `json:"customer_email"`
	CustomerCPF     string  `json:"customer_cpf"`
	CustomerPhone   string  `json:"customer_phone,omitempty"`
	CustomerAddress string  `json:"customer_address,omitempty"`
	TotalAmount     float64 `json:"total_amount"`
	Status          string  `json:"status"`
	PaymentID       string  `json:"payment_id,omitempty"`
	PaymentStatus   string  `json:"payment_status,omitempty"`
	IdempotencyKey  string  `json:"-"`
	Items           []Item  `json:"order_items"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// Item is an order line. Name and price are snapshotted at order time so
// later catalog edits do not retroactively alter historical orders.
type Item struct {
	ID          int     `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   int     `json:"product_id"`
	ProductName string  `json:"product_name"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	TotalPrice  float64 `json:"total_price"`
}
