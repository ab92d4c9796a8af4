package payment

// Method selects the gateway payload shape. The two variants carry disjoint
// fields, so requests are modeled as a closed union instead of one struct
// with conditionally-filled members.
type Method string

const (
	MethodPix        Method = "PIX"
	MethodCreditCard Method = "CREDIT_CARD"
)

// Item is a line item forwarded to the gateway.
type Item struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

// Envelope carries the fields common to every payment request: amount,
// customer identity and the store-side order the payment belongs to.
type Envelope struct {
	Amount        float64
	CustomerName  string
	CustomerEmail string
	CustomerCPF   string
	CustomerPhone string
	OrderID       string
	Items         []Item
}

// Request is the closed set of gateway payment payloads. CreatePayment
// switches over the concrete type; an unknown implementation is rejected.
type Request interface {
	method() Method
	envelope() Envelope
}

// PixRequest asks the gateway for a PIX charge. No card block.
type PixRequest struct {
	Envelope
}

func (p PixRequest) method() Method     { return MethodPix }
func (p PixRequest) envelope() Envelope { return p.Envelope }

// CardRequest carries an opaque card token obtained from the tokenization
// endpoint. Raw card fields never appear here.
type CardRequest struct {
	Envelope
	CardToken    string
	Installments int
}

func (r CardRequest) method() Method     { return MethodCreditCard }
func (r CardRequest) envelope() Envelope { return r.Envelope }

// Result is what the gateway returns on payment creation. It is handed to
// the confirmation view and not persisted by this flow; the gateway stays
// the system of record for payment state.
type Result struct {
	PaymentID string `json:"paymentId"`
	Status    string `json:"status"`
	PixCode   string `json:"pixCode,omitempty"`
	PixQRCode string `json:"pixQrCode,omitempty"`
}

// Approved reports whether a gateway status string counts as paid.
func Approved(status string) bool {
	return status == "approved" || status == "paid"
}
