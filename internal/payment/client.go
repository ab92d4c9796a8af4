package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/techstore-br/techstore-backend/internal/config"
)

// Error is a gateway-reported failure. The message comes from the gateway's
// own error envelope when present; no retryable/terminal classification is
// attempted.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("gateway returned %d: %s", e.StatusCode, e.Message)
}

// Gateway is the remote payment surface the checkout and reconciliation
// flows depend on.
type Gateway interface {
	CreateCardToken(ctx context.Context, card CardDetails) (string, error)
	CreatePayment(ctx context.Context, req Request) (*Result, error)
	GetStatus(ctx context.Context, paymentID string) (string, error)
}

// Client is a thin HTTP wrapper over the NivusPay transaction API. Every
// call carries the static secret in the Authorization header and the
// client-wide request timeout; there is no internal retry loop.
type Client struct {
	baseURL string
	secret  string
	http    *http.Client
	log     *zap.Logger
}

func NewClient(cfg config.Gateway, log *zap.Logger) *Client {
	return &Client{
		baseURL: cfg.BaseURL,
		secret:  cfg.SecretKey,
		http:    &http.Client{Timeout: cfg.Timeout},
		log:     log,
	}
}

type cardTokenRequest struct {
	HolderName          string `json:"holderName"`
	CardNumber          string `json:"cardNumber"`
	CardExpirationMonth string `json:"cardExpirationMonth"`
	CardExpirationYear  string `json:"cardExpirationYear"`
	CardCVV             string `json:"cardCvv"`
}

type cardTokenResponse struct {
	Token string `json:"token"`
}

// CreateCardToken exchanges raw card fields for an opaque token. This is the
// only place card data leaves the process, and none of it is logged.
func (c *Client) CreateCardToken(ctx context.Context, card CardDetails) (string, error) {
	if err := card.Validate(); err != nil {
		return "", err
	}
	month, year, err := ParseExpiry(card.Expiry)
	if err != nil {
		return "", err
	}

	body := cardTokenRequest{
		HolderName:          card.HolderName,
		CardNumber:          NormalizeCardNumber(card.Number),
		CardExpirationMonth: month,
		CardExpirationYear:  year,
		CardCVV:             card.CVC,
	}

	var resp cardTokenResponse
	if err := c.post(ctx, "/transaction.createCardToken", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("gateway returned an empty card token")
	}
	return resp.Token, nil
}

type purchaseRequest struct {
	Amount        float64 `json:"amount"`
	PaymentMethod Method  `json:"paymentMethod"`
	CustomerName  string  `json:"customerName"`
	CustomerEmail string  `json:"customerEmail"`
	CustomerCPF   string  `json:"customerCpf"`
	CustomerPhone string  `json:"customerPhone"`
	OrderID       string  `json:"orderId"`
	Items         []Item  `json:"items"`

	// card variant only
	CreditCardToken string `json:"creditCardToken,omitempty"`
	Installments    int    `json:"installments,omitempty"`
}

// CreatePayment issues the payment-creation call for either request shape.
func (c *Client) CreatePayment(ctx context.Context, req Request) (*Result, error) {
	env := req.envelope()
	body := purchaseRequest{
		Amount:        env.Amount,
		PaymentMethod: req.method(),
		CustomerName:  env.CustomerName,
		CustomerEmail: env.CustomerEmail,
		CustomerCPF:   env.CustomerCPF,
		CustomerPhone: env.CustomerPhone,
		OrderID:       env.OrderID,
		Items:         env.Items,
	}

	switch r := req.(type) {
	case PixRequest:
	case CardRequest:
		if r.CardToken == "" {
			return nil, fmt.Errorf("card payment requires a card token")
		}
		body.CreditCardToken = r.CardToken
		body.Installments = r.Installments
		if body.Installments <= 0 {
			body.Installments = 1
		}
	default:
		return nil, fmt.Errorf("unsupported payment request type %T", req)
	}

	var result Result
	if err := c.post(ctx, "/transaction.purchase", body, &result); err != nil {
		c.log.Error("payment creation failed",
			zap.String("order_id", env.OrderID),
			zap.String("method", string(req.method())),
			zap.Error(err))
		return nil, err
	}
	if result.PaymentID == "" {
		return nil, fmt.Errorf("gateway returned an empty payment id")
	}
	return &result, nil
}

// RawCardToken forwards an arbitrary tokenization payload and returns the
// gateway's response verbatim. Used by the proxy endpoint, which passes the
// storefront body through without reshaping it.
func (c *Client) RawCardToken(ctx context.Context, payload interface{}) (json.RawMessage, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/transaction.createCardToken", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.secret)

	res, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err != nil {
		return nil, err
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var envelope struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(body, &envelope); err == nil && envelope.Message != "" {
			return nil, &Error{StatusCode: res.StatusCode, Message: envelope.Message}
		}
		return nil, &Error{StatusCode: res.StatusCode, Message: "unexpected gateway response"}
	}
	return json.RawMessage(body), nil
}

type statusResponse struct {
	Status string `json:"status"`
}

// GetStatus looks up the current gateway status for a payment id.
func (c *Client) GetStatus(ctx context.Context, paymentID string) (string, error) {
	u := c.baseURL + "/transaction.getPayment?id=" + url.QueryEscape(paymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", c.secret)

	res, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return "", decodeError(res)
	}

	var sr statusResponse
	if err := json.NewDecoder(res.Body).Decode(&sr); err != nil {
		return "", err
	}
	return sr.Status, nil
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.secret)

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return decodeError(res)
	}
	return json.NewDecoder(res.Body).Decode(out)
}

func decodeError(res *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return &Error{StatusCode: res.StatusCode, Message: envelope.Message}
	}
	return &Error{StatusCode: res.StatusCode, Message: "unexpected gateway response"}
}
