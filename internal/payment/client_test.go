package payment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/techstore-br/techstore-backend/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(config.Gateway{
		BaseURL:   srv.URL,
		SecretKey: "sk-test",
		Timeout:   5 * time.Second,
	}, zap.NewNop())
}

func TestCreateCardToken(t *testing.T) {
	var gotAuth string
	var gotBody cardTokenRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction.createCardToken" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(map[string]string{"token": "tok_123"})
	})

	token, err := client.CreateCardToken(context.Background(), CardDetails{
		HolderName: "JOAO SILVA",
		Number:     "4111 1111 1111 1111",
		Expiry:     "09/27",
		CVC:        "123",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "tok_123" {
		t.Errorf("unexpected token %q", token)
	}
	if gotAuth != "sk-test" {
		t.Errorf("unexpected Authorization header %q", gotAuth)
	}
	if gotBody.CardNumber != "4111111111111111" {
		t.Errorf("card number not normalized: %q", gotBody.CardNumber)
	}
	if gotBody.CardExpirationMonth != "09" || gotBody.CardExpirationYear != "2027" {
		t.Errorf("unexpected expiry %s/%s", gotBody.CardExpirationMonth, gotBody.CardExpirationYear)
	}
}

func TestCreateCardToken_InvalidExpiryNeverCallsGateway(t *testing.T) {
	calls := 0
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
	})

	_, err := client.CreateCardToken(context.Background(), CardDetails{
		HolderName: "JOAO", Number: "4111", Expiry: "13-2025", CVC: "123",
	})
	if err != ErrInvalidExpiry {
		t.Fatalf("expected ErrInvalidExpiry, got %v", err)
	}
	if calls != 0 {
		t.Errorf("expected no gateway calls, got %d", calls)
	}
}

func TestCreatePayment_Pix(t *testing.T) {
	var gotBody purchaseRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction.purchase" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(Result{
			PaymentID: "pay_1",
			Status:    "pending",
			PixCode:   "000201pixcode",
			PixQRCode: "data:image/png;base64,AAA",
		})
	})

	env := Envelope{
		Amount:        25.50,
		CustomerName:  "Maria",
		CustomerEmail: "maria@example.com",
		CustomerCPF:   "12345678900",
		OrderID:       "ord-1",
		Items:         []Item{{ID: 1, Name: "Fone", Price: 25.50, Quantity: 1}},
	}
	result, err := client.CreatePayment(context.Background(), PixRequest{Envelope: env})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PaymentID != "pay_1" || result.PixCode == "" {
		t.Errorf("unexpected result %+v", result)
	}
	if gotBody.PaymentMethod != MethodPix {
		t.Errorf("unexpected method %q", gotBody.PaymentMethod)
	}
	if gotBody.CreditCardToken != "" {
		t.Errorf("pix request must not carry a card token")
	}
	if gotBody.OrderID != "ord-1" {
		t.Errorf("unexpected order id %q", gotBody.OrderID)
	}
}

func TestCreatePayment_Card(t *testing.T) {
	var gotBody purchaseRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(Result{PaymentID: "pay_2", Status: "approved"})
	})

	req := CardRequest{
		Envelope:  Envelope{Amount: 10, OrderID: "ord-2"},
		CardToken: "tok_123",
	}
	result, err := client.CreatePayment(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != "approved" {
		t.Errorf("unexpected status %q", result.Status)
	}
	if gotBody.CreditCardToken != "tok_123" {
		t.Errorf("expected card token forwarded, got %q", gotBody.CreditCardToken)
	}
	if gotBody.Installments != 1 {
		t.Errorf("expected installments default 1, got %d", gotBody.Installments)
	}
}

func TestCreatePayment_CardWithoutToken(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("gateway must not be called")
	})

	if _, err := client.CreatePayment(context.Background(), CardRequest{}); err == nil {
		t.Fatal("expected error for card request without token")
	}
}

func TestCreatePayment_GatewayError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"message": "invalid cpf"})
	})

	_, err := client.CreatePayment(context.Background(), PixRequest{})
	if err == nil {
		t.Fatal("expected error")
	}
	gwErr, ok := err.(*Error)
	if !ok {
		t.Fatalf("expected *Error, got %T", err)
	}
	if gwErr.Message != "invalid cpf" || gwErr.StatusCode != http.StatusUnprocessableEntity {
		t.Errorf("unexpected gateway error %+v", gwErr)
	}
}

func TestGetStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/transaction.getPayment" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("id") != "pay_1" {
			t.Errorf("unexpected id %q", r.URL.Query().Get("id"))
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "approved"})
	})

	status, err := client.GetStatus(context.Background(), "pay_1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" {
		t.Errorf("unexpected status %q", status)
	}
}
