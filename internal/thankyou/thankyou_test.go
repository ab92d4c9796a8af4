package thankyou

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/techstore-br/techstore-backend/internal/cart"
	"github.com/techstore-br/techstore-backend/internal/order"
	"github.com/techstore-br/techstore-backend/internal/payment"
)

type stubOrders struct {
	orders        map[string]order.Order
	updateCalls   int
	lastStatus    string
	lastPayStatus string
	updateErr     error
}

func (s *stubOrders) Create(ord order.Order) (order.Order, error) { return ord, nil }
func (s *stubOrders) Build(items []cart.Item, c order.Customer, key string) (order.Order, error) {
	return order.Order{}, nil
}

func (s *stubOrders) GetByID(id string) (order.Order, error) {
	ord, ok := s.orders[id]
	if !ok {
		return order.Order{}, order.ErrNotFound
	}
	return ord, nil
}

func (s *stubOrders) UpdateStatus(id, status, paymentStatus string) error {
	s.updateCalls++
	s.lastStatus = status
	s.lastPayStatus = paymentStatus
	return s.updateErr
}

func (s *stubOrders) SetPaymentID(id, paymentID string) error { return nil }

type statusGateway struct {
	status      string
	err         error
	statusCalls int
}

func (g *statusGateway) CreateCardToken(context.Context, payment.CardDetails) (string, error) {
	return "", nil
}

func (g *statusGateway) CreatePayment(context.Context, payment.Request) (*payment.Result, error) {
	return nil, nil
}

func (g *statusGateway) GetStatus(_ context.Context, paymentID string) (string, error) {
	g.statusCalls++
	return g.status, g.err
}

func TestResolve_ApprovedConfirmsOrder(t *testing.T) {
	for _, status := range []string{"approved", "paid"} {
		orders := &stubOrders{orders: map[string]order.Order{
			"ord-1": {ID: "ord-1", Status: order.StatusPending, PaymentID: "pay-1"},
		}}
		gw := &statusGateway{status: status}
		s := NewService(orders, gw, zap.NewNop())

		res, err := s.Resolve(context.Background(), "ord-1", "")
		if err != nil {
			t.Fatalf("status %q: unexpected error: %v", status, err)
		}
		if res.State != StatePaid {
			t.Errorf("status %q: expected verified-paid, got %q", status, res.State)
		}
		if orders.updateCalls != 1 || orders.lastStatus != order.StatusConfirmed || orders.lastPayStatus != "paid" {
			t.Errorf("status %q: expected order confirmed once, got %+v", status, orders)
		}
		if res.Order == nil || res.Order.Status != order.StatusConfirmed {
			t.Errorf("status %q: expected returned order upgraded, got %+v", status, res.Order)
		}
	}
}

func TestResolve_PendingStatusLeavesOrderAlone(t *testing.T) {
	orders := &stubOrders{orders: map[string]order.Order{
		"ord-1": {ID: "ord-1", Status: order.StatusPending, PaymentID: "pay-1"},
	}}
	gw := &statusGateway{status: "pending"}
	s := NewService(orders, gw, zap.NewNop())

	res, err := s.Resolve(context.Background(), "ord-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State != StatePending {
		t.Errorf("expected verified-pending, got %q", res.State)
	}
	if orders.updateCalls != 0 {
		t.Error("order must not be updated for a non-approved payment")
	}
}

func TestResolve_LookupFailureDegradesToPending(t *testing.T) {
	orders := &stubOrders{orders: map[string]order.Order{
		"ord-1": {ID: "ord-1", Status: order.StatusPending, PaymentID: "pay-1"},
	}}
	gw := &statusGateway{err: &payment.Error{StatusCode: 503, Message: "indisponível"}}
	s := NewService(orders, gw, zap.NewNop())

	res, err := s.Resolve(context.Background(), "ord-1", "")
	if err != nil {
		t.Fatalf("lookup failure must not surface as an error, got %v", err)
	}
	if res.State != StatePending {
		t.Errorf("expected verified-pending, got %q", res.State)
	}
	if orders.updateCalls != 0 {
		t.Error("order must not be updated when the lookup failed")
	}
}

func TestResolve_UnknownOrder(t *testing.T) {
	s := NewService(&stubOrders{orders: map[string]order.Order{}}, &statusGateway{}, zap.NewNop())

	res, err := s.Resolve(context.Background(), "missing", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State != StateNotFound {
		t.Errorf("expected not-found, got %q", res.State)
	}
	if res.Order != nil {
		t.Error("not-found resolution must not carry an order")
	}
}

func TestResolve_NoPaymentIDSkipsGateway(t *testing.T) {
	orders := &stubOrders{orders: map[string]order.Order{
		"ord-1": {ID: "ord-1", Status: order.StatusPending},
	}}
	gw := &statusGateway{status: "approved"}
	s := NewService(orders, gw, zap.NewNop())

	res, err := s.Resolve(context.Background(), "ord-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State != StatePending {
		t.Errorf("expected verified-pending, got %q", res.State)
	}
	if gw.statusCalls != 0 {
		t.Error("gateway must not be queried without a payment id")
	}
}

func TestResolve_QueryParamOverridesStoredPaymentID(t *testing.T) {
	orders := &stubOrders{orders: map[string]order.Order{
		"ord-1": {ID: "ord-1", Status: order.StatusPending},
	}}
	gw := &statusGateway{status: "approved"}
	s := NewService(orders, gw, zap.NewNop())

	res, err := s.Resolve(context.Background(), "ord-1", "pay-from-url")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State != StatePaid {
		t.Errorf("expected verified-paid, got %q", res.State)
	}
	if gw.statusCalls != 1 {
		t.Errorf("expected a single status lookup, got %d", gw.statusCalls)
	}
}

func TestResolve_UpdateFailureStillReportsPaid(t *testing.T) {
	orders := &stubOrders{
		orders:    map[string]order.Order{"ord-1": {ID: "ord-1", Status: order.StatusPending, PaymentID: "pay-1"}},
		updateErr: errors.New("db down"),
	}
	s := NewService(orders, &statusGateway{status: "paid"}, zap.NewNop())

	res, err := s.Resolve(context.Background(), "ord-1", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State != StatePaid {
		t.Errorf("expected verified-paid, got %q", res.State)
	}
	if res.Order.Status != order.StatusPending {
		t.Errorf("order must keep its stored status when the update failed, got %q", res.Order.Status)
	}
}
