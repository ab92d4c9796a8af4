package thankyou

import (
	"context"

	"go.uber.org/zap"

	"github.com/techstore-br/techstore-backend/internal/order"
	"github.com/techstore-br/techstore-backend/internal/payment"
)

// State is the customer-visible outcome of the one-shot post-payment check.
type State string

const (
	StatePaid     State = "verified-paid"
	StatePending  State = "verified-pending"
	StateNotFound State = "not-found"
)

// Resolution carries the resolved state plus the order snapshot the
// confirmation page renders.
type Resolution struct {
	State         State        `json:"state"`
	Order         *order.Order `json:"order,omitempty"`
	PaymentStatus string       `json:"payment_status,omitempty"`
}

// Service performs the order-status reconciliation on the thank-you page:
// fetch the order, ask the gateway for the payment status, and upgrade the
// order to confirmed when the payment is approved. It is a single
// point-in-time check, not a polling loop.
type Service struct {
	orders  order.ServiceInterface
	gateway payment.Gateway
	log     *zap.Logger
}

func NewService(orders order.ServiceInterface, gateway payment.Gateway, log *zap.Logger) *Service {
	return &Service{orders: orders, gateway: gateway, log: log}
}

// Resolve determines the state for an order id and an optional payment id.
// A failed status lookup degrades to pending instead of erroring: the page
// can always render, and a later visit retries the same idempotent check.
func (s *Service) Resolve(ctx context.Context, orderID, paymentID string) (Resolution, error) {
	ord, err := s.orders.GetByID(orderID)
	if err != nil {
		if err == order.ErrNotFound {
			return Resolution{State: StateNotFound}, nil
		}
		return Resolution{}, err
	}

	if paymentID == "" {
		paymentID = ord.PaymentID
	}
	if paymentID == "" {
		return Resolution{State: StatePending, Order: &ord}, nil
	}

	status, err := s.gateway.GetStatus(ctx, paymentID)
	if err != nil {
		s.log.Warn("payment status lookup failed",
			zap.String("order_id", orderID),
			zap.String("payment_id", paymentID),
			zap.Error(err))
		return Resolution{State: StatePending, Order: &ord}, nil
	}

	if !payment.Approved(status) {
		return Resolution{State: StatePending, Order: &ord, PaymentStatus: status}, nil
	}

	// setting the same values again on a repeat visit is harmless
	if err := s.orders.UpdateStatus(orderID, order.StatusConfirmed, "paid"); err != nil {
		s.log.Warn("could not confirm order after approved payment",
			zap.String("order_id", orderID), zap.Error(err))
	} else {
		ord.Status = order.StatusConfirmed
		ord.PaymentStatus = "paid"
	}

	return Resolution{State: StatePaid, Order: &ord, PaymentStatus: status}, nil
}
