package checkout

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/techstore-br/techstore-backend/internal/cart"
	"github.com/techstore-br/techstore-backend/internal/order"
	"github.com/techstore-br/techstore-backend/internal/payment"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrUnsupportedMethod = errors.New("unsupported payment method")
	ErrOrderCreation     = errors.New("order creation failed")
	ErrPaymentCreation   = errors.New("payment creation failed")
)

// Input is one checkout submission: customer data, the selected payment
// method and, for card payments, the transient card fields.
type Input struct {
	SessionID      string
	Customer       order.Customer
	Method         payment.Method
	Card           *payment.CardDetails
	Installments   int
	IdempotencyKey string
}

// Confirmation is handed to the order-confirmation view on success.
type Confirmation struct {
	OrderID       string `json:"order_id"`
	PaymentID     string `json:"payment_id"`
	PaymentStatus string `json:"payment_status"`
	PixCode       string `json:"pix_code,omitempty"`
	PixQRCode     string `json:"pix_qr_code,omitempty"`
}

// Service drives a checkout submission: validate, create the order, create
// the payment, clear the cart. Exactly one order and one payment attempt per
// submission; duplicates are absorbed by the idempotency key.
type Service struct {
	carts   cart.ServiceInterface
	orders  order.ServiceInterface
	gateway payment.Gateway
	log     *zap.Logger
}

func NewService(carts cart.ServiceInterface, orders order.ServiceInterface, gateway payment.Gateway, log *zap.Logger) *Service {
	return &Service{carts: carts, orders: orders, gateway: gateway, log: log}
}

// Submit runs the sequential checkout algorithm. All validation happens
// before any gateway call; on failure the cart is left untouched so the
// customer can retry.
func (s *Service) Submit(ctx context.Context, in Input) (*Confirmation, error) {
	if err := s.validate(in); err != nil {
		return nil, err
	}

	crt, err := s.carts.Get(in.SessionID)
	if err != nil {
		return nil, err
	}
	if len(crt.Items) == 0 {
		return nil, ErrEmptyCart
	}

	ord, err := s.orders.Build(crt.Items, in.Customer, in.IdempotencyKey)
	if err != nil {
		if err == order.ErrEmptyCart {
			return nil, ErrEmptyCart
		}
		return nil, err
	}

	created, err := s.orders.Create(ord)
	if err != nil {
		s.log.Error("order creation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrOrderCreation, err)
	}

	// a reused idempotency key hands back the earlier order; if that order
	// already has a payment, the duplicate submission must not start another
	if created.PaymentID != "" {
		s.log.Info("duplicate checkout absorbed",
			zap.String("order_id", created.ID),
			zap.String("payment_id", created.PaymentID))
		return &Confirmation{
			OrderID:       created.ID,
			PaymentID:     created.PaymentID,
			PaymentStatus: created.PaymentStatus,
		}, nil
	}

	req, err := s.buildPaymentRequest(ctx, created, in)
	if err != nil {
		s.log.Error("payment request build failed", zap.String("order_id", created.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentCreation, err)
	}

	result, err := s.gateway.CreatePayment(ctx, req)
	if err != nil {
		s.log.Error("payment creation failed", zap.String("order_id", created.ID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPaymentCreation, err)
	}

	if err := s.orders.SetPaymentID(created.ID, result.PaymentID); err != nil {
		s.log.Warn("could not store payment id on order",
			zap.String("order_id", created.ID), zap.Error(err))
	}

	if err := s.carts.Clear(in.SessionID); err != nil {
		// the payment went through; a stale cart is an inconvenience,
		// not a failure
		s.log.Warn("could not clear cart after checkout",
			zap.String("session_id", in.SessionID), zap.Error(err))
	}

	s.log.Info("checkout completed",
		zap.String("order_id", created.ID),
		zap.String("payment_id", result.PaymentID),
		zap.String("method", string(in.Method)))

	return &Confirmation{
		OrderID:       created.ID,
		PaymentID:     result.PaymentID,
		PaymentStatus: result.Status,
		PixCode:       result.PixCode,
		PixQRCode:     result.PixQRCode,
	}, nil
}

func (s *Service) validate(in Input) error {
	switch in.Method {
	case payment.MethodPix:
	case payment.MethodCreditCard:
		if in.Card == nil {
			return payment.ErrMissingCardFields
		}
		if err := in.Card.Validate(); err != nil {
			return err
		}
	default:
		return ErrUnsupportedMethod
	}
	return nil
}

func (s *Service) buildPaymentRequest(ctx context.Context, ord order.Order, in Input) (payment.Request, error) {
	items := make([]payment.Item, 0, len(ord.Items))
	for _, it := range ord.Items {
		items = append(items, payment.Item{
			ID:       it.ProductID,
			Name:     it.ProductName,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	env := payment.Envelope{
		Amount:        ord.TotalAmount,
		CustomerName:  ord.CustomerName,
		CustomerEmail: ord.CustomerEmail,
		CustomerCPF:   ord.CustomerCPF,
		CustomerPhone: ord.CustomerPhone,
		OrderID:       ord.ID,
		Items:         items,
	}

	switch in.Method {
	case payment.MethodPix:
		return payment.PixRequest{Envelope: env}, nil
	case payment.MethodCreditCard:
		token, err := s.gateway.CreateCardToken(ctx, *in.Card)
		if err != nil {
			return nil, err
		}
		return payment.CardRequest{Envelope: env, CardToken: token, Installments: in.Installments}, nil
	default:
		return nil, ErrUnsupportedMethod
	}
}
