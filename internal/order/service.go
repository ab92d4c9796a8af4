package order

import (
	"errors"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/techstore-br/techstore-backend/internal/cart"
)

var (
	ErrEmptyCart     = errors.New("empty cart")
	ErrTotalMismatch = errors.New("order total does not match item totals")
)

// Customer holds the checkout form fields persisted on the order. Transient
// card data never lands here.
type Customer struct {
	Name    string
	Email   string
	CPF     string
	Phone   string
	Address string
}

// Service provides business logic for orders.
type Service struct {
	repo Repository
}

// ServiceInterface is the surface the checkout and reconciliation flows use.
type ServiceInterface interface {
	Create(ord Order) (Order, error)
	Build(items []cart.Item, customer Customer, idempotencyKey string) (Order, error)
	GetByID(id string) (Order, error)
	UpdateStatus(id string, status, paymentStatus string) error
	SetPaymentID(id, paymentID string) error
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Build assembles a pending order from cart contents, snapshotting name and
// price per line. Line totals are price x quantity and the order total is
// their sum; both are computed here rather than trusted from the client.
func (s *Service) Build(items []cart.Item, customer Customer, idempotencyKey string) (Order, error) {
	if len(items) == 0 {
		return Order{}, ErrEmptyCart
	}
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	}

	now := time.Now().UTC().Format(time.RFC3339)
	ord := Order{
		ID:              uuid.NewString(),
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerCPF:     customer.CPF,
		CustomerPhone:   customer.Phone,
		CustomerAddress: customer.Address,
		Status:          StatusPending,
		IdempotencyKey:  idempotencyKey,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var total float64
	for _, it := range items {
		lineTotal := round2(it.Price * float64(it.Quantity))
		ord.Items = append(ord.Items, Item{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Price:       it.Price,
			Quantity:    it.Quantity,
			TotalPrice:  lineTotal,
		})
		total += lineTotal
	}
	ord.TotalAmount = round2(total)

	return ord, nil
}

func (s *Service) Create(ord Order) (Order, error) {
	if len(ord.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	var total float64
	for _, it := range ord.Items {
		total += it.TotalPrice
	}
	if round2(total) != round2(ord.TotalAmount) {
		return Order{}, ErrTotalMismatch
	}

	return s.repo.Create(ord)
}

func (s *Service) GetByID(id string) (Order, error) {
	return s.repo.GetByID(id)
}

func (s *Service) List() ([]Order, error) {
	return s.repo.List()
}

func (s *Service) UpdateStatus(id string, status, paymentStatus string) error {
	return s.repo.UpdateStatus(id, status, paymentStatus, time.Now().UTC().Format(time.RFC3339))
}

func (s *Service) SetPaymentID(id, paymentID string) error {
	return s.repo.SetPaymentID(id, paymentID, time.Now().UTC().Format(time.RFC3339))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
