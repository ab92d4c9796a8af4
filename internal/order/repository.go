package order

import "errors"

var ErrNotFound = errors.New("order not found")

// Repository defines persistence operations for orders.
type Repository interface {
	// Create persists the order and its items in one transaction. When the
	// idempotency key was already used, the previously created order is
	// returned instead of inserting a duplicate.
	Create(ord Order) (Order, error)
	GetByID(id string) (Order, error)
	List() ([]Order, error)
	// UpdateStatus performs a partial update of status and payment fields.
	UpdateStatus(id string, status, paymentStatus string, updatedAt string) error
	SetPaymentID(id string, paymentID string, updatedAt string) error
}
