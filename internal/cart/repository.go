package cart

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("cart not found")

// Repository provides access to session carts. Implementations return
// ErrNotFound for unknown sessions on Get; Save upserts.
type Repository interface {
	Get(sessionID string) (Cart, error)
	Save(c Cart) (Cart, error)
	Clear(sessionID string, updatedAt string) error
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu    sync.RWMutex
	carts map[string]Cart
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{carts: make(map[string]Cart)}
}

func (r *InMemoryRepository) Get(sessionID string) (Cart, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[sessionID]
	if !ok {
		return Cart{}, ErrNotFound
	}
	return c, nil
}

func (r *InMemoryRepository) Save(c Cart) (Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.carts[c.SessionID] = c
	return c, nil
}

func (r *InMemoryRepository) Clear(sessionID string, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[sessionID]
	if !ok {
		return ErrNotFound
	}
	c.Items = nil
	if updatedAt != "" {
		c.UpdatedAt = updatedAt
	}
	r.carts[sessionID] = c
	return nil
}
