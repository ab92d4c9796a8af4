package cart

import (
	"errors"
	"time"

	"github.com/techstore-br/techstore-backend/internal/product"
)

var ErrInvalidQuantity = errors.New("quantity must be positive")

// Service orchestrates cart operations. Product snapshots are taken from the
// catalog at add time.
type Service struct {
	repo     Repository
	products product.ServiceInterface
}

// ServiceInterface is what the checkout orchestrator needs from the cart.
type ServiceInterface interface {
	Get(sessionID string) (Cart, error)
	Clear(sessionID string) error
}

func NewService(repo Repository, products product.ServiceInterface) *Service {
	return &Service{repo: repo, products: products}
}

// Get returns the cart for a session. Unknown sessions resolve to an empty
// cart rather than an error so the storefront can render before the first add.
func (s *Service) Get(sessionID string) (Cart, error) {
	c, err := s.repo.Get(sessionID)
	if err == ErrNotFound {
		return Cart{SessionID: sessionID, Items: []Item{}}, nil
	}
	return c, err
}

// AddItem adds qty units of a product, incrementing an existing line.
func (s *Service) AddItem(sessionID string, productID int, qty int) (Cart, error) {
	if qty <= 0 {
		return Cart{}, ErrInvalidQuantity
	}

	p, err := s.products.GetByID(productID)
	if err != nil {
		return Cart{}, err
	}

	c, err := s.Get(sessionID)
	if err != nil {
		return Cart{}, err
	}

	found := false
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			found = true
			break
		}
	}
	if !found {
		item := Item{
			ProductID:   p.ID,
			ProductName: p.Name,
			Price:       p.Price,
			Quantity:    qty,
		}
		if p.ImageURL != nil {
			item.ImageURL = *p.ImageURL
		}
		c.Items = append(c.Items, item)
	}

	c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Save(c)
}

// SetQuantity updates a line to an absolute quantity. Zero or negative
// removes the line.
func (s *Service) SetQuantity(sessionID string, productID int, qty int) (Cart, error) {
	c, err := s.Get(sessionID)
	if err != nil {
		return Cart{}, err
	}

	items := make([]Item, 0, len(c.Items))
	for _, it := range c.Items {
		if it.ProductID == productID {
			if qty <= 0 {
				continue
			}
			it.Quantity = qty
		}
		items = append(items, it)
	}
	c.Items = items
	c.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Save(c)
}

// RemoveItem deletes a line from the cart.
func (s *Service) RemoveItem(sessionID string, productID int) (Cart, error) {
	return s.SetQuantity(sessionID, productID, 0)
}

// Clear empties a session's cart.
func (s *Service) Clear(sessionID string) error {
	err := s.repo.Clear(sessionID, time.Now().UTC().Format(time.RFC3339))
	if err == ErrNotFound {
		// nothing to clear
		return nil
	}
	return err
}
