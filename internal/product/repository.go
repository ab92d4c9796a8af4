package product

import "errors"

var ErrNotFound = errors.New("product not found")

// Repository defines persistence operations for the catalog.
type Repository interface {
	List(category string) ([]Product, error)
	ListByIDs(ids []int) ([]Product, error)
	GetByID(id int) (Product, error)
	Create(p Product) (Product, error)
	Update(id int, p Product) (Product, error)
	Delete(id int) error
}
