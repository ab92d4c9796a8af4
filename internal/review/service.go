package review

import "errors"

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

func (s *Service) Create(rev Review) (Review, error) {
	if rev.Rating < 1 || rev.Rating > 5 {
		return Review{}, ErrInvalidRating
	}
	return s.repo.Create(rev)
}

func (s *Service) ListByProduct(productID int) ([]Review, error) {
	return s.repo.ListByProduct(productID)
}

func (s *Service) Delete(id int) error {
	return s.repo.Delete(id)
}
