package settings

import "time"

// Service provides business logic for store settings.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Get returns the stored settings, falling back to Defaults when the row
// does not exist or cannot be read.
func (s *Service) Get() StoreSettings {
	stored, err := s.repo.Get()
	if err != nil {
		return Defaults()
	}
	return stored
}

func (s *Service) Update(in StoreSettings) (StoreSettings, error) {
	in.UpdatedAt = time.Now().UTC().Format(time.RFC3339)
	return s.repo.Save(in)
}
