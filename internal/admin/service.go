package admin

import "golang.org/x/crypto/bcrypt"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates the first admin account. Once any admin exists the
// public sign-up is closed; further accounts are provisioned by an admin.
func (s *Service) Register(a Admin) (Admin, error) {
	n, err := s.repo.Count()
	if err != nil {
		return Admin{}, err
	}
	if n > 0 {
		return Admin{}, ErrSignUpClosed
	}

	if _, err := s.repo.GetByEmail(a.Email); err == nil {
		return Admin{}, ErrEmailExists
	} else if err != ErrNotFound {
		return Admin{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(a.Password), bcrypt.DefaultCost)
	if err != nil {
		return Admin{}, err
	}

	a.Password = string(hashed)
	return s.repo.Create(a)
}

func (s *Service) Authenticate(email, password string) (Admin, error) {
	a, err := s.repo.GetByEmail(email)
	if err != nil {
		return Admin{}, ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(a.Password), []byte(password)) != nil {
		return Admin{}, ErrInvalidCredentials
	}

	return a, nil
}
