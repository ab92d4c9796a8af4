package admin

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

type stubRepo struct {
	admins []Admin
}

func (r *stubRepo) GetByEmail(email string) (Admin, error) {
	for _, a := range r.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return Admin{}, ErrNotFound
}

func (r *stubRepo) Create(a Admin) (Admin, error) {
	a.ID = len(r.admins) + 1
	r.admins = append(r.admins, a)
	return a, nil
}

func (r *stubRepo) Count() (int, error) {
	return len(r.admins), nil
}

func TestRegister_FirstAdminSucceeds(t *testing.T) {
	repo := &stubRepo{}
	s := NewService(repo)

	created, err := s.Register(Admin{Email: "admin@techstore.com.br", Password: "s3cret", Name: "Admin"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected an id assigned")
	}
	if bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("s3cret")) != nil {
		t.Error("expected the password stored as a bcrypt hash")
	}
}

func TestRegister_ClosedOnceAdminExists(t *testing.T) {
	repo := &stubRepo{admins: []Admin{{ID: 1, Email: "admin@techstore.com.br"}}}
	s := NewService(repo)

	_, err := s.Register(Admin{Email: "other@techstore.com.br", Password: "x", Name: "Other"})
	if err != ErrSignUpClosed {
		t.Fatalf("expected ErrSignUpClosed, got %v", err)
	}
	if len(repo.admins) != 1 {
		t.Errorf("no account may be created after sign-up closes, got %d", len(repo.admins))
	}
}

func TestSignUpRoute_ForbiddenOnceAdminExists(t *testing.T) {
	repo := &stubRepo{admins: []Admin{{ID: 1, Email: "admin@techstore.com.br"}}}
	a := fiber.New()
	NewHandler(NewService(repo), "jwt-secret").RegisterPublicRoutes(a)

	b, _ := json.Marshal(map[string]string{
		"email":    "intruder@example.com",
		"password": "x",
		"name":     "Intruder",
	})
	req := httptest.NewRequest("POST", "/api/v1/admin/sign-up", bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	res, err := a.Test(req, -1)
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()

	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403, got %d", res.StatusCode)
	}
	if len(repo.admins) != 1 {
		t.Errorf("anonymous sign-up must not create an account, got %d admins", len(repo.admins))
	}
}

func TestAuthenticate(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.DefaultCost)
	repo := &stubRepo{admins: []Admin{{ID: 1, Email: "admin@techstore.com.br", Password: string(hash)}}}
	s := NewService(repo)

	if _, err := s.Authenticate("admin@techstore.com.br", "s3cret"); err != nil {
		t.Errorf("expected successful sign-in, got %v", err)
	}
	if _, err := s.Authenticate("admin@techstore.com.br", "wrong"); err != ErrInvalidCredentials {
		t.Errorf("wrong password: expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Authenticate("ghost@techstore.com.br", "s3cret"); err != ErrInvalidCredentials {
		t.Errorf("unknown email: expected ErrInvalidCredentials, got %v", err)
	}
}
