package admin

import "errors"

// Admin is a back-office account. Password holds the bcrypt hash and is
// stripped before responses leave the handler.
type Admin struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at,omitempty"`
}

var (
	ErrNotFound           = errors.New("admin not found")
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrSignUpClosed       = errors.New("sign-up is closed")
)

// Repository defines persistence operations for admin accounts.
type Repository interface {
	GetByEmail(email string) (Admin, error)
	Create(a Admin) (Admin, error)
	Count() (int, error)
}
