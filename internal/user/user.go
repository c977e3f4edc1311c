package user

import (
	"context"
	"errors"
	"time"
)

var (
	ErrNotFound           = errors.New("user not found")
	ErrDuplicateUsername  = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMissingFields      = errors.New("username and password are required")
)

const DefaultRole = "user"

type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Phone        string
	City         string
	Age          int
	Role         string
	CreatedAt    time.Time
}

// Profile is the client-facing view of a user; the password hash never
// leaves the service.
type Profile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	City      string `json:"city"`
	Age       int    `json:"age"`
	Role      string `json:"role"`
}

type ProfileUpdate struct {
	Username  string
	FirstName string
	LastName  string
	Phone     string
	City      string
}

type Repository interface {
	Create(ctx context.Context, u User) (int64, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	List(ctx context.Context) ([]User, error)
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) error
	UpdatePassword(ctx context.Context, id int64, passwordHash string) error
	Delete(ctx context.Context, id int64) error
}

// TokenIssuer turns a successful login into a signed bearer token.
type TokenIssuer interface {
	Issue(username, role string, userID int64) (string, error)
}
