package user

import (
	"context"
	"errors"
	"strings"
)

type HashFunc func(password string) (string, error)
type CompareFunc func(hash, password string) error

type Service struct {
	users   Repository
	tokens  TokenIssuer
	hash    HashFunc
	compare CompareFunc
}

func NewService(users Repository, tokens TokenIssuer, hash HashFunc, compare CompareFunc) *Service {
	return &Service{
		users:   users,
		tokens:  tokens,
		hash:    hash,
		compare: compare,
	}
}

type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
	City      string
	Age       int
}

func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return ErrMissingFields
	}

	passwordHash, err := s.hash(in.Password)
	if err != nil {
		return err
	}

	_, err = s.users.Create(ctx, User{
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: passwordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		City:         in.City,
		Age:          in.Age,
		Role:         DefaultRole,
	})
	return err
}

// Login deliberately reports the same ErrInvalidCredentials for an unknown
// username and a wrong password, so callers cannot probe which usernames exist.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := s.compare(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(u.Username, u.Role, u.ID)
}

func (s *Service) GetProfile(ctx context.Context, id int64) (Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return Profile{}, err
	}
	return toProfile(u), nil
}

func (s *Service) UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) error {
	return s.users.UpdateProfile(ctx, id, update)
}

// ChangePassword verifies the current password before storing the new hash.
func (s *Service) ChangePassword(ctx context.Context, id int64, oldPassword, newPassword string) error {
	if newPassword == "" {
		return ErrMissingFields
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.compare(u.PasswordHash, oldPassword); err != nil {
		return ErrInvalidCredentials
	}

	passwordHash, err := s.hash(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePassword(ctx, id, passwordHash)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.users.Delete(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Profile, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, toProfile(u))
	}
	return profiles, nil
}

func toProfile(u User) Profile {
	return Profile{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
		City:      u.City,
		Age:       u.Age,
		Role:      u.Role,
	}
}
