package services

import (
	"context"
	"errors"

	"hospitality-backend/models"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials deliberately does not say whether the username or the
// password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	store Store
}

func NewAuthService(store Store) *AuthService {
	return &AuthService{store: store}
}

func (s *AuthService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	user, err := s.store.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}
