package auth

import (
	"context"
	"errors"
	"time"

	"github.com/RajatCoding/jktech-assignment/internal/user"
)

var (
	// ErrInvalidCredentials is returned on a failed login.
	ErrInvalidCredentials = errors.New("incorrect username or password")
	// ErrUnauthorized is returned when a token does not resolve to a usable account.
	ErrUnauthorized = errors.New("unauthorized")
)

type Service struct {
	secret   string
	tokenTTL time.Duration
	users    *user.Service
}

func NewService(secret string, tokenTTL time.Duration, users *user.Service) *Service {
	return &Service{
		secret:   secret,
		tokenTTL: tokenTTL,
		users:    users,
	}
}

type RegisterParams struct {
	Username string
	Email    string
	FullName *string
	Password string
	IsAdmin  bool
}

// Register creates a new account. Username and email uniqueness is checked
// read-before-write; the schema constraints backstop the race window.
func (s *Service) Register(ctx context.Context, p RegisterParams) (user.User, error) {
	if _, err := s.users.GetByUsername(ctx, p.Username); err == nil {
		return user.User{}, user.ErrUsernameTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, err
	}

	if _, err := s.users.GetByEmail(ctx, p.Email); err == nil {
		return user.User{}, user.ErrEmailTaken
	} else if !errors.Is(err, user.ErrNotFound) {
		return user.User{}, err
	}

	hashedPassword, err := HashPassword(p.Password)
	if err != nil {
		return user.User{}, err
	}

	u := user.User{
		Username:       p.Username,
		Email:          p.Email,
		FullName:       p.FullName,
		HashedPassword: hashedPassword,
		IsActive:       true,
		IsAdmin:        p.IsAdmin,
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return user.User{}, err
	}
	return u, nil
}

// Login verifies credentials and mints an access token with the configured TTL.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil || !VerifyPassword(u.HashedPassword, password) {
		return "", ErrInvalidCredentials
	}

	return GenerateToken(s.secret, u.Username, s.tokenTTL)
}

// Authenticate resolves a bearer token to its account. Implements
// httpx.Authenticator.
func (s *Service) Authenticate(ctx context.Context, token string) (*user.User, error) {
	claims, err := ParseToken(s.secret, token)
	if err != nil || claims.Subject == "" {
		return nil, ErrUnauthorized
	}

	u, err := s.users.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !u.IsActive {
		return nil, ErrUnauthorized
	}
	return &u, nil
}
