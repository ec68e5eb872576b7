package users

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/auth"
	"github.com/marketloop/commerce-backend/internal/identity"
	"github.com/marketloop/commerce-backend/internal/validation"
)

// Accounts is the consumer-facing view of the user store.
type Accounts interface {
	Get(ctx context.Context, userID string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Put(ctx context.Context, u *User) error
}

// Service owns signup, login and the current-account read.
type Service struct {
	store     Accounts
	jwtSecret string
	newID     func() string
}

// NewService creates a user service signing tokens with jwtSecret.
func NewService(store Accounts, jwtSecret string) *Service {
	return &Service{store: store, jwtSecret: jwtSecret, newID: uuid.NewString}
}

// Signup registers an account and returns a signed token for it.
func (s *Service) Signup(ctx context.Context, req validation.SignupRequest) (*AuthResult, error) {
	existing, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if existing != nil {
		return nil, apperr.Validation("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	user := &User{
		UserID:       s.newID(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         RoleUser,
	}
	if err := s.store.Put(ctx, user); err != nil {
		return nil, apperr.Internal(err)
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.UserID, user.Role)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Login checks credentials and returns a signed token. Lookup and password
// failures are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req validation.LoginRequest) (*AuthResult, error) {
	user, err := s.store.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("Invalid credentials")
	}

	token, err := auth.GenerateToken(s.jwtSecret, user.UserID, user.Role)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return &AuthResult{Token: token, User: user}, nil
}

// Me returns the account behind the request principal.
func (s *Service) Me(ctx context.Context, p identity.Principal) (*User, error) {
	if !p.Authenticated() {
		return nil, apperr.NotAuthenticated()
	}
	user, err := s.store.Get(ctx, p.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}
