package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/marketloop/commerce-backend/internal/apperr"
	"github.com/marketloop/commerce-backend/internal/auth"
	"github.com/marketloop/commerce-backend/internal/identity"
	"github.com/marketloop/commerce-backend/internal/validation"
)

type fakeAccounts struct {
	byID map[string]*User
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byID: map[string]*User{}}
}

func (f *fakeAccounts) Get(ctx context.Context, userID string) (*User, error) {
	return f.byID[userID], nil
}

func (f *fakeAccounts) GetByEmail(ctx context.Context, email string) (*User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeAccounts) Put(ctx context.Context, u *User) error {
	cp := *u
	f.byID[u.UserID] = &cp
	return nil
}

const testSecret = "unit-test-secret"

func signupReq() validation.SignupRequest {
	return validation.SignupRequest{Name: "Priya", Email: "priya@example.com", Password: "secret1"}
}

func TestSignup(t *testing.T) {
	store := newFakeAccounts()
	svc := NewService(store, testSecret)
	ctx := context.Background()

	res, err := svc.Signup(ctx, signupReq())
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, RoleUser, res.User.Role, "signup never grants admin")

	stored := store.byID[res.User.UserID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret1", stored.PasswordHash, "password must be hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))

	// Token claims must resolve back to this account.
	claims, err := auth.ParseToken(testSecret, res.Token)
	require.NoError(t, err)
	assert.Equal(t, res.User.UserID, claims.UserID)
}

func TestSignup_DuplicateEmail(t *testing.T) {
	store := newFakeAccounts()
	svc := NewService(store, testSecret)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupReq())
	require.NoError(t, err)

	_, err = svc.Signup(ctx, signupReq())
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	assert.Equal(t, "Email already registered", apperr.MessageOf(err))
}

func TestLogin(t *testing.T) {
	store := newFakeAccounts()
	svc := NewService(store, testSecret)
	ctx := context.Background()

	_, err := svc.Signup(ctx, signupReq())
	require.NoError(t, err)

	res, err := svc.Login(ctx, validation.LoginRequest{Email: "priya@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)

	// Unknown account and wrong password yield the same message.
	_, err = svc.Login(ctx, validation.LoginRequest{Email: "nobody@example.com", Password: "secret1"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", apperr.MessageOf(err))

	_, err = svc.Login(ctx, validation.LoginRequest{Email: "priya@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", apperr.MessageOf(err))
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(err))
}

func TestMe(t *testing.T) {
	store := newFakeAccounts()
	svc := NewService(store, testSecret)
	ctx := context.Background()

	res, err := svc.Signup(ctx, signupReq())
	require.NoError(t, err)

	_, err = svc.Me(ctx, identity.Principal{})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthentication, apperr.KindOf(err))

	me, err := svc.Me(ctx, identity.Principal{Role: identity.User, ID: res.User.UserID})
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", me.Email)
}
