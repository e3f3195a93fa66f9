package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kiran-dev/eventman/internal/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(users *fakeUserRepo) (*AuthService, *auth.Manager) {
	tokens := auth.NewManager("test-secret", time.Hour)
	// min cost keeps the test fast
	return NewAuthService(users, tokens, 4), tokens
}

func TestRegisterHashesPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users)

	err := svc.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	stored, err := users.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.Password)
	assert.NotEmpty(t, stored.Password)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users)

	req := RegisterRequest{Name: "A", Email: "a@x.com", Password: "secret1"}
	require.NoError(t, svc.Register(context.Background(), req))

	err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterValidation(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users)

	tests := []struct {
		name  string
		req   RegisterRequest
		field string
	}{
		{"missing name", RegisterRequest{Email: "a@x.com", Password: "secret1"}, "name"},
		{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "secret1"}, "email"},
		{"short password", RegisterRequest{Name: "A", Email: "a@x.com", Password: "12345"}, "password"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := svc.Register(context.Background(), tc.req)
			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "expected ValidationError, got %v", err)

			found := false
			for _, fe := range ve.Fields {
				if fe.Field == tc.field {
					found = true
				}
			}
			assert.True(t, found, "expected a %q field error in %+v", tc.field, ve.Fields)
		})
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	users := newFakeUserRepo()
	svc, tokens := newAuthService(users)

	require.NoError(t, svc.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	}))

	token, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)

	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	stored, err := users.GetUserByEmail(context.Background(), "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, stored.ID.Hex(), claims.UserID)
}

func TestLoginInvalidCredentials(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users)

	require.NoError(t, svc.Register(context.Background(), RegisterRequest{
		Name:     "A",
		Email:    "a@x.com",
		Password: "secret1",
	}))

	// Wrong password and unknown email both fail the same way.
	_, err := svc.Login(context.Background(), LoginRequest{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), LoginRequest{Email: "b@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
