package services

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
)

type fakeCredentialsRepository struct {
	mu    sync.Mutex
	creds *models.AdminCredentials
}

func (r *fakeCredentialsRepository) Get(ctx context.Context) (*models.AdminCredentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.creds == nil {
		return nil, nil
	}
	cp := *r.creds
	return &cp, nil
}

func (r *fakeCredentialsRepository) Replace(ctx context.Context, creds *models.AdminCredentials) (*models.AdminCredentials, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *creds
	r.creds = &cp
	return creds, nil
}

func newTestAuthService(t *testing.T) (AuthService, OTPService, SessionStore) {
	t.Helper()
	t.Setenv("ADMIN_BOOTSTRAP_PASSWORD", "admin123")
	t.Setenv("ADMIN_BOOTSTRAP_EMAIL", "admin@example.com")

	otpSvc := NewOTPService(newFakeOTPRepository(), &fakeEmailService{})
	sessions := NewMemorySessionStore(0)
	return NewAuthService(&fakeCredentialsRepository{}, otpSvc, sessions), otpSvc, sessions
}

func TestAuthServiceLogin(t *testing.T) {
	auth, _, sessions := newTestAuthService(t)
	ctx := context.Background()

	sessionID, err := auth.Login(ctx, "admin123")
	require.NoError(t, err)
	assert.True(t, sessions.IsActive(sessionID))

	_, err = auth.Login(ctx, "wrong-password")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	auth.Logout(sessionID)
	assert.False(t, sessions.IsActive(sessionID))
}

func TestAuthServiceChangePassword(t *testing.T) {
	auth, _, _ := newTestAuthService(t)
	ctx := context.Background()

	err := auth.ChangePassword(ctx, "wrong", "newpassword")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	err = auth.ChangePassword(ctx, "admin123", "abc")
	assert.ErrorIs(t, err, ErrPasswordTooShort)

	// Current password precedence over length.
	err = auth.ChangePassword(ctx, "wrong", "abc")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	require.NoError(t, auth.ChangePassword(ctx, "admin123", "newpassword"))

	_, err = auth.Login(ctx, "admin123")
	assert.ErrorIs(t, err, ErrInvalidPassword)

	_, err = auth.Login(ctx, "newpassword")
	assert.NoError(t, err)
}

func TestAuthServiceResetPassword(t *testing.T) {
	auth, otpSvc, _ := newTestAuthService(t)
	ctx := context.Background()

	email, err := auth.AdminEmail(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)

	err = auth.ResetPassword(ctx, email, "resetpass")
	assert.ErrorIs(t, err, ErrOTPNotVerified)

	code, err := otpSvc.Issue(ctx, email)
	require.NoError(t, err)

	// Issuing alone is not enough, the code must be verified first.
	err = auth.ResetPassword(ctx, email, "resetpass")
	assert.ErrorIs(t, err, ErrOTPNotVerified)

	ok, err := otpSvc.Verify(ctx, email, code)
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, auth.ResetPassword(ctx, email, "resetpass"))

	_, err = auth.Login(ctx, "resetpass")
	assert.NoError(t, err)

	// The verified OTP is consumed; a second reset needs a fresh flow.
	err = auth.ResetPassword(ctx, email, "anotherpass")
	assert.ErrorIs(t, err, ErrOTPNotVerified)
}
