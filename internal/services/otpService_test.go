package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rukundohamza104/radical-design-ltd/internal/models"
)

type fakeOTPRepository struct {
	mu      sync.Mutex
	records map[string]*models.PasswordResetOTP
}

func newFakeOTPRepository() *fakeOTPRepository {
	return &fakeOTPRepository{records: map[string]*models.PasswordResetOTP{}}
}

func (r *fakeOTPRepository) Insert(ctx context.Context, otp *models.PasswordResetOTP) (*models.PasswordResetOTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	otp.CreatedAt = time.Now()
	r.records[otp.Email] = otp
	return otp, nil
}

func (r *fakeOTPRepository) FindByEmail(ctx context.Context, email string) (*models.PasswordResetOTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	otp, ok := r.records[email]
	if !ok {
		return nil, nil
	}
	cp := *otp
	return &cp, nil
}

func (r *fakeOTPRepository) FindVerified(ctx context.Context, email string) (*models.PasswordResetOTP, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	otp, ok := r.records[email]
	if !ok || !otp.Verified {
		return nil, nil
	}
	cp := *otp
	return &cp, nil
}

func (r *fakeOTPRepository) IncrementAttempts(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if otp, ok := r.records[email]; ok {
		otp.Attempts++
	}
	return nil
}

func (r *fakeOTPRepository) MarkVerified(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if otp, ok := r.records[email]; ok {
		otp.Verified = true
	}
	return nil
}

func (r *fakeOTPRepository) DeleteByEmail(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, email)
	return nil
}

func (r *fakeOTPRepository) DeleteVerified(ctx context.Context, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if otp, ok := r.records[email]; ok && otp.Verified {
		delete(r.records, email)
	}
	return nil
}

func (r *fakeOTPRepository) DeleteExpired(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for email, otp := range r.records {
		if otp.ExpiresAt.Before(time.Now()) {
			delete(r.records, email)
		}
	}
	return nil
}

func (r *fakeOTPRepository) attempts(email string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if otp, ok := r.records[email]; ok {
		return otp.Attempts
	}
	return 0
}

type fakeEmailService struct {
	mu   sync.Mutex
	sent []string
}

func (s *fakeEmailService) SendEmail(to, subject, body string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, to)
	return nil
}

func (s *fakeEmailService) SendPasswordResetOTP(to, otpCode string) error {
	return s.SendEmail(to, "Password Reset", otpCode)
}

func TestOTPServiceIssueAndVerify(t *testing.T) {
	repo := newFakeOTPRepository()
	svc := NewOTPService(repo, &fakeEmailService{})
	ctx := context.Background()

	code, err := svc.Issue(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Len(t, code, 6)

	ok, err := svc.Verify(ctx, "admin@example.com", code)
	require.NoError(t, err)
	assert.True(t, ok)

	// A verified code is single use.
	ok, err = svc.Verify(ctx, "admin@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPServiceWrongCodeIncrementsAttempts(t *testing.T) {
	repo := newFakeOTPRepository()
	svc := NewOTPService(repo, &fakeEmailService{})
	ctx := context.Background()

	code, err := svc.Issue(ctx, "admin@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}

	for i := 1; i <= OTPMaxAttempts; i++ {
		ok, err := svc.Verify(ctx, "admin@example.com", wrong)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, i, repo.attempts("admin@example.com"))
	}

	// The correct code is locked out once the ceiling is reached.
	ok, err := svc.Verify(ctx, "admin@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPServiceUnknownEmailDoesNotIncrement(t *testing.T) {
	repo := newFakeOTPRepository()
	svc := NewOTPService(repo, &fakeEmailService{})

	ok, err := svc.Verify(context.Background(), "nobody@example.com", "123456")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, repo.attempts("nobody@example.com"))
}

func TestOTPServiceExpiredCodeRejected(t *testing.T) {
	repo := newFakeOTPRepository()
	svc := NewOTPService(repo, &fakeEmailService{})
	ctx := context.Background()

	code, err := svc.Issue(ctx, "admin@example.com")
	require.NoError(t, err)

	repo.mu.Lock()
	repo.records["admin@example.com"].ExpiresAt = time.Now().Add(-time.Minute)
	repo.mu.Unlock()

	ok, err := svc.Verify(ctx, "admin@example.com", code)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestOTPServiceReissueDiscardsPrior(t *testing.T) {
	repo := newFakeOTPRepository()
	svc := NewOTPService(repo, &fakeEmailService{})
	ctx := context.Background()

	first, err := svc.Issue(ctx, "admin@example.com")
	require.NoError(t, err)
	second, err := svc.Issue(ctx, "admin@example.com")
	require.NoError(t, err)

	if first != second {
		ok, err := svc.Verify(ctx, "admin@example.com", first)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	ok, err := svc.Verify(ctx, "admin@example.com", second)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestOTPServiceConsumeVerified(t *testing.T) {
	repo := newFakeOTPRepository()
	svc := NewOTPService(repo, &fakeEmailService{})
	ctx := context.Background()

	code, err := svc.Issue(ctx, "admin@example.com")
	require.NoError(t, err)

	otp, err := svc.ConsumeVerified(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Nil(t, otp)

	ok, err := svc.Verify(ctx, "admin@example.com", code)
	require.NoError(t, err)
	require.True(t, ok)

	otp, err = svc.ConsumeVerified(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, otp)
	assert.Equal(t, "admin@example.com", otp.Email)

	require.NoError(t, svc.ClearVerified(ctx, "admin@example.com"))

	otp, err = svc.ConsumeVerified(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Nil(t, otp)
}
