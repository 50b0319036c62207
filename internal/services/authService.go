package services

import (
	"context"
	"errors"
	"os"

	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/rukundohamza104/radical-design-ltd/internal/metrics"
	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/repositories"
)

var (
	ErrInvalidPassword  = errors.New("invalid password")
	ErrPasswordTooShort = errors.New("password too short")
	ErrOTPNotVerified   = errors.New("otp not verified")
)

const (
	defaultAdminEmail = "info@radicaldesign.com"
	MinPasswordLength = 6
)

// AuthService owns the admin credential: login, logout, and the two password
// write paths (authenticated change and OTP-gated reset). Passwords are
// stored as bcrypt hashes and compared with bcrypt's constant-time check.
type AuthService interface {
	Login(ctx context.Context, password string) (string, error)
	Logout(sessionID string)
	AdminEmail(ctx context.Context) (string, error)
	ChangePassword(ctx context.Context, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, email, newPassword string) error
}

type authService struct {
	credsRepo  repositories.CredentialsRepository
	otpService OTPService
	sessions   SessionStore
}

func NewAuthService(credsRepo repositories.CredentialsRepository, otpService OTPService, sessions SessionStore) AuthService {
	return &authService{credsRepo: credsRepo, otpService: otpService, sessions: sessions}
}

// credentials returns the stored admin record, seeding it on first use from
// ADMIN_BOOTSTRAP_PASSWORD / ADMIN_BOOTSTRAP_EMAIL.
func (a *authService) credentials(ctx context.Context) (*models.AdminCredentials, error) {
	creds, err := a.credsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if creds != nil {
		return creds, nil
	}

	password := os.Getenv("ADMIN_BOOTSTRAP_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	email := os.Getenv("ADMIN_BOOTSTRAP_EMAIL")
	if email == "" {
		email = defaultAdminEmail
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	seeded := &models.AdminCredentials{PasswordHash: string(hash), Email: email}
	if _, err := a.credsRepo.Replace(ctx, seeded); err != nil {
		return nil, err
	}
	log.Info().Str("email", email).Msg("Seeded admin credentials")
	return seeded, nil
}

func (a *authService) Login(ctx context.Context, password string) (string, error) {
	creds, err := a.credentials(ctx)
	if err != nil {
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(password)); err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failed").Inc()
		log.Info().Msg("Admin login rejected")
		return "", ErrInvalidPassword
	}

	sessionID, err := a.sessions.Create()
	if err != nil {
		return "", err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	log.Info().Msg("Admin logged in")
	return sessionID, nil
}

func (a *authService) Logout(sessionID string) {
	a.sessions.Destroy(sessionID)
}

// AdminEmail is the fallback address for password-reset requests that omit
// an email.
func (a *authService) AdminEmail(ctx context.Context) (string, error) {
	creds, err := a.credentials(ctx)
	if err != nil {
		return "", err
	}
	return creds.Email, nil
}

func (a *authService) ChangePassword(ctx context.Context, currentPassword, newPassword string) error {
	creds, err := a.credentials(ctx)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidPassword
	}

	// Length is checked only after the current password passes; a wrong
	// current password takes precedence over a short new one.
	if len(newPassword) < MinPasswordLength {
		return ErrPasswordTooShort
	}

	return a.setPassword(ctx, creds, newPassword)
}

// ResetPassword requires a verified, unexpired OTP for the email; the OTP is
// consumed once the new password is stored.
func (a *authService) ResetPassword(ctx context.Context, email, newPassword string) error {
	otp, err := a.otpService.ConsumeVerified(ctx, email)
	if err != nil {
		return err
	}
	if otp == nil {
		return ErrOTPNotVerified
	}

	creds, err := a.credentials(ctx)
	if err != nil {
		return err
	}
	if err := a.setPassword(ctx, creds, newPassword); err != nil {
		return err
	}

	if err := a.otpService.ClearVerified(ctx, email); err != nil {
		return err
	}
	log.Info().Str("email", email).Msg("Admin password reset via OTP")
	return nil
}

func (a *authService) setPassword(ctx context.Context, creds *models.AdminCredentials, newPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	creds.PasswordHash = string(hash)
	_, err = a.credsRepo.Replace(ctx, creds)
	return err
}
