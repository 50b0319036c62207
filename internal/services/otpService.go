package services

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/rukundohamza104/radical-design-ltd/internal/metrics"
	"github.com/rukundohamza104/radical-design-ltd/internal/models"
	"github.com/rukundohamza104/radical-design-ltd/internal/repositories"
	"github.com/rukundohamza104/radical-design-ltd/internal/utils"
)

const (
	OTPExpirationMinutes = 10
	OTPMaxAttempts       = 5
)

// OTPService runs the password-reset state machine: per email, at most one
// pending code; a code verifies at most once, before expiry, under the
// attempt ceiling; a verified code is consumed by the password reset.
type OTPService interface {
	Issue(ctx context.Context, email string) (string, error)
	Verify(ctx context.Context, email, code string) (bool, error)
	ConsumeVerified(ctx context.Context, email string) (*models.PasswordResetOTP, error)
	ClearVerified(ctx context.Context, email string) error
}

type otpService struct {
	otpRepo      repositories.OTPRepository
	emailService EmailService
}

func NewOTPService(otpRepo repositories.OTPRepository, emailService EmailService) OTPService {
	return &otpService{otpRepo: otpRepo, emailService: emailService}
}

// Issue discards any prior OTP for the email and stores a fresh code. The
// notification email is dispatched without blocking; delivery failures are
// logged and counted, never surfaced to the caller.
func (s *otpService) Issue(ctx context.Context, email string) (string, error) {
	if err := s.otpRepo.DeleteByEmail(ctx, email); err != nil {
		return "", err
	}

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return "", err
	}

	otp := &models.PasswordResetOTP{
		Code:      code,
		Email:     email,
		ExpiresAt: time.Now().Add(OTPExpirationMinutes * time.Minute),
		Verified:  false,
		Attempts:  0,
	}

	if _, err := s.otpRepo.Insert(ctx, otp); err != nil {
		return "", err
	}

	metrics.OTPIssuedTotal.Inc()
	log.Info().Str("email", email).Msg("Password reset OTP issued")

	go func() {
		if err := s.emailService.SendPasswordResetOTP(email, code); err != nil {
			metrics.EmailSendsTotal.WithLabelValues("failed").Inc()
			log.Error().Err(err).Str("email", email).Msg("Failed to send OTP email")
			return
		}
		metrics.EmailSendsTotal.WithLabelValues("success").Inc()
		log.Info().Str("email", email).Msg("OTP email sent")
	}()

	return code, nil
}

// Verify succeeds only when the email's pending record carries this exact
// code, is unverified and unexpired, and sits under the attempt ceiling.
// Success marks the record verified (single use). Any failure increments the
// record's attempt counter; an email with no record at all is simply
// rejected, there is no counter to increment.
func (s *otpService) Verify(ctx context.Context, email, code string) (bool, error) {
	otp, err := s.otpRepo.FindByEmail(ctx, email)
	if err != nil {
		return false, err
	}

	if otp == nil {
		metrics.OTPVerificationsTotal.WithLabelValues("failed").Inc()
		return false, nil
	}

	if otp.Code != code || otp.Verified || otp.ExpiresAt.Before(time.Now()) || otp.Attempts >= OTPMaxAttempts {
		if err := s.otpRepo.IncrementAttempts(ctx, email); err != nil {
			return false, err
		}
		metrics.OTPVerificationsTotal.WithLabelValues("failed").Inc()
		log.Info().Str("email", email).Msg("OTP verification rejected")
		return false, nil
	}

	if err := s.otpRepo.MarkVerified(ctx, email); err != nil {
		return false, err
	}

	metrics.OTPVerificationsTotal.WithLabelValues("success").Inc()
	log.Info().Str("email", email).Msg("OTP verified")
	return true, nil
}

// ConsumeVerified returns the verified, still-unexpired OTP for email, or nil.
func (s *otpService) ConsumeVerified(ctx context.Context, email string) (*models.PasswordResetOTP, error) {
	otp, err := s.otpRepo.FindVerified(ctx, email)
	if err != nil {
		return nil, err
	}
	if otp == nil {
		return nil, nil
	}
	if otp.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return otp, nil
}

func (s *otpService) ClearVerified(ctx context.Context, email string) error {
	return s.otpRepo.DeleteVerified(ctx, email)
}
