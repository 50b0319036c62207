package services

import (
	"fmt"
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
	"gopkg.in/gomail.v2"
)

// EmailService is the notification port. Callers that do not care about the
// outcome dispatch in a goroutine and log the returned error.
type EmailService interface {
	SendEmail(to, subject, body string) error
	SendPasswordResetOTP(to, otpCode string) error
}

// NewEmailService selects a provider from EMAIL_PROVIDER: "smtp" sends real
// mail, anything else logs the message instead.
func NewEmailService() EmailService {
	if os.Getenv("EMAIL_PROVIDER") == "smtp" {
		return newSMTPEmailService()
	}
	return &consoleEmailService{from: emailFrom()}
}

func emailFrom() string {
	if from := os.Getenv("EMAIL_FROM"); from != "" {
		return from
	}
	return "noreply@radicaldesign.com"
}

func otpEmailContent(otpCode string) (subject, body string) {
	subject = "RADICAL DESIGN - Password Reset Verification Code"
	body = fmt.Sprintf(
		"<p>You requested to reset your admin account password.</p>"+
			"<p>Your verification code is: <strong>%s</strong></p>"+
			"<p>This code is valid for 10 minutes. Never share it with anyone.</p>"+
			"<p>If you didn't request a password reset, just ignore this email.</p>",
		otpCode)
	return subject, body
}

type smtpEmailService struct {
	from   string
	dialer *gomail.Dialer
}

func newSMTPEmailService() *smtpEmailService {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return &smtpEmailService{
		from:   emailFrom(),
		dialer: gomail.NewDialer(os.Getenv("SMTP_HOST"), port, os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD")),
	}
}

func (e *smtpEmailService) SendEmail(to, subject, body string) error {
	m := gomail.NewMessage()

	m.SetHeader("From", e.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	if err := e.dialer.DialAndSend(m); err != nil {
		return err
	}
	return nil
}

func (e *smtpEmailService) SendPasswordResetOTP(to, otpCode string) error {
	subject, body := otpEmailContent(otpCode)
	return e.SendEmail(to, subject, body)
}

// consoleEmailService writes the message to the log, for development and
// environments without SMTP credentials.
type consoleEmailService struct {
	from string
}

func (e *consoleEmailService) SendEmail(to, subject, body string) error {
	log.Info().
		Str("from", e.from).
		Str("to", to).
		Str("subject", subject).
		Str("body", body).
		Msg("Email (console provider)")
	return nil
}

func (e *consoleEmailService) SendPasswordResetOTP(to, otpCode string) error {
	subject, body := otpEmailContent(otpCode)
	return e.SendEmail(to, subject, body)
}
