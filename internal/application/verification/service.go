package verification

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"strings"
	"time"

	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/otp"
)

// CodeStore is the persistence contract for OTP challenge rows. The email is
// the row key: Replace atomically supersedes any earlier code for the address.
type CodeStore interface {
	Replace(ctx context.Context, v *domain.VerificationCode) error
	Get(ctx context.Context, email string) (*domain.VerificationCode, error)
	Delete(ctx context.Context, email, code string) error
	MarkVerified(ctx context.Context, email, code string) error
}

// Mailer delivers the verification email.
type Mailer interface {
	SendHTML(to, subject, htmlBody string) error
}

type Service interface {
	// RequestCode issues a fresh code for the email and mails it.
	RequestCode(ctx context.Context, req domain.RequestCodeInput) error
	// RedeemCode validates a submitted code. Incorrect/expired/used outcomes
	// are returned in the result, not as errors.
	RedeemCode(ctx context.Context, req domain.RedeemCodeInput) (domain.RedeemResult, error)
}

type ServiceDeps struct {
	Codes          CodeStore
	Mailer         Mailer
	CodeTTL        time.Duration
	ResendInterval time.Duration
}

type service struct {
	codes          CodeStore
	mailer         Mailer
	codeTTL        time.Duration
	resendInterval time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		codes:          deps.Codes,
		mailer:         deps.Mailer,
		codeTTL:        deps.CodeTTL,
		resendInterval: deps.ResendInterval,
	}
}

func (s *service) RequestCode(ctx context.Context, req domain.RequestCodeInput) error {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return fmt.Errorf("email is required: %w", domain.ErrBadRequest)
	}

	// Server-side resend throttle: the previous code must be old enough (or
	// gone) before a new one is issued for the same address.
	if prev, err := s.codes.Get(ctx, email); err == nil {
		issuedAt := time.Unix(prev.IssuedAt, 0)
		if time.Since(issuedAt) < s.resendInterval && time.Now().Unix() < prev.ExpiresAt {
			return fmt.Errorf("a code was sent moments ago, wait before retrying: %w", domain.ErrTooManyRequests)
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	code, expiresAt, err := otp.New(s.codeTTL)
	if err != nil {
		return err
	}

	now := time.Now()
	v := &domain.VerificationCode{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt.Unix(),
		IssuedAt:  now.Unix(),
		Verified:  false,
	}
	// Atomic replace: any prior code for this email stops matching here.
	if err := s.codes.Replace(ctx, v); err != nil {
		return err
	}

	body, err := renderCodeEmail(req.FullName, code, s.codeTTL)
	if err != nil {
		return err
	}
	if err := s.mailer.SendHTML(email, "Your verification code", body); err != nil {
		// The row is already stored; the caller can re-request and the
		// replace semantics absorb the orphan.
		slog.Error("verification email not delivered", "email", email, "err", err)
		return fmt.Errorf("failed to send verification code: %w", domain.ErrDeliveryFailed)
	}
	return nil
}

func (s *service) RedeemCode(ctx context.Context, req domain.RedeemCodeInput) (domain.RedeemResult, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	code := strings.TrimSpace(req.Code)
	if email == "" || code == "" {
		return domain.RedeemResult{}, fmt.Errorf("email and code are required: %w", domain.ErrBadRequest)
	}

	v, err := s.codes.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.RedeemResult{Valid: false, Reason: domain.ReasonIncorrect}, nil
		}
		return domain.RedeemResult{}, err
	}
	if v.Code != code {
		return domain.RedeemResult{Valid: false, Reason: domain.ReasonIncorrect}, nil
	}
	if time.Now().Unix() >= v.ExpiresAt {
		// Lazy expiry: the row is only purged when a redemption discovers it.
		if err := s.codes.Delete(ctx, email, code); err != nil {
			slog.Warn("failed to delete expired code", "email", email, "err", err)
		}
		return domain.RedeemResult{Valid: false, Reason: domain.ReasonExpired}, nil
	}
	if v.Verified {
		return domain.RedeemResult{Valid: false, Reason: domain.ReasonAlreadyUsed}, nil
	}
	if err := s.codes.MarkVerified(ctx, email, code); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			// Another caller redeemed or a re-issuance replaced it in between.
			return domain.RedeemResult{Valid: false, Reason: domain.ReasonAlreadyUsed}, nil
		}
		return domain.RedeemResult{}, err
	}
	return domain.RedeemResult{Valid: true}, nil
}

var codeEmailTmpl = template.Must(template.New("code").Parse(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h1 style="color: #16a34a; text-align: center;">Hello {{if .Name}}{{.Name}}{{else}}there{{end}}!</h1>
  <p style="font-size: 16px; text-align: center;">Your verification code is:</p>
  <div style="background-color: #f3f4f6; padding: 20px; border-radius: 10px; text-align: center; margin: 20px 0;">
    <span style="font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #16a34a;">{{.Code}}</span>
  </div>
  <p style="font-size: 14px; color: #6b7280; text-align: center;">This code is valid for {{.Minutes}} minutes.</p>
  <p style="font-size: 14px; color: #6b7280; text-align: center;">If you did not request this code, please ignore this email.</p>
</div>`))

func renderCodeEmail(name, code string, ttl time.Duration) (string, error) {
	var b strings.Builder
	err := codeEmailTmpl.Execute(&b, struct {
		Name    string
		Code    string
		Minutes int
	}{Name: name, Code: code, Minutes: int(ttl.Minutes())})
	if err != nil {
		return "", fmt.Errorf("render verification email: %w", err)
	}
	return b.String(), nil
}
