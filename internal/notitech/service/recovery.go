package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/pkg/cryptox"
	"github.com/aussiebroadwan/notitech/pkg/slogx"
)

// DefaultResetCodeTTL is how long an emailed code can be redeemed.
const DefaultResetCodeTTL = 30 * time.Minute

const (
	resetCodeMin = 1000
	resetCodeMax = 9999

	resetCodeSubject = "NotiTech password reset code"
)

// RecoveryService runs the emailed-code password reset flow.
type RecoveryService struct {
	Store    store.Store
	Notifier Notifier
	CodeTTL  time.Duration
	Metrics  *Metrics

	Now          func() time.Time
	GenerateCode func() (string, error)
}

// RequestResetCode issues a fresh code for email, replacing any earlier
// one, and hands it to the notifier. The plaintext code is returned so
// development builds can echo it back.
func (s *RecoveryService) RequestResetCode(ctx context.Context, email string) (code string, err error) {
	defer func() { s.Metrics.observe(EventResetCodeIssue, err) }()

	email = strings.TrimSpace(email)
	if email == "" {
		return "", invalid("email", "is required")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "", ErrNotFound
	case err != nil:
		return "", serverError(ctx, "lookup user", err)
	}

	code, err = s.generate()
	if err != nil {
		return "", serverError(ctx, "generate reset code", err)
	}

	now := s.now()
	ttl := s.ttl()
	rc := domain.ResetCode{
		Email:     u.Email,
		CodeHash:  fingerprintCode(u.Email, code),
		ExpiresAt: now.Add(ttl),
		CreatedAt: now,
	}
	if err := s.Store.ResetCodes().UpsertResetCode(ctx, rc); err != nil {
		return "", serverError(ctx, "store reset code", err)
	}

	body := fmt.Sprintf("Your password reset code is %s. It expires in %d minutes.", code, int(ttl.Minutes()))
	if err := s.notifier().Send(ctx, u.Email, resetCodeSubject, body); err != nil {
		return "", serverError(ctx, "send reset code", err)
	}

	slogx.FromContext(ctx).Info("reset code issued", "user_id", u.ID, "expires_at", rc.ExpiresAt)
	return code, nil
}

// VerifyResetCode checks a code without consuming it.
func (s *RecoveryService) VerifyResetCode(ctx context.Context, email, code string) (err error) {
	defer func() { s.Metrics.observe(EventResetCodeVerify, err) }()

	email, code = strings.TrimSpace(email), strings.TrimSpace(code)
	if email == "" || code == "" {
		return invalid("code", "email and code are required")
	}
	return s.checkCode(ctx, s.Store.ResetCodes(), email, code)
}

// ResetPasswordWithCode replaces the password and consumes the code in one
// transaction. A code can be redeemed once.
func (s *RecoveryService) ResetPasswordWithCode(ctx context.Context, email, code, newPassword string) (err error) {
	defer func() { s.Metrics.observe(EventPasswordReset, err) }()

	email, code = strings.TrimSpace(email), strings.TrimSpace(code)
	if email == "" || code == "" {
		return invalid("code", "email and code are required")
	}
	if err := validatePassword("newPassword", newPassword); err != nil {
		return err
	}

	// Reject bad codes before paying for a password hash.
	if err := s.checkCode(ctx, s.Store.ResetCodes(), email, code); err != nil {
		return err
	}

	hash, err := hashPassword(ctx, newPassword)
	if err != nil {
		return err
	}

	var userID string
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := s.checkCode(ctx, tx.ResetCodes(), email, code); err != nil {
			return err
		}

		// Consume first: a concurrent redeem of the same code deletes
		// nothing and gives up.
		n, err := tx.ResetCodes().DeleteResetCode(ctx, email)
		if err != nil {
			return serverError(ctx, "consume reset code", err)
		}
		if n == 0 {
			return ErrInvalidOrExpiredCode
		}

		u, err := tx.Users().GetUserByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidOrExpiredCode
			}
			return serverError(ctx, "lookup user", err)
		}
		if _, err := tx.Users().UpdatePasswordHash(ctx, u.ID, hash); err != nil {
			return serverError(ctx, "update password", err)
		}
		userID = u.ID
		return nil
	})
	switch {
	case err == nil:
	case errors.Is(err, ErrInvalidOrExpiredCode), errors.Is(err, ErrServerError):
		return err
	default:
		return serverError(ctx, "reset password", err)
	}

	slogx.FromContext(ctx).Info("password reset with code", "user_id", userID)
	return nil
}

func (s *RecoveryService) checkCode(ctx context.Context, codes store.ResetCodes, email, code string) error {
	rc, err := codes.GetResetCode(ctx, email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrInvalidOrExpiredCode
	case err != nil:
		return serverError(ctx, "lookup reset code", err)
	}

	want := fingerprintCode(email, code)
	if subtle.ConstantTimeCompare([]byte(rc.CodeHash), []byte(want)) != 1 {
		return ErrInvalidOrExpiredCode
	}
	if !rc.ValidAt(s.now()) {
		return ErrInvalidOrExpiredCode
	}
	return nil
}

func (s *RecoveryService) generate() (string, error) {
	if s.GenerateCode != nil {
		return s.GenerateCode()
	}
	return cryptox.GenerateNumericCode(resetCodeMin, resetCodeMax)
}

func (s *RecoveryService) notifier() Notifier {
	if s.Notifier == nil {
		return LogNotifier{}
	}
	return s.Notifier
}

func (s *RecoveryService) ttl() time.Duration {
	if s.CodeTTL <= 0 {
		return DefaultResetCodeTTL
	}
	return s.CodeTTL
}

func (s *RecoveryService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// fingerprintCode binds the code to its email so a leaked table row can
// not be replayed against another account.
func fingerprintCode(email, code string) string {
	return cryptox.FingerprintToken(email + ":" + code)
}
