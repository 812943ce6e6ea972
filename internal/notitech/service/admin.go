package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/pkg/slogx"
)

// AdminService holds operator-only capabilities.
type AdminService struct {
	Store   store.Store
	Metrics *Metrics
}

// ResetPassword overwrites a user's password without any proof of
// ownership. Outstanding reset codes for the account are discarded.
func (s *AdminService) ResetPassword(ctx context.Context, email, newPassword string) (err error) {
	defer func() { s.Metrics.observe(EventAdminReset, err) }()

	email = strings.TrimSpace(email)
	if email == "" {
		return invalid("email", "is required")
	}
	if err := validatePassword("newPassword", newPassword); err != nil {
		return err
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case err != nil:
		return serverError(ctx, "lookup user", err)
	}

	hash, err := hashPassword(ctx, newPassword)
	if err != nil {
		return err
	}
	version, err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash)
	if err != nil {
		return serverError(ctx, "update password", err)
	}
	if _, err := s.Store.ResetCodes().DeleteResetCode(ctx, u.Email); err != nil {
		slogx.FromContext(ctx).Warn("reset code not discarded", "user_id", u.ID, "error", err)
	}

	slogx.FromContext(ctx).Info("password reset by admin", "user_id", u.ID, "password_version", version)
	return nil
}
