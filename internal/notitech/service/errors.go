package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/notitech/pkg/slogx"
)

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrDuplicateUser        = errors.New("user already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrNotFound             = errors.New("not found")
	ErrInvalidAnswer        = errors.New("invalid security answer")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrServerError          = errors.New("server error")
)

// ValidationError names the offending field. It matches ErrInvalidInput
// under errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input: %s %s", e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// serverError logs err with full detail and hides it behind ErrServerError.
func serverError(ctx context.Context, op string, err error) error {
	slogx.FromContext(ctx).Error(op+" failed", "error", err)
	return fmt.Errorf("%w: %s: %w", ErrServerError, op, err)
}
