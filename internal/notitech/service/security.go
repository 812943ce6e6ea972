package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/pkg/cryptox"
	"github.com/aussiebroadwan/notitech/pkg/slogx"
)

// SecurityService runs the security-question recovery flow.
type SecurityService struct {
	Store   store.Store
	Metrics *Metrics
}

// Questions lists the questions a user may enrol with.
func (s *SecurityService) Questions() []domain.SecurityQuestion {
	return domain.SecurityQuestions
}

// SecurityQuestion returns the question the user enrolled with.
func (s *SecurityService) SecurityQuestion(ctx context.Context, email string) (domain.SecurityQuestion, error) {
	u, err := s.enrolledUser(ctx, email)
	if err != nil {
		return "", err
	}
	return domain.SecurityQuestion(u.SecurityQuestion), nil
}

// AnswerResult is informational. Resetting the password verifies the answer
// again.
type AnswerResult struct {
	Verified bool
	UserID   string
}

// VerifySecurityAnswer checks answer for the (email, question) pair.
func (s *SecurityService) VerifySecurityAnswer(ctx context.Context, email, question, answer string) (res AnswerResult, err error) {
	defer func() {
		if err == nil && !res.Verified {
			s.Metrics.observe(EventSecurityAnswer, ErrInvalidAnswer)
			return
		}
		s.Metrics.observe(EventSecurityAnswer, err)
	}()

	email = strings.TrimSpace(email)
	if email == "" {
		return AnswerResult{}, invalid("email", "is required")
	}
	q, ok := domain.ParseSecurityQuestion(question)
	if !ok {
		return AnswerResult{}, ErrNotFound
	}

	u, err := s.Store.Users().GetUserByEmailAndQuestion(ctx, email, string(q))
	switch {
	case errors.Is(err, store.ErrNotFound):
		return AnswerResult{}, ErrNotFound
	case err != nil:
		return AnswerResult{}, serverError(ctx, "lookup user", err)
	}

	if err := verifyAnswer(ctx, answer, u.SecurityAnswer); err != nil {
		if errors.Is(err, ErrInvalidAnswer) {
			return AnswerResult{Verified: false}, nil
		}
		return AnswerResult{}, err
	}
	return AnswerResult{Verified: true, UserID: u.ID}, nil
}

// ResetPasswordWithAnswer replaces the password when answer matches the
// enrolled one.
func (s *SecurityService) ResetPasswordWithAnswer(ctx context.Context, email, answer, newPassword string) (err error) {
	defer func() { s.Metrics.observe(EventPasswordReset, err) }()

	if err := validatePassword("newPassword", newPassword); err != nil {
		return err
	}
	u, err := s.enrolledUser(ctx, email)
	if err != nil {
		return err
	}
	if err := verifyAnswer(ctx, answer, u.SecurityAnswer); err != nil {
		return err
	}

	hash, err := hashPassword(ctx, newPassword)
	if err != nil {
		return err
	}
	if _, err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrNotFound
		}
		return serverError(ctx, "update password", err)
	}

	slogx.FromContext(ctx).Info("password reset with security answer", "user_id", u.ID)
	return nil
}

func (s *SecurityService) enrolledUser(ctx context.Context, email string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return domain.User{}, invalid("email", "is required")
	}
	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrNotFound
	case err != nil:
		return domain.User{}, serverError(ctx, "lookup user", err)
	}
	if !u.HasSecurityQuestion() {
		return domain.User{}, ErrNotFound
	}
	return u, nil
}

func verifyAnswer(ctx context.Context, answer, digest string) error {
	normalized := domain.NormalizeAnswer(answer)
	if normalized == "" {
		return ErrInvalidAnswer
	}
	if err := cryptox.VerifyPassword(normalized, digest); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return ErrInvalidAnswer
		}
		return serverError(ctx, "verify security answer", err)
	}
	return nil
}
