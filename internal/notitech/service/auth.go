package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/pkg/cryptox"
	"github.com/aussiebroadwan/notitech/pkg/idx"
	"github.com/aussiebroadwan/notitech/pkg/jwtx"
	"github.com/aussiebroadwan/notitech/pkg/slogx"
)

// maxPasswordLength bounds the work a single hash request can cause.
const maxPasswordLength = 1024

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Issuer   string
	TokenTTL time.Duration
	Metrics  *Metrics

	// Now defaults to time.Now.
	Now func() time.Time
}

// Session is what register and login hand back to the client.
type Session struct {
	Token string
	User  domain.User
}

type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	SecurityQuestion string // key or question text, optional
	SecurityAnswer   string
}

// Register creates an account and signs the caller in.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (sess Session, err error) {
	defer func() { s.Metrics.observe(EventRegister, err) }()

	name := strings.TrimSpace(in.Name)
	email, err := normalizeEmail(in.Email)
	if err != nil {
		return Session{}, err
	}
	if name == "" {
		return Session{}, invalid("name", "is required")
	}
	if err := validatePassword("password", in.Password); err != nil {
		return Session{}, err
	}

	var question domain.SecurityQuestion
	if strings.TrimSpace(in.SecurityQuestion) != "" {
		q, ok := domain.ParseSecurityQuestion(in.SecurityQuestion)
		if !ok {
			return Session{}, invalid("securityQuestion", "is not a known question")
		}
		if domain.NormalizeAnswer(in.SecurityAnswer) == "" {
			return Session{}, invalid("securityAnswer", "is required with a security question")
		}
		question = q
	}

	switch _, err := s.Store.Users().GetUserByEmail(ctx, email); {
	case err == nil:
		return Session{}, ErrDuplicateUser
	case !errors.Is(err, store.ErrNotFound):
		return Session{}, serverError(ctx, "lookup user", err)
	}

	hash, err := cryptox.HashPassword(in.Password)
	if err != nil {
		return Session{}, serverError(ctx, "hash password", err)
	}
	var answerHash string
	if question != "" {
		answerHash, err = cryptox.HashPassword(domain.NormalizeAnswer(in.SecurityAnswer))
		if err != nil {
			return Session{}, serverError(ctx, "hash security answer", err)
		}
	}

	now := s.now()
	u := domain.User{
		ID:               idx.NewAt(now).String(),
		Name:             name,
		Email:            email,
		PasswordHash:     hash,
		PasswordVersion:  1,
		SecurityQuestion: string(question),
		SecurityAnswer:   answerHash,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().CreateUser(ctx, u); err != nil {
			return err
		}
		return tx.Statistics().EnsureStatistics(ctx, u.ID)
	})
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		return Session{}, ErrDuplicateUser
	case err != nil:
		return Session{}, serverError(ctx, "create user", err)
	}

	slogx.FromContext(ctx).Info("user registered", "user_id", u.ID)
	return s.issue(ctx, u)
}

// Login checks credentials. Unknown emails and wrong passwords are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (sess Session, err error) {
	defer func() { s.Metrics.observe(EventLogin, err) }()

	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return Session{}, invalid("credentials", "email and password are required")
	}

	u, err := s.Store.Users().GetUserByEmail(ctx, email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return Session{}, ErrInvalidCredentials
	case err != nil:
		return Session{}, serverError(ctx, "lookup user", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrMismatch) {
			return Session{}, ErrInvalidCredentials
		}
		return Session{}, serverError(ctx, "verify password", err)
	}

	if err := s.Store.Users().IncrementSignInCount(ctx, u.ID); err != nil {
		slogx.FromContext(ctx).Warn("sign-in count not recorded", "user_id", u.ID, "error", err)
	} else {
		u.SignInCount++
	}

	return s.issue(ctx, u)
}

// Me returns the user behind a verified session.
func (s *AuthService) Me(ctx context.Context, userID string) (domain.User, error) {
	u, err := s.Store.Users().GetUserByID(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return domain.User{}, ErrNotFound
	case err != nil:
		return domain.User{}, serverError(ctx, "lookup user", err)
	}
	return u, nil
}

// CheckEmail reports whether an account exists for email.
func (s *AuthService) CheckEmail(ctx context.Context, email string) (domain.User, error) {
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
	return u, nil
}

// RecordAppUsage bumps the user's app-usage counter and returns the new value.
func (s *AuthService) RecordAppUsage(ctx context.Context, userID string) (int64, error) {
	n, err := s.Store.Users().IncrementAppUsageCount(ctx, userID)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return 0, ErrNotFound
	case err != nil:
		return 0, serverError(ctx, "record app usage", err)
	}
	return n, nil
}

// CheckSession rejects tokens minted before the user's last password
// change. Users that no longer exist pass so the handler can report them
// as not found.
func (s *AuthService) CheckSession(ctx context.Context, claims jwtx.Claims) error {
	u, err := s.Store.Users().GetUserByID(ctx, claims.Subject)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("load session user: %w", err)
	}
	if u.PasswordVersion != claims.PasswordVersion {
		return fmt.Errorf("%w: password changed", jwtx.ErrRevoked)
	}
	return nil
}

func (s *AuthService) issue(ctx context.Context, u domain.User) (Session, error) {
	ttl := s.TokenTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	claims := jwtx.NewSessionClaims(u.ID, u.Email, u.PasswordVersion, ttl, s.Issuer, s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return Session{}, serverError(ctx, "sign token", err)
	}
	return Session{Token: token, User: u}, nil
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func normalizeEmail(raw string) (string, error) {
	email := strings.TrimSpace(raw)
	if email == "" {
		return "", invalid("email", "is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", invalid("email", "is not a valid address")
	}
	return email, nil
}

func validatePassword(field, password string) error {
	switch {
	case password == "":
		return invalid(field, "is required")
	case len(password) > maxPasswordLength:
		return invalid(field, "is too long")
	}
	return nil
}

func hashPassword(ctx context.Context, password string) (string, error) {
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return "", serverError(ctx, "hash password", err)
	}
	return hash, nil
}
