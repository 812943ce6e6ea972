package service_test

import (
	"context"
	"testing"

	"github.com/aussiebroadwan/notitech/internal/notitech/domain"
	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/stretchr/testify/require"
)

func TestSecurityQuestion(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.register(t, "alice@example.com", "pw1")

	q, err := e.security.SecurityQuestion(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.QuestionBirthCity, q)

	_, err = e.security.SecurityQuestion(ctx, "nobody@example.com")
	require.ErrorIs(t, err, service.ErrNotFound)

	_, err = e.auth.Register(ctx, service.RegisterInput{Name: "Bob", Email: "bob@example.com", Password: "pw"})
	require.NoError(t, err)
	_, err = e.security.SecurityQuestion(ctx, "bob@example.com")
	require.ErrorIs(t, err, service.ErrNotFound)

	require.Len(t, e.security.Questions(), 5)
}

func TestVerifySecurityAnswer(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	sess := e.register(t, "alice@example.com", "pw1")

	t.Run("case insensitive", func(t *testing.T) {
		res, err := e.security.VerifySecurityAnswer(ctx, "alice@example.com", "birth_city", " Paris ")
		require.NoError(t, err)
		require.True(t, res.Verified)
		require.Equal(t, sess.User.ID, res.UserID)
	})

	t.Run("question by text", func(t *testing.T) {
		res, err := e.security.VerifySecurityAnswer(ctx, "alice@example.com", domain.QuestionBirthCity.Text(), "PARIS")
		require.NoError(t, err)
		require.True(t, res.Verified)
	})

	t.Run("wrong answer", func(t *testing.T) {
		res, err := e.security.VerifySecurityAnswer(ctx, "alice@example.com", "birth_city", "London")
		require.NoError(t, err)
		require.False(t, res.Verified)
		require.Empty(t, res.UserID)
	})

	t.Run("wrong question", func(t *testing.T) {
		_, err := e.security.VerifySecurityAnswer(ctx, "alice@example.com", "first_pet", "Paris")
		require.ErrorIs(t, err, service.ErrNotFound)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := e.security.VerifySecurityAnswer(ctx, "nobody@example.com", "birth_city", "Paris")
		require.ErrorIs(t, err, service.ErrNotFound)
	})
}

func TestResetPasswordWithAnswer(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.register(t, "alice@example.com", "pw1")

	err := e.security.ResetPasswordWithAnswer(ctx, "alice@example.com", "london", "pw2")
	require.ErrorIs(t, err, service.ErrInvalidAnswer)
	e.requireLogin(t, "alice@example.com", "pw1")

	require.NoError(t, e.security.ResetPasswordWithAnswer(ctx, "alice@example.com", "PARIS", "pw2"))
	_, err = e.auth.Login(ctx, "alice@example.com", "pw1")
	require.ErrorIs(t, err, service.ErrInvalidCredentials)
	e.requireLogin(t, "alice@example.com", "pw2")

	err = e.security.ResetPasswordWithAnswer(ctx, "nobody@example.com", "paris", "pw2")
	require.ErrorIs(t, err, service.ErrNotFound)
}

func TestAdminResetPassword(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	e.register(t, "alice@example.com", "pw1")

	code, err := e.recovery.RequestResetCode(ctx, "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, e.admin.ResetPassword(ctx, "alice@example.com", "pw2"))
	e.requireLogin(t, "alice@example.com", "pw2")

	// Outstanding codes die with the old password.
	require.ErrorIs(t, e.recovery.VerifyResetCode(ctx, "alice@example.com", code), service.ErrInvalidOrExpiredCode)

	require.ErrorIs(t, e.admin.ResetPassword(ctx, "nobody@example.com", "pw"), service.ErrNotFound)
	require.ErrorIs(t, e.admin.ResetPassword(ctx, "alice@example.com", ""), service.ErrInvalidInput)
}
