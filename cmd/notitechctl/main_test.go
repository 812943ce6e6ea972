package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/notitech/internal/notitech/app"
	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/cryptox"
	"github.com/aussiebroadwan/notitech/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func setupEnv(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("ENV", "dev")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_FILE", filepath.Join(dir, "notitech.db"))
	t.Setenv("RESET_CODE_BACKEND", "store")
	t.Setenv("PEPPER_FILE", filepath.Join(dir, "pepper"))
}

func seedUser(t *testing.T, email, password string) {
	t.Helper()
	var out bytes.Buffer
	err := withStorage(&out, func(ctx context.Context, st *app.Storage) error {
		signer, err := jwtx.NewSignerHS256([]byte("0123456789abcdef0123456789abcdef"))
		if err != nil {
			return err
		}
		auth := &service.AuthService{Store: st, Signer: signer, Issuer: "notitech"}
		_, err = auth.Register(ctx, service.RegisterInput{Name: "Alice", Email: email, Password: password})
		return err
	})
	require.NoError(t, err)
}

func storedHash(t *testing.T, email string) string {
	t.Helper()
	var hash string
	var out bytes.Buffer
	err := withStorage(&out, func(ctx context.Context, st *app.Storage) error {
		u, err := st.Users().GetUserByEmail(ctx, email)
		hash = u.PasswordHash
		return err
	})
	require.NoError(t, err)
	return hash
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.Error(t, run(nil, &stdout, &stderr))
	require.Contains(t, stderr.String(), "Usage: notitechctl")

	stderr.Reset()
	require.Error(t, run([]string{"bogus"}, &stdout, &stderr))
	require.Contains(t, stderr.String(), "Usage: notitechctl")

	require.NoError(t, run([]string{"version"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), app.BuildVersion)
}

func TestResetPassword_Flag(t *testing.T) {
	setupEnv(t)
	seedUser(t, "alice@example.com", "old-password")

	var stdout, stderr bytes.Buffer
	err := run([]string{"reset-password", "--email", "alice@example.com", "--password", "new-password"}, &stdout, &stderr)
	require.NoError(t, err, stderr.String())
	require.Contains(t, stdout.String(), "password updated")

	require.NoError(t, cryptox.VerifyPassword("new-password", storedHash(t, "alice@example.com")))
}

func TestResetPassword_Prompt(t *testing.T) {
	setupEnv(t)
	seedUser(t, "alice@example.com", "old-password")

	answers := [][]byte{[]byte("typed"), []byte("typed")}
	orig := readPassword
	readPassword = func() ([]byte, error) {
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	t.Cleanup(func() { readPassword = orig })

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"reset-password", "--email", "alice@example.com"}, &stdout, &stderr))
	require.NoError(t, cryptox.VerifyPassword("typed", storedHash(t, "alice@example.com")))
}

func TestResetPassword_PromptMismatch(t *testing.T) {
	answers := [][]byte{[]byte("one"), []byte("two")}
	orig := readPassword
	readPassword = func() ([]byte, error) {
		next := answers[0]
		answers = answers[1:]
		return next, nil
	}
	t.Cleanup(func() { readPassword = orig })

	var stdout, stderr bytes.Buffer
	err := run([]string{"reset-password", "--email", "alice@example.com"}, &stdout, &stderr)
	require.ErrorContains(t, err, "do not match")
}

func TestResetPassword_UnknownUser(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	err := run([]string{"reset-password", "--email", "nobody@example.com", "--password", "pw"}, &stdout, &stderr)
	require.ErrorContains(t, err, "no account")
}

func TestMigrateAndPurge(t *testing.T) {
	setupEnv(t)

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"migrate"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "migrations applied")

	stdout.Reset()
	require.NoError(t, run([]string{"purge-codes"}, &stdout, &stderr))
	require.Contains(t, stdout.String(), "deleted 0 expired reset codes")
}
