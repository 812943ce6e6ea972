package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/notitech/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestNewSignerHS256_ShortSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.Error(t, err)
}

func TestHS256_RoundTrip(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	require.Equal(t, "HS256", signer.Alg())

	now := time.Now().UTC()
	tok, err := signer.Sign(jwtx.NewSessionClaims("u1", "u1@example.com", 2, time.Hour, "notitech", now))
	require.NoError(t, err)

	v := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: "notitech"})
	claims, err := v.Verify(tok)
	require.NoError(t, err)
	require.Equal(t, "u1", claims.Subject)
	require.Equal(t, "u1@example.com", claims.Email)
	require.Equal(t, int64(2), claims.PasswordVersion)
}

func TestHS256_Rejections(t *testing.T) {
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	now := time.Now().UTC()
	good, err := signer.Sign(jwtx.NewSessionClaims("u1", "u1@example.com", 0, time.Hour, "notitech", now))
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		v := jwtx.NewVerifierHS256([]byte(strings.Repeat("x", 32)), jwtx.VerifyOptions{})
		_, err := v.Verify(good)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("garbage", func(t *testing.T) {
		v := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{})
		_, err := v.Verify("not-a-token")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("tampered payload", func(t *testing.T) {
		parts := strings.Split(good, ".")
		require.Len(t, parts, 3)
		other, err := signer.Sign(jwtx.NewSessionClaims("u2", "u2@example.com", 0, time.Hour, "notitech", now))
		require.NoError(t, err)
		forged := parts[0] + "." + strings.Split(other, ".")[1] + "." + parts[2]

		v := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{})
		_, err = v.Verify(forged)
		require.Error(t, err)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		v := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: "someone-else"})
		_, err := v.Verify(good)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("expired", func(t *testing.T) {
		v := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{
			Now: func() time.Time { return now.Add(2 * time.Hour) },
		})
		_, err := v.Verify(good)
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("unsigned alg none", func(t *testing.T) {
		c := jwtx.NewSessionClaims("u1", "u1@example.com", 0, time.Hour, "", now)
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		v := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{})
		_, err = v.Verify(tok)
		require.Error(t, err)
	})

	t.Run("missing subject", func(t *testing.T) {
		tok, err := signer.Sign(jwtx.NewSessionClaims("", "x@example.com", 0, time.Hour, "", now))
		require.NoError(t, err)

		v := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{})
		_, err = v.Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})
}
