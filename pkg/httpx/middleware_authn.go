package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/aussiebroadwan/notitech/pkg/jwtx"
	"github.com/aussiebroadwan/notitech/pkg/slogx"
)

// ErrAuthenticationFailed is reported for any missing, invalid, expired or
// revoked bearer token.
var ErrAuthenticationFailed = errors.New("authentication failed")

// SessionChecker decides whether verified claims still describe a live
// session. Returning an error wrapping jwtx.ErrRevoked rejects the request
// with 401. Any other error is logged and also answered with 401.
type SessionChecker interface {
	CheckSession(ctx context.Context, claims jwtx.Claims) error
}

// SessionCheckerFunc adapts a function to SessionChecker.
type SessionCheckerFunc func(ctx context.Context, claims jwtx.Claims) error

func (f SessionCheckerFunc) CheckSession(ctx context.Context, claims jwtx.Claims) error {
	return f(ctx, claims)
}

// AuthnMiddleware guards a handler with bearer-token verification. A nil
// checker skips the session check.
func AuthnMiddleware(v jwtx.Verifier, sessions SessionChecker) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				if errors.Is(err, jwtx.ErrExpired) {
					writeBearerError(w, "token expired")
					return
				}
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			if sessions != nil {
				if err := sessions.CheckSession(ctx, claims); err != nil {
					if errors.Is(err, jwtx.ErrRevoked) {
						writeBearerError(w, "token revoked")
						return
					}
					log.Error("session check failed", "err", err)
					writeBearerError(w, "session check failed")
					return
				}
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750-compliant error response for bearer auth, with the JSON body
// every other error uses.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteJSON(w, http.StatusUnauthorized, ErrorBody{Message: "Authentication failed: " + desc})
}
