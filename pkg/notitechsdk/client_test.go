package notitechsdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
	"github.com/stretchr/testify/require"
)

func TestLoginAndMe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/auth/login":
			var req notitechsdk.LoginRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != "pw1" {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(notitechsdk.ErrorResponse{Message: "Invalid credentials"})
				return
			}
			_ = json.NewEncoder(w).Encode(notitechsdk.AuthResponse{
				Token: "tok",
				User:  notitechsdk.User{ID: "u1", Email: req.Email},
			})
		case "/api/auth/me":
			if r.Header.Get("Authorization") != "Bearer tok" {
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(notitechsdk.ErrorResponse{Message: "Not authorized"})
				return
			}
			_ = json.NewEncoder(w).Encode(notitechsdk.MeResponse{
				User:        notitechsdk.User{ID: "u1"},
				SignInCount: 2,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	client := notitechsdk.NewClient(srv.URL + "/")

	_, _, err := client.Login(ctx, "alice@example.com", "nope")
	require.Error(t, err)
	require.Equal(t, http.StatusBadRequest, notitechsdk.StatusCode(err))
	require.Contains(t, err.Error(), "Invalid credentials")

	session, auth, err := client.Login(ctx, "alice@example.com", "pw1")
	require.NoError(t, err)
	require.Equal(t, "u1", auth.User.ID)
	require.Equal(t, "tok", session.Token())

	me, err := session.Me(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 2, me.SignInCount)

	_, err = client.NewSession("stale").Me(ctx)
	require.True(t, notitechsdk.IsUnauthorized(err))
}

func TestErrorWithoutJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	_, err := notitechsdk.NewClient(srv.URL).GetLiveness(context.Background())
	require.True(t, notitechsdk.IsNotFound(err))
}
