package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()
	return Config{
		Env:                  "dev",
		LogLevel:             "error",
		LogFormat:            "text",
		DatabaseDriver:       DriverSQLite,
		DatabaseFile:         filepath.Join(t.TempDir(), "notitech.db"),
		ResetCodeBackend:     ResetCodesInStore,
		JWTIssuer:            "notitech",
		TokenTTL:             time.Hour,
		ResetCodeTTL:         time.Minute,
		AdminToken:           "admin",
		ExposeResetCode:      true,
		MetricsEnabled:       true,
		ShutdownGracePeriod:  time.Second,
		HousekeepingInterval: time.Hour,
	}
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := testConfig(t)
	cfg.DatabaseDriver = "mysql"
	_, err := New(cfg)
	require.Error(t, err)
}

func TestApplication_ServesAPI(t *testing.T) {
	app, err := New(testConfig(t))
	require.NoError(t, err)
	app.housekeepingService.Start()
	t.Cleanup(func() { require.NoError(t, app.Shutdown()) })

	h := app.Handler()

	body, err := json.Marshal(notitechsdk.RegisterRequest{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "pw1",
	})
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var auth notitechsdk.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &auth))

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+auth.Token)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "notitech_auth_events_total")
	require.Contains(t, rec.Body.String(), "go_goroutines")
}

func TestApplication_MetricsDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.MetricsEnabled = false
	app, err := New(cfg)
	require.NoError(t, err)
	app.housekeepingService.Start()
	t.Cleanup(func() { require.NoError(t, app.Shutdown()) })

	rec := httptest.NewRecorder()
	app.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}
