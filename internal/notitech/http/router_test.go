package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	nthttp "github.com/aussiebroadwan/notitech/internal/notitech/http"
	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/sqlite"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/jwtx"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

const adminToken = "admin-secret"

type testServer struct {
	t      *testing.T
	router *nthttp.Router
	store  *sqlite.Store
}

func newTestServer(t *testing.T, configure ...func(*nthttp.Router)) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	secret := []byte("0123456789abcdef0123456789abcdef")
	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)
	verifier := jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Issuer: "notitech"})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	reg := prometheus.NewRegistry()
	metrics := service.NewMetrics(reg)

	auth := &service.AuthService{Store: st, Signer: signer, Issuer: "notitech", Metrics: metrics}
	r := nthttp.NewRouter(verifier, "test", st, logger)
	r.Metrics = httpx.NewHTTPMetrics(reg)
	r.Gatherer = reg
	r.AdminToken = adminToken
	r.ExposeResetCode = true
	r.AuthService = auth
	r.RecoveryService = &service.RecoveryService{Store: st, Metrics: metrics}
	r.SecurityService = &service.SecurityService{Store: st, Metrics: metrics}
	r.AdminService = &service.AdminService{Store: st, Metrics: metrics}
	r.NoteService = &service.NoteService{Store: st}
	r.ReminderService = &service.ReminderService{Store: st}
	r.StatisticsService = &service.StatisticsService{Store: st, Auth: auth}
	for _, fn := range configure {
		fn(r)
	}
	r.ApplyRoutes()

	return &testServer{t: t, router: r, store: st}
}

type response struct {
	*httptest.ResponseRecorder
}

func (r response) decode(t *testing.T, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(r.Body.Bytes(), v))
}

func (r response) message(t *testing.T) string {
	t.Helper()
	var body notitechsdk.ErrorResponse
	r.decode(t, &body)
	return body.Message
}

func (s *testServer) do(method, path, token string, body any, headers ...string) response {
	s.t.Helper()
	var rd io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(s.t, err)
		rd = bytes.NewReader(buf)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return response{rec}
}

func (s *testServer) register(email, password string) notitechsdk.AuthResponse {
	s.t.Helper()
	res := s.do(http.MethodPost, "/api/auth/register", "", notitechsdk.RegisterRequest{
		Name:             "Alice",
		Email:            email,
		Password:         password,
		SecurityQuestion: "birth_city",
		SecurityAnswer:   "Paris",
	})
	require.Equal(s.t, http.StatusCreated, res.Code, res.Body.String())
	var auth notitechsdk.AuthResponse
	res.decode(s.t, &auth)
	return auth
}

func TestRegisterAndLogin(t *testing.T) {
	s := newTestServer(t)
	auth := s.register("alice@example.com", "pw1")
	require.NotEmpty(t, auth.Token)
	require.Equal(t, "alice@example.com", auth.User.Email)
	require.Equal(t, "birth_city", auth.User.SecurityQuestion)

	res := s.do(http.MethodPost, "/api/auth/register", "", notitechsdk.RegisterRequest{
		Name: "Alice", Email: "alice@example.com", Password: "pw1",
	})
	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Equal(t, "User already exists", res.message(t))

	res = s.do(http.MethodPost, "/api/auth/login", "", notitechsdk.LoginRequest{Email: "alice@example.com", Password: "bad"})
	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Equal(t, "Invalid credentials", res.message(t))

	res = s.do(http.MethodPost, "/api/auth/login", "", notitechsdk.LoginRequest{Email: "bob@example.com", Password: "pw1"})
	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Equal(t, "Invalid credentials", res.message(t))

	res = s.do(http.MethodPost, "/api/auth/login", "", notitechsdk.LoginRequest{Email: "alice@example.com", Password: "pw1"})
	require.Equal(t, http.StatusOK, res.Code)
	var login notitechsdk.AuthResponse
	res.decode(t, &login)

	res = s.do(http.MethodGet, "/api/auth/me", login.Token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	var me notitechsdk.MeResponse
	res.decode(t, &me)
	require.Equal(t, auth.User.ID, me.ID)
	require.EqualValues(t, 1, me.SignInCount)
}

func TestRegister_BadBody(t *testing.T) {
	s := newTestServer(t)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	res := s.do(http.MethodPost, "/api/auth/register", "", notitechsdk.RegisterRequest{Email: "x@example.com", Password: "pw"})
	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Contains(t, res.message(t), "name")
}

func TestGate(t *testing.T) {
	s := newTestServer(t)

	for _, path := range []string{"/api/auth/me", "/api/notes", "/api/reminders", "/api/statistics", "/api/statistics/Statistics"} {
		res := s.do(http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusUnauthorized, res.Code, path)
		require.Contains(t, res.Header().Get("WWW-Authenticate"), "invalid_token")
		require.NotEmpty(t, res.message(t))

		res = s.do(http.MethodGet, path, "not-a-jwt", nil)
		require.Equal(t, http.StatusUnauthorized, res.Code, path)
	}
}

func TestMe_DeletedUser(t *testing.T) {
	s := newTestServer(t)
	auth := s.register("alice@example.com", "pw1")
	require.NoError(t, s.store.Users().DeleteUser(context.Background(), auth.User.ID))

	res := s.do(http.MethodGet, "/api/auth/me", auth.Token, nil)
	require.Equal(t, http.StatusNotFound, res.Code)
	require.Equal(t, "User not found", res.message(t))
}

func TestCheckEmail(t *testing.T) {
	s := newTestServer(t)
	auth := s.register("alice@example.com", "pw1")

	res := s.do(http.MethodPost, "/api/auth/check-email", "", notitechsdk.EmailRequest{Email: "alice@example.com"})
	require.Equal(t, http.StatusOK, res.Code)
	var body notitechsdk.CheckEmailResponse
	res.decode(t, &body)
	require.True(t, body.Exists)
	require.Equal(t, auth.User.ID, body.UserID)

	res = s.do(http.MethodPost, "/api/auth/check-email", "", notitechsdk.EmailRequest{Email: "bob@example.com"})
	require.Equal(t, http.StatusNotFound, res.Code)
	body = notitechsdk.CheckEmailResponse{}
	res.decode(t, &body)
	require.False(t, body.Exists)
	require.Equal(t, "Email not found in our system", body.Message)
}

func TestResetCodeFlow(t *testing.T) {
	s := newTestServer(t)
	auth := s.register("alice@example.com", "pw1")

	res := s.do(http.MethodPost, "/api/auth/request-reset-code", "", notitechsdk.EmailRequest{Email: "nobody@example.com"})
	require.Equal(t, http.StatusNotFound, res.Code)
	require.Equal(t, "Email not found in our system", res.message(t))

	res = s.do(http.MethodPost, "/api/auth/request-reset-code", "", notitechsdk.EmailRequest{Email: "alice@example.com"})
	require.Equal(t, http.StatusOK, res.Code)
	var issued notitechsdk.RequestResetCodeResponse
	res.decode(t, &issued)
	require.True(t, issued.Success)
	require.Len(t, issued.Code, 4)

	res = s.do(http.MethodPost, "/api/auth/verify-reset-code", "", notitechsdk.VerifyResetCodeRequest{Email: "alice@example.com", Code: "0000"})
	require.Equal(t, http.StatusBadRequest, res.Code)
	var verify notitechsdk.VerifyResetCodeResponse
	res.decode(t, &verify)
	require.False(t, verify.Valid)
	require.Equal(t, "Invalid or expired code", verify.Message)

	res = s.do(http.MethodPost, "/api/auth/verify-reset-code", "", notitechsdk.VerifyResetCodeRequest{Email: "alice@example.com", Code: issued.Code})
	require.Equal(t, http.StatusOK, res.Code)

	reset := notitechsdk.ResetPasswordRequest{Email: "alice@example.com", Code: issued.Code, NewPassword: "pw2"}
	res = s.do(http.MethodPost, "/api/auth/reset-password", "", reset)
	require.Equal(t, http.StatusOK, res.Code)

	res = s.do(http.MethodPost, "/api/auth/reset-password", "", reset)
	require.Equal(t, http.StatusBadRequest, res.Code)
	require.Equal(t, "Invalid or expired code", res.message(t))

	// The pre-reset token no longer passes the gate.
	res = s.do(http.MethodGet, "/api/auth/me", auth.Token, nil)
	require.Equal(t, http.StatusUnauthorized, res.Code)

	res = s.do(http.MethodPost, "/api/auth/login", "", notitechsdk.LoginRequest{Email: "alice@example.com", Password: "pw2"})
	require.Equal(t, http.StatusOK, res.Code)
}

func TestResetCode_Hidden(t *testing.T) {
	s := newTestServer(t, func(r *nthttp.Router) { r.ExposeResetCode = false })
	s.register("alice@example.com", "pw1")

	res := s.do(http.MethodPost, "/api/auth/request-reset-code", "", notitechsdk.EmailRequest{Email: "alice@example.com"})
	require.Equal(t, http.StatusOK, res.Code)
	require.NotContains(t, res.Body.String(), `"code"`)
}

func TestSecurityQuestionFlow(t *testing.T) {
	s := newTestServer(t)
	s.register("alice@example.com", "pw1")

	res := s.do(http.MethodGet, "/api/auth/security-questions", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	var list notitechsdk.SecurityQuestionsResponse
	res.decode(t, &list)
	require.Len(t, list.Questions, 5)

	res = s.do(http.MethodPost, "/api/auth/security-question", "", notitechsdk.EmailRequest{Email: "alice@example.com"})
	require.Equal(t, http.StatusOK, res.Code)
	var q notitechsdk.SecurityQuestion
	res.decode(t, &q)
	require.Equal(t, "birth_city", q.Key)
	require.Equal(t, "In what city were you born?", q.Question)

	res = s.do(http.MethodPost, "/api/auth/verify-security-answer", "", notitechsdk.VerifySecurityAnswerRequest{
		Email: "alice@example.com", SecurityQuestion: q.Question, SecurityAnswer: "paris",
	})
	require.Equal(t, http.StatusOK, res.Code)
	var verified notitechsdk.VerifySecurityAnswerResponse
	res.decode(t, &verified)
	require.True(t, verified.Verified)

	res = s.do(http.MethodPost, "/api/auth/reset-password/security", "", notitechsdk.SecurityResetRequest{
		Email: "alice@example.com", SecurityAnswer: "Rome", NewPassword: "pw2",
	})
	require.Equal(t, http.StatusBadRequest, res.Code)

	res = s.do(http.MethodPost, "/api/auth/reset-password/security", "", notitechsdk.SecurityResetRequest{
		Email: "alice@example.com", SecurityAnswer: "PARIS", NewPassword: "pw2",
	})
	require.Equal(t, http.StatusOK, res.Code)

	res = s.do(http.MethodPost, "/api/auth/login", "", notitechsdk.LoginRequest{Email: "alice@example.com", Password: "pw2"})
	require.Equal(t, http.StatusOK, res.Code)
}

func TestAdminResetPassword(t *testing.T) {
	body := notitechsdk.AdminResetPasswordRequest{Email: "alice@example.com", NewPassword: "pw2"}

	t.Run("disabled without token", func(t *testing.T) {
		s := newTestServer(t, func(r *nthttp.Router) { r.AdminToken = "" })
		s.register("alice@example.com", "pw1")
		res := s.do(http.MethodPost, "/api/admin/reset-password", "", body, nthttp.AdminTokenHeader, "")
		require.Equal(t, http.StatusNotFound, res.Code)
	})

	s := newTestServer(t)
	s.register("alice@example.com", "pw1")

	res := s.do(http.MethodPost, "/api/admin/reset-password", "", body, nthttp.AdminTokenHeader, "wrong")
	require.Equal(t, http.StatusUnauthorized, res.Code)

	res = s.do(http.MethodPost, "/api/admin/reset-password", "", body, nthttp.AdminTokenHeader, adminToken)
	require.Equal(t, http.StatusOK, res.Code)

	res = s.do(http.MethodPost, "/api/admin/reset-password", "",
		notitechsdk.AdminResetPasswordRequest{Email: "bob@example.com", NewPassword: "pw"},
		nthttp.AdminTokenHeader, adminToken)
	require.Equal(t, http.StatusNotFound, res.Code)
	require.Equal(t, "User not found", res.message(t))
}

func TestNotesAndStatistics(t *testing.T) {
	s := newTestServer(t)
	alice := s.register("alice@example.com", "pw1").Token
	bob := s.register("bob@example.com", "pw1").Token

	res := s.do(http.MethodPost, "/api/notes", alice, notitechsdk.NoteRequest{Title: "Groceries", Body: "milk"})
	require.Equal(t, http.StatusCreated, res.Code)
	var note notitechsdk.Note
	res.decode(t, &note)

	res = s.do(http.MethodGet, "/api/notes/search/groc", alice, nil)
	require.Equal(t, http.StatusOK, res.Code)
	var found []notitechsdk.Note
	res.decode(t, &found)
	require.Len(t, found, 1)

	res = s.do(http.MethodGet, "/api/notes/"+note.ID, bob, nil)
	require.Equal(t, http.StatusNotFound, res.Code)
	require.Equal(t, "Note not found", res.message(t))

	res = s.do(http.MethodPut, "/api/notes/"+note.ID, alice, notitechsdk.NoteRequest{Title: "Groceries", Body: "milk, eggs"})
	require.Equal(t, http.StatusOK, res.Code)
	res.decode(t, &note)
	require.Equal(t, "milk, eggs", note.Body)

	res = s.do(http.MethodGet, "/api/notes", bob, nil)
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, "[]", res.Body.String())

	res = s.do(http.MethodDelete, "/api/notes/"+note.ID, alice, nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = s.do(http.MethodPost, "/api/statistics/app-usage", alice, nil)
	require.Equal(t, http.StatusOK, res.Code)
	res = s.do(http.MethodPost, "/api/auth/app-usage", alice, nil)
	require.Equal(t, http.StatusOK, res.Code)
	var usage notitechsdk.AppUsageResponse
	res.decode(t, &usage)
	require.EqualValues(t, 2, usage.AppUsageCount)

	res = s.do(http.MethodGet, "/api/statistics", alice, nil)
	require.Equal(t, http.StatusOK, res.Code)
	var st notitechsdk.Statistics
	res.decode(t, &st)
	require.EqualValues(t, 1, st.NotesCreated)
	require.EqualValues(t, 2, st.AppUsageCount)

	res = s.do(http.MethodGet, "/api/statistics/Statistics", alice, nil)
	require.Equal(t, http.StatusOK, res.Code)
	var legacy notitechsdk.Statistics
	res.decode(t, &legacy)
	require.Equal(t, st.UserID, legacy.UserID)
	require.EqualValues(t, 1, legacy.NotesCreated)
	require.EqualValues(t, 2, legacy.AppUsageCount)
}

func TestReminders(t *testing.T) {
	s := newTestServer(t)
	token := s.register("alice@example.com", "pw1").Token

	res := s.do(http.MethodPost, "/api/reminders", token, notitechsdk.ReminderRequest{Title: "Dentist", DateTime: "tomorrow"})
	require.Equal(t, http.StatusBadRequest, res.Code)

	res = s.do(http.MethodPost, "/api/reminders", token, notitechsdk.ReminderRequest{
		Title: "Dentist", DateTime: "2030-01-02T09:30:00Z",
	})
	require.Equal(t, http.StatusCreated, res.Code)
	var rem notitechsdk.Reminder
	res.decode(t, &rem)
	require.Equal(t, "Dentist", rem.Title)

	res = s.do(http.MethodGet, "/api/reminders/today", token, nil)
	require.Equal(t, http.StatusOK, res.Code)
	require.JSONEq(t, "[]", res.Body.String())

	res = s.do(http.MethodGet, "/api/reminders/"+rem.ID, token, nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = s.do(http.MethodDelete, "/api/reminders/"+rem.ID, token, nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = s.do(http.MethodGet, "/api/reminders/"+rem.ID, token, nil)
	require.Equal(t, http.StatusNotFound, res.Code)
	require.Equal(t, "Reminder not found", res.message(t))
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	res := s.do(http.MethodGet, "/livez", "", nil)
	require.Equal(t, http.StatusOK, res.Code)

	res = s.do(http.MethodGet, "/readyz", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	var health notitechsdk.HealthResponse
	res.decode(t, &health)
	require.Equal(t, "ok", health.Status)
	require.Equal(t, "ok", health.Checks.Database)

	s.do(http.MethodGet, "/api/notes", "", nil)

	res = s.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, res.Code)
	body := res.Body.String()
	require.Contains(t, body, "notitech_http_requests_total")
	require.Contains(t, body, `route="GET /api/notes"`)
}
