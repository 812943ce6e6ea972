package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/jwtx"
	"github.com/aussiebroadwan/notitech/pkg/slogx"

	_ "github.com/aussiebroadwan/notitech/api/notitech" // Swagger docs
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux     *http.ServeMux
	handler http.Handler

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// Metrics, when set, instruments every route and serves /metrics from
	// Gatherer.
	Metrics  *httpx.HTTPMetrics
	Gatherer prometheus.Gatherer

	// AdminToken enables /api/admin routes.
	AdminToken string
	// ExposeResetCode echoes reset codes in responses. Development only.
	ExposeResetCode bool

	AuthService       *service.AuthService
	RecoveryService   *service.RecoveryService
	SecurityService   *service.SecurityService
	AdminService      *service.AdminService
	NoteService       *service.NoteService
	ReminderService   *service.ReminderService
	StatisticsService *service.StatisticsService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	return &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}
}

// ApplyRoutes registers every route and builds the middleware chain. Call
// it once, after the services are set.
func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerRecovery()
	r.registerAdmin()
	r.registerNotes()
	r.registerReminders()
	r.registerStatistics()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())

	// The metrics middleware sits next to the mux so it sees the matched
	// route pattern.
	middlewares := []httpx.Middleware{
		httpx.Recovery(),
		slogx.HTTPMiddleware(r.logger, "/livez", "/readyz", "/metrics"),
		httpx.MaxBodyBytes(maxBodyBytes),
	}
	if r.Metrics != nil {
		middlewares = append(middlewares, r.Metrics.Middleware())
	}
	r.handler = httpx.Chain(r.Mux, middlewares...)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			NotiTech API
//	@version		0.1.0
//	@description	Notes and reminders backend with password and security-question based account recovery.
//	@description
//	@description				Session tokens are HS256 JWTs valid for seven days. A password reset retires every earlier token.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/notitech
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Session token. Format: "Bearer {token}".
//
//	@securityDefinitions.apikey	AdminToken
//	@in							header
//	@name						X-Admin-Token
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.handler.ServeHTTP(w, req)
}

func (r *Router) authn() httpx.Middleware {
	return httpx.AuthnMiddleware(r.verifier, r.AuthService)
}

func (r *Router) secured(h http.HandlerFunc) http.Handler {
	return httpx.Chain(h, r.authn())
}

func (r *Router) registerAuth() {
	h := &AuthHandler{AuthService: r.AuthService}

	r.Mux.HandleFunc("POST /api/auth/register", h.HandleRegister)
	r.Mux.HandleFunc("POST /api/auth/login", h.HandleLogin)
	r.Mux.HandleFunc("POST /api/auth/check-email", h.HandleCheckEmail)
	r.Mux.Handle("GET /api/auth/me", r.secured(h.HandleMe))
	r.Mux.Handle("POST /api/auth/app-usage", r.secured(h.HandleAppUsage))
}

func (r *Router) registerRecovery() {
	codes := &RecoveryHandler{
		RecoveryService: r.RecoveryService,
		ExposeCode:      r.ExposeResetCode,
	}
	r.Mux.HandleFunc("POST /api/auth/request-reset-code", codes.HandleRequestCode)
	r.Mux.HandleFunc("POST /api/auth/verify-reset-code", codes.HandleVerifyCode)
	r.Mux.HandleFunc("POST /api/auth/reset-password", codes.HandleResetPassword)

	questions := &SecurityHandler{SecurityService: r.SecurityService}
	r.Mux.HandleFunc("GET /api/auth/security-questions", questions.HandleListQuestions)
	r.Mux.HandleFunc("POST /api/auth/security-question", questions.HandleGetQuestion)
	r.Mux.HandleFunc("POST /api/auth/verify-security-answer", questions.HandleVerifyAnswer)
	r.Mux.HandleFunc("POST /api/auth/reset-password/security", questions.HandleResetPassword)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{AdminService: r.AdminService}
	r.Mux.Handle("POST /api/admin/reset-password",
		httpx.Chain(http.HandlerFunc(h.HandleResetPassword),
			RequireAdminToken(r.AdminToken),
		),
	)
}

func (r *Router) registerNotes() {
	h := &NotesHandler{NoteService: r.NoteService}

	r.Mux.Handle("GET /api/notes", r.secured(h.HandleList))
	r.Mux.Handle("POST /api/notes", r.secured(h.HandleCreate))
	r.Mux.Handle("GET /api/notes/search/{query}", r.secured(h.HandleSearch))
	r.Mux.Handle("GET /api/notes/{id}", r.secured(h.HandleGet))
	r.Mux.Handle("PUT /api/notes/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/notes/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerReminders() {
	h := &RemindersHandler{ReminderService: r.ReminderService}

	r.Mux.Handle("GET /api/reminders", r.secured(h.HandleList))
	r.Mux.Handle("POST /api/reminders", r.secured(h.HandleCreate))
	r.Mux.Handle("GET /api/reminders/today", r.secured(h.HandleToday))
	r.Mux.Handle("GET /api/reminders/{id}", r.secured(h.HandleGet))
	r.Mux.Handle("PUT /api/reminders/{id}", r.secured(h.HandleUpdate))
	r.Mux.Handle("DELETE /api/reminders/{id}", r.secured(h.HandleDelete))
}

func (r *Router) registerStatistics() {
	h := &StatisticsHandler{StatisticsService: r.StatisticsService}

	r.Mux.Handle("GET /api/statistics", r.secured(h.HandleGet))
	r.Mux.Handle("GET /api/statistics/Statistics", r.secured(h.HandleGet)) // legacy client path
	r.Mux.Handle("POST /api/statistics/app-usage", r.secured(h.HandleAppUsage))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))

	if r.Gatherer != nil {
		r.Mux.Handle("GET /metrics", promhttp.HandlerFor(r.Gatherer, promhttp.HandlerOpts{}))
	}
}
