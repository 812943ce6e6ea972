package service_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/internal/notitech/store/drivers/sqlite"
	"github.com/aussiebroadwan/notitech/pkg/jwtx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type sentMessage struct {
	email, subject, body string
}

type captureNotifier struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (n *captureNotifier) Send(_ context.Context, email, subject, body string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentMessage{email, subject, body})
	return nil
}

type env struct {
	store    *sqlite.Store
	clock    *clock
	notifier *captureNotifier
	registry *prometheus.Registry
	verifier jwtx.Verifier

	auth       *service.AuthService
	recovery   *service.RecoveryService
	security   *service.SecurityService
	admin      *service.AdminService
	notes      *service.NoteService
	reminders  *service.ReminderService
	statistics *service.StatisticsService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	require.NoError(t, s.ApplyMigrations())
	t.Cleanup(func() { _ = s.Close() })

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)

	c := &clock{now: time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)}
	reg := prometheus.NewRegistry()
	metrics := service.NewMetrics(reg)
	notifier := &captureNotifier{}

	auth := &service.AuthService{
		Store:   s,
		Signer:  signer,
		Issuer:  "notitech",
		Metrics: metrics,
		Now:     c.Now,
	}
	return &env{
		store:    s,
		clock:    c,
		notifier: notifier,
		registry: reg,
		verifier: jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: "notitech", Now: c.Now}),
		auth:     auth,
		recovery: &service.RecoveryService{
			Store:    s,
			Notifier: notifier,
			Metrics:  metrics,
			Now:      c.Now,
		},
		security:   &service.SecurityService{Store: s, Metrics: metrics},
		admin:      &service.AdminService{Store: s, Metrics: metrics},
		notes:      &service.NoteService{Store: s, Now: c.Now},
		reminders:  &service.ReminderService{Store: s, Now: c.Now, Location: time.UTC},
		statistics: &service.StatisticsService{Store: s, Auth: auth},
	}
}

func (e *env) register(t *testing.T, email, password string) service.Session {
	t.Helper()
	sess, err := e.auth.Register(context.Background(), service.RegisterInput{
		Name:             "Alice",
		Email:            email,
		Password:         password,
		SecurityQuestion: "birth_city",
		SecurityAnswer:   "paris",
	})
	require.NoError(t, err)
	return sess
}

func (e *env) requireLogin(t *testing.T, email, password string) service.Session {
	t.Helper()
	sess, err := e.auth.Login(context.Background(), email, password)
	require.NoError(t, err)
	return sess
}

func metricValue(t *testing.T, e *env, event, outcome string) float64 {
	t.Helper()
	families, err := e.registry.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "notitech_auth_events_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			labels := map[string]string{}
			for _, lp := range m.GetLabel() {
				labels[lp.GetName()] = lp.GetValue()
			}
			if labels["event"] == event && labels["outcome"] == outcome {
				return m.GetCounter().GetValue()
			}
		}
	}
	return 0
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
