package http

import (
	"context"
	"net/http"
	"time"

	"github.com/aussiebroadwan/notitech/internal/notitech/store"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
)

type pinger interface {
	Ping(ctx context.Context) error
}

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint returning service health status and checks for critical dependencies
//	@Description	Includes uptime, version, and status of the database and, when configured separately, the reset-code store
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	notitechsdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	notitechsdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &notitechsdk.HealthChecks{Database: "ok"}
		overallStatus := "ok"
		statusCode := http.StatusOK

		// Check database connectivity
		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		// A reset-code backend outside the database reports on its own.
		if p, ok := st.ResetCodes().(pinger); ok {
			checks.ResetCodes = "ok"
			if err := p.Ping(r.Context()); err != nil {
				checks.ResetCodes = "error: " + err.Error()
				overallStatus = "degraded"
				statusCode = http.StatusServiceUnavailable
			}
		}

		response := notitechsdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}
