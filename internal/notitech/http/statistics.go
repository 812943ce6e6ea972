package http

import (
	"net/http"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
)

type StatisticsHandler struct {
	StatisticsService *service.StatisticsService
}

// HandleGet godoc
//
//	@Summary		Usage statistics
//	@Description	Created on first access.
//	@Tags			Statistics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	notitechsdk.Statistics
//	@Failure		404	{object}	notitechsdk.ErrorResponse	"Statistics not found"
//	@Router			/api/statistics [get].
//	@Router			/api/statistics/Statistics [get].
func (h *StatisticsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	st, err := h.StatisticsService.Get(r.Context(), uid)
	if err != nil {
		writeError(w, err, msgStatsNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toStatistics(st))
}

// HandleAppUsage godoc
//
//	@Summary		Record app usage
//	@Description	Same counter as POST /api/auth/app-usage.
//	@Tags			Statistics
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	notitechsdk.AppUsageResponse
//	@Failure		404	{object}	notitechsdk.ErrorResponse	"Statistics not found"
//	@Router			/api/statistics/app-usage [post].
func (h *StatisticsHandler) HandleAppUsage(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(w, r)
	if !ok {
		return
	}
	n, err := h.StatisticsService.RecordAppUsage(r.Context(), uid)
	if err != nil {
		writeError(w, err, msgStatsNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.AppUsageResponse{Success: true, AppUsageCount: n})
}
