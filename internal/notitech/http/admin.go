package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
	"github.com/aussiebroadwan/notitech/pkg/slogx"
)

// AdminTokenHeader carries the operator token.
const AdminTokenHeader = "X-Admin-Token"

type AdminHandler struct {
	AdminService *service.AdminService
}

// RequireAdminToken rejects requests without the configured operator token.
// With no token configured the routes behave as if they did not exist.
func RequireAdminToken(token string) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token == "" {
				httpx.WriteError(w, httpx.NewAPIError(http.StatusNotFound, msgNotFound))
				return
			}
			got := r.Header.Get(AdminTokenHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				slogx.FromContext(r.Context()).Warn("admin token rejected")
				httpx.WriteError(w, httpx.NewAPIError(http.StatusUnauthorized, "Not authorized"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HandleResetPassword godoc
//
//	@Summary		Overwrite a user's password
//	@Description	Operator capability. Requires the X-Admin-Token header; disabled when the server has no admin token.
//	@Tags			Admin
//	@Security		AdminToken
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.AdminResetPasswordRequest	true	"Email and new password"
//	@Success		200		{object}	notitechsdk.MessageResponse
//	@Failure		401		{object}	notitechsdk.ErrorResponse
//	@Failure		404		{object}	notitechsdk.ErrorResponse	"User not found"
//	@Router			/api/admin/reset-password [post].
func (h *AdminHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.AdminResetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := h.AdminService.ResetPassword(r.Context(), req.Email, req.NewPassword); err != nil {
		writeError(w, err, msgUserNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.MessageResponse{Success: true, Message: msgPasswordUpdated})
}
