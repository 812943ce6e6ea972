package http

import (
	"net/http"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
}

// HandleRegister godoc
//
//	@Summary		Register
//	@Description	Creates an account and returns a session token. The security question is optional; when given, an answer is required.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.RegisterRequest	true	"Account details"
//	@Success		201		{object}	notitechsdk.AuthResponse
//	@Failure		400		{object}	notitechsdk.ErrorResponse	"Invalid input or user already exists"
//	@Failure		500		{object}	notitechsdk.ErrorResponse
//	@Router			/api/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.RegisterRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	sess, err := h.AuthService.Register(r.Context(), service.RegisterInput{
		Name:             req.Name,
		Email:            req.Email,
		Password:         req.Password,
		SecurityQuestion: req.SecurityQuestion,
		SecurityAnswer:   req.SecurityAnswer,
	})
	if err != nil {
		writeError(w, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAuthResponse(sess))
}

// HandleLogin godoc
//
//	@Summary		Log in
//	@Description	Exchanges email and password for a session token valid for seven days.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.LoginRequest	true	"Credentials"
//	@Success		200		{object}	notitechsdk.AuthResponse
//	@Failure		400		{object}	notitechsdk.ErrorResponse	"Invalid credentials"
//	@Failure		500		{object}	notitechsdk.ErrorResponse
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err, "")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAuthResponse(sess))
}

// HandleMe godoc
//
//	@Summary		Current user
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	notitechsdk.MeResponse
//	@Failure		401	{object}	notitechsdk.ErrorResponse
//	@Failure		404	{object}	notitechsdk.ErrorResponse	"User not found"
//	@Router			/api/auth/me [get].
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	u, err := h.AuthService.Me(r.Context(), id)
	if err != nil {
		writeError(w, err, msgUserNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.MeResponse{
		User:          toUser(u),
		SignInCount:   u.SignInCount,
		AppUsageCount: u.AppUsageCount,
	})
}

// HandleAppUsage godoc
//
//	@Summary		Record app usage
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	notitechsdk.AppUsageResponse
//	@Failure		401	{object}	notitechsdk.ErrorResponse
//	@Failure		404	{object}	notitechsdk.ErrorResponse	"Statistics not found"
//	@Router			/api/auth/app-usage [post].
func (h *AuthHandler) HandleAppUsage(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(w, r)
	if !ok {
		return
	}
	n, err := h.AuthService.RecordAppUsage(r.Context(), id)
	if err != nil {
		writeError(w, err, msgStatsNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.AppUsageResponse{Success: true, AppUsageCount: n})
}

// HandleCheckEmail godoc
//
//	@Summary		Check whether an email is registered
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.EmailRequest	true	"Email"
//	@Success		200		{object}	notitechsdk.CheckEmailResponse
//	@Failure		404		{object}	notitechsdk.CheckEmailResponse	"exists=false"
//	@Router			/api/auth/check-email [post].
func (h *AuthHandler) HandleCheckEmail(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.EmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	u, err := h.AuthService.CheckEmail(r.Context(), req.Email)
	if err != nil {
		apiErr := apiError(err, msgEmailNotFound)
		if apiErr.StatusCode == http.StatusNotFound {
			httpx.WriteJSON(w, http.StatusNotFound, notitechsdk.CheckEmailResponse{
				Exists:  false,
				Message: apiErr.Message,
			})
			return
		}
		httpx.WriteError(w, apiErr)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.CheckEmailResponse{
		Exists: true,
		UserID: u.ID,
		Email:  u.Email,
	})
}
