package http

import (
	"net/http"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
)

type RecoveryHandler struct {
	RecoveryService *service.RecoveryService

	// ExposeCode echoes the reset code in the response. Development only.
	ExposeCode bool
}

// HandleRequestCode godoc
//
//	@Summary		Request a password reset code
//	@Description	Emails a four digit code valid for 30 minutes. A new request replaces any earlier code.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.EmailRequest	true	"Email"
//	@Success		200		{object}	notitechsdk.RequestResetCodeResponse
//	@Failure		404		{object}	notitechsdk.ErrorResponse	"Email not found in our system"
//	@Failure		500		{object}	notitechsdk.ErrorResponse
//	@Router			/api/auth/request-reset-code [post].
func (h *RecoveryHandler) HandleRequestCode(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.EmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	code, err := h.RecoveryService.RequestResetCode(r.Context(), req.Email)
	if err != nil {
		writeError(w, err, msgEmailNotFound)
		return
	}

	resp := notitechsdk.RequestResetCodeResponse{Success: true, Message: msgResetCodeSent}
	if h.ExposeCode {
		resp.Code = code
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleVerifyCode godoc
//
//	@Summary		Verify a reset code
//	@Description	Checks a code without consuming it.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.VerifyResetCodeRequest	true	"Email and code"
//	@Success		200		{object}	notitechsdk.VerifyResetCodeResponse
//	@Failure		400		{object}	notitechsdk.VerifyResetCodeResponse	"Invalid or expired code"
//	@Router			/api/auth/verify-reset-code [post].
func (h *RecoveryHandler) HandleVerifyCode(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.VerifyResetCodeRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := h.RecoveryService.VerifyResetCode(r.Context(), req.Email, req.Code); err != nil {
		apiErr := apiError(err, "")
		if apiErr.StatusCode == http.StatusBadRequest {
			httpx.WriteJSON(w, http.StatusBadRequest, notitechsdk.VerifyResetCodeResponse{
				Valid:   false,
				Message: apiErr.Message,
			})
			return
		}
		httpx.WriteError(w, apiErr)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.VerifyResetCodeResponse{Valid: true, Message: msgCodeVerified})
}

// HandleResetPassword godoc
//
//	@Summary		Reset password with a code
//	@Description	Replaces the password and consumes the code. Sessions issued before the reset stop working.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.ResetPasswordRequest	true	"Email, code and new password"
//	@Success		200		{object}	notitechsdk.MessageResponse
//	@Failure		400		{object}	notitechsdk.ErrorResponse	"Invalid or expired code"
//	@Failure		500		{object}	notitechsdk.ErrorResponse
//	@Router			/api/auth/reset-password [post].
func (h *RecoveryHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.ResetPasswordRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	if err := h.RecoveryService.ResetPasswordWithCode(r.Context(), req.Email, req.Code, req.NewPassword); err != nil {
		writeError(w, err, msgUserNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.MessageResponse{Success: true, Message: msgPasswordUpdated})
}
