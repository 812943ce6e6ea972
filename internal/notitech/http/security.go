package http

import (
	"net/http"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
	"github.com/aussiebroadwan/notitech/pkg/notitechsdk"
)

type SecurityHandler struct {
	SecurityService *service.SecurityService
}

// HandleListQuestions godoc
//
//	@Summary		List security questions
//	@Tags			Recovery
//	@Produce		json
//	@Success		200	{object}	notitechsdk.SecurityQuestionsResponse
//	@Router			/api/auth/security-questions [get].
func (h *SecurityHandler) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	qs := h.SecurityService.Questions()
	resp := notitechsdk.SecurityQuestionsResponse{Questions: make([]notitechsdk.SecurityQuestion, 0, len(qs))}
	for _, q := range qs {
		resp.Questions = append(resp.Questions, toSecurityQuestion(q))
	}
	httpx.WriteJSON(w, http.StatusOK, resp)
}

// HandleGetQuestion godoc
//
//	@Summary		Security question for an account
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.EmailRequest	true	"Email"
//	@Success		200		{object}	notitechsdk.SecurityQuestion
//	@Failure		404		{object}	notitechsdk.ErrorResponse	"Unknown email or no question set"
//	@Router			/api/auth/security-question [post].
func (h *SecurityHandler) HandleGetQuestion(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.EmailRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	q, err := h.SecurityService.SecurityQuestion(r.Context(), req.Email)
	if err != nil {
		writeError(w, err, msgNoSecurityQuestion)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toSecurityQuestion(q))
}

// HandleVerifyAnswer godoc
//
//	@Summary		Verify a security answer
//	@Description	Informational only. Resetting the password checks the answer again.
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.VerifySecurityAnswerRequest	true	"Email, question and answer"
//	@Success		200		{object}	notitechsdk.VerifySecurityAnswerResponse
//	@Failure		404		{object}	notitechsdk.ErrorResponse	"No account with that email and question"
//	@Router			/api/auth/verify-security-answer [post].
func (h *SecurityHandler) HandleVerifyAnswer(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.VerifySecurityAnswerRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	res, err := h.SecurityService.VerifySecurityAnswer(r.Context(), req.Email, req.SecurityQuestion, req.SecurityAnswer)
	if err != nil {
		writeError(w, err, msgUserNotFound)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.VerifySecurityAnswerResponse{
		Verified: res.Verified,
		UserID:   res.UserID,
	})
}

// HandleResetPassword godoc
//
//	@Summary		Reset password with the security answer
//	@Tags			Recovery
//	@Accept			json
//	@Produce		json
//	@Param			request	body		notitechsdk.SecurityResetRequest	true	"Email, answer and new password"
//	@Success		200		{object}	notitechsdk.MessageResponse
//	@Failure		400		{object}	notitechsdk.ErrorResponse	"Incorrect security answer"
//	@Failure		404		{object}	notitechsdk.ErrorResponse	"Unknown email or no question set"
//	@Router			/api/auth/reset-password/security [post].
func (h *SecurityHandler) HandleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req notitechsdk.SecurityResetRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.WriteError(w, err)
		return
	}

	err := h.SecurityService.ResetPasswordWithAnswer(r.Context(), req.Email, req.SecurityAnswer, req.NewPassword)
	if err != nil {
		writeError(w, err, msgNoSecurityQuestion)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, notitechsdk.MessageResponse{Success: true, Message: msgPasswordUpdated})
}
