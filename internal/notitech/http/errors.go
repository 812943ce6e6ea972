package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/notitech/internal/notitech/service"
	"github.com/aussiebroadwan/notitech/pkg/httpx"
)

// Client-facing messages.
const (
	msgUserExists         = "User already exists"
	msgInvalidCredentials = "Invalid credentials"
	msgUserNotFound       = "User not found"
	msgEmailNotFound      = "Email not found in our system"
	msgInvalidCode        = "Invalid or expired code"
	msgInvalidAnswer      = "Incorrect security answer"
	msgNoSecurityQuestion = "No security question found for this email"
	msgPasswordUpdated    = "Password updated successfully"
	msgResetCodeSent      = "Reset code sent to your email"
	msgCodeVerified       = "Code verified successfully"
	msgNoteNotFound       = "Note not found"
	msgReminderNotFound   = "Reminder not found"
	msgStatsNotFound      = "Statistics not found"
	msgNotFound           = "Not found"
)

// apiError translates a service error into the status and message sent to
// the client. notFound is the message used for service.ErrNotFound.
func apiError(err error, notFound string) *httpx.APIError {
	var apiErr *httpx.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		return httpx.NewAPIError(http.StatusBadRequest, "Invalid input: "+ve.Field+" "+ve.Reason)
	case errors.Is(err, service.ErrInvalidInput):
		return httpx.NewAPIError(http.StatusBadRequest, "Invalid input")
	case errors.Is(err, service.ErrDuplicateUser):
		return httpx.NewAPIError(http.StatusBadRequest, msgUserExists)
	case errors.Is(err, service.ErrInvalidCredentials):
		return httpx.NewAPIError(http.StatusBadRequest, msgInvalidCredentials)
	case errors.Is(err, service.ErrInvalidAnswer):
		return httpx.NewAPIError(http.StatusBadRequest, msgInvalidAnswer)
	case errors.Is(err, service.ErrInvalidOrExpiredCode):
		return httpx.NewAPIError(http.StatusBadRequest, msgInvalidCode)
	case errors.Is(err, service.ErrNotFound):
		if notFound == "" {
			notFound = msgNotFound
		}
		return httpx.NewAPIError(http.StatusNotFound, notFound)
	default:
		return httpx.ErrInternal
	}
}

func writeError(w http.ResponseWriter, err error, notFound string) {
	httpx.WriteError(w, apiError(err, notFound))
}

// userID returns the caller resolved by the authentication middleware.
func userID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := httpx.UserIDFromContext(r.Context())
	if !ok || id == "" {
		httpx.WriteError(w, httpx.NewAPIError(http.StatusUnauthorized, "Not authorized"))
		return "", false
	}
	return id, true
}
