package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrorBody is the JSON shape of every error response.
type ErrorBody struct {
	Message string `json:"message"`
}

// APIError is an error that knows its HTTP status and client-safe message.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return fmt.Sprintf("%d: %s", e.StatusCode, e.Message) }

// NewAPIError builds an APIError.
func NewAPIError(status int, msg string) *APIError {
	return &APIError{StatusCode: status, Message: msg}
}

var (
	ErrInternal   = NewAPIError(http.StatusInternalServerError, "Server error")
	ErrBadRequest = NewAPIError(http.StatusBadRequest, "Invalid request body")
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError writes err as {message}. Errors that are not an *APIError
// are reported as a generic 500 so internal detail never leaves the process.
func WriteError(w http.ResponseWriter, err error) {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		apiErr = ErrInternal
	}
	WriteJSON(w, apiErr.StatusCode, ErrorBody{Message: apiErr.Message})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like tokens.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}

// DecodeJSON reads a JSON request body into dst. An empty body is an error.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrBadRequest
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrBadRequest
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return NewAPIError(http.StatusRequestEntityTooLarge, "Request body too large")
		}
		return ErrBadRequest
	}
	return nil
}
