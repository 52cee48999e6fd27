package helpers

import (
	"encoding/json"
	"net/http"
	"strings"

	"eventsapi/internal/domain"
)

// Error codes for API error responses. Use these with WriteJSONError.
const (
	ErrCodeBadRequest    = "bad_request"
	ErrCodeNotFound      = "not_found"
	ErrCodeInternalError = "internal_error"
)

// Content types written by the API.
const (
	ContentTypeJSON    = "application/json;charset=UTF-8"
	ContentTypeHALJSON = "application/hal+json;charset=UTF-8"
)

// APIError is the error object in the generic error envelope.
// swagger:model APIError
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIResponse is the envelope used for failures that carry no field errors.
// swagger:model APIResponse
type APIResponse struct {
	Data  any       `json:"data"`
	Error *APIError `json:"error"`
}

// WriteHAL sets Content-Type to application/hal+json, writes statusCode, and encodes body.
func WriteHAL(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", ContentTypeHALJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and encodes body.
func WriteJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", ContentTypeJSON)
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteFieldErrors writes a 400 whose body is the JSON array of field errors.
func WriteFieldErrors(w http.ResponseWriter, errs domain.FieldErrors) {
	if errs == nil {
		errs = domain.FieldErrors{}
	}
	WriteJSON(w, http.StatusBadRequest, errs)
}

// WriteJSONError encodes an APIResponse with data nil and the given error code and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, code, message string) {
	WriteJSON(w, statusCode, APIResponse{
		Data:  nil,
		Error: &APIError{Code: code, Message: message},
	})
}

// WriteNotFound writes a bare 404 with an empty body.
func WriteNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
}

// BaseURL returns configured when set, otherwise the scheme and host the request arrived on.
func BaseURL(r *http.Request, configured string) string {
	if configured != "" {
		return strings.TrimSuffix(configured, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	// Proxies may append their own value; the first entry is the client-facing scheme.
	fwd, _, _ := strings.Cut(r.Header.Get("X-Forwarded-Proto"), ",")
	switch fwd = strings.ToLower(strings.TrimSpace(fwd)); fwd {
	case "http", "https":
		scheme = fwd
	}
	return scheme + "://" + r.Host
}
