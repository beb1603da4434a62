package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/travelflow/tripflow/internal/domain"
)

// ErrorResponse is the JSON error envelope returned by every endpoint.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a stable machine-readable code plus a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeError maps a service error onto an HTTP status and error body.
// Sentinel errors from the domain decide the status; anything unrecognized is
// logged and reported as a bare 500 without leaking internals.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		status int
		code   string
	)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		status, code = http.StatusNotFound, "not_found"
	case errors.Is(err, domain.ErrValidation):
		status, code = http.StatusUnprocessableEntity, "validation_error"
	case errors.Is(err, domain.ErrConflict):
		status, code = http.StatusConflict, "conflict"
	default:
		s.log.ErrorContext(r.Context(), "internal error", "method", r.Method, "path", r.URL.Path, "error", err)
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{
			Error: ErrorDetail{Code: "internal", Message: "internal server error"},
		})
		return
	}
	respondJSON(w, status, ErrorResponse{
		Error: ErrorDetail{Code: code, Message: unwrapMessage(err)},
	})
}

// writeRequestError rejects a request before it reaches the service layer
// (missing or malformed body, bad query parameter).
func writeRequestError(w http.ResponseWriter, message string) {
	respondJSON(w, http.StatusUnprocessableEntity, ErrorResponse{
		Error: ErrorDetail{Code: "validation_error", Message: message},
	})
}

// unwrapMessage strips wrapping prefixes from a sentinel error so clients see
// "clientName is required" rather than the full service call chain.
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, "validation error: "); i >= 0 {
		return msg[i+len("validation error: "):]
	}
	return msg
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeJSON parses the request body into dst, limiting accepted bodies to
// well-formed JSON.
func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}
