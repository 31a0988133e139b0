// Package httputil provides small JSON request/response helpers shared by all
// HTTP handlers, including the mapping from semantic error kinds to HTTP
// status codes.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	"shopapi/pkg/logger"
	"shopapi/pkg/serrors"

	"go.uber.org/zap"
)

// maxBodyBytes bounds request bodies accepted by DecodeJSON.
const maxBodyBytes = 1 << 20

// errorResponse is the uniform error body: {"error": {"code": ..., "message": ...}}.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// WriteJSON serializes v into the response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

// DecodeJSON parses the request body into dst. It returns a bad-request
// semantic error on malformed or unknown-field payloads.
func DecodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid JSON body")
	}

	return nil
}

// StatusFromError maps a semantic error kind to an HTTP status code.
// Unrecognized errors map to 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, serrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, serrors.ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, serrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, serrors.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, serrors.ErrUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// WriteError renders err as the uniform error body. Internal errors are
// logged and their details hidden from the client.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFromError(err)

	var resp errorResponse
	resp.Error.Message = err.Error()
	resp.Error.Code = "INTERNAL"

	var serr *serrors.Error
	if errors.As(err, &serr) && serr.Kind() != nil {
		resp.Error.Code = serr.Kind().Error()
	}

	if status >= http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		resp.Error.Message = "internal server error"
	}

	WriteJSON(w, status, resp)
}
