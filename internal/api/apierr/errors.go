package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hyperoxo/hyperoxo/internal/model"
)

// APIError represents an API error response
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse wraps an APIError
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// Common error codes
const (
	CodeInvalidRequest       = "INVALID_REQUEST"
	CodeInvalidConfiguration = "INVALID_CONFIGURATION"
	CodeResourceExhausted    = "RESOURCE_EXHAUSTED"
	CodeGameOver             = "GAME_OVER"
	CodeDuplicateMove        = "DUPLICATE_MOVE"
	CodeUnknownMove          = "UNKNOWN_MOVE"
	CodeSessionNotFound      = "SESSION_NOT_FOUND"
	CodeInvalidNames         = "INVALID_NAMES"
	CodeInternalError        = "INTERNAL_ERROR"
)

// httpError combines an HTTP status code with an APIError
type httpError struct {
	status   int
	apiError APIError
}

// Error implements error interface
func (e *httpError) Error() string {
	return e.apiError.Message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: he.apiError})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	switch {
	case errors.Is(err, model.ErrSessionNotFound):
		return &httpError{http.StatusNotFound, APIError{CodeSessionNotFound, "Session not found"}}
	case errors.Is(err, model.ErrInvalidConfiguration):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidConfiguration, err.Error()}}
	case errors.Is(err, model.ErrResourceExhausted):
		return &httpError{http.StatusUnprocessableEntity, APIError{CodeResourceExhausted, err.Error()}}
	case errors.Is(err, model.ErrGameOver):
		return &httpError{http.StatusConflict, APIError{CodeGameOver, "The game is over"}}
	case errors.Is(err, model.ErrDuplicateMove):
		return &httpError{http.StatusConflict, APIError{CodeDuplicateMove, "The cell has already been played"}}
	case errors.Is(err, model.ErrUnknownMove):
		return &httpError{http.StatusBadRequest, APIError{CodeUnknownMove, err.Error()}}
	case errors.Is(err, model.ErrInvalidNames):
		return &httpError{http.StatusBadRequest, APIError{CodeInvalidNames, err.Error()}}

	default:
		return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
	}
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, APIError{CodeInvalidRequest, message}}
}

// NewInternalError creates an internal server error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, APIError{CodeInternalError, "Internal server error"}}
}
