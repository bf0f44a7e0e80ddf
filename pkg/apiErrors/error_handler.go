package apiErrors

import (
	"encoding/json"
	"net/http"
)

// Error codes returned to API clients.
const (
	// Insight computation errors (1000-1999)
	ErrEmptyInput   = "INS_001" // Aggregation over an empty dataset
	ErrDomainValue  = "INS_002" // Field value outside its valid domain
	ErrTypeMismatch = "INS_003" // Field value unusable by the aggregation

	// Validation errors (2000-2999)
	ErrInvalidRequest   = "VAL_001" // Malformed request
	ErrRouteNotFound    = "VAL_002" // No route matches the request path
	ErrMethodNotAllowed = "VAL_003" // Route exists but not for this HTTP method

	// Dataset/source errors (4000-4999)
	ErrDatasetLoad       = "DS_001" // Source unreadable or rows unparseable
	ErrRefreshInProgress = "DS_002" // A refresh is already running

	// Server errors (5000-5999)
	ErrInternalServer    = "SRV_001" // Unexpected internal failure
	ErrDatabaseOperation = "SRV_002" // Database operation failure
)

// httpStatusMap resolves an error code to the HTTP status it travels with.
var httpStatusMap = map[string]int{
	ErrEmptyInput:        http.StatusUnprocessableEntity,
	ErrDomainValue:       http.StatusUnprocessableEntity,
	ErrTypeMismatch:      http.StatusUnprocessableEntity,
	ErrInvalidRequest:    http.StatusBadRequest,
	ErrRouteNotFound:     http.StatusNotFound,
	ErrMethodNotAllowed:  http.StatusMethodNotAllowed,
	ErrDatasetLoad:       http.StatusBadGateway,
	ErrRefreshInProgress: http.StatusConflict,
	ErrInternalServer:    http.StatusInternalServerError,
	ErrDatabaseOperation: http.StatusInternalServerError,
}

// APIError is the standard error payload.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// WriteError writes the standardized error payload to the HTTP response.
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	status, exists := httpStatusMap[code]
	if !exists {
		status = http.StatusInternalServerError
	}

	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(apiErr)
}

// FromError wraps a Go error into an API error payload.
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "unknown error",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
