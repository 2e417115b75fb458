package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/mollie-acquirer/internal/application"
)

// APIResponse is the envelope of every JSON answer.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIResponse{Success: true, Data: data})
}

// WriteError maps application errors to HTTP responses. Details of 5xx
// errors are logged, not returned.
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := application.ToHTTPStatus(err)
	code := application.ToErrorCode(err)
	message := err.Error()

	if status >= http.StatusInternalServerError {
		logger.Error("request failed",
			"code", code,
			"category", application.CategorizeError(err),
			"error", err,
		)
		message = "An internal error occurred"
		if svcErr, ok := application.IsServiceError(err); ok {
			message = svcErr.Message
		}
	}

	WriteErrorCode(w, status, code, message)
}

func WriteErrorCode(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message},
	})
}
