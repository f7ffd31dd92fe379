package response

import (
	"encoding/json"
	"net/http"
)

// Status values used in the response envelope.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// ErrorResponse is the envelope for all failed requests.
type ErrorResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JSON writes v as a JSON body with the given HTTP status code.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	//nolint:errcheck // headers are already sent, nothing left to report
	json.NewEncoder(w).Encode(v)
}

// Error writes an error envelope with the given HTTP status code.
func Error(w http.ResponseWriter, code int, message string) {
	JSON(w, code, ErrorResponse{
		Status:  StatusError,
		Message: message,
	})
}
