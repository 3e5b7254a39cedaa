package handlers

import (
	"encoding/json"
	"net/http"
)

// ErrorResponse is the uniform error body for all endpoint failures
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// writeError maps a failure condition to the uniform JSON error shape.
func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// writeJSON writes a success body.
func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
