package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/teranos/mbti/errors"
)

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Error     string `json:"error"`
	Hint      string `json:"hint,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// writeJSON writes a JSON response with the given status code
func writeJSON(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

// writeError writes a JSON error response carrying the error's first hint
func writeError(w http.ResponseWriter, r *http.Request, status int, err error) {
	writeJSON(w, status, errorResponse{
		Error:     err.Error(),
		Hint:      errors.Hint(err),
		RequestID: requestIDFrom(r.Context()),
	})
}
