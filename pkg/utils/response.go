package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondJSON writes a JSON response with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError writes an error response.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondTypedError writes an error response carrying a machine-readable
// errorType discriminator so clients can react to quota vs service failures.
func RespondTypedError(w http.ResponseWriter, status int, message, errorType string) {
	RespondJSON(w, status, map[string]string{"error": message, "errorType": errorType})
}
