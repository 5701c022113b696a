package respond

import (
	"encoding/json"
	"log"
	"net/http"
)

// Envelope is the JSON wrapper for machine-facing endpoints.
type Envelope struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// JSON writes payload inside the common envelope.
func JSON(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(Envelope{Code: status, Message: message, Data: data}); err != nil {
		log.Printf("respond: encode payload failed: %v", err)
	}
}
