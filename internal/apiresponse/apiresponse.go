// Package apiresponse writes the panel's standard JSON response envelope.
package apiresponse

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// Envelope is the body of every JSON API response. Clients branch on
// Success and read Data, so both are always present.
type Envelope struct {
	Success   bool   `json:"success"`
	Data      any    `json:"data"`
	Message   string `json:"message"`
	ErrorCode string `json:"error_code,omitempty"`
}

// Success writes a successful envelope carrying data.
func Success(w http.ResponseWriter, r *http.Request, data any, message string, status int) {
	write(w, r, status, Envelope{Success: true, Data: data, Message: message})
}

// Error writes a failed envelope with a machine-readable code.
func Error(w http.ResponseWriter, r *http.Request, message, code string, status int) {
	write(w, r, status, Envelope{Success: false, Data: nil, Message: message, ErrorCode: code})
}

func write(w http.ResponseWriter, r *http.Request, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("encoding response envelope")
	}
}
