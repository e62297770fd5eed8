package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/funsnaps/contact-api/pkg/email"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Stack   string `json:"stack,omitempty"`
}

type successResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    *email.Result `json:"data"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, resp errorResponse) {
	writeJSON(w, status, resp)
}
