package handler

import (
	"net/http"

	"github.com/funsnaps/contact-api/pkg/service"
)

// Handler is the entry point for the Vercel serverless function served at
// /api/contact.
func Handler(w http.ResponseWriter, r *http.Request) {
	server, err := service.Shared()
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Internal server error"}` + "\n"))
		return
	}
	server.Router().ServeHTTP(w, r)
}
