package httpserver

import (
	"net/http"
	"strings"
)

// registerRoutes registers all routes on the server's router.
func (s *Server) registerRoutes() {
	s.router.Post(s.config.ContactPath, s.HandleContact)
	if s.config.EnableCORS {
		// Preflights carrying Access-Control-Request-Method are answered by
		// the CORS middleware; this covers bare OPTIONS requests.
		s.router.Options(s.config.ContactPath, s.HandlePreflight)
	}

	s.router.Get("/health", s.HandleHealthCheck)
	if s.config.MetricsEnabled {
		s.router.Handle("/metrics", s.metrics.Handler())
	}

	s.router.MethodNotAllowed(s.HandleMethodNotAllowed)
	s.router.NotFound(s.HandleNotFound)
}

// HandleHealthCheck godoc
// @Summary      Health check
// @Description  Returns service health status
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string "Service is healthy"
// @Router       /health [get]
func (s *Server) HandleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// HandlePreflight answers a CORS preflight with no body.
func (s *Server) HandlePreflight(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) HandleMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == s.config.ContactPath {
		allowed := []string{http.MethodPost}
		if s.config.EnableCORS {
			allowed = append(allowed, http.MethodOptions)
		}
		w.Header().Set("Allow", strings.Join(allowed, ", "))
	}
	writeError(w, http.StatusMethodNotAllowed, errorResponse{Error: "Method not allowed"})
}

func (s *Server) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, errorResponse{Error: "Not found"})
}
