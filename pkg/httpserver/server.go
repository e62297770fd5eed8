package httpserver

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/funsnaps/contact-api/pkg/config"
	"github.com/funsnaps/contact-api/pkg/email"
	"github.com/funsnaps/contact-api/pkg/logging"
	"github.com/funsnaps/contact-api/pkg/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

type Server struct {
	config      *config.Config
	logger      *zap.Logger
	emailSender email.Sender
	senderErr   error
	metrics     *metrics.Metrics
	router      chi.Router

	mu         sync.Mutex
	listener   net.Listener
	httpServer *http.Server
}

// Option customizes a Server built by New.
type Option func(*Server)

// WithSenderError records why no email sender is available. In development
// the reason is returned as details on the configuration error response.
func WithSenderError(err error) Option {
	return func(s *Server) {
		s.senderErr = err
	}
}

// New builds the server and its routes. emailSender may be nil when no
// provider is configured; the contact endpoint then answers with a
// configuration error instead of sending.
func New(config *config.Config, logger *zap.Logger, emailSender email.Sender, opts ...Option) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	r := chi.NewRouter()
	m := metrics.New()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(logging.Recoverer(logger))
	r.Use(m.Middleware)
	r.Use(middleware.Timeout(60 * time.Second))

	if config.EnableCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: config.CORSAllowedOrigins,
			AllowedMethods: []string{http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type"},
			MaxAge:         3600,
		}))
	}

	s := &Server{
		config:      config,
		logger:      logger,
		emailSender: emailSender,
		metrics:     m,
		router:      r,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.registerRoutes()

	return s
}

// Router returns the fully configured handler, for serverless entrypoints
// that do not call Run.
func (s *Server) Router() http.Handler {
	return s.router
}

// Addr returns the address the server is bound to, or "" before Run.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// IsListening checks if the server accepts connections on its bound address.
func (s *Server) IsListening() bool {
	addr := s.Addr()
	if addr == "" {
		return false
	}
	conn, err := net.DialTimeout("tcp", addr, 5*time.Second)
	if err != nil {
		return false
	}
	defer conn.Close()
	return true
}

// Run binds the configured address and serves until Close.
func (s *Server) Run() error {
	ln, err := net.Listen("tcp", s.config.HTTPAddress)
	if err != nil {
		return err
	}
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.mu.Lock()
	s.listener = ln
	s.httpServer = srv
	s.mu.Unlock()

	s.logger.Info("contact service listening", zap.String("address", ln.Addr().String()))
	return srv.Serve(ln)
}

func (s *Server) Close() error {
	s.mu.Lock()
	srv := s.httpServer
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
