package httpserver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	domain "accounts/backend/internal/domain/auth"
	usecase "accounts/backend/internal/usecase/auth"
)

// Options configures the HTTP server.
type Options struct {
	Port           string
	AllowedOrigins []string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
}

// Server exposes the authentication use cases over HTTP.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux

	log            *slog.Logger
	perfLogger     domain.PerformanceLogger
	statusRecorder StatusRecorder
	allowedOrigins []string

	signUp         usecase.Executor[usecase.SignUpInput, usecase.SignUpOutput]
	signIn         usecase.Executor[usecase.SignInInput, usecase.SignInOutput]
	forgotPassword usecase.Executor[usecase.SendForgotPasswordNotificationInput, struct{}]
	jwtProvider    domain.JwtProvider

	metricsHandler http.Handler
}

// NewServer wires the routes and middleware chain. statusRecorder and
// metricsHandler may be nil when metrics are disabled.
func NewServer(
	opts Options,
	log *slog.Logger,
	perfLogger domain.PerformanceLogger,
	statusRecorder StatusRecorder,
	signUp usecase.Executor[usecase.SignUpInput, usecase.SignUpOutput],
	signIn usecase.Executor[usecase.SignInInput, usecase.SignInOutput],
	forgotPassword usecase.Executor[usecase.SendForgotPasswordNotificationInput, struct{}],
	jwtProvider domain.JwtProvider,
	metricsHandler http.Handler,
) *Server {
	s := &Server{
		mux:            http.NewServeMux(),
		log:            log,
		perfLogger:     perfLogger,
		statusRecorder: statusRecorder,
		allowedOrigins: opts.AllowedOrigins,
		signUp:         signUp,
		signIn:         signIn,
		forgotPassword: forgotPassword,
		jwtProvider:    jwtProvider,
		metricsHandler: metricsHandler,
	}
	s.registerRoutes()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%s", opts.Port),
		Handler:      s.withLogging(s.withRecovery(s.withCORS(s.mux))),
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		IdleTimeout:  opts.IdleTimeout,
	}
	return s
}

func (s *Server) registerRoutes() {
	s.mux.HandleFunc("/sign-up", s.timed("SignUpController", s.handleSignUp))
	s.mux.HandleFunc("/sign-in", s.timed("SignInController", s.handleSignIn))
	s.mux.HandleFunc("/forgot-password", s.timed("ForgotPasswordController", s.handleForgotPassword))
	s.mux.HandleFunc("/me", s.timed("MeController", s.handleMe))
	s.mux.HandleFunc("/health", s.handleHealth)
	if s.metricsHandler != nil {
		s.mux.Handle("/metrics", s.metricsHandler)
	}
}

// Handler returns the full middleware-wrapped handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start blocks serving requests until the listener fails or Shutdown is
// called.
func (s *Server) Start() error {
	s.log.Info("http server listening", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown drains in-flight requests until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
