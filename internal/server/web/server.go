// Package web serves the links placed into account emails: verification,
// verification resend, and the password reset pair.
package web

import (
	"context"
	"time"

	"github.com/dmitrijs2005/taskplanner/internal/logging"
	"github.com/dmitrijs2005/taskplanner/internal/server/services"
	"github.com/gofiber/fiber/v3"
)

// BasePath prefixes every route.
const BasePath = "/todo-list-api/auth"

const shutdownTimeout = 5 * time.Second

type AccountService interface {
	Verify(ctx context.Context, token string) (*services.TokenPair, error)
	ResendVerification(ctx context.Context, email string) error
	InitiatePasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

type Throttle interface {
	Allow(ctx context.Context, scope, key string) error
}

type Server struct {
	address  string
	app      *fiber.App
	accounts AccountService
	throttle Throttle
	logger   logging.Logger
}

// NewServer builds the HTTP server. A nil throttle disables per-address
// limits.
func NewServer(address string, l logging.Logger, accounts AccountService, t Throttle) *Server {
	s := &Server{
		address:  address,
		app:      fiber.New(fiber.Config{AppName: "taskplanner"}),
		accounts: accounts,
		throttle: t,
		logger:   l.With("module", "http_server"),
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group(BasePath)

	api.Get("/verify", s.throttled("verify"), s.verify)
	api.Get("/resend-verification-token", s.throttled("resend"), s.resendVerification)
	api.Post("/forgot-password", s.throttled("forgot"), s.forgotPassword)
	api.Get("/reset-password", s.resetPasswordForm)
	api.Post("/reset-password", s.throttled("reset"), s.resetPassword)
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP shutdown failed", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	return s.app.Listen(s.address, fiber.ListenConfig{DisableStartupMessage: true})
}
