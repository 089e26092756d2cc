package server

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"bacchat/internal/auth"
	"bacchat/internal/config"
)

type Server struct {
	Credentials *auth.CredentialService
	Config      config.Config
}

func NewServer(cfg config.Config, credentials *auth.CredentialService) *Server {
	return &Server{
		Credentials: credentials,
		Config:      cfg,
	}
}

func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	formatter := &middleware.DefaultLogFormatter{
		Logger:  log.New(log.Writer(), "", log.Flags()),
		NoColor: true,
	}
	r.Use(middleware.RequestLogger(formatter))
	r.Use(middleware.Recoverer)
	r.Use(secureHeaders)

	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", s.handleSignUp)
		r.Post("/signin", s.handleSignIn)
		r.Post("/verify-email", s.handleVerifyEmail)
		r.Post("/forgot-password", s.handleForgotPassword)
		r.Post("/reset-password", s.handleResetPassword)

		r.Group(func(pr chi.Router) {
			pr.Use(s.requireAuth)
			pr.Post("/resend-verification", s.handleResendVerification)
			pr.Get("/me", s.handleMe)
		})
	})

	return r
}
