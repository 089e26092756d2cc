package server

import (
	"errors"
	"log"
	"net/http"

	"bacchat/internal/auth"
	"bacchat/internal/i18n"
)

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

func (s *Server) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req forgotPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Valid email is required")
		return
	}

	locale := i18n.LocaleFromRequest(r)
	if err := s.Credentials.RequestPasswordReset(r.Context(), req.Email, locale); err != nil {
		log.Printf("forgot-password failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to process password reset request")
		return
	}

	// Identical response whether or not the address has an account.
	writeJSON(w, http.StatusOK, map[string]string{
		"message": "If the email exists, a password reset link has been sent",
	})
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

func (s *Server) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "Token is required")
		return
	}
	if err := validatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := s.Credentials.ResetPassword(r.Context(), req.Token, req.Password); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken):
			writeError(w, http.StatusBadRequest, "Invalid reset token")
		case errors.Is(err, auth.ErrTokenExpired):
			writeError(w, http.StatusBadRequest, "Reset token has expired")
		case errors.Is(err, auth.ErrTokenUsed):
			writeError(w, http.StatusBadRequest, "Reset token has already been used")
		default:
			log.Printf("reset-password failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to reset password")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Password reset successfully"})
}
