package server

import (
	"errors"
	"log"
	"net/http"

	"bacchat/internal/auth"
	"bacchat/internal/i18n"
)

type signUpRequest struct {
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if !validateEmail(req.Email) {
		writeError(w, http.StatusBadRequest, "Valid email is required")
		return
	}
	if err := validatePassword(req.Password); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	locale := i18n.LocaleFromRequest(r)
	result, err := s.Credentials.SignUp(r.Context(), req.Email, req.Password, trimOptional(req.FirstName), trimOptional(req.LastName), locale)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateEmail) {
			writeError(w, http.StatusBadRequest, "Email already registered")
			return
		}
		log.Printf("signup failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to create user")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "User created successfully. Please check your email to verify your account.",
		"token":   result.Token,
		"user":    result.User,
	})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if !validateEmail(req.Email) || req.Password == "" {
		writeError(w, http.StatusBadRequest, "Invalid request data")
		return
	}

	result, err := s.Credentials.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		log.Printf("signin failed: %v", err)
		writeError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Signed in successfully",
		"token":   result.Token,
		"user":    result.User,
	})
}

type verifyEmailRequest struct {
	Token string `json:"token"`
}

func (s *Server) handleVerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "Token is required")
		return
	}

	if err := s.Credentials.VerifyEmail(r.Context(), req.Token); err != nil {
		switch {
		case errors.Is(err, auth.ErrInvalidToken):
			writeError(w, http.StatusBadRequest, "Invalid verification token")
		case errors.Is(err, auth.ErrTokenExpired):
			writeError(w, http.StatusBadRequest, "Verification token has expired")
		default:
			log.Printf("verify-email failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to verify email")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Email verified successfully"})
}

func (s *Server) handleResendVerification(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())
	locale := i18n.LocaleFromRequest(r)

	if err := s.Credentials.ResendVerification(r.Context(), userID, locale); err != nil {
		switch {
		case errors.Is(err, auth.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "User not found")
		case errors.Is(err, auth.ErrAlreadyVerified):
			writeError(w, http.StatusBadRequest, "Email already verified")
		default:
			log.Printf("resend-verification failed for user %s: %v", userID, err)
			writeError(w, http.StatusInternalServerError, "Failed to send verification email")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Verification email sent"})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	userID := userIDFromContext(r.Context())

	user, err := s.Credentials.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "User not found")
			return
		}
		log.Printf("me failed for user %s: %v", userID, err)
		writeError(w, http.StatusInternalServerError, "Failed to get user")
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}
