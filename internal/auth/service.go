package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"bacchat/internal/i18n"
)

// Mailer is the outbound email contract. A send failure is a normal return
// value, never fatal to the service itself.
type Mailer interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

// AuthResult bundles the sanitized user with a freshly issued session token.
type AuthResult struct {
	User  UserView
	Token string
}

// CredentialService orchestrates sign-up, sign-in, email verification and
// password reset. All state lives in the stores; the service itself holds no
// mutable state and is safe for concurrent use.
type CredentialService struct {
	users   UserStore
	tokens  TokenStore
	hasher  PasswordHasher
	signer  *TokenSigner
	mailer  Mailer
	baseURL string
}

func NewCredentialService(users UserStore, tokens TokenStore, hasher PasswordHasher, signer *TokenSigner, mailer Mailer, baseURL string) *CredentialService {
	return &CredentialService{
		users:   users,
		tokens:  tokens,
		hasher:  hasher,
		signer:  signer,
		mailer:  mailer,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NormalizeEmail lowercases and trims an address so uniqueness checks are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates the user, issues a verification token and mails the link.
// The verification email is best effort: a send failure is logged and the
// sign-up still succeeds.
func (s *CredentialService) SignUp(ctx context.Context, email, password string, firstName, lastName *string, locale string) (*AuthResult, error) {
	email = NormalizeEmail(email)

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, email, hash, firstName, lastName)
	if err != nil {
		// Concurrent sign-up with the same address loses the race on the
		// unique constraint.
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	vt, err := s.tokens.IssueVerification(ctx, user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue verification token: %w", err)
	}

	if err := s.sendVerificationEmail(ctx, user, vt.Token, locale); err != nil {
		log.Printf("signup: verification email to %s failed: %v", user.Email, err)
	}

	sessionToken, err := s.signer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &AuthResult{User: user.View(), Token: sessionToken}, nil
}

// SignIn verifies the credentials and issues a session token. An unknown
// email and a wrong password are indistinguishable to the caller.
func (s *CredentialService) SignIn(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil || !s.hasher.Compare(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	sessionToken, err := s.signer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("issue session token: %w", err)
	}

	return &AuthResult{User: user.View(), Token: sessionToken}, nil
}

// VerifyEmail marks the owning user verified and deletes the token, making a
// second call with the same value fail as invalid.
func (s *CredentialService) VerifyEmail(ctx context.Context, token string) error {
	vt, err := s.tokens.FindVerification(ctx, token)
	if err != nil {
		return fmt.Errorf("look up verification token: %w", err)
	}
	if vt == nil {
		return ErrInvalidToken
	}
	if time.Now().After(vt.ExpiresAt) {
		return ErrTokenExpired
	}

	if err := s.users.SetEmailVerified(ctx, vt.UserID, time.Now()); err != nil {
		return fmt.Errorf("mark email verified: %w", err)
	}
	if err := s.tokens.ConsumeVerification(ctx, vt.ID); err != nil {
		return fmt.Errorf("consume verification token: %w", err)
	}
	return nil
}

// ResendVerification replaces the user's verification token and re-sends the
// email. Unlike sign-up, a send failure here is surfaced to the caller.
func (s *CredentialService) ResendVerification(ctx context.Context, userID, locale string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	vt, err := s.tokens.IssueVerification(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("issue verification token: %w", err)
	}
	if err := s.sendVerificationEmail(ctx, user, vt.Token, locale); err != nil {
		return fmt.Errorf("send verification email: %w", err)
	}
	return nil
}

// RequestPasswordReset always reports success so callers cannot probe which
// addresses have accounts. When the address matches, a reset token is issued
// and mailed best effort.
func (s *CredentialService) RequestPasswordReset(ctx context.Context, email, locale string) error {
	user, err := s.users.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil
	}

	rt, err := s.tokens.IssueReset(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("issue reset token: %w", err)
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", s.baseURL, rt.Token)
	content := i18n.PasswordResetEmail(locale, greetingName(user), link, 1)
	if err := s.mailer.Send(ctx, user.Email, content.Subject, content.Text, content.HTML); err != nil {
		log.Printf("forgot-password: reset email to %s failed: %v", user.Email, err)
	}
	return nil
}

// ResetPassword consumes a reset token. The token is only marked used after
// the password update succeeds, so a partial failure never burns the token
// without changing the password.
func (s *CredentialService) ResetPassword(ctx context.Context, token, newPassword string) error {
	rt, err := s.tokens.FindReset(ctx, token)
	if err != nil {
		return fmt.Errorf("look up reset token: %w", err)
	}
	if rt == nil {
		return ErrInvalidToken
	}
	if time.Now().After(rt.ExpiresAt) {
		return ErrTokenExpired
	}
	if rt.Used {
		return ErrTokenUsed
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.users.UpdatePassword(ctx, rt.UserID, hash); err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if err := s.tokens.ConsumeReset(ctx, rt.ID); err != nil {
		return fmt.Errorf("mark reset token used: %w", err)
	}
	return nil
}

// GetProfile returns the sanitized view of the user.
func (s *CredentialService) GetProfile(ctx context.Context, userID string) (*UserView, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	view := user.View()
	return &view, nil
}

// Authenticate validates a session token and confirms the user still exists.
// A user deleted after issuance fails here, which is the only form of
// revocation the system has. Both failures look the same to the caller; the
// wrapped detail is for logs only.
func (s *CredentialService) Authenticate(ctx context.Context, token string) (string, error) {
	userID, ok := s.signer.Verify(token)
	if !ok {
		return "", fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("look up user: %w", err)
	}
	if user == nil {
		return "", fmt.Errorf("%w: user %s no longer exists", ErrUnauthorized, userID)
	}
	return user.ID, nil
}

func (s *CredentialService) sendVerificationEmail(ctx context.Context, user *User, token, locale string) error {
	link := fmt.Sprintf("%s/verify-email?token=%s", s.baseURL, token)
	content := i18n.VerificationEmail(locale, greetingName(user), link, 24)
	return s.mailer.Send(ctx, user.Email, content.Subject, content.Text, content.HTML)
}

func greetingName(user *User) string {
	if user.FirstName != nil && strings.TrimSpace(*user.FirstName) != "" {
		return *user.FirstName
	}
	return ""
}
