package server

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"bacchat/internal/auth"
	"bacchat/internal/config"
)

// Test fixture: a Server wired to in-memory stores and a recording mailer.

type stubUserStore struct {
	users map[string]*auth.User
}

func (s *stubUserStore) Create(_ context.Context, email, passwordHash string, firstName, lastName *string) (*auth.User, error) {
	now := time.Now()
	user := &auth.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: passwordHash,
		FirstName:    firstName,
		LastName:     lastName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[user.ID] = user
	copied := *user
	return &copied, nil
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubUserStore) FindByID(_ context.Context, id string) (*auth.User, error) {
	if u, ok := s.users[id]; ok {
		copied := *u
		return &copied, nil
	}
	return nil, nil
}

func (s *stubUserStore) SetEmailVerified(_ context.Context, userID string, at time.Time) error {
	if u, ok := s.users[userID]; ok {
		u.EmailVerified = true
		u.EmailVerifiedAt = &at
	}
	return nil
}

func (s *stubUserStore) UpdatePassword(_ context.Context, userID, passwordHash string) error {
	if u, ok := s.users[userID]; ok {
		u.PasswordHash = passwordHash
	}
	return nil
}

func (s *stubUserStore) Delete(_ context.Context, userID string) error {
	delete(s.users, userID)
	return nil
}

type stubTokenStore struct {
	verification map[string]*auth.VerificationToken
	reset        map[string]*auth.PasswordResetToken
}

func (s *stubTokenStore) IssueVerification(_ context.Context, userID string) (*auth.VerificationToken, error) {
	for id, vt := range s.verification {
		if vt.UserID == userID {
			delete(s.verification, id)
		}
	}
	vt := &auth.VerificationToken{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(auth.VerificationTokenTTL),
	}
	s.verification[vt.ID] = vt
	copied := *vt
	return &copied, nil
}

func (s *stubTokenStore) IssueReset(_ context.Context, userID string) (*auth.PasswordResetToken, error) {
	rt := &auth.PasswordResetToken{
		ID:        uuid.NewString(),
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(auth.ResetTokenTTL),
	}
	s.reset[rt.ID] = rt
	copied := *rt
	return &copied, nil
}

func (s *stubTokenStore) FindVerification(_ context.Context, token string) (*auth.VerificationToken, error) {
	for _, vt := range s.verification {
		if vt.Token == token {
			copied := *vt
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubTokenStore) FindReset(_ context.Context, token string) (*auth.PasswordResetToken, error) {
	for _, rt := range s.reset {
		if rt.Token == token {
			copied := *rt
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *stubTokenStore) ConsumeVerification(_ context.Context, id string) error {
	delete(s.verification, id)
	return nil
}

func (s *stubTokenStore) ConsumeReset(_ context.Context, id string) error {
	if rt, ok := s.reset[id]; ok {
		rt.Used = true
	}
	return nil
}

type stubMailer struct {
	sent int
}

func (m *stubMailer) Send(_ context.Context, _, _, _, _ string) error {
	m.sent++
	return nil
}

type testEnv struct {
	server *Server
	users  *stubUserStore
	tokens *stubTokenStore
	mailer *stubMailer
	signer *auth.TokenSigner
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	users := &stubUserStore{users: make(map[string]*auth.User)}
	tokens := &stubTokenStore{
		verification: make(map[string]*auth.VerificationToken),
		reset:        make(map[string]*auth.PasswordResetToken),
	}
	mailer := &stubMailer{}
	signer := auth.NewTokenSigner([]byte("test-secret"))
	svc := auth.NewCredentialService(users, tokens, auth.NewBcryptHasher(), signer, mailer, "http://localhost:3000")

	cfg := config.Config{Port: "0", BaseURL: "http://localhost:3000"}
	return &testEnv{
		server: NewServer(cfg, svc),
		users:  users,
		tokens: tokens,
		mailer: mailer,
		signer: signer,
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.server.Router().ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) signUp(t *testing.T, email, password string) (userID, sessionToken string) {
	t.Helper()
	result, err := e.server.Credentials.SignUp(context.Background(), email, password, nil, nil, "en")
	if err != nil {
		t.Fatalf("sign up: %v", err)
	}
	return result.User.ID, result.Token
}

func bearer(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}
