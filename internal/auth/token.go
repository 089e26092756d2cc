package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Session token validity is fixed at 7 days. Wiring it through config kept
// misbehaving early on and was abandoned, so treat it as a constant.
const sessionTokenValidity = 7 * 24 * time.Hour

type sessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
}

// TokenSigner issues and verifies the signed bearer tokens that stand in for
// sessions. Tokens are stateless; there is no server-side session store.
type TokenSigner struct {
	secret []byte
}

func NewTokenSigner(secret []byte) *TokenSigner {
	return &TokenSigner{secret: secret}
}

func (s *TokenSigner) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTokenValidity)),
		},
		UserID: userID,
	})
	return token.SignedString(s.secret)
}

// Verify returns the user id carried by the token. A bad signature, malformed
// input and an expired token all produce the same negative result so callers
// cannot tell which check failed.
func (s *TokenSigner) Verify(tokenString string) (string, bool) {
	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid || claims.UserID == "" {
		return "", false
	}
	return claims.UserID, true
}
