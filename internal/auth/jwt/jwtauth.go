// Package jwt mints and verifies the bearer tokens the dashboard API
// runs on. Tokens carry only an expiry and, for named admins, the
// username as the subject claim.
package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
)

// VerifyToken validates a token against the shared secret and returns
// the subject claim, empty for master-password sessions.
func VerifyToken(jwtAuth *jwtauth.JWTAuth, token string) (string, error) {
	t, err := jwtauth.VerifyToken(jwtAuth, token)
	if err != nil {
		return "", err
	}
	return t.Subject(), nil
}

// NewToken issues an anonymous token, used for master-password logins.
func NewToken(jwtAuth *jwtauth.JWTAuth, ttl time.Duration) (string, error) {
	return NewTokenWithSubject(jwtAuth, ttl, "")
}

// NewTokenWithSubject issues a token that names the admin it belongs to.
func NewTokenWithSubject(jwtAuth *jwtauth.JWTAuth, ttl time.Duration, subject string) (string, error) {
	claims := map[string]interface{}{
		"exp": time.Now().Add(ttl).Unix(),
	}
	if subject != "" {
		claims["sub"] = subject
	}
	_, ts, err := jwtAuth.Encode(claims)
	return ts, err
}
