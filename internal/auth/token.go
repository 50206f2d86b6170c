package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AccessToken is the short-lived bearer credential for the agent channel.
// It lives for one session and is never persisted.
type AccessToken struct {
	Value string
	// ExpiresAt is read from the exp claim when the token is a JWT. It is
	// informational only; zero when unknown.
	ExpiresAt time.Time
}

// NewAccessToken wraps value, reading its expiry without verifying the
// signature. The backend is the only party that validates it.
func NewAccessToken(value string) AccessToken {
	tok := AccessToken{Value: value}
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(value, &claims); err == nil && claims.ExpiresAt != nil {
		tok.ExpiresAt = claims.ExpiresAt.Time
	}
	return tok
}

// TTL is the remaining lifetime at now, or zero when unknown or expired.
func (t AccessToken) TTL(now time.Time) time.Duration {
	if t.ExpiresAt.IsZero() || !t.ExpiresAt.After(now) {
		return 0
	}
	return t.ExpiresAt.Sub(now)
}

// String hides the token from logs.
func (t AccessToken) String() string {
	if t.Value == "" {
		return "<none>"
	}
	return "<redacted>"
}
