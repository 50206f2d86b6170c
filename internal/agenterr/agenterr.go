// Package agenterr holds the failure kinds shared by every stage of an agent
// session. All of them are terminal: nothing in agentstream retries.
package agenterr

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig means the credential or configuration is missing or invalid.
	// Nothing touches the network once this is returned.
	ErrConfig = errors.New("config error")

	// ErrProtocolDecode means a response body or inbound frame did not match
	// the expected shape.
	ErrProtocolDecode = errors.New("protocol decode error")

	// ErrTransport means the agent channel failed (reset, TLS, remote abort).
	ErrTransport = errors.New("transport error")

	// ErrTimeout means the peer never produced a terminal signal within the
	// session ceiling.
	ErrTimeout = errors.New("timeout")
)

// AuthExchangeError is returned when the token exchange endpoint answers with
// a non-200 status.
type AuthExchangeError struct {
	StatusCode int
	Body       string
}

func (e *AuthExchangeError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("auth exchange failed: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("auth exchange failed: HTTP %d: %s", e.StatusCode, e.Body)
}

// Kind names the failure kind of err for diagnostics.
func Kind(err error) string {
	var authErr *AuthExchangeError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &authErr):
		return "AuthExchangeError"
	case errors.Is(err, ErrConfig):
		return "ConfigError"
	case errors.Is(err, ErrProtocolDecode):
		return "ProtocolDecodeError"
	case errors.Is(err, ErrTimeout):
		return "TimeoutError"
	case errors.Is(err, ErrTransport):
		return "TransportError"
	default:
		return "Error"
	}
}
