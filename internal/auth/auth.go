package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
)

// ExchangePath is the endpoint that trades an API key for an access token.
const ExchangePath = "/auth/exchange_user_api_key"

const maxErrorBody = 4 << 10

// Exchanger turns a long-lived API key into a short-lived access token.
type Exchanger struct {
	BaseURL string
	HTTP    *http.Client
}

// NewExchanger returns an Exchanger for baseURL using a client with a sane timeout.
func NewExchanger(baseURL string) *Exchanger {
	return &Exchanger{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 15 * time.Second},
	}
}

type exchangeResponse struct {
	AccessToken string `json:"accessToken"`
}

// Exchange performs exactly one POST. There are no retries: any failure ends
// the session before a channel is opened.
func (e *Exchanger) Exchange(ctx context.Context, apiKey string) (AccessToken, error) {
	if apiKey == "" {
		return AccessToken{}, fmt.Errorf("%w: empty API key", agenterr.ErrConfig)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.BaseURL+ExchangePath, bytes.NewReader([]byte("{}")))
	if err != nil {
		return AccessToken{}, fmt.Errorf("build exchange request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+apiKey)
	req.Header.Set("Content-Type", "application/json")

	client := e.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return AccessToken{}, fmt.Errorf("%w: exchange api key: %v", agenterr.ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return AccessToken{}, &agenterr.AuthExchangeError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	var out exchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return AccessToken{}, fmt.Errorf("%w: decode exchange response: %v", agenterr.ErrProtocolDecode, err)
	}
	if out.AccessToken == "" {
		return AccessToken{}, fmt.Errorf("%w: exchange response has no accessToken", agenterr.ErrProtocolDecode)
	}
	return NewAccessToken(out.AccessToken), nil
}
