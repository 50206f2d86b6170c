// Package driver runs one agent session end to end: resolve the API key,
// exchange it for an access token, open the agent channel and drive the
// session to its outcome.
package driver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"github.com/ehrlich-b/agentstream/internal/auth"
	"github.com/ehrlich-b/agentstream/internal/config"
	"github.com/ehrlich-b/agentstream/internal/logger"
	"github.com/ehrlich-b/agentstream/internal/session"
	"github.com/ehrlich-b/agentstream/internal/transport"
	"google.golang.org/grpc/metadata"
)

// Exit codes reported by ExitCode.
const (
	ExitOK       = 0
	ExitFailed   = 1
	ExitConfig   = 2
	ExitAuth     = 3
	ExitTimedOut = 124
)

// TokenExchanger turns an API key into an access token.
type TokenExchanger interface {
	Exchange(ctx context.Context, apiKey string) (auth.AccessToken, error)
}

// Deps are the collaborators a run needs. Dial is only called once the token
// exchange has succeeded.
type Deps struct {
	APIKey    func() (string, error)
	Exchanger TokenExchanger
	Dial      func() (*transport.Client, error)
	Context   session.ContextBuilder
}

// Params describe the single request of a run.
type Params struct {
	UserText      string
	Model         string
	ClientVersion string
	Timeout       time.Duration
	Grace         time.Duration
	OnUpdate      func(*agentpb.InteractionUpdate)
}

// NewDeps wires the production collaborators from cfg.
func NewDeps(cfg *config.Config, envFile string) Deps {
	return Deps{
		APIKey: func() (string, error) {
			return config.ResolveAPIKey(envFile)
		},
		Exchanger: auth.NewExchanger(cfg.Backend.URL),
		Dial: func() (*transport.Client, error) {
			return transport.Dial(transport.Options{
				Target:   cfg.Agent.Host,
				Insecure: cfg.Agent.Insecure,
			})
		},
		Context: NewCollector(cfg),
	}
}

// Run performs one session. The error is non-nil only when the session never
// started (bad configuration or a failed token exchange); session failures
// are reported through the Outcome.
func Run(ctx context.Context, d Deps, p Params) (session.Outcome, error) {
	if d.APIKey == nil || d.Exchanger == nil || d.Dial == nil || d.Context == nil {
		err := fmt.Errorf("%w: driver dependencies incomplete", agenterr.ErrConfig)
		return session.Outcome{Status: session.Failed, Err: err}, err
	}

	key, err := d.APIKey()
	if err != nil {
		return session.Outcome{Status: session.Failed, Err: err}, err
	}

	token, err := d.Exchanger.Exchange(ctx, key)
	if err != nil {
		logger.Error("token exchange failed", "kind", agenterr.Kind(err), "err", err)
		return session.Outcome{Status: session.Failed, Err: err}, err
	}
	if !token.ExpiresAt.IsZero() {
		logger.Info("access token issued", "expires_in", token.TTL(time.Now()).Round(time.Second))
	} else {
		logger.Info("access token issued")
	}

	client, err := d.Dial()
	if err != nil {
		return session.Outcome{Status: session.Failed, Err: err}, err
	}
	defer client.Close()

	s := session.New(session.Options{
		Token:         token.Value,
		UserText:      p.UserText,
		Model:         p.Model,
		ClientVersion: p.ClientVersion,
		Timeout:       p.Timeout,
		Grace:         p.Grace,
		OnUpdate:      p.OnUpdate,
		Context:       d.Context,
		Opener: session.OpenerFunc(func(ctx context.Context, md metadata.MD) (session.Stream, error) {
			rs, err := client.Open(ctx, md)
			if err != nil {
				return nil, err
			}
			return rs, nil
		}),
	})
	return s.Run(ctx), nil
}

// ExitCode maps a run result to the process exit status.
func ExitCode(out session.Outcome, err error) int {
	if err == nil {
		err = out.Err
	}
	var authErr *agenterr.AuthExchangeError
	switch {
	case err == nil && out.Status == session.Completed:
		return ExitOK
	case errors.Is(err, agenterr.ErrConfig):
		return ExitConfig
	case errors.As(err, &authErr):
		return ExitAuth
	case out.Status == session.TimedOut || errors.Is(err, agenterr.ErrTimeout):
		return ExitTimedOut
	default:
		return ExitFailed
	}
}

// Describe renders a run result for the error stream, for example
// "failed (AuthExchangeError): auth exchange failed: HTTP 401".
func Describe(out session.Outcome, err error) string {
	if err == nil {
		err = out.Err
	}
	if err == nil {
		return out.Status.String()
	}
	return fmt.Sprintf("%s (%s): %v", out.Status, agenterr.Kind(err), err)
}
