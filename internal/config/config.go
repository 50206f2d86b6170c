package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
	"gopkg.in/yaml.v3"
)

const (
	DefaultBackendURL    = "https://api2.cursor.sh"
	DefaultAgentHost     = "api2.cursor.sh:443"
	DefaultModel         = "default"
	DefaultClientVersion = "sdk-0.0.0"
	DefaultTimeout       = 30 * time.Second
	DefaultGrace         = 5 * time.Second
)

// Config represents the application configuration
type Config struct {
	Backend   BackendConfig   `yaml:"backend"`
	Agent     AgentConfig     `yaml:"agent"`
	Workspace WorkspaceConfig `yaml:"workspace"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// BackendConfig locates the HTTP API used for the token exchange.
type BackendConfig struct {
	URL string `yaml:"url"`
}

// AgentConfig locates the agent channel and shapes the session.
type AgentConfig struct {
	Host          string `yaml:"host"` // host:port
	Insecure      bool   `yaml:"insecure,omitempty"`
	Model         string `yaml:"model"`
	ClientVersion string `yaml:"client_version,omitempty"`
	Timeout       string `yaml:"timeout,omitempty"` // session ceiling, e.g. "30s"
	Grace         string `yaml:"grace,omitempty"`   // teardown flush window, e.g. "5s"
}

type WorkspaceConfig struct {
	Root            string `yaml:"root,omitempty"`
	Shell           string `yaml:"shell,omitempty"`
	TerminalsFolder string `yaml:"terminals_folder,omitempty"`
	NotesFolder     string `yaml:"notes_folder,omitempty"`
}

// LoggingConfig controls diagnostics. An empty level lets the CLI pick one.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Backend: BackendConfig{URL: DefaultBackendURL},
		Agent: AgentConfig{
			Host:          DefaultAgentHost,
			Model:         DefaultModel,
			ClientVersion: DefaultClientVersion,
		},
	}
}

// Load reads configuration from path on top of the defaults. A missing file is
// not an error: every setting has a default. An empty path means DefaultPath.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("%w: resolve config path: %v", agenterr.ErrConfig, err)
		}
		path = p
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("%w: failed to read config file: %v", agenterr.ErrConfig, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to parse config file: %v", agenterr.ErrConfig, err)
		}
	}

	// Override with environment variables if present
	if v := os.Getenv("AGENTSTREAM_BACKEND"); v != "" {
		cfg.Backend.URL = v
	}
	if v := os.Getenv("AGENTSTREAM_AGENT_HOST"); v != "" {
		cfg.Agent.Host = v
	}
	if v := os.Getenv("AGENT_MODEL"); v != "" {
		cfg.Agent.Model = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: invalid configuration: %v", agenterr.ErrConfig, err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Backend.URL == "" {
		return fmt.Errorf("backend.url is required")
	}
	if c.Agent.Host == "" {
		return fmt.Errorf("agent.host is required")
	}
	if c.Agent.Model == "" {
		return fmt.Errorf("agent.model is required")
	}
	if _, err := parseDuration(c.Agent.Timeout, DefaultTimeout); err != nil {
		return fmt.Errorf("agent.timeout: %w", err)
	}
	if _, err := parseDuration(c.Agent.Grace, DefaultGrace); err != nil {
		return fmt.Errorf("agent.grace: %w", err)
	}
	return nil
}

// SessionTimeout is the ceiling wait for the whole session.
func (c *Config) SessionTimeout() time.Duration {
	d, _ := parseDuration(c.Agent.Timeout, DefaultTimeout)
	return d
}

// TeardownGrace bounds how long teardown waits for in-flight frames.
func (c *Config) TeardownGrace() time.Duration {
	d, _ := parseDuration(c.Agent.Grace, DefaultGrace)
	return d
}

func parseDuration(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", s)
	}
	return d, nil
}
