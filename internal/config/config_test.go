package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ehrlich-b/agentstream/internal/agenterr"
)

func clearOverrides(t *testing.T) {
	t.Helper()
	t.Setenv("AGENTSTREAM_BACKEND", "")
	t.Setenv("AGENTSTREAM_AGENT_HOST", "")
	t.Setenv("AGENT_MODEL", "")
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearOverrides(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.URL != DefaultBackendURL {
		t.Errorf("backend = %q", cfg.Backend.URL)
	}
	if cfg.Agent.Host != DefaultAgentHost || cfg.Agent.Model != DefaultModel {
		t.Errorf("agent = %+v", cfg.Agent)
	}
	if cfg.SessionTimeout() != 30*time.Second {
		t.Errorf("timeout = %v", cfg.SessionTimeout())
	}
	if cfg.TeardownGrace() != 5*time.Second {
		t.Errorf("grace = %v", cfg.TeardownGrace())
	}
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	clearOverrides(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `backend:
  url: http://localhost:8080
agent:
  host: localhost:9443
  insecure: true
  model: claude-4-sonnet
  timeout: 2s
workspace:
  shell: bash
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("AGENT_MODEL", "gpt-5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend.URL != "http://localhost:8080" {
		t.Errorf("backend = %q", cfg.Backend.URL)
	}
	if !cfg.Agent.Insecure || cfg.Agent.Host != "localhost:9443" {
		t.Errorf("agent = %+v", cfg.Agent)
	}
	if cfg.Agent.Model != "gpt-5" {
		t.Errorf("model = %q, want env override", cfg.Agent.Model)
	}
	if cfg.SessionTimeout() != 2*time.Second {
		t.Errorf("timeout = %v", cfg.SessionTimeout())
	}
	if cfg.Agent.ClientVersion != DefaultClientVersion {
		t.Errorf("client version = %q, want default kept", cfg.Agent.ClientVersion)
	}
	if cfg.Workspace.Shell != "bash" || cfg.Logging.Level != "debug" {
		t.Errorf("workspace/logging = %+v %+v", cfg.Workspace, cfg.Logging)
	}
}

func TestLoadInvalid(t *testing.T) {
	clearOverrides(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("agent: [unclosed"), 0644)
	if _, err := Load(bad); !errors.Is(err, agenterr.ErrConfig) {
		t.Errorf("parse error = %v, want ErrConfig", err)
	}

	neg := filepath.Join(dir, "neg.yaml")
	os.WriteFile(neg, []byte("agent:\n  timeout: -1s\n"), 0644)
	if _, err := Load(neg); !errors.Is(err, agenterr.ErrConfig) {
		t.Errorf("negative timeout = %v, want ErrConfig", err)
	}
}

func TestResolveAPIKeyFromEnv(t *testing.T) {
	t.Setenv(APIKeyEnv, "key-from-env")
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	os.WriteFile(envFile, []byte("CURSOR_API_KEY=key-from-file\n"), 0600)

	key, err := ResolveAPIKey(envFile)
	if err != nil {
		t.Fatalf("ResolveAPIKey: %v", err)
	}
	if key != "key-from-env" {
		t.Errorf("key = %q, environment should win", key)
	}
}

func TestResolveAPIKeyFromSettingsFile(t *testing.T) {
	t.Setenv(APIKeyEnv, "")
	envFile := filepath.Join(t.TempDir(), ".env")
	os.WriteFile(envFile, []byte("# local settings\nCURSOR_API_KEY=key-from-file\nOTHER=1\n"), 0600)

	key, err := ResolveAPIKey(envFile)
	if err != nil {
		t.Fatalf("ResolveAPIKey: %v", err)
	}
	if key != "key-from-file" {
		t.Errorf("key = %q", key)
	}
}

func TestResolveAPIKeyMissing(t *testing.T) {
	t.Setenv(APIKeyEnv, "")

	_, err := ResolveAPIKey(filepath.Join(t.TempDir(), ".env"))
	if !errors.Is(err, agenterr.ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}

	empty := filepath.Join(t.TempDir(), ".env")
	os.WriteFile(empty, []byte("CURSOR_API_KEY=\n"), 0600)
	if _, err := ResolveAPIKey(empty); !errors.Is(err, agenterr.ErrConfig) {
		t.Errorf("empty value err = %v, want ErrConfig", err)
	}

	if _, err := ResolveAPIKey(""); !errors.Is(err, agenterr.ErrConfig) {
		t.Errorf("no file err = %v, want ErrConfig", err)
	}
}

func TestProjectSlug(t *testing.T) {
	cases := map[string]string{
		"/workspaces/ts-hello-world": "workspaces-ts-hello-world",
		"/home/me/src/app/":          "home-me-src-app",
		"/":                          "root",
	}
	for in, want := range cases {
		if got := ProjectSlug(in); got != want {
			t.Errorf("ProjectSlug(%q) = %q, want %q", in, got, want)
		}
	}
}
