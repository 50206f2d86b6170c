package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
		"loud":  slog.LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewFiltersAndShortensTime(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("shown", "k", "v")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line leaked: %q", out)
	}
	if !strings.Contains(out, "msg=shown") || !strings.Contains(out, "k=v") {
		t.Errorf("missing info line: %q", out)
	}
	if !regexp.MustCompile(`^time=\d\d:\d\d:\d\d `).MatchString(out) {
		t.Errorf("unexpected time format: %q", out)
	}
}

func TestInitWritesLogFile(t *testing.T) {
	prev := Log
	defer func() {
		Log = prev
		slog.SetDefault(prev)
	}()

	path := filepath.Join(t.TempDir(), "agentstream.log")
	if err := Init("debug", path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	Debug("to file", "n", 1)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "to file") {
		t.Errorf("log file = %q", data)
	}
}
