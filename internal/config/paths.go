package config

import (
	"os"
	"path/filepath"
	"strings"
)

func GetUserConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".agentstream"), nil
}

// DefaultPath is ~/.agentstream/config.yaml.
func DefaultPath() (string, error) {
	dir, err := GetUserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// DefaultWorkspaceRoot is the parent of the working directory, the tree
// described to the agent when no root is configured.
func DefaultWorkspaceRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Dir(wd), nil
}

// ProjectSlug turns an absolute workspace path into the folder name the agent
// backend uses for per-project state, e.g. /workspaces/app -> workspaces-app.
func ProjectSlug(root string) string {
	clean := strings.Trim(filepath.ToSlash(filepath.Clean(root)), "/")
	if clean == "" {
		return "root"
	}
	return strings.ReplaceAll(clean, "/", "-")
}

// ProjectStateDir is ~/.cursor/projects/<slug>, home of the terminals and
// agent-notes folders advertised in the request context.
func ProjectStateDir(root string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".cursor", "projects", ProjectSlug(root)), nil
}
