package driver

import (
	"path/filepath"

	"github.com/ehrlich-b/agentstream/internal/config"
	"github.com/ehrlich-b/agentstream/internal/logger"
	"github.com/ehrlich-b/agentstream/internal/workspace"
)

// NewCollector builds the request-context collector for cfg, filling in the
// per-project terminals and notes folders under ~/.cursor/projects.
func NewCollector(cfg *config.Config) *workspace.Collector {
	root := cfg.Workspace.Root
	if root == "" {
		var err error
		if root, err = config.DefaultWorkspaceRoot(); err != nil {
			logger.Warn("default workspace root", "err", err)
			root = "."
		}
	}

	c := &workspace.Collector{
		Root:            root,
		Shell:           cfg.Workspace.Shell,
		TerminalsFolder: cfg.Workspace.TerminalsFolder,
		NotesFolder:     cfg.Workspace.NotesFolder,
	}
	if c.TerminalsFolder != "" && c.NotesFolder != "" {
		return c
	}
	state, err := config.ProjectStateDir(root)
	if err != nil {
		logger.Warn("project state dir", "err", err)
		return c
	}
	if c.TerminalsFolder == "" {
		c.TerminalsFolder = filepath.Join(state, "terminals")
	}
	if c.NotesFolder == "" {
		c.NotesFolder = filepath.Join(state, "agent-notes", "shared")
	}
	return c
}
