package workspace

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"github.com/ehrlich-b/agentstream/internal/logger"
	"golang.org/x/sync/errgroup"
)

// NoNotesListing is sent when the shared notes folder does not exist yet.
const NoNotesListing = "(No notes directory yet - will be created when you write your first note)"

// Collector gathers a RequestContext for one workspace root.
type Collector struct {
	Root            string
	Shell           string
	TerminalsFolder string
	NotesFolder     string

	// GitStatus returns `git status` output for dir. Nil runs the git binary.
	GitStatus func(ctx context.Context, dir string) (string, error)
}

// RequestContext builds a fresh context. Every call re-walks the tree; nothing
// is cached between exec events.
func (c *Collector) RequestContext(ctx context.Context) (*agentpb.RequestContext, error) {
	root, err := filepath.Abs(c.Root)
	if err != nil {
		return nil, fmt.Errorf("resolve workspace root: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("workspace root: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("workspace root %s is not a directory", root)
	}

	gitStatus := c.GitStatus
	if gitStatus == nil {
		gitStatus = runGitStatus
	}

	var layout *agentpb.ProjectLayout
	var status string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := BuildLayoutContext(gctx, root)
		if err != nil {
			return fmt.Errorf("walk workspace: %w", err)
		}
		layout = l
		return nil
	})
	g.Go(func() error {
		s, err := gitStatus(gctx, root)
		if err != nil {
			// not a repository, or git missing
			logger.Debug("snapshot: git status unavailable", "dir", root, "err", err)
			return nil
		}
		status = s
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rc := &agentpb.RequestContext{
		WorkspacePath: root,
		Env: &agentpb.RequestContextEnv{
			OsVersion:              OSVersion(),
			WorkspacePaths:         []string{root},
			Shell:                  c.shell(),
			TerminalsFolder:        c.TerminalsFolder,
			AgentSharedNotesFolder: c.NotesFolder,
			TimeZone:               timeZone(),
		},
		SharedNotesListing: NotesListing(c.NotesFolder),
		ProjectLayouts:     []*agentpb.ProjectLayout{layout},
	}
	if status != "" {
		rc.GitRepos = []*agentpb.GitRepo{{Path: root, Status: status}}
	}

	dirs, files := layout.Count()
	logger.Debug("snapshot built", "root", root, "dirs", dirs, "files", files, "git", status != "")
	return rc, nil
}

func (c *Collector) shell() string {
	if c.Shell != "" {
		return c.Shell
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return filepath.Base(sh)
	}
	return "sh"
}

// NotesListing renders the shared notes folder as one name per line.
func NotesListing(dir string) string {
	if dir == "" {
		return NoNotesListing
	}
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return NoNotesListing
	}
	if err != nil {
		logger.Debug("snapshot: unreadable notes folder", "dir", dir, "err", err)
		return NoNotesListing
	}
	if len(entries) == 0 {
		return "(Notes directory is empty)"
	}
	var b strings.Builder
	for _, e := range entries {
		b.WriteString(e.Name())
		if e.IsDir() {
			b.WriteString("/")
		}
		b.WriteString("\n")
	}
	return b.String()
}

func runGitStatus(ctx context.Context, dir string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	out, err := exec.CommandContext(ctx, "git", "-C", dir, "status").Output()
	if err != nil {
		return "", fmt.Errorf("git status: %w", err)
	}
	return string(out), nil
}

func timeZone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	name, _ := time.Now().Zone()
	return name
}
