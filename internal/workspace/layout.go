// Package workspace describes the local workspace to the agent: a recursive
// project layout plus environment and git state.
package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"github.com/ehrlich-b/agentstream/internal/logger"
)

// skippedDirs are build-output and dependency-cache folders.
var skippedDirs = map[string]bool{
	"target":       true,
	"node_modules": true,
}

// SkipDir reports whether a directory named name is left out of snapshots.
// Hidden directories are skipped along with build output.
func SkipDir(name string) bool {
	return skippedDirs[name] || strings.HasPrefix(name, ".")
}

// BuildLayout walks root depth-first and returns its layout. Output is
// deterministic: children are ordered by name. A directory that cannot be
// listed is kept with whatever entries were read and ChildrenWereProcessed
// set to false.
//
// Symlinks are followed. A link to a directory is descended like a directory
// unless its target is the directory itself or one of its ancestors; broken
// links are left out.
func BuildLayout(root string) *agentpb.ProjectLayout {
	layout, _ := BuildLayoutContext(context.Background(), root)
	return layout
}

// BuildLayoutContext is BuildLayout, stopping with ctx's error once ctx is done.
func BuildLayoutContext(ctx context.Context, root string) (*agentpb.ProjectLayout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		abs = filepath.Clean(root)
	}
	w := &walker{ctx: ctx, open: map[string]bool{}}
	layout := w.walk(abs)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return layout, nil
}

type walker struct {
	ctx context.Context
	// open holds the resolved paths of the directories from the root down to
	// the one being walked.
	open map[string]bool
}

func resolve(dir string) string {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return dir
	}
	return resolved
}

func (w *walker) walk(dir string) *agentpb.ProjectLayout {
	node := &agentpb.ProjectLayout{AbsPath: dir, ChildrenWereProcessed: true}
	if w.ctx.Err() != nil {
		node.ChildrenWereProcessed = false
		return node
	}
	resolved := resolve(dir)
	w.open[resolved] = true
	defer delete(w.open, resolved)

	// os.ReadDir returns entries sorted by filename.
	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debug("snapshot: unreadable directory", "dir", dir, "err", err)
		node.ChildrenWereProcessed = false
	}

	for _, e := range entries {
		path := filepath.Join(dir, e.Name())
		isDir := e.IsDir()
		if e.Type()&os.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				logger.Debug("snapshot: broken symlink", "path", path, "err", err)
				continue
			}
			isDir = info.IsDir()
		}
		if !isDir {
			node.ChildrenFiles = append(node.ChildrenFiles, &agentpb.FileEntry{Name: e.Name()})
			continue
		}
		if SkipDir(e.Name()) {
			continue
		}
		if w.open[resolve(path)] {
			logger.Debug("snapshot: symlink cycle", "path", path)
			continue
		}
		node.ChildrenDirs = append(node.ChildrenDirs, w.walk(path))
	}
	return node
}
