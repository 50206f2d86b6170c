package workspace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"google.golang.org/protobuf/proto"
)

// mkTree creates files (and their parent dirs) under root. Paths ending in
// "/" are created as empty directories.
func mkTree(t *testing.T, root string, paths ...string) {
	t.Helper()
	for _, p := range paths {
		full := filepath.Join(root, filepath.FromSlash(p))
		if strings.HasSuffix(p, "/") {
			if err := os.MkdirAll(full, 0755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
}

func collectPaths(l *agentpb.ProjectLayout, out *[]string) {
	*out = append(*out, l.AbsPath)
	for _, f := range l.ChildrenFiles {
		*out = append(*out, filepath.Join(l.AbsPath, f.Name))
	}
	for _, d := range l.ChildrenDirs {
		collectPaths(d, out)
	}
}

func TestBuildLayoutDeterministic(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "zeta.txt", "alpha.txt", "src/b.go", "src/a.go", "docs/", "lib/x/y.go")

	first := BuildLayout(root)
	second := BuildLayout(root)
	if !proto.Equal(first, second) {
		t.Errorf("snapshots differ:\n%+v\n%+v", first, second)
	}
}

func TestBuildLayoutOrdering(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "b.txt", "C.txt", "a.txt", "zdir/f", "adir/f", "mdir/")

	var check func(l *agentpb.ProjectLayout)
	check = func(l *agentpb.ProjectLayout) {
		var files, dirs []string
		for _, f := range l.ChildrenFiles {
			files = append(files, f.Name)
		}
		for _, d := range l.ChildrenDirs {
			dirs = append(dirs, filepath.Base(d.AbsPath))
			check(d)
		}
		if !slices.IsSorted(files) {
			t.Errorf("%s files not sorted: %v", l.AbsPath, files)
		}
		if !slices.IsSorted(dirs) {
			t.Errorf("%s dirs not sorted: %v", l.AbsPath, dirs)
		}
	}
	layout := BuildLayout(root)
	check(layout)

	var names []string
	for _, f := range layout.ChildrenFiles {
		names = append(names, f.Name)
	}
	if want := []string{"C.txt", "a.txt", "b.txt"}; !slices.Equal(names, want) {
		t.Errorf("root files = %v, want %v", names, want)
	}
}

func TestBuildLayoutSkipsIgnoredDirs(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root,
		"main.go",
		".env",
		".git/HEAD",
		".cache/blob",
		"node_modules/left-pad/index.js",
		"target/classes/App.class",
		"web/node_modules/react/index.js",
		"web/app.ts",
	)

	layout := BuildLayout(root)
	var paths []string
	collectPaths(layout, &paths)

	for _, p := range paths {
		rel, _ := filepath.Rel(root, p)
		for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
			if part == "node_modules" || part == "target" || part == ".git" || part == ".cache" {
				t.Errorf("ignored directory leaked into snapshot: %s", rel)
			}
		}
	}
	// hidden files are kept, only hidden directories are skipped
	if !slices.Contains(paths, filepath.Join(root, ".env")) {
		t.Errorf(".env file missing from snapshot: %v", paths)
	}
	if !slices.Contains(paths, filepath.Join(root, "web", "app.ts")) {
		t.Errorf("web/app.ts missing: %v", paths)
	}
}

func TestBuildLayoutFlags(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a/b/c.txt")

	layout := BuildLayout(root)
	var walk func(l *agentpb.ProjectLayout)
	walk = func(l *agentpb.ProjectLayout) {
		if !l.ChildrenWereProcessed {
			t.Errorf("%s: ChildrenWereProcessed = false", l.AbsPath)
		}
		if !filepath.IsAbs(l.AbsPath) {
			t.Errorf("%s is not absolute", l.AbsPath)
		}
		for _, d := range l.ChildrenDirs {
			walk(d)
		}
	}
	walk(layout)
	if dirs, files := layout.Count(); dirs != 3 || files != 1 {
		t.Errorf("Count = %d, %d", dirs, files)
	}
}

func TestBuildLayoutUnreadableDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can read any directory")
	}
	root := t.TempDir()
	mkTree(t, root, "locked/secret.txt", "open.txt")
	locked := filepath.Join(root, "locked")
	if err := os.Chmod(locked, 0); err != nil {
		t.Fatal(err)
	}
	defer os.Chmod(locked, 0755)

	layout := BuildLayout(root)
	if len(layout.ChildrenDirs) != 1 {
		t.Fatalf("dirs = %+v", layout.ChildrenDirs)
	}
	l := layout.ChildrenDirs[0]
	if l.ChildrenWereProcessed {
		t.Error("unreadable directory should be marked unprocessed")
	}
	if len(l.ChildrenFiles) != 0 || len(l.ChildrenDirs) != 0 {
		t.Errorf("unreadable directory has children: %+v", l)
	}
	if !layout.ChildrenWereProcessed {
		t.Error("root should still be processed")
	}
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
}

func TestBuildLayoutFollowsDirSymlink(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "real/inner.go", "notes.txt")
	symlink(t, filepath.Join(root, "real"), filepath.Join(root, "linked"))
	symlink(t, filepath.Join(root, "notes.txt"), filepath.Join(root, "notes-link.txt"))
	symlink(t, filepath.Join(root, "missing"), filepath.Join(root, "dangling"))

	layout := BuildLayout(root)
	var files []string
	for _, f := range layout.ChildrenFiles {
		files = append(files, f.Name)
	}
	if want := []string{"notes-link.txt", "notes.txt"}; !slices.Equal(files, want) {
		t.Errorf("root files = %v, want %v", files, want)
	}
	var paths []string
	collectPaths(layout, &paths)
	for _, p := range []string{"linked/inner.go", "real/inner.go"} {
		if !slices.Contains(paths, filepath.Join(root, filepath.FromSlash(p))) {
			t.Errorf("%s missing: %v", p, paths)
		}
	}
}

func TestBuildLayoutSymlinkCycle(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a/b/file.go")
	symlink(t, root, filepath.Join(root, "a", "b", "up"))
	symlink(t, filepath.Join(root, "a", "b", "self"), filepath.Join(root, "a", "b", "self"))

	layout := BuildLayout(root)
	if dirs, files := layout.Count(); dirs != 3 || files != 1 {
		var paths []string
		collectPaths(layout, &paths)
		t.Errorf("Count = %d dirs, %d files: %v", dirs, files, paths)
	}
}

func TestBuildLayoutContextCancelled(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "a/b.go")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := BuildLayoutContext(ctx, root); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestCollectorStopsWhenCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := &Collector{
		Root: t.TempDir(),
		GitStatus: func(context.Context, string) (string, error) {
			return "On branch main\n", nil
		},
	}
	rc, err := c.RequestContext(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
	if rc != nil {
		t.Errorf("rc = %v, want nil", rc)
	}
}

func TestBuildLayoutMissingRoot(t *testing.T) {
	layout := BuildLayout(filepath.Join(t.TempDir(), "gone"))
	if layout.ChildrenWereProcessed || len(layout.ChildrenFiles) != 0 {
		t.Errorf("missing root = %+v", layout)
	}
}

func TestCollectorRequestContext(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "README.md", "src/main.go")
	notes := filepath.Join(t.TempDir(), "shared")
	mkTree(t, notes, "plan.md", "old/")

	var gitDir string
	c := &Collector{
		Root:            root,
		Shell:           "zsh",
		TerminalsFolder: "/tmp/terminals",
		NotesFolder:     notes,
		GitStatus: func(ctx context.Context, dir string) (string, error) {
			gitDir = dir
			return "On branch main\nnothing to commit, working tree clean\n", nil
		},
	}
	rc, err := c.RequestContext(context.Background())
	if err != nil {
		t.Fatalf("RequestContext: %v", err)
	}
	if rc.WorkspacePath != root || gitDir != root {
		t.Errorf("workspace = %q git dir = %q, want %q", rc.WorkspacePath, gitDir, root)
	}
	if rc.Env.Shell != "zsh" || rc.Env.TerminalsFolder != "/tmp/terminals" || rc.Env.AgentSharedNotesFolder != notes {
		t.Errorf("env = %+v", rc.Env)
	}
	if !slices.Equal(rc.Env.WorkspacePaths, []string{root}) {
		t.Errorf("workspace paths = %v", rc.Env.WorkspacePaths)
	}
	if rc.Env.OsVersion == "" {
		t.Error("empty OS version")
	}
	if len(rc.GitRepos) != 1 || rc.GitRepos[0].Path != root || !strings.HasPrefix(rc.GitRepos[0].Status, "On branch main") {
		t.Errorf("git repos = %+v", rc.GitRepos)
	}
	if rc.SharedNotesListing != "old/\nplan.md\n" {
		t.Errorf("notes listing = %q", rc.SharedNotesListing)
	}
	if len(rc.ProjectLayouts) != 1 || len(rc.ProjectLayouts[0].ChildrenDirs) != 1 {
		t.Errorf("layouts = %+v", rc.ProjectLayouts)
	}
}

func TestCollectorWithoutGit(t *testing.T) {
	c := &Collector{
		Root: t.TempDir(),
		GitStatus: func(ctx context.Context, dir string) (string, error) {
			return "", errors.New("fatal: not a git repository")
		},
	}
	rc, err := c.RequestContext(context.Background())
	if err != nil {
		t.Fatalf("RequestContext: %v", err)
	}
	if len(rc.GitRepos) != 0 {
		t.Errorf("git repos = %+v, want none", rc.GitRepos)
	}
	if rc.SharedNotesListing != NoNotesListing {
		t.Errorf("notes listing = %q", rc.SharedNotesListing)
	}
}

func TestCollectorRejectsFileRoot(t *testing.T) {
	root := t.TempDir()
	mkTree(t, root, "file.txt")
	c := &Collector{Root: filepath.Join(root, "file.txt")}
	if _, err := c.RequestContext(context.Background()); err == nil {
		t.Error("expected error for a file root")
	}
}

func TestNotesListing(t *testing.T) {
	if got := NotesListing(""); got != NoNotesListing {
		t.Errorf("empty path = %q", got)
	}
	dir := t.TempDir()
	if got := NotesListing(dir); got != "(Notes directory is empty)" {
		t.Errorf("empty dir = %q", got)
	}
}
