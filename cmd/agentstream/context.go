package main

import (
	"os"

	"github.com/ehrlich-b/agentstream/internal/agentpb"
	"github.com/ehrlich-b/agentstream/internal/driver"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type layoutView struct {
	Path       string       `yaml:"path"`
	Incomplete bool         `yaml:"incomplete,omitempty"`
	Files      []string     `yaml:"files,omitempty"`
	Dirs       []layoutView `yaml:"dirs,omitempty"`
}

type contextView struct {
	WorkspacePath   string       `yaml:"workspace_path"`
	OSVersion       string       `yaml:"os_version"`
	Shell           string       `yaml:"shell"`
	TimeZone        string       `yaml:"time_zone"`
	TerminalsFolder string       `yaml:"terminals_folder"`
	NotesFolder     string       `yaml:"notes_folder"`
	NotesListing    string       `yaml:"notes_listing"`
	GitStatus       string       `yaml:"git_status,omitempty"`
	Dirs            int          `yaml:"dirs"`
	Files           int          `yaml:"files"`
	Layout          []layoutView `yaml:"layout,omitempty"`
}

func contextCmd(f *rootFlags) *cobra.Command {
	var tree bool

	cmd := &cobra.Command{
		Use:   "context",
		Short: "Print the request context that would be sent to the agent",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*f)
			if err != nil {
				return err
			}
			rc, err := driver.NewCollector(cfg).RequestContext(cmd.Context())
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(os.Stdout)
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(newContextView(rc, tree))
		},
	}
	cmd.Flags().BoolVar(&tree, "tree", false, "include the full project layout")
	return cmd
}

func newContextView(rc *agentpb.RequestContext, tree bool) contextView {
	v := contextView{
		WorkspacePath: rc.WorkspacePath,
		NotesListing:  rc.SharedNotesListing,
	}
	if env := rc.Env; env != nil {
		v.OSVersion = env.OsVersion
		v.Shell = env.Shell
		v.TimeZone = env.TimeZone
		v.TerminalsFolder = env.TerminalsFolder
		v.NotesFolder = env.AgentSharedNotesFolder
	}
	if repos := rc.GetGitRepos(); len(repos) > 0 {
		v.GitStatus = repos[0].GetStatus()
	}
	for _, l := range rc.GetProjectLayouts() {
		d, fl := l.Count()
		v.Dirs += d
		v.Files += fl
		if tree {
			v.Layout = append(v.Layout, newLayoutView(l))
		}
	}
	return v
}

func newLayoutView(l *agentpb.ProjectLayout) layoutView {
	v := layoutView{Path: l.AbsPath, Incomplete: !l.ChildrenWereProcessed}
	for _, f := range l.ChildrenFiles {
		v.Files = append(v.Files, f.Name)
	}
	for _, d := range l.ChildrenDirs {
		v.Dirs = append(v.Dirs, newLayoutView(d))
	}
	return v
}
