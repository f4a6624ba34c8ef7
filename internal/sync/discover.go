package sync

import (
	"fmt"
	"io/fs"
	"path"

	"github.com/go-git/go-billy/v5"

	"github.com/arvinn/vscode-settings/internal/log"
)

// Template layout inside the source filesystem and its project counterparts.
const (
	SourceEditorConfig = "src/.editorconfig"
	SourceSettingsDir  = "src/.vscode"

	DestEditorConfig = ".editorconfig"
	DestSettingsDir  = ".vscode"
)

// dirPerm is used when creating the settings directory in the project.
const dirPerm = 0o755

// DiscoveryError is an unexpected filesystem failure while building the task list.
// It aborts the run.
type DiscoveryError struct {
	Op   string
	Path string
	Err  error
}

func (e *DiscoveryError) Error() string {
	return fmt.Sprintf("discovery: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *DiscoveryError) Unwrap() error { return e.Err }

// Discover builds the ordered list of tasks for a run.
//
// The editor config file is optional and any failure to probe it is treated as
// absence. The settings directory is optional too, but once it exists every
// error while preparing or listing it is returned as a *DiscoveryError. The
// project settings directory is created only when the template directory exists.
func Discover(source fs.FS, project billy.Filesystem) ([]Task, error) {
	logger := log.WithComponent("sync")
	var tasks []Task

	if l := LookupSource(source, SourceEditorConfig); l.Found() {
		tasks = append(tasks, Task{
			SourcePath:  SourceEditorConfig,
			DestPath:    DestEditorConfig,
			DisplayName: DestEditorConfig,
		})
	} else if l.State == LookupFailed {
		logger.Debug().Err(l.Err).Str("path", l.Path).Msg("editor config probe failed, ignoring")
	}

	dir := LookupSource(source, SourceSettingsDir)
	switch dir.State {
	case NotFound:
		logger.Debug().Str("path", SourceSettingsDir).Msg("no settings templates")
		return tasks, nil
	case LookupFailed:
		return nil, &DiscoveryError{Op: "stat", Path: SourceSettingsDir, Err: dir.Err}
	}

	if err := project.MkdirAll(DestSettingsDir, dirPerm); err != nil {
		return nil, &DiscoveryError{Op: "mkdir", Path: DestSettingsDir, Err: err}
	}

	entries, err := fs.ReadDir(source, SourceSettingsDir)
	if err != nil {
		return nil, &DiscoveryError{Op: "readdir", Path: SourceSettingsDir, Err: err}
	}

	for _, entry := range entries {
		name := entry.Name()
		tasks = append(tasks, Task{
			SourcePath:  path.Join(SourceSettingsDir, name),
			DestPath:    project.Join(DestSettingsDir, name),
			DisplayName: DestSettingsDir + "/" + name,
		})
	}

	for _, t := range tasks {
		logger.Debug().Str("source", t.SourcePath).Str("dest", t.DestPath).Msg("task discovered")
	}
	return tasks, nil
}
