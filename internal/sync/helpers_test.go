package sync

import (
	"io/fs"
	"os"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/require"
)

// recorder is a Reporter that keeps every event for assertions.
type recorder struct {
	events  []string
	results []Result
	summary *Summary
}

func (r *recorder) Start() { r.events = append(r.events, "start") }

func (r *recorder) Report(res Result) {
	r.events = append(r.events, res.Outcome.String()+" "+res.Task.DisplayName)
	r.results = append(r.results, res)
}

func (r *recorder) Finish(s Summary) {
	r.events = append(r.events, "finish")
	r.summary = &s
}

func (r *recorder) Empty() { r.events = append(r.events, "empty") }

// scripted answers prompts from a map keyed by display name and records the
// messages it was asked.
type scripted struct {
	answers map[string]bool
	asked   []string
}

func (s *scripted) Confirm(message string) (bool, error) {
	s.asked = append(s.asked, message)
	for name, answer := range s.answers {
		if strings.Contains(message, "'"+name+"'") {
			return answer, nil
		}
	}
	return false, nil
}

// neverAsk fails the test if a prompt is shown.
func neverAsk(t *testing.T) Confirmer {
	return ConfirmFunc(func(message string) (bool, error) {
		t.Errorf("unexpected prompt: %s", message)
		return false, nil
	})
}

// errFS fails Stat/Open for one path with err.
type errFS struct {
	fs.FS
	path string
	err  error
}

func (e errFS) Open(name string) (fs.File, error) {
	if name == e.path {
		return nil, &fs.PathError{Op: "open", Path: name, Err: e.err}
	}
	return e.FS.Open(name)
}

// failingProject rejects file creation below one prefix, and stat or rename
// for single paths.
type failingProject struct {
	billy.Filesystem
	denyCreateIn string
	denyStat     string
	denyRename   string
}

func (f failingProject) Rename(from, to string) error {
	if to == f.denyRename {
		return &os.LinkError{Op: "rename", Old: from, New: to, Err: os.ErrPermission}
	}
	return f.Filesystem.Rename(from, to)
}

func (f failingProject) OpenFile(name string, flag int, perm os.FileMode) (billy.File, error) {
	if flag&os.O_CREATE != 0 && f.denyCreateIn != "" && strings.HasPrefix(name, f.denyCreateIn) {
		return nil, &os.PathError{Op: "open", Path: name, Err: os.ErrPermission}
	}
	return f.Filesystem.OpenFile(name, flag, perm)
}

func (f failingProject) Stat(name string) (os.FileInfo, error) {
	if name == f.denyStat {
		return nil, &os.PathError{Op: "stat", Path: name, Err: os.ErrPermission}
	}
	return f.Filesystem.Stat(name)
}

func newProject(t *testing.T, files map[string]string) billy.Filesystem {
	t.Helper()
	project := memfs.New()
	for name, content := range files {
		require.NoError(t, util.WriteFile(project, name, []byte(content), 0o644))
	}
	return project
}

func readProject(t *testing.T, project billy.Filesystem, name string) string {
	t.Helper()
	data, err := util.ReadFile(project, name)
	require.NoError(t, err)
	return string(data)
}

func exists(project billy.Filesystem, name string) bool {
	_, err := project.Stat(name)
	return err == nil
}
