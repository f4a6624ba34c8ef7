package sync

import (
	"errors"
	"io/fs"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func file(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content), Mode: 0o644}
}

func TestDiscover(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		source      fstest.MapFS
		wantTasks   []Task
		wantDestDir bool
	}{
		"nothing in source": {
			source:      fstest.MapFS{"README.md": file("x")},
			wantTasks:   nil,
			wantDestDir: false,
		},
		"editor config only": {
			source: fstest.MapFS{"src/.editorconfig": file("root = true\n")},
			wantTasks: []Task{
				{SourcePath: "src/.editorconfig", DestPath: ".editorconfig", DisplayName: ".editorconfig"},
			},
			wantDestDir: false,
		},
		"settings only in lexical order": {
			source: fstest.MapFS{
				"src/.vscode/settings.json":   file("{}"),
				"src/.vscode/extensions.json": file("{}"),
			},
			wantTasks: []Task{
				{SourcePath: "src/.vscode/extensions.json", DestPath: ".vscode/extensions.json", DisplayName: ".vscode/extensions.json"},
				{SourcePath: "src/.vscode/settings.json", DestPath: ".vscode/settings.json", DisplayName: ".vscode/settings.json"},
			},
			wantDestDir: true,
		},
		"editor config before settings": {
			source: fstest.MapFS{
				"src/.editorconfig":         file("root = true\n"),
				"src/.vscode/settings.json": file("{}"),
			},
			wantTasks: []Task{
				{SourcePath: "src/.editorconfig", DestPath: ".editorconfig", DisplayName: ".editorconfig"},
				{SourcePath: "src/.vscode/settings.json", DestPath: ".vscode/settings.json", DisplayName: ".vscode/settings.json"},
			},
			wantDestDir: true,
		},
		"empty settings dir": {
			source:      fstest.MapFS{"src/.vscode": &fstest.MapFile{Mode: fs.ModeDir | 0o755}},
			wantTasks:   nil,
			wantDestDir: true,
		},
		"nested entry is listed but not walked": {
			source: fstest.MapFS{
				"src/.vscode/snippets/go.json": file("{}"),
				"src/.vscode/tasks.json":       file("{}"),
			},
			wantTasks: []Task{
				{SourcePath: "src/.vscode/snippets", DestPath: ".vscode/snippets", DisplayName: ".vscode/snippets"},
				{SourcePath: "src/.vscode/tasks.json", DestPath: ".vscode/tasks.json", DisplayName: ".vscode/tasks.json"},
			},
			wantDestDir: true,
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			project := newProject(t, nil)
			tasks, err := Discover(tt.source, project)
			require.NoError(t, err)

			assert.Equal(t, tt.wantTasks, tasks)
			assert.Equal(t, tt.wantDestDir, exists(project, DestSettingsDir))
		})
	}
}

func TestDiscover_OneTaskPerSettingsEntry(t *testing.T) {
	t.Parallel()

	source := fstest.MapFS{}
	names := []string{"a.json", "b.json", "c.code-snippets", "launch.json", "settings.json"}
	for _, n := range names {
		source["src/.vscode/"+n] = file(n)
	}

	tasks, err := Discover(source, newProject(t, nil))
	require.NoError(t, err)
	require.Len(t, tasks, len(names))

	seen := make(map[string]bool)
	for i, task := range tasks {
		assert.Equal(t, ".vscode/"+names[i], task.DisplayName)
		assert.False(t, seen[task.DestPath], "duplicate destination %s", task.DestPath)
		seen[task.DestPath] = true
	}
}

func TestDiscover_ExistingDestDirIsKept(t *testing.T) {
	t.Parallel()

	project := newProject(t, map[string]string{".vscode/launch.json": "{}"})
	source := fstest.MapFS{"src/.vscode/settings.json": file("{}")}

	tasks, err := Discover(source, project)
	require.NoError(t, err)
	assert.Len(t, tasks, 1)
	assert.Equal(t, "{}", readProject(t, project, ".vscode/launch.json"))
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		source fs.FS
		wantOp string
	}{
		"settings dir not readable": {
			source: errFS{
				FS:   fstest.MapFS{"src/.vscode/settings.json": file("{}")},
				path: SourceSettingsDir,
				err:  fs.ErrPermission,
			},
			wantOp: "stat",
		},
		"settings path is a file": {
			source: fstest.MapFS{"src/.vscode": file("not a dir")},
			wantOp: "readdir",
		},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			tasks, err := Discover(tt.source, newProject(t, nil))
			require.Error(t, err)
			assert.Nil(t, tasks)

			var derr *DiscoveryError
			require.True(t, errors.As(err, &derr), "want *DiscoveryError, got %T", err)
			assert.Equal(t, tt.wantOp, derr.Op)
			assert.Equal(t, SourceSettingsDir, derr.Path)
		})
	}
}

func TestDiscover_MkdirFailure(t *testing.T) {
	t.Parallel()

	// A file where the settings directory should go makes MkdirAll fail.
	project := newProject(t, map[string]string{".vscode": "blocking file"})
	source := fstest.MapFS{"src/.vscode/settings.json": file("{}")}

	_, err := Discover(source, project)

	var derr *DiscoveryError
	require.True(t, errors.As(err, &derr), "want *DiscoveryError, got %v", err)
	assert.Equal(t, "mkdir", derr.Op)
}

func TestDiscover_EditorConfigProbeErrorIsIgnored(t *testing.T) {
	t.Parallel()

	source := errFS{
		FS:   fstest.MapFS{"src/.editorconfig": file("root = true\n")},
		path: SourceEditorConfig,
		err:  fs.ErrPermission,
	}

	tasks, err := Discover(source, newProject(t, nil))
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestLookupSource(t *testing.T) {
	t.Parallel()

	source := errFS{
		FS:   fstest.MapFS{"src/.editorconfig": file("x")},
		path: "src/locked",
		err:  fs.ErrPermission,
	}

	found := LookupSource(source, "src/.editorconfig")
	assert.Equal(t, Found, found.State)
	assert.True(t, found.Found())
	assert.NotNil(t, found.Info)

	missing := LookupSource(source, "src/missing")
	assert.Equal(t, NotFound, missing.State)
	assert.NoError(t, missing.Err)

	failed := LookupSource(source, "src/locked")
	assert.Equal(t, LookupFailed, failed.State)
	assert.ErrorIs(t, failed.Err, fs.ErrPermission)
}

func TestLookupProject(t *testing.T) {
	t.Parallel()

	project := failingProject{
		Filesystem: newProject(t, map[string]string{".editorconfig": "x"}),
		denyStat:   ".vscode/settings.json",
	}

	assert.Equal(t, Found, LookupProject(project, ".editorconfig").State)
	assert.Equal(t, NotFound, LookupProject(project, ".vscode/launch.json").State)
	assert.Equal(t, LookupFailed, LookupProject(project, ".vscode/settings.json").State)
}
