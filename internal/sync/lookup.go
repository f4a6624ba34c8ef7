package sync

import (
	"errors"
	"io/fs"
	"os"

	"github.com/go-git/go-billy/v5"
)

// LookupState tags the result of probing an optional path.
type LookupState int

const (
	// NotFound means the path does not exist.
	NotFound LookupState = iota
	// Found means the path exists.
	Found
	// LookupFailed means the probe itself failed for a reason other than absence.
	LookupFailed
)

// Lookup is the tagged result of probing a path: Found(path), NotFound or Failed(err).
type Lookup struct {
	State LookupState
	Path  string
	Info  fs.FileInfo
	Err   error
}

// Found reports whether the probe located the path.
func (l Lookup) Found() bool { return l.State == Found }

func classify(path string, info fs.FileInfo, err error) Lookup {
	switch {
	case err == nil:
		return Lookup{State: Found, Path: path, Info: info}
	case errors.Is(err, fs.ErrNotExist):
		return Lookup{State: NotFound, Path: path}
	default:
		return Lookup{State: LookupFailed, Path: path, Err: err}
	}
}

// LookupSource probes a path inside the template source.
func LookupSource(source fs.FS, path string) Lookup {
	info, err := fs.Stat(source, path)
	return classify(path, info, err)
}

// LookupProject probes a path inside the project filesystem.
func LookupProject(project billy.Filesystem, path string) Lookup {
	info, err := project.Stat(path)
	if err != nil && os.IsNotExist(err) {
		// billy implementations do not always wrap fs.ErrNotExist.
		return Lookup{State: NotFound, Path: path}
	}
	return classify(path, info, err)
}
