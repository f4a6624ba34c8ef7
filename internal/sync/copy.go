package sync

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-git/go-billy/v5"
)

// filePerm is the mode of newly created files. Embedded templates report 0444,
// which would leave synced settings read-only.
const filePerm = 0o644

const tempPrefix = ".vscode-settings-"

// copyFile writes the task's source bytes to its destination. The data goes to a
// temporary file in the destination directory first and is renamed into place,
// so the destination is either fully replaced or left untouched. The written
// file gets perm.
func copyFile(source fs.FS, project billy.Filesystem, t Task, perm os.FileMode) (written int64, err error) {
	src, err := source.Open(t.SourcePath)
	if err != nil {
		return 0, fmt.Errorf("opening template: %w", err)
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return 0, fmt.Errorf("reading template info: %w", err)
	}
	if info.IsDir() {
		return 0, fmt.Errorf("template %s is a directory", t.SourcePath)
	}

	tmpName := project.Join(filepath.Dir(t.DestPath), tempName(t.DestPath))
	tmp, err := project.OpenFile(tmpName, os.O_WRONLY|os.O_CREATE|os.O_EXCL, perm)
	if err != nil {
		return 0, fmt.Errorf("creating temporary file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = project.Remove(tmpName)
		}
	}()

	written, err = io.Copy(tmp, src)
	if err != nil {
		_ = tmp.Close()
		return 0, fmt.Errorf("writing %s: %w", t.DestPath, err)
	}
	if err = tmp.Close(); err != nil {
		return 0, fmt.Errorf("closing temporary file: %w", err)
	}

	if err = project.Rename(tmpName, t.DestPath); err != nil {
		return 0, fmt.Errorf("replacing %s: %w", t.DestPath, err)
	}
	return written, nil
}

func tempName(dest string) string {
	return tempPrefix + filepath.Base(dest) + "." + strconv.FormatInt(time.Now().UnixNano(), 36)
}
