package templates

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// SourceDir is the template directory below the installation root.
const SourceDir = "src"

// InstallRoot returns the directory containing the running executable,
// with symlinks resolved.
func InstallRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locating executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// Source returns the template filesystem for an installation root. A root that
// ships its own src/ directory is used as-is; otherwise the embedded templates
// are returned. Either way the returned filesystem is rooted so that templates
// live under "src/".
func Source(root string) fs.FS {
	if root != "" {
		if info, err := os.Stat(filepath.Join(root, SourceDir)); err == nil && info.IsDir() {
			return os.DirFS(root)
		}
	}
	return FS
}

// Describe returns a short label for a source, used in debug logging.
func Describe(src fs.FS, root string) string {
	if _, ok := src.(embed.FS); ok {
		return "embedded"
	}
	return filepath.Join(root, SourceDir)
}
