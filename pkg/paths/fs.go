package paths

import (
	"fmt"
	"os"

	"github.com/macropower/pathkit/pkg/patherrors"
	"github.com/macropower/pathkit/pkg/pathutil"
)

// Cwd returns the current working directory, with OS failures translated
// onto the shared error vocabulary.
func Cwd() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", patherrors.FromOS(err))
	}

	return dir, nil
}

// Abs returns the canonical absolute form of path, resolving relative paths
// against the current working directory. The resolution is lexical; symlinks
// are not followed.
func Abs(path string) (string, error) {
	if pathutil.IsAbs(path) {
		return pathutil.Clean(path), nil
	}

	cwd, err := Cwd()
	if err != nil {
		return "", err
	}

	return pathutil.Clean(cwd + "/" + path), nil
}

// Exists reports whether a file or directory exists at path. With
// followSymlinks, a dangling symlink does not count as existing.
func Exists(path string, followSymlinks bool) bool {
	var err error
	if followSymlinks {
		_, err = os.Stat(path)
	} else {
		_, err = os.Lstat(path)
	}

	return err == nil
}
