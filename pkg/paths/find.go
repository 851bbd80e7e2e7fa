package paths

import (
	"errors"
	"fmt"
	"os"

	"github.com/macropower/pathkit/pkg/patherrors"
	"github.com/macropower/pathkit/pkg/pathutil"
)

// ErrOutsideRoot indicates a search path that does not sit under its search
// root.
var ErrOutsideRoot = errors.New("path is outside the search root")

// FindUp walks from path upward toward root, returning the first directory
// for which test reports true, starting with path itself. Relative arguments
// resolve against the current working directory. The walk fails with
// [patherrors.ErrFileNotFound] once root is passed without a match.
func FindUp(root, path string, test func(dir string) (bool, error)) (string, error) {
	rootAbs, pathAbs, _, err := relUnder(root, path)
	if err != nil {
		return "", err
	}

	currentDir := pathAbs

	for {
		match, err := test(currentDir)
		if err == nil && match {
			return currentDir, nil
		}

		if currentDir == rootAbs {
			break
		}

		currentDir = pathutil.Dir(currentDir)
	}

	return "", patherrors.ErrFileNotFound
}

// FindDown walks from root downward along the components of path, returning
// the first directory for which test reports true, starting with root
// itself. It is the top-down counterpart of [FindUp].
func FindDown(root, path string, test func(dir string) (bool, error)) (string, error) {
	rootAbs, _, relSegs, err := relUnder(root, path)
	if err != nil {
		return "", err
	}

	currentDir := rootAbs

	match, err := test(currentDir)
	if err == nil && match {
		return currentDir, nil
	}

	for _, seg := range relSegs {
		currentDir = pathutil.Clean(currentDir + "/" + seg)

		match, err := test(currentDir)
		if err == nil && match {
			return currentDir, nil
		}
	}

	return "", patherrors.ErrFileNotFound
}

// FindMarker returns the closest directory at or above path, bounded by
// root, that contains a file named name.
func FindMarker(root, path, name string) (string, error) {
	dir, err := FindUp(root, path, func(dir string) (bool, error) {
		checkPath := pathutil.Clean(dir + "/" + name)

		fi, err := os.Lstat(checkPath)
		if err != nil {
			return false, fmt.Errorf("%s: %w", checkPath, err)
		}

		return !fi.IsDir(), nil
	})
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, err)
	}

	return dir, nil
}

// relUnder returns the canonical absolute forms of root and path together
// with the residual segments of path under root, failing with
// [ErrOutsideRoot] when path does not sit at or below root.
func relUnder(root, path string) (string, string, pathutil.Segments, error) {
	rootAbs, err := Abs(root)
	if err != nil {
		return "", "", nil, err
	}

	pathAbs, err := Abs(path)
	if err != nil {
		return "", "", nil, err
	}

	rel, err := pathutil.RelativePath(pathAbs, rootAbs)
	if err != nil {
		return "", "", nil, fmt.Errorf("%w: %w", ErrOutsideRoot, err)
	}

	relSegs := pathutil.Split(rel)
	if len(relSegs) > 0 && relSegs[0] == ".." {
		return "", "", nil, fmt.Errorf("%w: %q is not under %q", ErrOutsideRoot, path, root)
	}

	return rootAbs, pathAbs, relSegs, nil
}
