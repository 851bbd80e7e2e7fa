// Copyright 2017-2018 The Argo Authors
// Modifications Copyright 2024-2025 Jacob Colvin
// Licensed under the Apache License, Version 2.0

package paths

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/macropower/pathkit/pkg/patherrors"
	"github.com/macropower/pathkit/pkg/pathutil"
)

var (
	// ErrMaxNestingLevelReached indicates a symlink chain longer than the
	// allowed depth.
	ErrMaxNestingLevelReached = errors.New("maximum nesting level reached")

	// ErrResolvePath indicates a failure while resolving a path; check logs
	// for more details.
	ErrResolvePath = errors.New("failed to resolve path")
)

// ReadLinkTarget returns the literal target of the symbolic link at path,
// without following further links. Relative targets are returned as written.
func ReadLinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err != nil {
		return "", resolveFailure(path, patherrors.FromOS(err))
	}

	return target, nil
}

// ResolveSymlinkRecursive follows the chain of symbolic links starting at
// path for at most maxDepth hops. A path that is not a symbolic link
// resolves to itself, whether or not it exists. Relative link targets
// resolve against the directory of the link holding them.
func ResolveSymlinkRecursive(path string, maxDepth int) (string, error) {
	current := path

	for depth := 0; ; depth++ {
		target, err := os.Readlink(current)
		if err != nil {
			var pathErr *os.PathError
			if errors.As(err, &pathErr) {
				// Not a symbolic link; the chain ends here.
				return current, nil
			}

			return "", resolveFailure(current, err)
		}

		if depth == maxDepth {
			return "", ErrMaxNestingLevelReached
		}

		if !pathutil.IsAbs(target) {
			target = pathutil.Clean(pathutil.Dir(current) + "/" + target)
		}

		current = target
	}
}

// The error returned to callers names no paths, since it may travel back to
// an untrusted caller; the concrete details go to the log instead.
func resolveFailure(path string, err error) error {
	slog.Error("failed to resolve path", slog.String("path", path), slog.Any("err", err))

	return fmt.Errorf("%w: %w", ErrResolvePath, err)
}
