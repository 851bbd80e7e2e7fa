package pathutil

import (
	"fmt"

	"github.com/macropower/pathkit/pkg/patherrors"
)

var (
	// ErrEmptyPath indicates an empty string where a path is required.
	ErrEmptyPath = fmt.Errorf("empty path: %w", patherrors.ErrInvalidArgument)

	// ErrAbsRelMismatch indicates one absolute and one relative path where
	// both must agree.
	ErrAbsRelMismatch = fmt.Errorf("mixed absolute and relative paths: %w", patherrors.ErrInvalidArgument)

	// ErrUnresolvedAscent indicates a ".." that cannot be resolved against
	// the common prefix of the inputs.
	ErrUnresolvedAscent = fmt.Errorf("unresolved parent reference: %w", patherrors.ErrInvalidArgument)
)

// RelativePath returns path expressed relative to start, using lexical
// analysis only. Both inputs must be non-empty and either both absolute or
// both relative. RelativePath(p, p) returns "".
//
// If start retains a ".." beyond the point where the two paths diverge, the
// common ancestor cannot be identified from the strings alone; rather than
// guess, the function fails with an error wrapping [ErrUnresolvedAscent].
func RelativePath(path, start string) (string, error) {
	if path == "" || start == "" {
		return "", ErrEmptyPath
	}

	if IsAbs(path) != IsAbs(start) {
		return "", fmt.Errorf("%w: %q vs %q", ErrAbsRelMismatch, path, start)
	}

	ps := Split(path).Normalize()
	ss := Split(start).Normalize()

	common := 0
	for common < len(ps) && common < len(ss) && ps[common] == ss[common] {
		common++
	}

	rel := make(Segments, 0, len(ss)-common+len(ps)-common)

	// Walk up from start to the common ancestor.
	for _, seg := range ss[common:] {
		if seg == ".." {
			return "", fmt.Errorf("%w: %q", ErrUnresolvedAscent, start)
		}

		rel = append(rel, "..")
	}

	// Walk down from the common ancestor to path.
	rel = append(rel, ps[common:]...)

	return rel.Join(), nil
}
