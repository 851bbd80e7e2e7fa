package pathutil

import (
	"slices"
	"strings"
)

// Segments is the ordered decomposition of a slash-delimited path. A leading
// empty segment marks an absolute path; every other segment is non-empty and
// never ".". Elements may be "..", which stay in place until collapsed by
// [Segments.Normalize].
type Segments []string

// Split decomposes path into [Segments]. Runs of consecutive separators
// count as one, "." elements are discarded, and an empty path yields nil.
func Split(path string) Segments {
	if path == "" {
		return nil
	}

	var s Segments
	if path[0] == '/' {
		s = append(s, "")
	}

	for part := range strings.SplitSeq(path, "/") {
		if part == "" || part == "." {
			continue
		}

		s = append(s, part)
	}

	return s
}

// Join concatenates s into a path string, the inverse of [Split] modulo
// canonicalization. A leading empty segment contributes the root separator,
// so Segments{""} yields "/". A nil or empty sequence yields "".
func (s Segments) Join() string {
	var sb strings.Builder

	for i, seg := range s {
		if seg == "" {
			sb.WriteByte('/')

			continue
		}

		sb.WriteString(seg)

		if i < len(s)-1 {
			sb.WriteByte('/')
		}
	}

	return sb.String()
}

// Normalize collapses ".." elements and returns the shortened sequence. An
// ascent cancels the segment before it, is dropped at the root (the parent
// of the root is the root), and accumulates at the start of a relative
// sequence, so Split("../../a").Normalize() keeps both ascents. Surviving
// segments are never rewritten or reordered.
//
// The receiver's backing array is reused; callers must replace their slice
// with the returned value and [Segments.Clone] first if the original matters.
func (s Segments) Normalize() Segments {
	out := s[:0]

	for _, seg := range s {
		if seg != ".." {
			out = append(out, seg)

			continue
		}

		switch {
		case len(out) == 0:
			// Leading ascents of a relative sequence are kept.
			out = append(out, seg)
		case out[len(out)-1] == "":
			// Ascent at the root is a no-op.
		case out[len(out)-1] == "..":
			out = append(out, seg)
		default:
			out = out[:len(out)-1]
		}
	}

	return out
}

// IsAbs reports whether s represents an absolute path.
func (s Segments) IsAbs() bool {
	return len(s) > 0 && s[0] == ""
}

// Clone returns an independent copy of s.
func (s Segments) Clone() Segments {
	return slices.Clone(s)
}

// String returns the same path string as [Segments.Join].
func (s Segments) String() string {
	return s.Join()
}
