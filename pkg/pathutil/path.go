package pathutil

import "strings"

// IsAbs reports whether path begins with a separator.
func IsAbs(path string) bool {
	return strings.HasPrefix(path, "/")
}

// Clean returns the canonical form of path: split, normalized, and rejoined.
// Redundant separators, "." elements, and resolvable ".." elements are
// removed. The canonical form of a path naming its own location ("", ".",
// "a/..") is the empty string.
func Clean(path string) string {
	return Split(path).Normalize().Join()
}

// Dir returns all but the last segment of path, following dirname(3)
// semantics: Dir("/usr/bin/ls") is "/usr/bin", Dir("usr") is ".",
// Dir("/") is "/", and the empty path yields ".". Trailing separators are
// ignored, so Dir("usr/") is ".". The result is built from the canonical
// decomposition, so redundant separators and "." elements do not survive.
func Dir(path string) string {
	s := Split(path)

	switch {
	case len(s) == 0:
		return "."
	case len(s) == 1 && s[0] == "":
		return "/"
	case len(s) == 1:
		return "."
	}

	return s[:len(s)-1].Join()
}

// Base returns the last segment of path, following basename(3) semantics:
// Base("/usr/bin/ls") is "ls", Base("/") is "/", and the empty path yields
// ".". Trailing separators are ignored, so Base("/usr/") is "usr".
func Base(path string) string {
	s := Split(path)

	switch {
	case len(s) == 0:
		return "."
	case len(s) == 1 && s[0] == "":
		return "/"
	}

	return s[len(s)-1]
}
