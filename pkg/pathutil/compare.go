package pathutil

// Equal reports whether path1 and path2 denote the same location after
// canonicalization. Comparison is lexical and byte-wise: no case folding, no
// Unicode normalization, and no symlink resolution. An empty input is never
// equal to anything, including another empty input.
func Equal(path1, path2 string) bool {
	if path1 == "" || path2 == "" {
		return false
	}

	return Clean(path1) == Clean(path2)
}
