// Package pathutil implements a purely lexical algebra over slash-delimited
// paths.
//
// This package decomposes, normalizes, rejoins, and compares path strings as
// string and sequence transformations only, without consulting the
// filesystem. Filesystem-facing helpers live in the paths package.
package pathutil
