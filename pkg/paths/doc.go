// Package paths provides filesystem-facing path operations.
//
// This package implements the OS-dependent counterparts to the lexical
// operations in pathutil: resolving symbolic links, checking and waiting for
// path existence, locating marker files, and allocating temporary paths.
package paths
