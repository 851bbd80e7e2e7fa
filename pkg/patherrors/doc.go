// Package patherrors provides error definitions shared across path operations.
//
// This package defines standardized sentinel errors and translation from
// OS-level failures to ensure consistent error reporting and wrapping
// throughout the codebase.
package patherrors
