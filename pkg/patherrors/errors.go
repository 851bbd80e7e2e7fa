package patherrors

import (
	"errors"
	"fmt"
	"io/fs"
)

var (
	// ErrInvalidArgument indicates an input that cannot be processed as given.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrFileNotFound indicates a file wasn't found in the specified path.
	ErrFileNotFound = errors.New("file not found")

	// ErrPermission indicates an operation was denied by file permissions.
	ErrPermission = errors.New("permission denied")
)

// FromOS maps an error from an OS call onto the package sentinels, keeping
// the original error on the chain for [errors.Is] and [errors.As]. Errors
// with no mapping are returned unchanged.
func FromOS(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %w", ErrFileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %w", ErrPermission, err)
	case errors.Is(err, fs.ErrInvalid):
		return fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	default:
		return err
	}
}
