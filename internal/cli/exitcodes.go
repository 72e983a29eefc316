package cli

import (
	"errors"

	"github.com/yaklabco/mdlive/pkg/fsutil"
)

// Exit codes for mdlive, following sysexits(3) where one applies.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitFailure indicates a failure with no more specific code.
	ExitFailure = 1

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 78

	// ExitNoInput indicates the input file is missing or unreadable.
	ExitNoInput = 66

	// ExitIOError indicates a file could not be written.
	ExitIOError = 74
)

// ExitCode maps an error returned by a command to a process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrConfig):
		return ExitConfigError
	case errors.Is(err, fsutil.ErrNotFound),
		errors.Is(err, fsutil.ErrIsDirectory):
		return ExitNoInput
	case errors.Is(err, fsutil.ErrPermissionDenied),
		errors.Is(err, fsutil.ErrModified):
		return ExitIOError
	default:
		return ExitFailure
	}
}
