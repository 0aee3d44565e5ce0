package cli

import "errors"

// Exit codes for mdwire.
const (
	// ExitSuccess indicates successful execution.
	ExitSuccess = 0

	// ExitRuntimeError indicates a runtime failure: unreadable input,
	// config load errors, output write failures.
	ExitRuntimeError = 1

	// ExitUsageError indicates invalid command-line usage.
	ExitUsageError = 2
)

// ErrUsage marks an error as a usage problem rather than a runtime failure.
// Wrap with it so ExitCodeForError can pick the right exit code.
var ErrUsage = errors.New("invalid usage")

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if errors.Is(err, ErrUsage) {
		return ExitUsageError
	}
	return ExitRuntimeError
}
