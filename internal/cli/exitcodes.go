package cli

import "errors"

// Exit codes for klondiff, following diff(1).
const (
	// ExitSuccess indicates the inputs are identical.
	ExitSuccess = 0

	// ExitDifferences indicates the comparison ran and found differences.
	ExitDifferences = 1

	// ExitTrouble indicates the comparison could not run: unreadable
	// input, invalid usage, or binary files that differ.
	ExitTrouble = 2
)

// ErrDifferencesFound signals a completed comparison with differences.
// The command surface returns it so main can exit 1 without Cobra
// printing it as an error.
var ErrDifferencesFound = errors.New("differences found")

// ErrBinaryFilesDiffer signals that at least one input is binary and the
// contents are not byte-identical.
var ErrBinaryFilesDiffer = errors.New("binary files differ")

// ExitCodeForError maps a command error to a process exit code.
func ExitCodeForError(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrDifferencesFound):
		return ExitDifferences
	default:
		return ExitTrouble
	}
}
