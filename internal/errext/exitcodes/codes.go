// Package exitcodes contains the constants representing possible pebble exit error codes.
package exitcodes

// ExitCode is just a type representing a process exit code for pebble
type ExitCode uint8

// list of exit codes used by pebble
const (
	GoPanic             ExitCode = 103
	InvalidConfig       ExitCode = 104
	SourceUnreadable    ExitCode = 105
	InvalidSourceExt    ExitCode = 106
	DiagnosticsReported ExitCode = 107
	InvalidUsage        ExitCode = 108
)
