// Package emoji provides symbol constants for CLI output.
package emoji

// Symbols used for status lines printed by commands.
const (
	// Success marks a completed operation.
	Success = "✓"

	// Error marks a failed operation.
	Error = "✗"

	// Stop marks a shutdown.
	Stop = "✗"

	// Warning marks a non-fatal problem.
	Warning = "!"

	// Rocket marks a server coming up.
	Rocket = "🚀"
)
