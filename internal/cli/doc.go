// Package cli implements the command-line mode of numgroup: it collects the
// numbers to format, groups them, and reports the results.
//
// # Naming Conventions
//
//   - Display* functions write formatted output to an [io.Writer].
//   - Format* functions return a string without performing I/O.
//   - Write* functions write to the filesystem.
//   - Read* functions consume an [io.Reader].
package cli
