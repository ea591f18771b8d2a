// Package logging provides the structured logger used by numgroup. Callers
// depend on the Logger interface; the default implementation writes JSON
// through zerolog, and a log.Logger adapter exists for plain text output.
package logging
