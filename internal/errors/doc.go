// Package apperrors defines the error types and exit codes of numgroup.
//
// Grouping itself never fails; errors come from the surroundings: bad flags
// or config files, unreadable input, unwritable output, and cancellation.
// Wrapping follows the usual fmt.Errorf("%w") convention so errors.Is and
// errors.As see through every type defined here.
package apperrors
