// Package ui holds the terminal styles used by the CLI output. Styles are
// bound to the writer they render to, so color is dropped automatically when
// output is piped, redirected, or NO_COLOR is set.
package ui
