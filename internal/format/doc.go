// Package format groups the integer part of numeric text with a thousands
// separator and provides the small formatting helpers used by the CLI and
// the HTTP server.
//
// Numbers are handled as text rather than numeric types: values may exceed
// native precision, and digits from any script (Arabic-Indic, Persian,
// Devanagari, ...) are grouped positionally without being interpreted.
//
// Two operations share the same contract:
//
//   - [FormatNumberString] allocates a new string. Any separators already in
//     the input are stripped before the integer part is regrouped.
//   - [FormatNumberInPlace] mutates a rune buffer, inserting only the
//     separators that are missing.
//
// The fractional part, from the first decimal point to the end, is always
// copied verbatim.
package format
