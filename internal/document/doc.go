// Package document turns raw input files into trimmed Unicode text.
//
// A Decoder either detects each file's character encoding from a leading
// sample (byte-order marks, UTF-8 validity, then statistical detection) or
// decodes everything with one fixed encoding. Failures are returned as *Error
// values tagged with ErrNotFound, ErrDecode, or ErrRead so callers can report
// each category distinctly without inspecting messages.
package document
