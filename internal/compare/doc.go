// Package compare drives one similarity run over an original document and a
// candidate copy.
//
// Each document is decoded and normalized on its own goroutine; the token
// strings then meet in the vectorizer and the scorer. Errors come back as
// values tagged by the document package, never as process exits, so the CLI
// decides how to report them.
package compare
