// Package diag collects the problems found while extracting and parsing
// native method implementations. Diagnostics point at positions in the
// original Java source, never at synthesized wrapper text.
package diag

import (
	"github.com/dhamidi/jex/java"
)

// Severity defines the importance of a diagnostic.
type Severity uint8

const (
	SevInfo Severity = iota
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevInfo:
		return "INFO"
	case SevWarning:
		return "WARNING"
	case SevError:
		return "ERROR"
	}
	return "UNKNOWN"
}

// Code identifies the class of problem independent of message wording.
type Code string

const (
	CodeMissingBlock Code = "missing-block"
	CodeMissingStart Code = "missing-start"
	CodeMissingEnd   Code = "missing-end"
	CodeParse        Code = "js-parse"
)

// Diagnostic is one problem anchored to a position in a Java source file.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Pos      java.Position
}

// Sink receives diagnostics as they are produced.
type Sink interface {
	Report(d Diagnostic)
}
