// Package validate runs a compiled parser against file content and
// classifies the result. Every failure mode of the engine, including panics,
// is converted to a Fail outcome so one bad file never stops a batch.
package validate

import (
	"fmt"
	"os"
	"unicode/utf8"

	"rtscheck/internal/grammar"
)

// Parser is the capability validated content is parsed with. Satisfied by
// *grammar.Parser; tests substitute stubs.
type Parser interface {
	Parse(input string) error
}

// FailKind tags the class of a validation failure.
type FailKind string

const (
	// KindIO is a file that could not be read.
	KindIO FailKind = "io"
	// KindLex is content that cannot be tokenized (not valid UTF-8).
	KindLex FailKind = "lex"
	// KindSyntax is a positioned rejection by the grammar.
	KindSyntax FailKind = "syntax"
	// KindEngine is any other engine failure, including recovered panics.
	KindEngine FailKind = "engine"
)

// Outcome is the result of validating one file. Exactly one Outcome exists
// per validated file.
type Outcome struct {
	Passed bool
	Kind   FailKind
	Reason string
	// Err retains the underlying engine error for detailed console context.
	Err error
}

// File reads path and validates its content. Read failures become io-kind
// Fail outcomes rather than run errors, to keep batch runs resilient to
// individual bad files.
func File(p Parser, path string) Outcome {
	data, err := os.ReadFile(path)
	if err != nil {
		return Outcome{Kind: KindIO, Reason: fmt.Sprintf("read %s: %v", path, err), Err: err}
	}
	return Content(p, string(data))
}

// Content validates a single input string. It never panics and always
// returns an Outcome with a non-empty reason on failure.
func Content(p Parser, content string) (out Outcome) {
	if !utf8.ValidString(content) {
		return Outcome{Kind: KindLex, Reason: "content is not valid UTF-8"}
	}

	defer func() {
		if r := recover(); r != nil {
			out = Outcome{Kind: KindEngine, Reason: fmt.Sprintf("parser panic: %v", r)}
		}
	}()

	if err := p.Parse(content); err != nil {
		kind := KindEngine
		if grammar.IsSyntaxError(err) {
			kind = KindSyntax
		}
		reason := err.Error()
		if reason == "" {
			reason = "parse failed"
		}
		return Outcome{Kind: kind, Reason: reason, Err: err}
	}

	return Outcome{Passed: true}
}
