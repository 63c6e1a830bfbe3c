// Package grammar compiles grammar source text into a reusable parser.
//
// The underlying engine is parsley; everything else in the program talks to
// the compiled Parser through its Parse method and never sees engine types.
package grammar

import (
	"errors"
	"fmt"
	"os"

	"github.com/l-donovan/parsley"
)

// Parser is a compiled grammar, safe to reuse across any number of Parse
// calls. It is read-only after compilation.
type Parser struct {
	parse func(input string) error
}

// Compile turns grammar source text into a Parser. A compilation failure
// means no validation can happen at all, so callers treat it as fatal.
func Compile(text string) (*Parser, error) {
	g, err := parsley.ParseGrammar(text)
	if err != nil {
		return nil, fmt.Errorf("compile grammar: %w", err)
	}

	return &Parser{
		parse: func(input string) error {
			_, err := g.Parse(input)
			return err
		},
	}, nil
}

// LoadFile reads a grammar file and compiles it.
func LoadFile(path string) (*Parser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read grammar %s: %w", path, err)
	}
	return Compile(string(data))
}

// Parse attempts to consume input in full. A nil return means the grammar
// accepts the text; anything else is a rejection or an engine failure.
func (p *Parser) Parse(input string) error {
	return p.parse(input)
}

// IsSyntaxError reports whether err is a positioned parse rejection from the
// engine, as opposed to an internal engine failure.
func IsSyntaxError(err error) bool {
	var perr parsley.ParseError
	return errors.As(err, &perr)
}

// PrintErrorContext prints the source lines surrounding the failure position
// when err carries one. Returns false when err has no positional context.
func PrintErrorContext(err error, lines int) bool {
	var perr parsley.ParseError
	if !errors.As(err, &perr) {
		return false
	}
	perr.PrintContext(lines)
	return true
}
