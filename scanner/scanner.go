/*
Package scanner defines an interface for scanners used to tokenize patterns,
together with an adapter for lexmachine.

For more information on lexmachine, see e.g.
https://hackthology.com/how-to-tokenize-complex-strings-with-lexmachine.html

Lexmachine has to be initialized by providing literals and regular expressions.
Package scanner is very opinionated on how to do the setup of lexmachine.

	var literals []string       // The tokens representing literal strings
	var tokenIds map[string]int // A map from the token names to their int IDs

	init := func(lexer *lexmachine.Lexer) {
		// initialize lexmachine with all the necessary regular expressions
		//
		// scanner.Skip      is a pre-defined action which ignores the scanned match
		// scanner.MakeToken is a pre-defined action which wraps a scanned match into a
		//                   railtrack.Token
	}

Having that, clients use `NewLMAdapter` to wrap lexmachine into a Tokenizer.
NewLMAdapter will return an error if compiling the DFA failed.

	LM, err := NewLMAdapter(init, literals, tokenIds)
	if err != nil {
		// do error handling
	}

A scanner is instantiated for each concrete input sequence.

	scan, err := LM.Scanner("input string to tokenize")

Tokens are read until EOF.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The Railtrack Authors

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/railtrack"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'railtrack.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("railtrack.scanner")
}

// EOF is the token type signalling the end of input.
const EOF railtrack.TokType = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() railtrack.Token
	SetErrorHandler(func(error))
}

// Default error reporting function for scanners
func logError(e error) {
	tracer().Errorf("scanner error: " + e.Error())
}

// UnconsumedError is reported to a scanner's error handler if a part of the
// input is not matched by any token pattern.
type UnconsumedError struct {
	Offset int  // byte offset of the first unmatched character
	Rune   rune // the first unmatched character
}

func (e UnconsumedError) Error() string {
	return fmt.Sprintf("unexpected character %q at offset %d", e.Rune, e.Offset)
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for the
// LexMachine scanner.
type DefaultToken struct {
	kind   railtrack.TokType
	lexeme string
	Val    interface{}
	span   railtrack.Span
}

// MakeDefaultToken creates a token without a value.
func MakeDefaultToken(typ railtrack.TokType, lexeme string, span railtrack.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() railtrack.TokType {
	return t.kind
}

func (t DefaultToken) Value() interface{} {
	return t.Val
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() railtrack.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q %v>", t.kind, t.lexeme, t.span)
}
