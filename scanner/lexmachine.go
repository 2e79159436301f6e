package scanner

import (
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/railtrack"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// lexmachine adapter

// LMAdapter is a lexmachine adapter to use lexmachine as a scanner.
type LMAdapter struct {
	Lexer *lexmachine.Lexer
}

// NewLMAdapter creates a new lexmachine adapter. It receives a list of
// literals ('[', '|', …) and a map for translating token strings to their values.
//
// NewLMAdapter will return an error if compiling the DFA failed.
func NewLMAdapter(init func(*lexmachine.Lexer), literals []string, tokenIds map[string]int) (*LMAdapter, error) {
	adapter := &LMAdapter{}
	adapter.Lexer = lexmachine.NewLexer()
	init(adapter.Lexer)
	for _, lit := range literals {
		r := "\\" + strings.Join(strings.Split(lit, ""), "\\")
		adapter.Lexer.Add([]byte(r), MakeToken(lit, tokenIds[lit]))
	}
	if err := adapter.Lexer.Compile(); err != nil {
		tracer().Errorf("Error compiling DFA: %v", err)
		return nil, err
	}
	return adapter, nil
}

// Scanner creates a scanner for a given input. The scanner will implement the
// Tokenizer interface.
func (lm *LMAdapter) Scanner(input string) (*LMScanner, error) {
	s, err := lm.Lexer.Scanner([]byte(input))
	if err != nil {
		return &LMScanner{}, err
	}
	return &LMScanner{scanner: s, Error: logError}, nil
}

// LMScanner is a scanner type for lexmachine scanners, implementing the
// Tokenizer interface.
type LMScanner struct {
	scanner *lexmachine.Scanner
	Error   func(error)
}

var _ Tokenizer = (*LMScanner)(nil)

// SetErrorHandler sets an error handler for the scanner.
func (lms *LMScanner) SetErrorHandler(h func(error)) {
	if h == nil {
		lms.Error = logError
		return
	}
	lms.Error = h
}

// NextToken is part of the Tokenizer interface.
//
// Input not matched by any token pattern is reported to the error handler
// as an UnconsumedError and skipped.
func (lms *LMScanner) NextToken() railtrack.Token {
	if lms.scanner == nil {
		return MakeDefaultToken(EOF, "", railtrack.Span{})
	}
	tok, err, eof := lms.scanner.Next()
	for err != nil {
		ui, is := err.(*machines.UnconsumedInput)
		if !is {
			lms.Error(err)
			return MakeDefaultToken(EOF, "", railtrack.Span{})
		}
		r, _ := utf8.DecodeRune(lms.scanner.Text[ui.StartTC:])
		lms.Error(UnconsumedError{Offset: ui.StartTC, Rune: r})
		next := ui.FailTC
		if next <= ui.StartTC { // always make progress
			next = ui.StartTC + 1
		}
		lms.scanner.TC = next
		tok, err, eof = lms.scanner.Next()
	}
	if eof {
		at := uint64(len(lms.scanner.Text))
		return MakeDefaultToken(EOF, "", railtrack.Span{at, at})
	}
	token := tok.(*lexmachine.Token)
	tracer().Debugf("tok is %T | %v", tok, token.Lexeme)
	from := uint64(token.TC)
	return MakeDefaultToken(
		railtrack.TokType(token.Type),
		string(token.Lexeme),
		railtrack.Span{from, from + uint64(len(token.Lexeme))},
	)
}

// ---------------------------------------------------------------------------

// Skip is a pre-defined action which ignores the scanned match.
func Skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

// MakeToken is a pre-defined action which wraps a scanned match into a token.
func MakeToken(name string, id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}
