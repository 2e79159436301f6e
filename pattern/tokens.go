package pattern

import (
	"fmt"
	"sync"

	"github.com/npillmayer/railtrack"
	"github.com/npillmayer/railtrack/scanner"
	"github.com/timtadh/lexmachine"
)

// Token categories of the pattern language. Structural tokens use their
// character as token type.
const (
	Symbol        railtrack.TokType = -2
	GroupOpen     railtrack.TokType = '('
	GroupClose    railtrack.TokType = ')'
	OptionalOpen  railtrack.TokType = '['
	OptionalClose railtrack.TokType = ']'
	RepeatOpen    railtrack.TokType = '{'
	RepeatClose   railtrack.TokType = '}'
	Alternation   railtrack.TokType = '|'
)

// The tokens representing structural one-char lexemes
var literals = []string{"(", ")", "[", "]", "{", "}", "|"}

// tokenIds will be set in initTokens()
var tokenIds map[string]int // A map from the token names to their token types

var initOnce sync.Once // monitors one-time initialization
func initTokens() {
	initOnce.Do(func() {
		tokenIds = make(map[string]int)
		tokenIds["SYMBOL"] = int(Symbol)
		for _, lit := range literals {
			tokenIds[lit] = int(lit[0])
		}
	})
}

var lexerOnce sync.Once
var patternLexer *scanner.LMAdapter
var lexerErr error

// Lexer returns the lexmachine lexer for patterns. The DFA is compiled once.
func Lexer() (*scanner.LMAdapter, error) {
	lexerOnce.Do(func() {
		initTokens()
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`[A-Za-z0-9]`), scanner.MakeToken("SYMBOL", tokenIds["SYMBOL"]))
		}
		patternLexer, lexerErr = scanner.NewLMAdapter(init, literals, tokenIds)
	})
	return patternLexer, lexerErr
}

// Token is a single token of a pattern. As every token spans exactly one
// character, token index and character position coincide for valid patterns.
type Token struct {
	Type railtrack.TokType
	Char rune
}

func (t Token) String() string {
	return string(t.Char)
}

// IsLiteral is true for literal symbols.
func (t Token) IsLiteral() bool {
	return t.Type == Symbol
}

// IsOpening is true for '(', '[' and '{'.
func (t Token) IsOpening() bool {
	return t.Type == GroupOpen || t.Type == OptionalOpen || t.Type == RepeatOpen
}

// IsClosing is true for ')', ']' and '}'.
func (t Token) IsClosing() bool {
	return t.Type == GroupClose || t.Type == OptionalClose || t.Type == RepeatClose
}

// closing returns the closing bracket for an opening bracket, or 0.
func closing(open rune) rune {
	switch open {
	case '(':
		return ')'
	case '[':
		return ']'
	case '{':
		return '}'
	}
	return 0
}

// TokenName returns a human readable name for a token type.
func TokenName(t railtrack.TokType) string {
	switch t {
	case Symbol:
		return "Symbol"
	case GroupOpen:
		return "GroupOpen"
	case GroupClose:
		return "GroupClose"
	case OptionalOpen:
		return "OptionalOpen"
	case OptionalClose:
		return "OptionalClose"
	case RepeatOpen:
		return "RepeatOpen"
	case RepeatClose:
		return "RepeatClose"
	case Alternation:
		return "Alternation"
	case scanner.EOF:
		return "EOF"
	}
	return fmt.Sprintf("TokType(%d)", int(t))
}

// lex splits a pattern into tokens. The first character not in the alphabet
// is reported as InvalidCharacter.
func lex(p string) ([]Token, error) {
	lm, err := Lexer()
	if err != nil {
		return nil, fmt.Errorf("cannot create pattern lexer: %w", err)
	}
	scan, err := lm.Scanner(p)
	if err != nil {
		return nil, fmt.Errorf("cannot scan pattern: %w", err)
	}
	var first error
	scan.SetErrorHandler(func(e error) {
		if first == nil {
			first = e
		}
	})
	var tokens []Token
	for tok := scan.NextToken(); tok.TokType() != scanner.EOF; tok = scan.NextToken() {
		if first != nil {
			break
		}
		tokens = append(tokens, Token{Type: tok.TokType(), Char: rune(tok.Lexeme()[0])})
	}
	if first != nil {
		if ue, ok := first.(scanner.UnconsumedError); ok {
			return nil, &ValidationError{Kind: InvalidCharacter, Index: ue.Offset, Char: ue.Rune}
		}
		return nil, fmt.Errorf("cannot scan pattern: %w", first)
	}
	return tokens, nil
}
