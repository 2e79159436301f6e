package railtrack

import "fmt"

// --- A general purpose interface for tokens --------------------------------

// TokType is a category type for a Token. Pattern token categories are defined
// in package pattern.
type TokType int

// Tokens represent input tokens of a pattern. They are produced by a scanner and
// reflect either a literal symbol or one of the structural operators.
//
// An example would be a token for a literal symbol:
//
//    TokType = Symbol      // identifier for this kind of tokens
//    Lexeme  = "a"         // lexeme how it appeared in the pattern
//    Span    = 3…4         // occured from position 3 in the pattern
//
type Token interface {
	TokType() TokType
	Lexeme() string
	Value() interface{}
	Span() Span
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a run of input bytes. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

func (s Span) IsNull() bool {
	return s == Span{}
}

func (s Span) Extend(other Span) Span {
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Positions --------------------------------------------------------

// Position is an element of an active state set, as reported to clients.
// It is either the distinguished Accept pseudo-state or a literal occurrence,
// carrying the external identifier which has been assigned to it.
//
// Accept is a variant of its own, so no identifier value is ever mistaken
// for it.
type Position struct {
	accept bool
	id     int
}

// Accept is the pseudo-state reached at the end of a pattern.
var Accept = Position{accept: true}

// Literal returns a position for the literal occurrence with external identifier id.
func Literal(id int) Position {
	return Position{id: id}
}

// IsAccept is true for the Accept pseudo-state.
func (p Position) IsAccept() bool {
	return p.accept
}

// ID returns the external identifier of a literal position. For Accept
// the second return value is false.
func (p Position) ID() (int, bool) {
	if p.accept {
		return 0, false
	}
	return p.id, true
}

func (p Position) String() string {
	if p.accept {
		return "<accept>"
	}
	return fmt.Sprintf("#%d", p.id)
}
