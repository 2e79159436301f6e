package marker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/railtrack"
	"github.com/npillmayer/railtrack/automaton"
	"github.com/npillmayer/railtrack/pattern"
)

// Dot is the marker character in the string form of marked expressions.
const Dot = '.'

// Expression is a pattern with a set of markers.
type Expression struct {
	auto  *automaton.Automaton
	marks *automaton.StateSet
}

// New creates a marked expression for an automaton, with markers at points.
func New(a *automaton.Automaton, points ...int) *Expression {
	for _, p := range points {
		if p < 0 || p > a.End() {
			panic(fmt.Sprintf("marker point %d out of range 0…%d", p, a.End()))
		}
	}
	return &Expression{auto: a, marks: automaton.NewStateSet(points...)}
}

// Initial returns the initial marking of a pattern: a marker at the start and
// one behind every top-level alternation. The result is not normalized.
func Initial(a *automaton.Automaton) *Expression {
	points := []int{0}
	for _, alt := range a.Pattern().Alternations(-1) {
		points = append(points, alt+1)
	}
	return New(a, points...)
}

// Parse reads the string form of a marked expression, e.g. "{.a}.b".
// Consecutive markers collapse into one.
func Parse(marked string) (*Expression, error) {
	var b strings.Builder
	var points []int
	at := 0
	for _, r := range marked {
		if r == Dot {
			points = append(points, at)
			continue
		}
		b.WriteRune(r)
		at++
	}
	pat, err := pattern.Parse(b.String())
	if err != nil {
		return nil, err
	}
	return New(automaton.New(pat), points...), nil
}

// Automaton returns the automaton of the underlying pattern.
func (x *Expression) Automaton() *automaton.Automaton {
	return x.auto
}

// Points returns the marked points in ascending order.
func (x *Expression) Points() []int {
	return x.marks.Points()
}

// Markers returns the marked points as a state set.
func (x *Expression) Markers() *automaton.StateSet {
	return x.marks.Copy()
}

// LiteralCount returns the number of literal occurrences of the underlying pattern.
func (x *Expression) LiteralCount() int {
	return x.auto.Pattern().LiteralCount()
}

// IsNormal is true if every marker precedes a literal or the end.
func (x *Expression) IsNormal() bool {
	for _, p := range x.marks.Points() {
		if !x.auto.IsTerminal(p) {
			return false
		}
	}
	return true
}

// Equals is true if x and y are marked at the same points of the same pattern.
func (x *Expression) Equals(y *Expression) bool {
	return x.auto.Pattern().Source() == y.auto.Pattern().Source() && x.marks.Equals(y.marks)
}

func (x *Expression) String() string {
	return x.auto.Pattern().Mark(string(Dot), x.marks.Contains)
}

// --- Operations ------------------------------------------------------------

// Normalize returns the epsilon-closure of all markers of x.
func Normalize(x *Expression) *Expression {
	return &Expression{auto: x.auto, marks: x.auto.Closure(x.marks.Points()...)}
}

// Move advances every marker preceding a literal sym past that literal.
// All other markers are deleted, including markers at the end and markers
// before structural tokens.
func Move(x *Expression, sym rune) *Expression {
	moved := automaton.NewStateSet()
	for _, p := range x.marks.Points() {
		if s, ok := x.auto.Symbol(p); ok && s == sym {
			moved.Add(p + 1)
		}
	}
	return &Expression{auto: x.auto, marks: moved}
}

// Step consumes one symbol: Normalize(Move(x, sym)).
// Stepping over a symbol which is not enabled results in an expression
// without markers.
func Step(x *Expression, sym rune) *Expression {
	y := Normalize(Move(x, sym))
	tracer().Debugf("%s --%c--> %s", x, sym, y)
	return y
}

// EnabledSymbols returns the distinct literal symbols directly following a
// marker, in ascending order.
func EnabledSymbols(x *Expression) []rune {
	return x.auto.Enabled(x.marks)
}

// --- Identifiers -----------------------------------------------------------

// ErrIdentifierCount is the sentinel for IdentifierCountErrors.
var ErrIdentifierCount = errors.New("identifier count mismatch")

// IdentifierCountError is returned if the number of external identifiers
// does not match the number of literal occurrences.
type IdentifierCountError struct {
	Want, Have int
}

func (e *IdentifierCountError) Error() string {
	return fmt.Sprintf("identifier count mismatch: pattern has %d literals, got %d identifiers",
		e.Want, e.Have)
}

func (e *IdentifierCountError) Unwrap() error {
	return ErrIdentifierCount
}

// ResolveIDs maps the markers of x, in order, to positions. A marker before
// literal occurrence i resolves to railtrack.Literal(ids[i]), a marker at the
// end to railtrack.Accept. Markers before structural tokens are skipped.
// len(ids) must equal the literal count of the pattern.
func ResolveIDs(x *Expression, ids []int) ([]railtrack.Position, error) {
	if len(ids) != x.LiteralCount() {
		return nil, &IdentifierCountError{Want: x.LiteralCount(), Have: len(ids)}
	}
	pat := x.auto.Pattern()
	positions := []railtrack.Position{}
	for _, p := range x.marks.Points() {
		if p == x.auto.End() {
			positions = append(positions, railtrack.Accept)
		} else if occ := pat.Occurrence(p); occ >= 0 {
			positions = append(positions, railtrack.Literal(ids[occ]))
		}
	}
	return positions, nil
}
