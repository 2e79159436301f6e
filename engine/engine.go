package engine

import (
	"errors"

	"github.com/npillmayer/railtrack/automaton"
	"github.com/npillmayer/railtrack/marker"
	"github.com/npillmayer/railtrack/pattern"
	"github.com/npillmayer/schuko/gconf"
)

// Engine tracks the active positions of a pattern over a sequence of input
// symbols. Create with New.
type Engine struct {
	strict  bool                 // stepping over non-enabled symbols is an error
	auto    *automaton.Automaton // automaton of the current pattern
	initial *marker.Expression   // normalized initial expression
	current *marker.Expression
	ids     []int  // external identifiers, one per literal occurrence
	history []rune // consumed symbols
}

// Option configures an engine.
type Option func(e *Engine)

// StrictTransitions sets or clears strict stepping. With strict stepping,
// stepping over a symbol which is not enabled fails with NoSuchTransition.
func StrictTransitions(b bool) Option {
	return func(e *Engine) {
		e.strict = b
	}
}

// New creates an uninitialized engine. Strict stepping defaults to the
// configuration value of "strict-transitions".
func New(opts ...Option) *Engine {
	e := &Engine{strict: gconf.GetBool("strict-transitions")}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Initialize validates a pattern, computes its initial state and resets the
// history. ids has to carry one identifier per literal occurrence.
// Errors are either of type *pattern.ValidationError or *OperationError.
// On error, the engine is left unchanged.
func (e *Engine) Initialize(p string, ids []int) (State, error) {
	pat, err := pattern.Parse(p)
	if err != nil {
		return State{}, err
	}
	if len(ids) != pat.LiteralCount() {
		err := &OperationError{Kind: IdentifierCountMismatch, Want: pat.LiteralCount(), Have: len(ids)}
		tracer().Errorf("initialize %q: %v", p, err)
		return State{}, err
	}
	e.auto = automaton.New(pat)
	e.initial = marker.Normalize(marker.Initial(e.auto))
	e.current = e.initial
	e.ids = append([]int(nil), ids...)
	e.history = nil
	tracer().Infof("initialized engine with pattern %q, %d literals", p, pat.LiteralCount())
	return e.State()
}

// Initialized is true after a successful Initialize.
func (e *Engine) Initialized() bool {
	return e.auto != nil
}

// Step consumes one input symbol and appends it to the history.
func (e *Engine) Step(sym rune) (State, error) {
	if !e.Initialized() {
		return State{}, &OperationError{Kind: UninitializedEngine}
	}
	next, err := e.step(e.current, sym, len(e.history))
	if err != nil {
		return State{}, err
	}
	e.current = next
	e.history = append(e.history, sym)
	return e.State()
}

func (e *Engine) step(x *marker.Expression, sym rune, index int) (*marker.Expression, error) {
	next := marker.Step(x, sym)
	if e.strict && next.Markers().Empty() {
		err := &OperationError{Kind: NoSuchTransition, Symbol: sym, Index: index}
		tracer().Errorf("step: %v", err)
		return nil, err
	}
	return next, nil
}

// Replay resets the engine to its initial state and steps over every symbol
// of history. The history of the engine is replaced.
// Replay is atomic: if a step fails, the engine is left unchanged.
func (e *Engine) Replay(history []rune) (State, error) {
	if !e.Initialized() {
		return State{}, &OperationError{Kind: UninitializedEngine}
	}
	x := e.initial
	for i, sym := range history {
		var err error
		if x, err = e.step(x, sym, i); err != nil {
			return State{}, err
		}
	}
	e.current = x
	e.history = append([]rune(nil), history...)
	tracer().Debugf("replayed %q: %s", string(history), x)
	return e.State()
}

// UndoLast reverts the last step, by replaying all but the last symbol of
// the history. Fails with NothingToUndo if the history is empty.
func (e *Engine) UndoLast() (State, error) {
	if !e.Initialized() {
		return State{}, &OperationError{Kind: UninitializedEngine}
	}
	if len(e.history) == 0 {
		return State{}, &OperationError{Kind: NothingToUndo}
	}
	return e.Replay(e.history[:len(e.history)-1])
}

// Reset replays the empty history.
func (e *Engine) Reset() (State, error) {
	return e.Replay(nil)
}

// State returns the current state of the engine.
func (e *Engine) State() (State, error) {
	if !e.Initialized() {
		return State{}, &OperationError{Kind: UninitializedEngine}
	}
	active, err := marker.ResolveIDs(e.current, e.ids)
	if err != nil {
		var cerr *marker.IdentifierCountError
		if errors.As(err, &cerr) {
			return State{}, &OperationError{Kind: IdentifierCountMismatch, Want: cerr.Want, Have: cerr.Have}
		}
		return State{}, err
	}
	return State{
		Expression: e.current.String(),
		Active:     active,
		Enabled:    marker.EnabledSymbols(e.current),
		History:    e.History(),
	}, nil
}

// History returns a copy of the symbols consumed since initialization.
func (e *Engine) History() []rune {
	return append([]rune{}, e.history...)
}

// Automaton returns the automaton of the current pattern, or nil.
func (e *Engine) Automaton() *automaton.Automaton {
	return e.auto
}

// Expression returns the current marked expression, or nil.
func (e *Engine) Expression() *marker.Expression {
	return e.current
}

// Strict is true if stepping over non-enabled symbols is an error.
func (e *Engine) Strict() bool {
	return e.strict
}
