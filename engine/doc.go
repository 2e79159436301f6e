/*
Package engine implements a positional state tracker for patterns.

An Engine is initialized with a pattern and a list of external identifiers,
one per literal occurrence of the pattern, in left-to-right order. Clients
then step the engine over input symbols, one at a time. After every operation
the engine reports its State: the marked expression, the active positions
(identifiers of reachable literal occurrences, or Accept) and the symbols
which are enabled for the next step.

	eng := engine.New()
	state, err := eng.Initialize("(a|b)c", []int{1, 2, 3})
	…
	state, err = eng.Step('a')   // state.Active = [#3]

The engine keeps the initial expression and the history of consumed symbols.
As stepping discards information, going back is implemented by replaying the
history from the initial expression.

An Engine is not safe for concurrent use. Package session wraps an engine for
shared use.

Configuration

If configuration key "strict-transitions" is set, stepping over a symbol which
is not enabled is an error (NoSuchTransition) and leaves the engine untouched.
Otherwise it is legal and leads to the dead state, which has no active
positions. Option StrictTransitions overrides the configuration.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The Railtrack Authors

*/
package engine

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'railtrack.engine'.
func tracer() tracing.Trace {
	return tracing.Select("railtrack.engine")
}
