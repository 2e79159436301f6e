/*
Package automaton builds position automata for patterns.

The states of an automaton are the points of a pattern, i.e. the gaps between
tokens. Point p sits immediately before token p; the last point is the end of
the pattern and stands for acceptance. Structural tokens induce epsilon edges
between points:

	before an opening bracket   enter the bracket, i.e. move before the first
	                            token of every alternative inside it
	before '[' or '{'           additionally skip behind the matching close
	before ')' or ']'           exit behind the close
	before '}'                  exit behind the close, and loop back into
	                            every alternative of the repetition
	before '|'                  fall through to the enclosing close, or to
	                            the end of the pattern at top level

Points before a literal, and the end point, are terminal. Epsilon closures are
computed once, when an automaton is created; closures only contain terminal
points.

A set of terminal points is represented as a StateSet. Stepping a state set
over a symbol advances every point before a matching literal and takes the
closure of the result.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The Railtrack Authors

*/
package automaton

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'railtrack.automaton'.
func tracer() tracing.Trace {
	return tracing.Select("railtrack.automaton")
}
