/*
Package marker implements marked expressions, i.e. patterns with markers
("dots") placed between tokens.

A marker denotes a position the automaton of a pattern may currently be at.
In string form, markers are written as '.':

	{.a}.b     markers before 'a' and before 'b'
	ab.        a marker at the end: the pattern has been matched

Operations on marked expressions are pure; every operation returns a new
expression.

	Normalize        epsilon-closure of all markers
	Move             advance markers over a symbol, dropping all others
	Step             Normalize(Move(…))
	ResolveIDs       map markers to external identifiers
	EnabledSymbols   symbols which may be stepped over

After normalization every marker precedes a literal or sits at the end, and no
two markers share a point.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The Railtrack Authors

*/
package marker

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'railtrack.marker'.
func tracer() tracing.Trace {
	return tracing.Select("railtrack.marker")
}
