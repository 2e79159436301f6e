/*
Package pattern implements the pattern language of railtrack.

A pattern is a string of literal symbols (ASCII letters and digits) and
structural operators:

	( … )   grouping
	[ … ]   optional
	{ … }   zero or more
	  |     alternation

Patterns are validated by Validate, which fails on the first of the following
violations (checked in this order): an empty pattern, a character outside the
alphabet, an empty bracket pair, unbalanced or mismatched brackets.
Empty alternatives, like in "a|" or "(|b)", are legal.

Parse returns an immutable Pattern which holds the token sequence, bracket
matching tables and a parse tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The Railtrack Authors

*/
package pattern

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'railtrack.pattern'.
func tracer() tracing.Trace {
	return tracing.Select("railtrack.pattern")
}
