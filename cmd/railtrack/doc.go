/*
Command railtrack provides an interactive command line tool for tracking
patterns. Users load a pattern, then enter symbols one line at a time;
after every step railtrack prints the marked expression, the active
positions and the symbols enabled for the next step.

	railtrack [-trace level] [-strict] [-idbase n] [-init file] [pattern]

Commands start with a colon:

	:pattern P     load pattern P (also :p)
	:back          revert the last step
	:replay S      reset and step over the symbols S
	:reset         revert to the initial state
	:state         print the current state and its digest
	:tree          print the railroad diagram of the pattern as a tree
	:dot [file]    export the position automaton in Graphviz format
	:grammar       print the grammar of patterns
	:help          list commands
	:quit          leave (also <ctrl>D)

Any other input is a sequence of symbols to step over.

Configuration is read from railtrack.nt (NestedText) at the standard
configuration locations. Flags override configuration values.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The Railtrack Authors

*/

package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'railtrack.cli'
func tracer() tracing.Trace {
	return tracing.Select("railtrack.cli")
}
