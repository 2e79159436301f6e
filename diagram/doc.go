/*
Package diagram builds railroad diagrams for patterns.

A diagram is a tree of items: terminals, sequences, choices, optionals and
zero-or-more loops. Every terminal is assigned a serial identifier, in
left-to-right order. TerminalIDs returns these identifiers, one per literal
occurrence, suitable for initializing an engine.

Rendering diagrams to graphics is left to clients; Outline produces an
indented outline of a diagram.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The Railtrack Authors

*/
package diagram

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'railtrack.diagram'.
func tracer() tracing.Trace {
	return tracing.Select("railtrack.diagram")
}
