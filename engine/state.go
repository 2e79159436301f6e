package engine

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/npillmayer/railtrack"
)

// State is the observable state of an engine.
type State struct {
	Expression string               // marked expression, e.g. "{.a}.b"
	Active     []railtrack.Position // active positions, in pattern order
	Enabled    []rune               // symbols enabled for the next step, ascending
	History    []rune               // symbols consumed since initialization
}

// IsDead is true if no position is active.
func (s State) IsDead() bool {
	return len(s.Active) == 0
}

// IsAccepting is true if the Accept pseudo-state is active.
func (s State) IsAccepting() bool {
	for _, p := range s.Active {
		if p.IsAccept() {
			return true
		}
	}
	return false
}

// digestable is the part of a State which goes into its digest.
type digestable struct {
	Expression string
	Active     []string
	Enabled    string
}

// Digest returns a content hash of the state. Two states have the same digest
// if they have the same marked expression, active positions and enabled
// symbols, regardless of the history which led to them.
func (s State) Digest() string {
	d := digestable{
		Expression: s.Expression,
		Active:     make([]string, len(s.Active)),
		Enabled:    string(s.Enabled),
	}
	for i, p := range s.Active {
		d.Active[i] = p.String()
	}
	h, err := structhash.Hash(d, 1)
	if err != nil { // cannot happen for plain structs
		panic(err)
	}
	return h
}

func (s State) String() string {
	var b strings.Builder
	b.WriteString(s.Expression)
	b.WriteString(" active=")
	b.WriteString(fmt.Sprintf("%v", s.Active))
	b.WriteString(" enabled=")
	b.WriteString(fmt.Sprintf("%q", string(s.Enabled)))
	return b.String()
}
