/*
Package session wraps an engine for use by a single client, possibly from
several goroutines.

A session loads a pattern, builds its railroad diagram to allocate terminal
identifiers, and initializes an engine with them. All operations on a
session are serialized.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021–2026 The Railtrack Authors

*/
package session

import (
	"errors"
	"sync"

	"github.com/npillmayer/railtrack/diagram"
	"github.com/npillmayer/railtrack/engine"
	"github.com/npillmayer/railtrack/pattern"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'railtrack.session'.
func tracer() tracing.Trace {
	return tracing.Select("railtrack.session")
}

// ErrNoPattern is returned for operations on a session without a pattern.
var ErrNoPattern = errors.New("no pattern loaded")

// Session holds the pattern, diagram and engine of one client.
type Session struct {
	mx      sync.Mutex
	eng     *engine.Engine
	diagram *diagram.Diagram
	opts    []diagram.Option
}

// New creates a session. Engine options are passed to the engine,
// diagram options are used for every pattern loaded.
func New(engineOpts []engine.Option, diagramOpts ...diagram.Option) *Session {
	return &Session{
		eng:  engine.New(engineOpts...),
		opts: diagramOpts,
	}
}

// Load validates a pattern, builds its diagram and (re-)initializes the engine
// with the diagram's terminal identifiers. On error, the session is left
// unchanged.
func (s *Session) Load(p string) (engine.State, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	pat, err := pattern.Parse(p)
	if err != nil {
		return engine.State{}, err
	}
	d := diagram.Build(pat, s.opts...)
	state, err := s.eng.Initialize(p, d.TerminalIDs())
	if err != nil {
		return engine.State{}, err
	}
	s.diagram = d
	tracer().Infof("session loaded pattern %q", p)
	return state, nil
}

// Feed steps the engine over every symbol of input, in order, and returns
// the state after the last step. If a step fails, the steps before it remain
// in effect.
func (s *Session) Feed(input string) (engine.State, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.diagram == nil {
		return engine.State{}, ErrNoPattern
	}
	if input == "" {
		return s.eng.State()
	}
	var state engine.State
	var err error
	for _, sym := range input {
		if state, err = s.eng.Step(sym); err != nil {
			return engine.State{}, err
		}
	}
	return state, nil
}

// Back reverts the last step.
func (s *Session) Back() (engine.State, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.diagram == nil {
		return engine.State{}, ErrNoPattern
	}
	return s.eng.UndoLast()
}

// Replay resets the engine and steps over history.
func (s *Session) Replay(history string) (engine.State, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.diagram == nil {
		return engine.State{}, ErrNoPattern
	}
	return s.eng.Replay([]rune(history))
}

// State returns the current state.
func (s *Session) State() (engine.State, error) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.diagram == nil {
		return engine.State{}, ErrNoPattern
	}
	return s.eng.State()
}

// Diagram returns the diagram of the current pattern, or nil.
func (s *Session) Diagram() *diagram.Diagram {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.diagram
}

// Inspect calls f with the session's engine, while holding the session lock.
// f must not retain the engine.
func (s *Session) Inspect(f func(*engine.Engine)) {
	s.mx.Lock()
	defer s.mx.Unlock()
	f(s.eng)
}
