package engine

import (
	"errors"
	"fmt"

	"github.com/npillmayer/railtrack/marker"
)

// ErrorKind classifies operation errors.
type ErrorKind int

// Kinds of operation errors
const (
	IdentifierCountMismatch ErrorKind = iota + 1
	UninitializedEngine
	NoSuchTransition
	NothingToUndo
)

func (k ErrorKind) String() string {
	switch k {
	case IdentifierCountMismatch:
		return "IdentifierCountMismatch"
	case UninitializedEngine:
		return "UninitializedEngine"
	case NoSuchTransition:
		return "NoSuchTransition"
	case NothingToUndo:
		return "NothingToUndo"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors, one per kind. OperationErrors unwrap to them.
var (
	ErrIdentifierCountMismatch = marker.ErrIdentifierCount
	ErrUninitialized           = errors.New("engine not initialized")
	ErrNoSuchTransition        = errors.New("no such transition")
	ErrNothingToUndo           = errors.New("nothing to undo")
)

// OperationError is returned by engine operations.
//
// For IdentifierCountMismatch, Want is the number of literal occurrences and
// Have the number of identifiers given. For NoSuchTransition, Symbol is the
// offending symbol and Index its position in the (replayed) history.
type OperationError struct {
	Kind   ErrorKind
	Symbol rune
	Index  int
	Want   int
	Have   int
}

func (e *OperationError) Error() string {
	switch e.Kind {
	case IdentifierCountMismatch:
		return fmt.Sprintf("pattern has %d literals, but %d identifiers given", e.Want, e.Have)
	case UninitializedEngine:
		return "engine has not been initialized"
	case NoSuchTransition:
		return fmt.Sprintf("no transition for symbol %q at step %d", e.Symbol, e.Index)
	case NothingToUndo:
		return "no previous state to go back to"
	}
	return "engine error"
}

func (e *OperationError) Unwrap() error {
	switch e.Kind {
	case IdentifierCountMismatch:
		return ErrIdentifierCountMismatch
	case UninitializedEngine:
		return ErrUninitialized
	case NoSuchTransition:
		return ErrNoSuchTransition
	case NothingToUndo:
		return ErrNothingToUndo
	}
	return nil
}
