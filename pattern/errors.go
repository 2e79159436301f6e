package pattern

import (
	"errors"
	"fmt"
)

// ErrorKind classifies validation errors.
type ErrorKind int

// Kinds of validation errors
const (
	EmptyPattern ErrorKind = iota + 1
	InvalidCharacter
	EmptyGroup
	UnbalancedBrackets
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyPattern:
		return "EmptyPattern"
	case InvalidCharacter:
		return "InvalidCharacter"
	case EmptyGroup:
		return "EmptyGroup"
	case UnbalancedBrackets:
		return "UnbalancedBrackets"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Sentinel errors, one per kind. ValidationErrors unwrap to them, so clients
// may use errors.Is.
var (
	ErrEmptyPattern       = errors.New("empty pattern")
	ErrInvalidCharacter   = errors.New("invalid character")
	ErrEmptyGroup         = errors.New("empty bracket pair")
	ErrUnbalancedBrackets = errors.New("unbalanced brackets")
)

// ValidationError is returned for malformed patterns.
//
// Index is the byte offset of the offending character. For InvalidCharacter,
// Char holds that character. For EmptyGroup, Bracket is the opening bracket of
// the empty pair. For UnbalancedBrackets, Bracket is the bracket found and
// Expected the closing bracket which would have been required (0 if none
// was open). An unclosed bracket at the end of a pattern is reported at its
// own index, with Expected set to its missing counterpart.
type ValidationError struct {
	Kind     ErrorKind
	Index    int
	Char     rune
	Bracket  rune
	Expected rune
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case EmptyPattern:
		return "pattern is empty"
	case InvalidCharacter:
		return fmt.Sprintf("invalid character %q at index %d", e.Char, e.Index)
	case EmptyGroup:
		return fmt.Sprintf("empty bracket pair %c%c at index %d", e.Bracket, closing(e.Bracket), e.Index)
	case UnbalancedBrackets:
		if e.Expected == 0 {
			return fmt.Sprintf("unbalanced brackets: %q at index %d has no opening bracket", e.Bracket, e.Index)
		}
		if closing(e.Bracket) != 0 {
			return fmt.Sprintf("unbalanced brackets: %q at index %d is never closed", e.Bracket, e.Index)
		}
		return fmt.Sprintf("unbalanced brackets: found %q at index %d, expected %q", e.Bracket, e.Index, e.Expected)
	}
	return "invalid pattern"
}

func (e *ValidationError) Unwrap() error {
	switch e.Kind {
	case EmptyPattern:
		return ErrEmptyPattern
	case InvalidCharacter:
		return ErrInvalidCharacter
	case EmptyGroup:
		return ErrEmptyGroup
	case UnbalancedBrackets:
		return ErrUnbalancedBrackets
	}
	return nil
}
