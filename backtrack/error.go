package backtrack

import (
	"errors"
	"fmt"
)

// ErrMisplacedAnchor indicates an anchor symbol outside its legal position:
// `^` anywhere but first, or `$` anywhere but last.
var ErrMisplacedAnchor = errors.New("misplaced anchor")

// SyntaxError is the panic value raised when the matcher reaches a misplaced
// anchor. Anchor placement is a structural contract on the pattern, not a
// property of the text, so it is deliberately not folded into the boolean
// match result: a malformed pattern is a caller bug, not a non-match.
type SyntaxError struct {
	// Anchor is the offending anchor character, '^' or '$'.
	Anchor rune
	Err    error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("backtrack: anchor %q in illegal position", e.Anchor)
}

// Unwrap returns the underlying error, always ErrMisplacedAnchor.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func misplacedAnchor(anchor rune) *SyntaxError {
	return &SyntaxError{Anchor: anchor, Err: ErrMisplacedAnchor}
}
