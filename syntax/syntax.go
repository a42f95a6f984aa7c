// Package syntax tokenizes patterns for the pike matching engine.
//
// The supported syntax is deliberately tiny:
//
//	c    matches the literal character c
//	.    matches any single character
//	^    matches the beginning of the text
//	$    matches the end of the text
//	*    matches zero or more of the previous character
//
// Tokenization is total: every input string maps to a symbol sequence, and
// no positional or semantic validation happens here. Anchor placement is a
// structural contract checked by the backtrack package at match time.
package syntax

import (
	"fmt"
	"unicode/utf8"
)

// Op identifies the kind of a pattern symbol.
type Op uint8

const (
	// OpAtom matches exactly one character.
	OpAtom Op = iota

	// OpStar matches zero or more consecutive occurrences of one character.
	OpStar

	// OpStartAnchor matches only at text position 0. Legal only as the
	// first symbol of a sequence.
	OpStartAnchor

	// OpEndAnchor matches only at the end of the text. Legal only as the
	// last symbol of a sequence.
	OpEndAnchor
)

// String returns a human-readable name for the op.
func (op Op) String() string {
	switch op {
	case OpAtom:
		return "Atom"
	case OpStar:
		return "Star"
	case OpStartAnchor:
		return "StartAnchor"
	case OpEndAnchor:
		return "EndAnchor"
	default:
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
}

// Symbol is one unit of a tokenized pattern. It is a small value type and is
// always passed by value; a tokenized pattern is just []Symbol.
//
// For OpAtom and OpStar, Any reports whether the symbol matches any character
// (the `.` wildcard); if Any is false, Char holds the literal scalar value to
// match. Anchor symbols carry no character payload.
type Symbol struct {
	Op   Op
	Any  bool
	Char rune
}

// String returns a compact debug form, e.g. Atom(a), Star(any), EndAnchor.
func (s Symbol) String() string {
	switch s.Op {
	case OpAtom, OpStar:
		if s.Any {
			return s.Op.String() + "(any)"
		}
		return fmt.Sprintf("%s(%c)", s.Op, s.Char)
	default:
		return s.Op.String()
	}
}

// atom builds the character payload for c: `.` becomes the wildcard, anything
// else a literal.
func atom(op Op, c rune) Symbol {
	if c == '.' {
		return Symbol{Op: op, Any: true}
	}
	return Symbol{Op: op, Char: c}
}

// A Tokenizer yields the symbols of a pattern one at a time, in one forward
// pass with a single character of lookahead. It is forward-only and
// non-restartable; a fresh Tokenizer over the same pattern always yields the
// identical sequence.
type Tokenizer struct {
	rest string
}

// NewTokenizer returns a Tokenizer over pattern.
func NewTokenizer(pattern string) *Tokenizer {
	return &Tokenizer{rest: pattern}
}

// Next returns the next symbol of the pattern. The second result is false
// once the pattern is exhausted.
func (t *Tokenizer) Next() (Symbol, bool) {
	if len(t.rest) == 0 {
		return Symbol{}, false
	}

	c, size := utf8.DecodeRuneInString(t.rest)
	t.rest = t.rest[size:]

	switch c {
	case '^':
		return Symbol{Op: OpStartAnchor}, true
	case '$':
		return Symbol{Op: OpEndAnchor}, true
	}

	// One rune of lookahead: a trailing `*` turns the atom into a star and
	// consumes both characters.
	if len(t.rest) > 0 && t.rest[0] == '*' {
		t.rest = t.rest[1:]
		return atom(OpStar, c), true
	}
	return atom(OpAtom, c), true
}

// Tokenize materializes the full symbol sequence for pattern. The result is
// owned by the caller; tokenizing the same pattern twice yields equal slices.
func Tokenize(pattern string) []Symbol {
	// Each symbol consumes at least one input byte, so len(pattern) is an
	// upper bound on the symbol count.
	symbols := make([]Symbol, 0, len(pattern))
	tok := NewTokenizer(pattern)
	for {
		sym, ok := tok.Next()
		if !ok {
			return symbols
		}
		symbols = append(symbols, sym)
	}
}
