// Package backtrack implements a recursive backtracking matcher over
// tokenized patterns.
//
// This is the classic Kernighan–Pike algorithm: no automaton is built, and
// every decision point (unanchored start offset, star repetition count) is
// explored by plain recursion on shrinking views of the symbol sequence and
// the text. The worst case is exponential; that is an accepted property of
// the algorithm, not a defect.
//
// The matcher operates on views only. Symbol sequences are re-sliced and text
// suffixes are re-sliced in place, so the recursion performs no allocation
// and no copying. Both views shrink monotonically along any recursive path,
// which bounds the recursion depth and guarantees termination.
//
// All state is passed by value, so the package-level functions are safe to
// call concurrently on independent or shared inputs.
package backtrack

import (
	"unicode/utf8"

	"github.com/coregx/pike/syntax"
)

// IsMatch reports whether the pattern described by symbols matches anywhere
// in text.
//
// A leading StartAnchor pins the match to text offset 0; otherwise the full
// sequence is tried against every successive character suffix of text,
// including the empty suffix at the very end.
//
// Matching is by Unicode scalar value: one atom consumes exactly one rune,
// never one byte. IsMatch panics with a *SyntaxError if it reaches an anchor
// symbol outside its legal position (see ErrMisplacedAnchor).
func IsMatch(symbols []syntax.Symbol, text string) bool {
	if len(symbols) > 0 && symbols[0].Op == syntax.OpStartAnchor {
		return matchHere(symbols[1:], text)
	}
	for {
		if matchHere(symbols, text) {
			return true
		}
		if len(text) == 0 {
			return false
		}
		_, size := utf8.DecodeRuneInString(text)
		text = text[size:]
	}
}

// matchHere reports whether symbols match a prefix of text, with both
// arguments being suffix views of the original call's inputs.
func matchHere(symbols []syntax.Symbol, text string) bool {
	if len(symbols) == 0 {
		// Nothing left to satisfy; whatever text remains is beyond the
		// match. This base case is what lets an unanchored pattern match
		// a prefix of the remaining text.
		return true
	}

	sym := symbols[0]
	switch sym.Op {
	case syntax.OpStar:
		return matchStar(sym, symbols[1:], text)

	case syntax.OpEndAnchor:
		if len(symbols) > 1 {
			panic(misplacedAnchor('$'))
		}
		return len(text) == 0

	case syntax.OpStartAnchor:
		// IsMatch strips a leading StartAnchor, so reaching one here means
		// the pattern placed `^` mid-sequence.
		panic(misplacedAnchor('^'))
	}

	// OpAtom: consume exactly one character.
	if len(text) == 0 {
		return false
	}
	c, size := utf8.DecodeRuneInString(text)
	if sym.Any || sym.Char == c {
		return matchHere(symbols[1:], text[size:])
	}
	return false
}

// matchStar implements zero-or-more repetition of the starred atom, with cont
// as the continuation of the pattern.
//
// The exploration order is: first try the continuation at the current
// position (zero further repetitions), and only on failure consume one
// matching character and retry the whole decision one position later. This
// is the original algorithm's order and it is preserved exactly; it reaches
// the same final answers as maximal-munch-first because both branches are
// explored on failure.
func matchStar(star syntax.Symbol, cont []syntax.Symbol, text string) bool {
	for {
		if matchHere(cont, text) {
			return true
		}
		if len(text) == 0 {
			return false
		}
		c, size := utf8.DecodeRuneInString(text)
		if !star.Any && star.Char != c {
			return false
		}
		text = text[size:]
	}
}
