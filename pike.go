// Package pike is a minimal backtracking regular-expression matcher.
//
// pike answers one question: does a pattern match somewhere in (or anchored
// to) a text? It supports a fixed, small operator set:
//
//	c    matches the literal character c
//	.    matches any single character
//	^    matches the beginning of the text
//	$    matches the end of the text
//	*    matches zero or more of the previous character
//
// The implementation is the classic Kernighan–Pike recursive backtracking
// matcher: the pattern is tokenized once, then matched by recursion on
// shrinking views of the symbol sequence and the text. No automaton is built
// and no prefiltering happens.
//
// Basic usage:
//
//	// One-shot match
//	if pike.MatchString("ab*c", "xxacyy") {
//	    fmt.Println("matched!")
//	}
//
//	// Compile once, match many
//	re := pike.Compile("^frog")
//	re.MatchString("frog pond") // true
//	re.MatchString("bullfrog")  // false
//
// Performance characteristics:
//   - Typical patterns: O(pattern length × text length)
//   - Pathological star stacking: exponential, by design — this matcher
//     reproduces the original algorithm, not a linear-time engine
//
// Limitations:
//   - No character classes, alternation, or capture groups
//   - No find/replace surfaces; matching is a pure boolean decision
//   - Matching is by Unicode scalar value; no case folding or normalization
//
// A pattern that places `$` anywhere but last (or `^` anywhere but first) is
// structurally malformed; the matcher panics when it reaches such an anchor
// rather than reporting a non-match, so caller bugs are not silently masked.
package pike

import (
	"github.com/coregx/pike/backtrack"
	"github.com/coregx/pike/syntax"
)

// Regexp is a compiled pattern.
//
// A Regexp is safe for concurrent use by multiple goroutines: the compiled
// symbol sequence is immutable and all matching state lives on the stack.
//
// Example:
//
//	re := pike.Compile("^hello")
//	if re.MatchString("hello world") {
//	    println("matched!")
//	}
type Regexp struct {
	symbols []syntax.Symbol
	pattern string
}

// Compile tokenizes a pattern into a reusable Regexp.
//
// Compile cannot fail: every string is a valid symbol sequence, so there is
// no error result and no MustCompile variant. Structural anchor misuse (`$`
// not last, `^` not first) is not detected here; it surfaces as a panic from
// the match methods when the misplaced anchor is reached, mirroring the
// matcher's contract that anchor placement is a caller responsibility.
func Compile(pattern string) *Regexp {
	return &Regexp{
		symbols: syntax.Tokenize(pattern),
		pattern: pattern,
	}
}

// String returns the source pattern used to compile the Regexp.
func (re *Regexp) String() string {
	return re.pattern
}

// MatchString reports whether the Regexp matches the string text.
func (re *Regexp) MatchString(text string) bool {
	return backtrack.IsMatch(re.symbols, text)
}

// Match reports whether the Regexp matches the byte slice text, which is
// interpreted as UTF-8.
func (re *Regexp) Match(text []byte) bool {
	return backtrack.IsMatch(re.symbols, string(text))
}

// MatchString reports whether pattern matches anywhere in text.
//
// This is the package's one-shot entry point; it tokenizes pattern on every
// call. Use Compile when matching the same pattern repeatedly.
func MatchString(pattern, text string) bool {
	return backtrack.IsMatch(syntax.Tokenize(pattern), text)
}

// Match is the byte-slice form of the package-level MatchString.
func Match(pattern string, text []byte) bool {
	return backtrack.IsMatch(syntax.Tokenize(pattern), string(text))
}
