package pike_test

import (
	"fmt"

	"github.com/coregx/pike"
)

// ExampleMatchString demonstrates one-shot matching.
func ExampleMatchString() {
	fmt.Println(pike.MatchString("ab*c", "xxabbbcyy"))
	fmt.Println(pike.MatchString("nomatch", "wat"))
	// Output:
	// true
	// false
}

// ExampleCompile demonstrates compile-once matching.
func ExampleCompile() {
	re := pike.Compile("^frog")
	fmt.Println(re.MatchString("frog pond"))
	fmt.Println(re.MatchString("bullfrog"))
	// Output:
	// true
	// false
}

// ExampleRegexp_MatchString demonstrates anchors and the wildcard.
func ExampleRegexp_MatchString() {
	re := pike.Compile("^a.c$")
	fmt.Println(re.MatchString("abc"))
	fmt.Println(re.MatchString("ac"))
	// Output:
	// true
	// false
}

// ExampleRegexp_Match demonstrates matching a byte slice.
func ExampleRegexp_Match() {
	re := pike.Compile("og$")
	fmt.Println(re.Match([]byte("bullfrog")))
	// Output: true
}

// ExampleRegexp_String demonstrates recovering the source pattern.
func ExampleRegexp_String() {
	re := pike.Compile("a.*z")
	fmt.Println(re.String())
	// Output: a.*z
}
