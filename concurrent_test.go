package pike

import (
	"sync"
	"sync/atomic"
	"testing"
)

// TestConcurrentMatch verifies that a shared *Regexp is safe for concurrent
// use. All matching state is on the goroutine's own stack, so concurrent
// callers must observe correct, independent results with no races.
func TestConcurrentMatch(t *testing.T) {
	re := Compile("^a.*z$")

	testCases := []struct {
		input    string
		expected bool
	}{
		{"az", true},
		{"abcz", true},
		{"a---z", true},
		{"a", false},
		{"z", false},
		{"abcz tail", false},
		{"", false},
	}

	const numGoroutines = 50
	const numIterations = 200

	var wg sync.WaitGroup
	var mismatches atomic.Int64

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < numIterations; j++ {
				for _, tc := range testCases {
					if re.MatchString(tc.input) != tc.expected {
						mismatches.Add(1)
					}
				}
			}
		}()
	}

	wg.Wait()
	if n := mismatches.Load(); n != 0 {
		t.Errorf("%d mismatched results under concurrency", n)
	}
}

// TestConcurrentOneShot exercises the package-level entry point, which
// tokenizes per call, from many goroutines at once.
func TestConcurrentOneShot(t *testing.T) {
	const numGoroutines = 50

	var wg sync.WaitGroup
	var mismatches atomic.Int64

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if !MatchString("frog", "aaaafrogzzz") {
					mismatches.Add(1)
				}
				if MatchString("nomatch", "wat") {
					mismatches.Add(1)
				}
			}
		}()
	}

	wg.Wait()
	if n := mismatches.Load(); n != 0 {
		t.Errorf("%d mismatched results under concurrency", n)
	}
}
