// Package leaktest catches goroutines a test leaves running.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultTimeout is how long Verify waits for stragglers to exit
const DefaultTimeout = 2 * time.Second

// Snapshot records the goroutine count at the start of a test
type Snapshot struct {
	t      testing.TB
	before int
}

// Take records the current goroutine count
func Take(t testing.TB) *Snapshot {
	t.Helper()
	runtime.Gosched()
	return &Snapshot{t: t, before: runtime.NumGoroutine()}
}

// Verify polls until the goroutine count is back within tolerance of the
// snapshot, failing the test once timeout passes
func (s *Snapshot) Verify(tolerance int, timeout time.Duration) {
	s.t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		after := runtime.NumGoroutine()
		if after-s.before <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			s.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", s.before, after, tolerance)
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Check runs fn and verifies that everything it started has exited
func Check(t testing.TB, fn func()) {
	t.Helper()
	snap := Take(t)
	fn()
	snap.Verify(0, DefaultTimeout)
}
