// Package leaktest holds test helpers that catch goroutines and heap left behind
// by hubs, subscribers and session stores.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const (
	settleDelay  = 10 * time.Millisecond
	pollInterval = 10 * time.Millisecond

	// DefaultTimeout is how long Check waits for goroutines to exit
	DefaultTimeout = time.Second
)

// GoroutineChecker compares the goroutine count against a baseline
type GoroutineChecker struct {
	before  int
	timeout time.Duration
	t       testing.TB
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(settleDelay)

	return &GoroutineChecker{
		before:  runtime.NumGoroutine(),
		timeout: DefaultTimeout,
		t:       t,
	}
}

// WithTimeout overrides how long Check polls before failing
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check polls until at most tolerance extra goroutines remain, failing the test on timeout
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	target := g.before + tolerance
	if after, ok := waitFor(target, g.timeout); !ok {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, after-g.before, tolerance)
	}
}

// MemoryChecker compares live heap against a baseline
type MemoryChecker struct {
	before uint64
	t      testing.TB
}

// NewMemoryChecker collects garbage and records the live heap
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()
	return &MemoryChecker{before: liveHeap(), t: t}
}

// Check fails the test when live heap grew by more than maxGrowthMB
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	after := liveHeap()
	growthMB := (float64(after) - float64(m.before)) / 1024 / 1024
	if growthMB > maxGrowthMB {
		m.t.Errorf("Potential memory leak: before=%.2fMB, after=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			float64(m.before)/1024/1024, float64(after)/1024/1024, growthMB, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails if it left goroutines running
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckNoMemoryLeak runs fn and fails if the live heap grew past maxGrowthMB
func CheckNoMemoryLeak(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()

	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}

// WaitForGoroutines blocks until the goroutine count drops to target or the timeout passes
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()

	if current, ok := waitFor(target, timeout); !ok {
		t.Errorf("Timeout waiting for goroutines to complete: current=%d, target=%d", current, target)
	}
}

func waitFor(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		current := runtime.NumGoroutine()
		if current <= target {
			return current, true
		}
		if time.Now().After(deadline) {
			return current, false
		}
		time.Sleep(pollInterval)
	}
}

func liveHeap() uint64 {
	runtime.GC()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}
