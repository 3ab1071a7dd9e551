package leaktest

import (
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeTB records failures instead of failing the enclosing test
type fakeTB struct {
	testing.TB
	mu     sync.Mutex
	failed bool
}

func (f *fakeTB) Helper() {}

func (f *fakeTB) Errorf(string, ...interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failed = true
}

func (f *fakeTB) Failed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.failed
}

func TestGoroutineChecker(t *testing.T) {
	tests := []struct {
		name      string
		spawn     int
		tolerance int
		wantFail  bool
	}{
		{"nothing started", 0, 0, false},
		{"leak within tolerance", 1, 2, false},
		{"leak past tolerance", 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := &fakeTB{TB: t}
			checker := NewGoroutineChecker(tb).WithTimeout(50 * time.Millisecond)

			done := make(chan struct{})
			defer close(done)
			for i := 0; i < tt.spawn; i++ {
				go func() { <-done }()
			}

			checker.Check(tt.tolerance)
			assert.Equal(t, tt.wantFail, tb.Failed())
		})
	}
}

func TestGoroutineChecker_WaitsForExit(t *testing.T) {
	checker := NewGoroutineChecker(t)

	stop := make(chan struct{})
	go func() {
		<-stop
		time.Sleep(20 * time.Millisecond)
	}()
	close(stop)

	checker.Check(0)
}

func TestCheckNoGoroutineLeak(t *testing.T) {
	CheckNoGoroutineLeak(t, func() {
		var wg sync.WaitGroup
		for i := 0; i < 10; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				time.Sleep(time.Millisecond)
			}()
		}
		wg.Wait()
	})
}

func TestCheckNoMemoryLeak(t *testing.T) {
	t.Run("temporary allocation", func(t *testing.T) {
		CheckNoMemoryLeak(t, 1.0, func() {
			data := make([]byte, 1024)
			_ = data
		})
	})

	t.Run("retained allocation", func(t *testing.T) {
		tb := &fakeTB{TB: t}
		var retained []byte
		CheckNoMemoryLeak(tb, 1.0, func() {
			retained = make([]byte, 8<<20)
		})
		runtime.KeepAlive(retained)
		assert.True(t, tb.Failed())
	})
}

func TestWaitForGoroutines(t *testing.T) {
	before := runtime.NumGoroutine()

	var wg sync.WaitGroup
	wg.Add(5)
	for i := 0; i < 5; i++ {
		go func() {
			defer wg.Done()
			time.Sleep(10 * time.Millisecond)
		}()
	}
	wg.Wait()

	WaitForGoroutines(t, before, time.Second)
}
