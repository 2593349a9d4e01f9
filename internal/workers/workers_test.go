package workers

import (
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestCount(t *testing.T) {
	t.Setenv(EnvOverride, "")

	availableCPU := runtime.GOMAXPROCS(0)

	tests := []struct {
		name       string
		multiplier float64
		limit      int
		minExpect  int
		maxExpect  int
	}{
		{
			name:       "CPU-bound task (1.0x multiplier)",
			multiplier: 1.0,
			minExpect:  1,
			maxExpect:  availableCPU,
		},
		{
			name:       "I/O-bound task (2.0x multiplier)",
			multiplier: 2.0,
			minExpect:  1,
			maxExpect:  availableCPU * 2,
		},
		{
			name:       "With limit lower than calculated",
			multiplier: 2.0,
			limit:      2,
			minExpect:  1,
			maxExpect:  2,
		},
		{
			name:       "Very low multiplier still yields one worker",
			multiplier: 0.01,
			minExpect:  1,
			maxExpect:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Count(tt.multiplier, tt.limit)
			if got < tt.minExpect || got > tt.maxExpect {
				t.Errorf("Count(%v, %d) = %d, expected in [%d, %d]", tt.multiplier, tt.limit, got, tt.minExpect, tt.maxExpect)
			}
		})
	}
}

func TestCountWithEnvOverride(t *testing.T) {
	tests := []struct {
		name     string
		envValue string
		limit    int
		expected int
	}{
		{name: "Override used", envValue: "7", expected: 7},
		{name: "Override capped by limit", envValue: "100", limit: 16, expected: 16},
		{name: "Invalid override ignored", envValue: "lots", limit: 1, expected: 1},
		{name: "Zero override ignored", envValue: "0", limit: 1, expected: 1},
		{name: "Negative override ignored", envValue: "-3", limit: 1, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvOverride, tt.envValue)

			if got := Count(2.0, tt.limit); got != tt.expected {
				t.Errorf("Count() with %s=%q = %d, want %d", EnvOverride, tt.envValue, got, tt.expected)
			}
		})
	}
}

func TestForIO(t *testing.T) {
	t.Setenv(EnvOverride, "")

	if got, want := ForIO(0), Count(2.0, 0); got != want {
		t.Errorf("ForIO(0) = %d, want %d", got, want)
	}
	if got := ForIO(1); got != 1 {
		t.Errorf("ForIO(1) = %d, want 1", got)
	}
}

func TestNewLimiter(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{n: 4, want: 4},
		{n: 1, want: 1},
		{n: 0, want: 1},
		{n: -5, want: 1},
	}

	for _, tt := range tests {
		if got := NewLimiter(tt.n).Cap(); got != tt.want {
			t.Errorf("NewLimiter(%d).Cap() = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestNilLimiter(t *testing.T) {
	var l *Limiter

	l.Acquire()
	l.Release()
	if !l.TryAcquire() {
		t.Error("TryAcquire() on nil limiter should always succeed")
	}
	if l.Cap() != 0 || l.InUse() != 0 {
		t.Errorf("nil limiter Cap/InUse = %d/%d, want 0/0", l.Cap(), l.InUse())
	}
}

func TestLimiterTryAcquire(t *testing.T) {
	l := NewLimiter(2)

	if !l.TryAcquire() || !l.TryAcquire() {
		t.Fatal("TryAcquire() failed with free slots")
	}
	if l.TryAcquire() {
		t.Error("TryAcquire() succeeded with every slot held")
	}
	if l.InUse() != 2 {
		t.Errorf("InUse = %d, want 2", l.InUse())
	}

	l.Release()
	if !l.TryAcquire() {
		t.Error("TryAcquire() failed after Release")
	}
	l.Release()
	l.Release()
	if l.InUse() != 0 {
		t.Errorf("InUse = %d, want 0", l.InUse())
	}
}

func TestLimiterBoundsConcurrency(t *testing.T) {
	t.Parallel()

	const slots = 3
	l := NewLimiter(slots)

	var current, peak atomic.Int64
	var wg sync.WaitGroup

	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Acquire()
			defer l.Release()

			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			current.Add(-1)
		}()
	}
	wg.Wait()

	if got := peak.Load(); got > slots {
		t.Errorf("peak concurrency = %d, want <= %d", got, slots)
	}
	if l.InUse() != 0 {
		t.Errorf("InUse after all work = %d, want 0", l.InUse())
	}
}

func BenchmarkCount(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Count(2.0, 16)
	}
}
