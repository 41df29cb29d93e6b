package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// fakeClock fires timers manually when Advance moves past their deadline.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()
	for _, t := range due {
		t.f()
	}
}

func TestBurstCoalescesIntoOneCall(t *testing.T) {
	clock := &fakeClock{}
	d := NewWithTimer(100*time.Millisecond, clock.AfterFunc)

	var calls int
	var firedAt time.Duration
	fn := func() {
		calls++
		firedAt = clock.now
	}

	d.Schedule(fn)
	clock.Advance(20 * time.Millisecond)
	d.Schedule(fn) // second event, 20ms after the first

	clock.Advance(99 * time.Millisecond)
	if calls != 0 {
		t.Fatalf("fired before the quiet period elapsed (calls=%d)", calls)
	}

	clock.Advance(1 * time.Millisecond)
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
	if firedAt < 20*time.Millisecond+100*time.Millisecond {
		t.Errorf("fired at %v, want >= 120ms", firedAt)
	}

	clock.Advance(time.Second)
	if calls != 1 {
		t.Errorf("calls = %d after idle period, want 1", calls)
	}
}

func TestStopCancelsPending(t *testing.T) {
	clock := &fakeClock{}
	d := NewWithTimer(100*time.Millisecond, clock.AfterFunc)

	var calls int
	d.Schedule(func() { calls++ })
	if !d.Pending() {
		t.Fatal("expected a pending invocation")
	}
	if !d.Stop() {
		t.Error("Stop should report a pending invocation")
	}
	clock.Advance(time.Second)
	if calls != 0 {
		t.Errorf("calls = %d, want 0 after Stop", calls)
	}
	if d.Stop() {
		t.Error("second Stop should report nothing pending")
	}
}

func TestSeparateBurstsEachFire(t *testing.T) {
	clock := &fakeClock{}
	d := NewWithTimer(100*time.Millisecond, clock.AfterFunc)

	var calls int
	d.Schedule(func() { calls++ })
	clock.Advance(150 * time.Millisecond)
	d.Schedule(func() { calls++ })
	clock.Advance(150 * time.Millisecond)

	if calls != 2 {
		t.Errorf("calls = %d, want 2", calls)
	}
	if d.Pending() {
		t.Error("nothing should be pending after both fired")
	}
}

func TestRealTimerTrailingEdge(t *testing.T) {
	d := New(100 * time.Millisecond)

	var calls atomic.Int32
	fired := make(chan time.Time, 4)
	fn := func() {
		calls.Add(1)
		fired <- time.Now()
	}

	d.Schedule(fn)
	time.Sleep(20 * time.Millisecond)
	second := time.Now()
	d.Schedule(fn)

	select {
	case at := <-fired:
		if gap := at.Sub(second); gap < 100*time.Millisecond {
			t.Errorf("fired %v after the second event, want >= 100ms", gap)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced function never ran")
	}

	time.Sleep(250 * time.Millisecond)
	if n := calls.Load(); n != 1 {
		t.Errorf("calls = %d, want exactly 1", n)
	}
}
