package tracker

import (
	"sync"
	"testing"
	"time"
)

// TestTracker_RecordGet verifies basic store and lookup.
func TestTracker_RecordGet(t *testing.T) {
	tr := New()

	if _, ok := tr.Get("/a"); ok {
		t.Error("Get() on empty tracker should report absent")
	}

	now := time.Now()
	tr.Record("/a", now)

	got, ok := tr.Get("/a")
	if !ok {
		t.Fatal("Get() should find recorded path")
	}
	if !got.Equal(now) {
		t.Errorf("Get() = %v, want %v", got, now)
	}
}

// TestTracker_RecordRefreshes verifies a second Record overwrites.
func TestTracker_RecordRefreshes(t *testing.T) {
	tr := New()
	first := time.Now()
	second := first.Add(time.Second)

	tr.Record("/a", first)
	tr.Record("/a", second)

	got, _ := tr.Get("/a")
	if !got.Equal(second) {
		t.Errorf("Get() = %v, want refreshed %v", got, second)
	}
}

// TestTracker_Forget verifies removal is targeted and idempotent.
func TestTracker_Forget(t *testing.T) {
	tr := New()
	tr.Record("/a", time.Now())
	tr.Record("/b", time.Now())

	tr.Forget("/a")
	tr.Forget("/a") // repeated forget is a no-op

	if _, ok := tr.Get("/a"); ok {
		t.Error("forgotten path should be absent")
	}
	if _, ok := tr.Get("/b"); !ok {
		t.Error("unrelated path should survive Forget")
	}
}

// TestTracker_Clear verifies Clear removes everything.
func TestTracker_Clear(t *testing.T) {
	tr := New()
	tr.Record("/a", time.Now())
	tr.Record("/b", time.Now())

	tr.Clear()

	if tr.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", tr.Len())
	}
}

// TestTracker_Concurrent exercises the tracker from multiple goroutines;
// the race detector flags unsynchronized access.
func TestTracker_Concurrent(t *testing.T) {
	tr := New()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				tr.Record("/shared", time.Now())
				tr.Get("/shared")
				tr.Forget("/other")
			}
		}()
	}

	wg.Wait()

	if _, ok := tr.Get("/shared"); !ok {
		t.Error("shared path should remain recorded")
	}
}
