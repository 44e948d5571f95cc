package engine

import (
	"testing"
	"time"
)

func TestDebouncerCollapsesBurst(t *testing.T) {
	d := NewDebouncer(40 * time.Millisecond)
	ran := make(chan int, 8)
	for i := 1; i <= 5; i++ {
		i := i
		d.Call(func() { ran <- i })
	}

	select {
	case got := <-ran:
		if got != 5 {
			t.Fatalf("ran call %d, want last call 5", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced call never ran")
	}

	select {
	case got := <-ran:
		t.Fatalf("extra call %d ran, want exactly one", got)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncerFlushRunsImmediately(t *testing.T) {
	d := NewDebouncer(time.Hour)
	ran := make(chan struct{}, 1)
	d.Call(func() { ran <- struct{}{} })
	d.Flush()

	select {
	case <-ran:
	default:
		t.Fatal("Flush did not run the pending call")
	}

	// A second flush has nothing left to run.
	d.Flush()
	select {
	case <-ran:
		t.Fatal("Flush ran the call twice")
	default:
	}
}

func TestDebouncerCancelDiscardsPending(t *testing.T) {
	d := NewDebouncer(20 * time.Millisecond)
	ran := make(chan struct{}, 1)
	d.Call(func() { ran <- struct{}{} })
	d.Cancel()

	select {
	case <-ran:
		t.Fatal("cancelled call still ran")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestDebouncerSupersededTimerDoesNotFireEarly(t *testing.T) {
	// A timer callback already blocked on the mutex when a new Call stores
	// its function must not run that function immediately; the new call
	// gets its own full delay.
	d := NewDebouncer(100 * time.Millisecond)
	ran := make(chan int, 2)
	d.Call(func() { ran <- 1 })

	// Hold the lock so the first timer's callback blocks, then queue a
	// superseding Call behind it.
	d.mu.Lock()
	stored := make(chan struct{})
	go func() {
		d.Call(func() { ran <- 2 })
		close(stored)
	}()
	time.Sleep(150 * time.Millisecond)
	d.mu.Unlock()

	<-stored
	start := time.Now()

	select {
	case got := <-ran:
		if got != 2 {
			t.Fatalf("ran call %d, want superseding call 2", got)
		}
		if elapsed := time.Since(start); elapsed < 80*time.Millisecond {
			t.Fatalf("superseding call ran after %v, want a full delay", elapsed)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("superseding call never ran")
	}

	select {
	case got := <-ran:
		t.Fatalf("extra call %d ran, want exactly one", got)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebouncerReusableAfterFire(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	ran := make(chan int, 2)
	d.Call(func() { ran <- 1 })

	select {
	case <-ran:
	case <-time.After(2 * time.Second):
		t.Fatal("first call never ran")
	}

	d.Call(func() { ran <- 2 })
	select {
	case got := <-ran:
		if got != 2 {
			t.Fatalf("ran call %d, want 2", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("second call never ran")
	}
}
