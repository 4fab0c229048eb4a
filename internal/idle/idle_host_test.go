//go:build !rp2040 && !rp2350

package idle

import (
	"context"
	"testing"
	"time"
)

func TestUntilCountsWakesAndStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	wake := make(chan struct{})
	done := make(chan int, 1)
	go func() { done <- Until(ctx, wake, nil) }()

	for i := 0; i < 3; i++ {
		wake <- struct{}{}
	}
	cancel()

	select {
	case n := <-done:
		if n != 3 {
			t.Fatalf("wakes=%d want 3", n)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Until did not return after cancel")
	}
}

func TestUntilHandsValuesToAfter(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	wake := make(chan bool, 3)
	wake <- true
	wake <- false
	wake <- true

	var seen []bool
	done := make(chan struct{})
	go func() {
		Until(ctx, wake, func(v bool) {
			seen = append(seen, v)
			if len(seen) == 3 {
				cancel()
			}
		})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Until did not return")
	}
	if len(seen) != 3 || !seen[0] || seen[1] || !seen[2] {
		t.Fatalf("seen=%v", seen)
	}
}
