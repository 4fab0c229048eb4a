//go:build !rp2040 && !rp2350

// Package idle parks the main context between interrupts.
package idle

import "context"

// Until is the host stand-in for wait-for-interrupt: it wakes once per
// value on wake, hands it to after (if non-nil) outside interrupt context,
// and returns the number of wake-ups when ctx ends.
func Until[T any](ctx context.Context, wake <-chan T, after func(T)) (wakes int) {
	for {
		select {
		case <-ctx.Done():
			return wakes
		case v := <-wake:
			wakes++
			if after != nil {
				after(v)
			}
		}
	}
}
