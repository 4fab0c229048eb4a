// Package pit drives a periodic interrupt timer: a countdown that raises an
// interrupt at zero and reloads with the armed value.
package pit

// Timer is the per-firing surface used from interrupt context.
type Timer interface {
	// Arm loads ticks for the next countdown; the timer keeps running.
	Arm(ticks uint32)
	// HasElapsed reports whether the countdown reached zero since the last clear.
	HasElapsed() bool
	// ClearElapsed acknowledges the elapsed condition. Hardware may latch it
	// again immediately; use Drain.
	ClearElapsed()
}

// Controller adds the one-time bring-up operations.
type Controller interface {
	Timer
	EnableInterrupt(on bool)
	Enable()
	Disable()
}

// ClockHz is the tick rate of the RP2 TIMER (fed by the 1 MHz watchdog
// tick). Sim counts in the same unit.
const ClockHz = 1_000_000

// MaxClearAttempts bounds Drain. Reaching it means the flag is stuck.
const MaxClearAttempts = 32

// Ticks converts a delay to a load value. Division happens first so the
// result truncates exactly as the fixed-point hardware maths expects.
func Ticks(clockHz, delayMs uint32) uint32 {
	return clockHz / 1000 * delayMs
}

// Drain clears the elapsed condition until it reads back false. It returns
// the number of clears issued and false if the flag was still set after
// MaxClearAttempts.
func Drain(t Timer) (clears int, ok bool) {
	for t.HasElapsed() {
		if clears == MaxClearAttempts {
			return clears, false
		}
		t.ClearElapsed()
		clears++
	}
	return clears, true
}

// NextTarget returns the compare target for a counter that matches on
// equality: prev+ticks, or now+ticks when that deadline has already passed
// (late is then true).
func NextTarget(prev, now, ticks uint32) (target uint32, late bool) {
	target = prev + ticks
	if int32(target-now) <= 0 {
		return now + ticks, true
	}
	return target, false
}
