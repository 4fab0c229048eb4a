// Package blink holds the triangle-wave delay state advanced once per timer
// interrupt.
package blink

import (
	"pitblink/errcode"
	"pitblink/x/mathx"
)

// Bounds are the fixed limits of the triangle wave, in milliseconds.
type Bounds struct {
	MinMs  uint32
	MaxMs  uint32
	StepMs uint32
}

// Validate requires MinMs < MaxMs and a non-zero step. The step does not need
// to divide MaxMs-MinMs; the last step of each ramp snaps to the bound.
func (b Bounds) Validate() error {
	if b.MinMs >= b.MaxMs {
		return errcode.New("blink", errcode.InvalidBounds, "min must be below max")
	}
	if b.StepMs == 0 {
		return errcode.New("blink", errcode.InvalidStep, "step must be non-zero")
	}
	return nil
}

// Period is the number of steps in one full fall-and-rise cycle.
func (b Bounds) Period() int {
	return 2 * int(mathx.CeilDiv(b.MaxMs-b.MinMs, b.StepMs))
}

// State is the current delay and direction. The zero value is not usable;
// construct with New.
type State struct {
	b            Bounds
	delayMs      uint32
	accelerating bool
}

// New starts at the slowest delay, heading towards the fastest.
func New(b Bounds) State {
	return State{b: b, delayMs: b.MaxMs, accelerating: true}
}

func (s *State) Delay() uint32      { return s.delayMs }
func (s *State) Accelerating() bool { return s.accelerating }

// Step advances one transition and reports whether the direction flipped.
// A flip happens exactly when the delay is clamped to a bound.
func (s *State) Step() (flipped bool) {
	b := s.b
	if s.accelerating {
		if s.delayMs > b.MinMs+b.StepMs {
			s.delayMs -= b.StepMs
			return false
		}
		s.delayMs = b.MinMs
		s.accelerating = false
		return true
	}
	// MaxMs-StepMs would wrap when the step exceeds the ceiling.
	if b.StepMs < b.MaxMs && s.delayMs < b.MaxMs-b.StepMs {
		s.delayMs += b.StepMs
		return false
	}
	s.delayMs = b.MaxMs
	s.accelerating = true
	return true
}
