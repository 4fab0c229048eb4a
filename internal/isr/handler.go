// Package isr is the timer interrupt service routine: toggle, step, re-arm,
// acknowledge.
package isr

import (
	"pitblink/internal/blink"
	"pitblink/internal/led"
	"pitblink/internal/pit"
)

// Handler owns everything the ISR touches. Nothing else may read or write
// it while the interrupt is live.
type Handler struct {
	led     led.Line
	timer   pit.Timer
	state   blink.State
	clockHz uint32

	// Fired counts serviced interrupts. Flips counts direction changes.
	// Stuck counts firings whose elapsed flag survived pit.MaxClearAttempts.
	Fired uint32
	Flips uint32
	Stuck uint32
}

// New takes ownership of the line, the timer and the initial state.
func New(l led.Line, t pit.Timer, s blink.State, clockHz uint32) *Handler {
	return &Handler{led: l, timer: t, state: s, clockHz: clockHz}
}

// FirstLoad is the load value for the countdown before the first firing.
func (h *Handler) FirstLoad() uint32 {
	return pit.Ticks(h.clockHz, h.state.Delay())
}

// Service runs once per timer firing. It never blocks or allocates.
func (h *Handler) Service() {
	h.led.Toggle()

	if h.state.Step() {
		h.Flips++
	}

	// Rearm before acknowledging: the new period is measured from the expiry
	// being serviced.
	h.timer.Arm(pit.Ticks(h.clockHz, h.state.Delay()))

	if _, ok := pit.Drain(h.timer); !ok {
		h.Stuck++
	}
	h.Fired++
}

// Delay is the period, in milliseconds, now armed for the next countdown.
func (h *Handler) Delay() uint32 { return h.state.Delay() }

// Accelerating reports the direction of the next step.
func (h *Handler) Accelerating() bool { return h.state.Accelerating() }
