//go:build rp2040 || rp2350

// Package platform binds the blink handler to the board: LED pin, timer
// alarm, interrupt vector, and the idle loop.
package platform

import (
	"runtime/interrupt"

	"pitblink/internal/blink"
	"pitblink/internal/config"
	"pitblink/internal/idle"
	"pitblink/internal/isr"
	"pitblink/internal/led"
	"pitblink/internal/pit"
)

// bound is the handler reached from the static vector. Written once in
// Start before the interrupt is unmasked.
var bound *isr.Handler

// Board is the running setup. Handler belongs to interrupt context.
type Board struct {
	Handler *isr.Handler
	Alarm   *pit.Alarm
}

// Start opens the LED, arms the alarm with the first period and unmasks the
// timer interrupt.
func Start(cfg config.Config) (*Board, error) {
	line, err := led.Open(cfg.LEDPin)
	if err != nil {
		return nil, err
	}
	alarm := pit.NewAlarm(0)
	h := isr.New(line, alarm, blink.New(cfg.Bounds), cfg.ClockHz)
	alarm.Arm(h.FirstLoad())
	bound = h

	irq := interrupt.New(pit.IRQ, func(interrupt.Interrupt) {
		bound.Service()
	})
	alarm.EnableInterrupt(true)
	irq.Enable()
	alarm.Enable()
	return &Board{Handler: h, Alarm: alarm}, nil
}

// Idle never returns.
func (*Board) Idle() { idle.Forever() }
