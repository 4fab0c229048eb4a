package main

import (
	"context"

	"pitblink/internal/blink"
	"pitblink/internal/config"
	"pitblink/internal/isr"
	"pitblink/internal/led"
	"pitblink/internal/pit"
)

// Firing is one serviced interrupt as seen after the handler returned.
type Firing struct {
	Index        int
	AtMs         uint64 // virtual time of the expiry
	NextDelayMs  uint32 // period armed by this firing
	Accelerating bool
	Flipped      bool
	LEDOn        bool
	Clears       int
}

// simulate runs n firings of the real handler against pit.Sim and sends one
// Firing per interrupt. It closes out when done.
func simulate(ctx context.Context, cfg config.Config, relatch, n int, out chan<- Firing) error {
	defer close(out)

	var line led.Counter
	sim := pit.NewSim(0)
	h := isr.New(&line, sim, blink.New(cfg.Bounds), cfg.ClockHz)
	sim.Arm(h.FirstLoad())
	sim.Relatch(relatch)
	sim.Bind(h.Service)
	sim.EnableInterrupt(true)
	sim.Enable()
	defer sim.Disable()

	ticksPerMs := uint64(cfg.ClockHz / 1000)
	for i := 0; i < n; i++ {
		flips, clears := h.Flips, sim.Clears()
		if !sim.Advance() {
			return nil
		}
		f := Firing{
			Index:        i,
			AtMs:         sim.Now() / ticksPerMs,
			NextDelayMs:  h.Delay(),
			Accelerating: h.Accelerating(),
			Flipped:      h.Flips != flips,
			LEDOn:        line.Level(),
			Clears:       sim.Clears() - clears,
		}
		select {
		case out <- f:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}
