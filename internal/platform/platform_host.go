//go:build !rp2040 && !rp2350

// Package platform binds the blink handler to the board: LED pin, timer
// alarm, interrupt vector, and the idle loop. The host build substitutes a
// wall-clock paced pit.Sim and reports the LED level from the idle side.
package platform

import (
	"context"
	"os"
	"os/signal"
	"time"

	"pitblink/internal/blink"
	"pitblink/internal/config"
	"pitblink/internal/console"
	"pitblink/internal/idle"
	"pitblink/internal/isr"
	"pitblink/internal/led"
	"pitblink/internal/pit"
)

// levelLine is an LED stand-in that remembers the level the pin would latch.
type levelLine interface {
	led.Line
	Level() bool
}

// Board is the running host setup.
type Board struct {
	Handler *isr.Handler
	// Dropped counts wake-ups lost because the idle side fell behind.
	Dropped uint32

	sim     *pit.Sim
	con     *console.Console
	clockHz uint32
	wake    chan bool
	stopped chan struct{}
}

// Start builds the handler over a simulated timer. Pacing begins in Idle.
func Start(cfg config.Config) (*Board, error) {
	w, err := console.Open(cfg.ConsoleBaud)
	if err != nil {
		return nil, err
	}
	return start(cfg, &led.Counter{}, console.New(w)), nil
}

func start(cfg config.Config, line levelLine, con *console.Console) *Board {
	sim := pit.NewSim(0)
	h := isr.New(line, sim, blink.New(cfg.Bounds), cfg.ClockHz)
	sim.Arm(h.FirstLoad())

	b := &Board{
		Handler: h,
		sim:     sim,
		con:     con,
		clockHz: cfg.ClockHz,
		wake:    make(chan bool, 16),
		stopped: make(chan struct{}),
	}
	// The simulated vector only hands the latched level to the idle side;
	// printing happens there.
	sim.Bind(func() {
		h.Service()
		select {
		case b.wake <- line.Level():
		default:
			b.Dropped++
		}
	})
	sim.EnableInterrupt(true)
	sim.Enable()
	return b
}

// Idle parks until SIGINT.
func (b *Board) Idle() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()
	b.IdleContext(ctx)
}

// IdleContext paces the simulated timer in real time until ctx ends. Once
// it returns no further interrupts are dispatched and Handler may be read.
func (b *Board) IdleContext(ctx context.Context) {
	go b.pace(ctx)
	idle.Until(ctx, b.wake, b.report)
	<-b.stopped
}

func (b *Board) report(on bool) {
	if b.con == nil {
		return
	}
	if on {
		b.con.Println("[led] on")
	} else {
		b.con.Println("[led] off")
	}
}

func (b *Board) pace(ctx context.Context) {
	defer close(b.stopped)
	defer b.sim.Disable()
	t := time.NewTimer(time.Hour)
	defer t.Stop()
	for {
		next, ok := b.sim.Next()
		if !ok {
			return
		}
		t.Reset(time.Duration(next) * time.Second / time.Duration(b.clockHz))
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			b.sim.Advance()
		}
	}
}
