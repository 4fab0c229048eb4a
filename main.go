// Command pitblink blinks the board LED with a period that sweeps from slow
// to fast and back, driven entirely by the timer interrupt.
//
// Build/flash (TinyGo):
//
//	tinygo flash -target pico ./
//	tinygo flash -target pico2 -tags blink_fast ./
package main

import (
	"pitblink/errcode"
	"pitblink/internal/config"
	"pitblink/internal/console"
	"pitblink/internal/platform"
)

func main() {
	cfg := config.Selected()

	w, err := console.Open(cfg.ConsoleBaud)
	if err != nil {
		panic(err)
	}
	con := console.New(w)
	con.Println("[main] boot")

	if err := cfg.Validate(); err != nil {
		con.Println("[main] config rejected:", string(errcode.Of(err)), "-", err)
		panic(err)
	}
	con.Println("[main] sweep", cfg.Bounds.MaxMs, "->", cfg.Bounds.MinMs,
		"ms step", cfg.Bounds.StepMs, "period", cfg.Bounds.Period(), "firings")

	board, err := platform.Start(cfg)
	if err != nil {
		con.Println("[main] platform start failed:", err)
		panic(err)
	}
	con.Println("[main] timer armed at", cfg.Bounds.MaxMs, "ms; idling")

	board.Idle()

	// Host builds only: the simulated timer has stopped.
	h := board.Handler
	con.Println("[main] stopped after", h.Fired, "firings,", h.Flips, "flips,", h.Stuck, "stuck")
}
