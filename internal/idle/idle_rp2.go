//go:build rp2040 || rp2350

// Package idle parks the main context between interrupts.
package idle

import "device/arm"

// Forever sleeps until an interrupt, services nothing itself, and sleeps
// again. It never returns.
func Forever() {
	for {
		arm.Asm("wfi")
	}
}
