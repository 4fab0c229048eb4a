//go:build rp2040 || rp2350

package led

import (
	"machine"

	"pitblink/errcode"
)

// Pin drives a machine.Pin. Toggle reads back the output latch, so no
// software copy of the level exists.
type Pin struct {
	p machine.Pin
}

// Open configures GPIO n as a low output. RP2 user GPIOs are GP0..GP29;
// Pico's on-board LED is GP25.
func Open(n int) (*Pin, error) {
	if n < 0 || n > 29 {
		return nil, errcode.New("led", errcode.UnknownPin, "gpio out of range")
	}
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Low()
	return &Pin{p: p}, nil
}

func (l *Pin) Toggle() {
	if l.p.Get() {
		l.p.Low()
	} else {
		l.p.High()
	}
}
