//go:build !blink_fast

package config

// Default profile: a slow sweep from 250 ms down to 5 ms and back.
const (
	MinDelayMs = 5
	MaxDelayMs = 250
	StepMs     = 5
)

// Board wiring shared by every profile.
const (
	LEDPin      = 25 // Pico / Pico 2 on-board LED
	ConsoleBaud = 115200
)
