//go:build blink_fast

package config

// Fast profile for bench checks: the whole triangle repeats in under a second.
const (
	MinDelayMs = 5
	MaxDelayMs = 60
	StepMs     = 5
)

const (
	LEDPin      = 25
	ConsoleBaud = 115200
)
