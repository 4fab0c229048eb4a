// Package config holds the compile-time blink profile. Profiles are chosen
// with build tags; nothing here changes at run time.
package config

import (
	"pitblink/errcode"
	"pitblink/internal/blink"
	"pitblink/internal/pit"
	"pitblink/x/mathx"
)

// Config is the complete build-time setup.
type Config struct {
	Bounds      blink.Bounds
	ClockHz     uint32
	LEDPin      int
	ConsoleBaud uint32
}

// Selected returns the profile compiled into this build.
func Selected() Config {
	return Config{
		Bounds: blink.Bounds{
			MinMs:  MinDelayMs,
			MaxMs:  MaxDelayMs,
			StepMs: StepMs,
		},
		ClockHz:     pit.ClockHz,
		LEDPin:      LEDPin,
		ConsoleBaud: ConsoleBaud,
	}
}

// Validate rejects profiles the timer maths cannot honour. It runs once at
// boot; a failure is fatal.
func (c Config) Validate() error {
	if err := c.Bounds.Validate(); err != nil {
		return err
	}
	if c.ClockHz < 1000 || c.ClockHz%1000 != 0 {
		return errcode.New("config", errcode.InvalidClock, "clock must be a non-zero multiple of 1000 Hz")
	}
	if !mathx.MulFitsU32(c.ClockHz/1000, c.Bounds.MaxMs) {
		return errcode.New("config", errcode.Overflow, "load value for max delay exceeds 32 bits")
	}
	// MinMs+StepMs is computed on every accelerating step.
	if uint64(c.Bounds.MinMs)+uint64(c.Bounds.StepMs) > uint64(^uint32(0)) {
		return errcode.New("config", errcode.Overflow, "min delay plus step exceeds 32 bits")
	}
	if c.LEDPin < 0 {
		return errcode.New("config", errcode.UnknownPin, "led pin must be set")
	}
	return nil
}
