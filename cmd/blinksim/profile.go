package main

import (
	"io"

	"github.com/pelletier/go-toml"
	"github.com/pkg/errors"

	"pitblink/internal/blink"
	"pitblink/internal/config"
	"pitblink/internal/pit"
)

// Profile is a what-if set of blink constants. The firmware compiles its
// constants in; this only feeds the simulator.
type Profile struct {
	MinDelayMs uint32 `toml:"min_delay_ms"`
	MaxDelayMs uint32 `toml:"max_delay_ms"`
	StepMs     uint32 `toml:"step_ms"`
	// ClockHz is the timer tick rate. Zero means the RP2 TIMER rate.
	ClockHz uint32 `toml:"clock_hz"`
	// Relatch models an elapsed flag that re-latches after each clear.
	Relatch int `toml:"relatch"`
}

// DefaultProfile mirrors the compiled firmware profile.
func DefaultProfile() Profile {
	return Profile{
		MinDelayMs: config.MinDelayMs,
		MaxDelayMs: config.MaxDelayMs,
		StepMs:     config.StepMs,
		ClockHz:    pit.ClockHz,
	}
}

// ParseProfile decodes a TOML profile on top of the defaults.
func ParseProfile(r io.Reader) (Profile, error) {
	p := DefaultProfile()
	if err := toml.NewDecoder(r).Decode(&p); err != nil {
		return Profile{}, errors.Wrap(err, "failed to decode profile")
	}
	return p, nil
}

// Config converts the profile and validates it with the firmware's rules.
func (p Profile) Config() (config.Config, error) {
	clock := p.ClockHz
	if clock == 0 {
		clock = pit.ClockHz
	}
	c := config.Config{
		Bounds: blink.Bounds{
			MinMs:  p.MinDelayMs,
			MaxMs:  p.MaxDelayMs,
			StepMs: p.StepMs,
		},
		ClockHz: clock,
		LEDPin:  config.LEDPin,
	}
	if err := c.Validate(); err != nil {
		return config.Config{}, errors.Wrap(err, "invalid profile")
	}
	if p.Relatch < 0 {
		return config.Config{}, errors.New("invalid profile: relatch must not be negative")
	}
	return c, nil
}
