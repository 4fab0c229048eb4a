package main

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// writeFirings formats firings as "text" or "csv" until in is closed.
func writeFirings(w io.Writer, format string, in <-chan Firing) error {
	bw := bufio.NewWriter(w)

	var line func(Firing) string
	switch format {
	case "text":
		line = func(f Firing) string {
			dir := "slower"
			if f.Accelerating {
				dir = "faster"
			}
			led := "off"
			if f.LEDOn {
				led = "on"
			}
			s := fmt.Sprintf("#%-5d t=%8dms led=%-3s next=%4dms %s", f.Index, f.AtMs, led, f.NextDelayMs, dir)
			if f.Flipped {
				s += " (flip)"
			}
			return s
		}
	case "csv":
		fmt.Fprintln(bw, "index,at_ms,led_on,next_delay_ms,accelerating,flipped,clears")
		line = func(f Firing) string {
			return fmt.Sprintf("%d,%d,%t,%d,%t,%t,%d",
				f.Index, f.AtMs, f.LEDOn, f.NextDelayMs, f.Accelerating, f.Flipped, f.Clears)
		}
	default:
		// Keep draining so the producer is not left blocked.
		for range in {
		}
		return errors.Errorf("unknown format %q", format)
	}

	for f := range in {
		if _, err := fmt.Fprintln(bw, line(f)); err != nil {
			return errors.Wrap(err, "failed to write firing")
		}
	}
	return errors.Wrap(bw.Flush(), "failed to flush output")
}
