// Package led provides the single output line the blinker toggles.
package led

// Line is a binary output whose level is held by the GPIO between toggles.
type Line interface {
	Toggle()
}

// Counter is a Line that records toggles. The level starts low.
type Counter struct {
	n     uint32
	level bool
}

var _ Line = (*Counter)(nil)

func (c *Counter) Toggle() {
	c.n++
	c.level = !c.level
}

func (c *Counter) Toggles() uint32 { return c.n }
func (c *Counter) Level() bool     { return c.level }
