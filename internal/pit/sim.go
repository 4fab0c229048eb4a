package pit

import "sync"

// Sim is a virtual-time PIT. Advance moves the clock to the next expiry,
// latches the elapsed flag and, with the interrupt enabled, calls the bound
// handler synchronously.
type Sim struct {
	mu sync.Mutex

	load    uint32
	now     uint64 // virtual ticks since Enable
	expiry  uint64
	running bool
	irq     bool
	elapsed bool

	// relatch is how many further times the flag latches after a clear.
	relatch int
	pending int

	handler func()

	loads  []uint32
	clears int
}

var _ Controller = (*Sim)(nil)

// NewSim returns a stopped simulator with an initial load value.
func NewSim(load uint32) *Sim {
	return &Sim{load: load}
}

// Bind installs the interrupt handler (the vector table entry).
func (s *Sim) Bind(h func()) {
	s.mu.Lock()
	s.handler = h
	s.mu.Unlock()
}

// Relatch makes each following expiry re-latch n more times after clears,
// modelling coalesced edges.
func (s *Sim) Relatch(n int) {
	s.mu.Lock()
	s.relatch = n
	s.mu.Unlock()
}

func (s *Sim) Arm(ticks uint32) {
	s.mu.Lock()
	s.load = ticks
	s.loads = append(s.loads, ticks)
	s.mu.Unlock()
}

func (s *Sim) HasElapsed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.elapsed
}

func (s *Sim) ClearElapsed() {
	s.mu.Lock()
	s.clears++
	if s.pending > 0 {
		s.pending--
	} else {
		s.elapsed = false
	}
	s.mu.Unlock()
}

func (s *Sim) EnableInterrupt(on bool) {
	s.mu.Lock()
	s.irq = on
	s.mu.Unlock()
}

func (s *Sim) Enable() {
	s.mu.Lock()
	if !s.running {
		s.running = true
		s.expiry = s.now + uint64(s.load)
	}
	s.mu.Unlock()
}

func (s *Sim) Disable() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// Next returns the ticks remaining until the next expiry, or false when stopped.
func (s *Sim) Next() (uint32, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running {
		return 0, false
	}
	return uint32(s.expiry - s.now), true
}

// Advance runs to the next expiry, latches the elapsed flag and dispatches
// the handler. The following countdown is measured from this expiry using the
// load value current when the handler returns, so an Arm from the handler
// sets the very next period. It reports false when the timer is stopped.
func (s *Sim) Advance() bool {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return false
	}
	s.now = s.expiry
	s.elapsed = true
	s.pending = s.relatch
	h := s.handler
	irq := s.irq
	s.mu.Unlock()

	if irq && h != nil {
		h()
	}

	s.mu.Lock()
	s.expiry = s.now + uint64(s.load)
	s.mu.Unlock()
	return true
}

// Now is the virtual time in ticks.
func (s *Sim) Now() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

// Loads returns every value passed to Arm, in order.
func (s *Sim) Loads() []uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]uint32(nil), s.loads...)
}

// Clears is the total number of ClearElapsed calls.
func (s *Sim) Clears() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clears
}
