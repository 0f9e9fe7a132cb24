package cyccnt

// Sim is a counter advanced by hand. Tests and host simulations use it in
// place of the hardware counter.
type Sim struct {
	now Instant
}

// NewSim returns a counter starting at start.
func NewSim(start Instant) *Sim {
	return &Sim{now: start}
}

// Now returns the current counter value.
func (s *Sim) Now() Instant { return s.now }

// Set moves the counter to t.
func (s *Sim) Set(t Instant) { s.now = t }

// Advance moves the counter forward by d, wrapping at 2^32.
func (s *Sim) Advance(d Duration) { s.now = s.now.Add(d) }
