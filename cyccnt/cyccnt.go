// Package cyccnt wraps a free-running 32-bit cycle counter and the single
// one-shot wake-up armed against it.
//
// All arithmetic on Instant wraps modulo 2^32. Two instants can only be
// ordered when they lie within half the counter range of each other, so no
// delay may exceed MaxDuration.
package cyccnt

import (
	"errors"
	"math"
)

// Instant is a raw counter value.
type Instant uint32

// Duration is a number of counter ticks.
type Duration uint32

// MaxDuration is the longest delay that still compares correctly after the
// counter wraps.
const MaxDuration Duration = math.MaxInt32

// ErrAlarmPending is returned when a wake-up is armed while another one is
// still pending.
var ErrAlarmPending = errors.New("cyccnt: alarm already pending")

// Clock is a source of counter values.
type Clock interface {
	Now() Instant
}

// Add returns t+d modulo 2^32.
func (t Instant) Add(d Duration) Instant {
	return t + Instant(d)
}

// Sub returns the signed distance t-u. The result is only meaningful when
// both instants are within MaxDuration of each other.
func (t Instant) Sub(u Instant) int32 {
	return int32(uint32(t) - uint32(u))
}

// Before reports whether t comes strictly before u.
func (t Instant) Before(u Instant) bool {
	return t.Sub(u) < 0
}

// After reports whether t comes strictly after u.
func (t Instant) After(u Instant) bool {
	return t.Sub(u) > 0
}

// Reached reports whether t is at or past deadline.
func (t Instant) Reached(deadline Instant) bool {
	return t.Sub(deadline) >= 0
}

// Since returns the ticks elapsed from u to t, or 0 if u is still ahead.
func (t Instant) Since(u Instant) Duration {
	d := t.Sub(u)
	if d < 0 {
		return 0
	}
	return Duration(d)
}
