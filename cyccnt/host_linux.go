//go:build linux && !tinygo

package cyccnt

import (
	"errors"

	"golang.org/x/sys/unix"
)

var errHostFreq = errors.New("cyccnt: host frequency must be between 1Hz and 1GHz")

// Host emulates a cycle counter of a given frequency on top of the Linux
// monotonic clock.
type Host struct {
	hz    uint64
	epoch int64 // nanoseconds on CLOCK_MONOTONIC at counter zero
}

// NewHost returns a counter ticking at hz that reads zero now.
func NewHost(hz uint32) (*Host, error) {
	if hz == 0 || hz > 1e9 {
		return nil, errHostFreq
	}
	epoch, err := monotonicNanos()
	if err != nil {
		return nil, err
	}
	return &Host{hz: uint64(hz), epoch: epoch}, nil
}

// Now returns the emulated counter value.
func (h *Host) Now() Instant {
	ns, err := monotonicNanos()
	if err != nil {
		// CLOCK_MONOTONIC cannot fail on Linux once NewHost succeeded.
		panic(err)
	}
	return h.toInstant(ns)
}

// SleepUntil blocks until the counter reaches at. Deadlines already passed
// return immediately.
func (h *Host) SleepUntil(at Instant) error {
	ns, err := monotonicNanos()
	if err != nil {
		return err
	}
	ahead := at.Sub(h.toInstant(ns))
	if ahead <= 0 {
		return nil
	}
	deadline := unix.NsecToTimespec(ns + int64((uint64(ahead)*1e9+h.hz-1)/h.hz))
	for {
		err = unix.ClockNanosleep(unix.CLOCK_MONOTONIC, unix.TIMER_ABSTIME, &deadline, nil)
		if err != unix.EINTR {
			return err
		}
	}
}

func (h *Host) toInstant(ns int64) Instant {
	elapsed := uint64(ns - h.epoch)
	// Split to keep elapsed*hz inside 64 bits for long uptimes.
	sec, frac := elapsed/1e9, elapsed%1e9
	return Instant(sec*h.hz + frac*h.hz/1e9)
}

func monotonicNanos() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC, &ts); err != nil {
		return 0, err
	}
	return ts.Nano(), nil
}
