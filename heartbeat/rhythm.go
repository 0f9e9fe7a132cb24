package heartbeat

import (
	"errors"

	"github.com/tinygo-org/heartbeat/cyccnt"
)

// Build-time rhythm parameters.
const (
	// ClockHz is the core clock the cycle counter runs at.
	ClockHz = 72_000_000
	// BPM is the heart rate reproduced on the output line.
	BPM = 60
	// MilliBeat is the number of cycles per thousandth of a beat.
	MilliBeat = ClockHz * 60 / (1000 * BPM)
)

// Table errors.
var (
	ErrShortTable   = errors.New("heartbeat: phase table needs at least two phases")
	ErrZeroPhase    = errors.New("heartbeat: phase with zero duration")
	ErrLongTable    = errors.New("heartbeat: phase table longer than 255 phases")
	ErrZeroTimeBase = errors.New("heartbeat: zero cycles per beat-thousandth")
)

// Phase is one segment of the waveform.
type Phase struct {
	Name string
	// Beats is the segment length in thousandths of a beat.
	Beats uint32
	// High is the line level held for the whole segment.
	High bool
}

// PhaseTable is the repeating sequence of waveform segments.
type PhaseTable []Phase

// ECG is a two-level approximation of one heart beat. Segments alternate
// high (even index) and low (odd index), so an edge marks every boundary.
var ECG = PhaseTable{
	{Name: "P wave", Beats: 30, High: true},
	{Name: "PR segment", Beats: 40},
	{Name: "QRS complex", Beats: 120, High: true},
	{Name: "ST segment", Beats: 30},
	{Name: "T wave", Beats: 60, High: true},
	{Name: "rest", Beats: 720},
}

// Next returns the phase following phase, wrapping to 0 after the last one.
func (pt PhaseTable) Next(phase uint8) uint8 {
	return uint8((int(phase) + 1) % len(pt))
}

// Beats returns the length of one full cycle in thousandths of a beat.
func (pt PhaseTable) Beats() (sum uint64) {
	for _, p := range pt {
		sum += uint64(p.Beats)
	}
	return sum
}

// Validate checks pt against tb. A table that validates can never overflow
// the duration arithmetic or the counter comparisons.
func (pt PhaseTable) Validate(tb TimeBase) error {
	switch {
	case tb == 0:
		return ErrZeroTimeBase
	case len(pt) < 2:
		return ErrShortTable
	case len(pt) > 255:
		return ErrLongTable
	}
	for _, p := range pt {
		if p.Beats == 0 {
			return ErrZeroPhase
		}
		if _, err := tb.Cycles(p.Beats); err != nil {
			return err
		}
	}
	if uint64(tb)*pt.Beats() > uint64(cyccnt.MaxDuration) {
		return ErrDurationOverflow
	}
	return nil
}

// shortest returns the smallest phase duration. pt must be valid for tb.
func (pt PhaseTable) shortest(tb TimeBase) cyccnt.Duration {
	least := cyccnt.MaxDuration
	for _, p := range pt {
		if d, _ := tb.Cycles(p.Beats); d < least {
			least = d
		}
	}
	return least
}
