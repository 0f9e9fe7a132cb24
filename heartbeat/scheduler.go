// Package heartbeat drives one output line through a repeating phase table
// timed against a cycle counter.
//
// The scheduler reschedules itself: each activation arms the next one at
// its own scheduled time plus the phase duration. Interrupt latency delays
// an edge but never the edges after it.
package heartbeat

import (
	"errors"
	"fmt"

	"github.com/tinygo-org/heartbeat/cyccnt"
)

// Scheduler errors. Both are fatal: a missed re-arm stops the waveform.
var (
	ErrRearm = errors.New("heartbeat: re-arm failed")
	ErrLine  = errors.New("heartbeat: output line write failed")
)

const (
	badPhaseIndex    = "heartbeat: invalid phase index"
	badPhaseDuration = "heartbeat: invalid phase duration"
)

// Line is a single digital output.
type Line interface {
	Set(high bool) error
}

// Waker arms a one-shot wake-up that delivers phase back to the scheduler
// once the counter reaches at. cyccnt.Alarm implements it.
type Waker interface {
	Arm(at cyccnt.Instant, phase uint8) error
}

// Scheduler owns the output line and the schedule state.
type Scheduler struct {
	table     PhaseTable
	tb        TimeBase
	line      Line
	waker     Waker
	phase     uint8
	scheduled cyccnt.Instant
	nc        noCopy
}

// New returns a scheduler for table. The table is validated against tb so
// that no activation can overflow, then copied: later edits to table do not
// reach the scheduler.
func New(table PhaseTable, tb TimeBase, line Line, waker Waker) (*Scheduler, error) {
	if err := table.Validate(tb); err != nil {
		return nil, err
	}
	return &Scheduler{
		table: append(PhaseTable(nil), table...),
		tb:    tb,
		line:  line,
		waker: waker,
	}, nil
}

// Start drives the line low and arms the first activation of phase 0 at
// start. It must be called exactly once, before the dispatcher runs.
func (s *Scheduler) Start(start cyccnt.Instant) error {
	if err := s.line.Set(false); err != nil {
		return fmt.Errorf("%w: %w", ErrLine, err)
	}
	s.phase = 0
	s.scheduled = start
	if err := s.waker.Arm(start, 0); err != nil {
		return fmt.Errorf("%w: %w", ErrRearm, err)
	}
	return nil
}

// Activate runs phase, which was scheduled for the counter value scheduled.
// It sets the line to the phase level and arms exactly one wake-up for the
// following phase at scheduled plus the phase duration. The current counter
// value is deliberately not consulted.
func (s *Scheduler) Activate(scheduled cyccnt.Instant, phase uint8) error {
	if int(phase) >= len(s.table) {
		panic(badPhaseIndex)
	}
	p := s.table[phase]
	duration, err := s.tb.Cycles(p.Beats)
	if err != nil || duration == 0 {
		panic(badPhaseDuration)
	}

	s.phase = phase
	s.scheduled = scheduled
	if err := s.line.Set(p.High); err != nil {
		return fmt.Errorf("%w: phase %d: %w", ErrLine, phase, err)
	}
	next := s.table.Next(phase)
	if err := s.waker.Arm(scheduled.Add(duration), next); err != nil {
		return fmt.Errorf("%w: phase %d: %w", ErrRearm, next, err)
	}
	return nil
}

// Phase returns the index of the last activated phase.
func (s *Scheduler) Phase() uint8 { return s.phase }

// Scheduled returns the scheduled time of the last activation.
func (s *Scheduler) Scheduled() cyccnt.Instant { return s.scheduled }

// Table returns a copy of the phase table being played.
func (s *Scheduler) Table() PhaseTable { return append(PhaseTable(nil), s.table...) }

// TimeBase returns the cycles per beat-thousandth.
func (s *Scheduler) TimeBase() TimeBase { return s.tb }

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
