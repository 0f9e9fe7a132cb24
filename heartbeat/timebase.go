package heartbeat

import (
	"errors"
	"math"

	"github.com/tinygo-org/heartbeat/cyccnt"
)

// ErrDurationOverflow is returned for a phase or cycle too long to compare on
// a 32-bit counter.
var ErrDurationOverflow = errors.New("heartbeat: phase duration exceeds counter range")

var (
	errZeroBPM       = errors.New("TimeBase: zero beats per minute")
	errTimeBaseRange = errors.New("TimeBase: too small or too large clock frequency for BPM")
)

// TimeBase is the number of counter cycles in one thousandth of a beat.
type TimeBase uint32

// NewTimeBase calculates cycles per beat-thousandth for a counter running at
// clockHz and a rate of bpm beats per minute. The division truncates; the
// error stays bounded because every phase multiplies the same TimeBase
// instead of summing rounded ticks.
func NewTimeBase(clockHz, bpm uint32) (TimeBase, error) {
	if bpm == 0 {
		return 0, errZeroBPM
	}
	//  cycles/beat  = clockHz * 60 / bpm
	//  cycles/mbeat = clockHz * 60 / (1000 * bpm)
	tb := uint64(clockHz) * 60 / (1000 * uint64(bpm))
	if tb == 0 || tb > math.MaxUint32 {
		return 0, errTimeBaseRange
	}
	return TimeBase(tb), nil
}

// Cycles converts beats thousandths of a beat into counter cycles.
func (tb TimeBase) Cycles(beats uint32) (cyccnt.Duration, error) {
	d := uint64(tb) * uint64(beats)
	if d > uint64(cyccnt.MaxDuration) {
		return 0, ErrDurationOverflow
	}
	return cyccnt.Duration(d), nil
}
