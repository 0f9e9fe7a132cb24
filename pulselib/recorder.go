package pulselib

import (
	"github.com/tinygo-org/heartbeat/cyccnt"
	"github.com/tinygo-org/heartbeat/heartbeat"
)

// RecorderDepth is the number of edges a Recorder keeps.
const RecorderDepth = 64

// Edge is one write to the output line.
type Edge struct {
	At   cyccnt.Instant
	High bool
}

// Recorder is a heartbeat.Line that timestamps every write before passing
// it on. It keeps the last RecorderDepth edges in a fixed ring so it never
// allocates after construction.
type Recorder struct {
	clock cyccnt.Clock
	next  heartbeat.Line
	ring  [RecorderDepth]Edge
	head  uint8
	n     uint8
}

// NewRecorder returns a Recorder stamping edges with clock. next may be nil
// to record without driving any hardware.
func NewRecorder(clock cyccnt.Clock, next heartbeat.Line) *Recorder {
	return &Recorder{clock: clock, next: next}
}

// Set records the edge and forwards it.
func (r *Recorder) Set(high bool) error {
	r.ring[r.head] = Edge{At: r.clock.Now(), High: high}
	r.head = (r.head + 1) % RecorderDepth
	if r.n < RecorderDepth {
		r.n++
	}
	if r.next == nil {
		return nil
	}
	return r.next.Set(high)
}

// Len returns the number of edges held.
func (r *Recorder) Len() int { return int(r.n) }

// Edges appends the held edges to dst, oldest first.
func (r *Recorder) Edges(dst []Edge) []Edge {
	start := (int(r.head) - int(r.n) + RecorderDepth) % RecorderDepth
	for i := 0; i < int(r.n); i++ {
		dst = append(dst, r.ring[(start+i)%RecorderDepth])
	}
	return dst
}

// Widths appends the time spent between consecutive edges to dst.
func (r *Recorder) Widths(dst []cyccnt.Duration) []cyccnt.Duration {
	var buf [RecorderDepth]Edge
	edges := r.Edges(buf[:0])
	for i := 1; i < len(edges); i++ {
		dst = append(dst, edges[i].At.Since(edges[i-1].At))
	}
	return dst
}

// Reset drops all held edges.
func (r *Recorder) Reset() {
	r.head, r.n = 0, 0
}
