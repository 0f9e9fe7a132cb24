package heartbeat

import "github.com/tinygo-org/heartbeat/cyccnt"

// Stats counts activations delivered by a Runner.
type Stats struct {
	Activations uint32
	// Cycles counts completed passes through the phase table.
	Cycles uint32
	// MaxLateness is the largest delay seen between a scheduled time and
	// the moment its activation ran.
	MaxLateness cyccnt.Duration
	// Overruns counts activations that ran later than the shortest phase.
	Overruns uint32
}

// Runner is a polling dispatcher for a single Scheduler. It reads the clock,
// fires the alarm when due and hands the scheduled time to Activate.
type Runner struct {
	Clock     cyccnt.Clock
	Alarm     *cyccnt.Alarm
	Scheduler *Scheduler
	// Idle is called between polls with the pending deadline. Nil spins.
	Idle func(deadline cyccnt.Instant)
	// Fault receives fatal activation errors. Nil panics.
	Fault func(error)

	stats    Stats
	shortest cyccnt.Duration
}

// Poll runs at most one activation and reports whether one ran.
func (r *Runner) Poll() bool {
	now := r.Clock.Now()
	at, phase, ok := r.Alarm.Fire(now)
	if !ok {
		return false
	}
	if r.shortest == 0 {
		r.shortest = r.Scheduler.table.shortest(r.Scheduler.tb)
	}
	late := now.Since(at)
	if late > r.stats.MaxLateness {
		r.stats.MaxLateness = late
	}
	if late > r.shortest {
		r.stats.Overruns++
	}
	if err := r.Scheduler.Activate(at, phase); err != nil {
		r.fault(err)
		return true
	}
	r.stats.Activations++
	if int(phase) == len(r.Scheduler.table)-1 {
		r.stats.Cycles++
	}
	return true
}

// Run polls forever. It returns once no wake-up is pending, which only
// happens when Start was never called or Fault returned after an error.
func (r *Runner) Run() {
	for r.Alarm.Pending() {
		if r.Poll() {
			continue
		}
		if r.Idle != nil {
			r.Idle(r.Alarm.Deadline())
		}
	}
}

// Stats returns the counters collected so far.
func (r *Runner) Stats() Stats { return r.stats }

func (r *Runner) fault(err error) {
	if r.Fault == nil {
		panic(err.Error())
	}
	r.Fault(err)
}
