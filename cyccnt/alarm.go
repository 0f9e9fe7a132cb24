package cyccnt

// Alarm holds at most one pending wake-up. There is no queue: arming a second
// wake before the first one fired is a usage error.
type Alarm struct {
	at      Instant
	payload uint8
	armed   bool
	nc      noCopy
}

// Arm requests that payload be delivered once the counter reaches at.
// A deadline that has already passed is not dropped; it fires on the next
// call to Fire.
func (a *Alarm) Arm(at Instant, payload uint8) error {
	if a.armed {
		return ErrAlarmPending
	}
	a.at = at
	a.payload = payload
	a.armed = true
	return nil
}

// Fire disarms the alarm and returns its deadline and payload if now has
// reached the deadline. Each Arm yields exactly one successful Fire.
func (a *Alarm) Fire(now Instant) (at Instant, payload uint8, ok bool) {
	if !a.armed || !now.Reached(a.at) {
		return 0, 0, false
	}
	a.armed = false
	return a.at, a.payload, true
}

// Pending reports whether a wake-up is armed.
func (a *Alarm) Pending() bool { return a.armed }

// Deadline returns the armed deadline. Only valid while Pending.
func (a *Alarm) Deadline() Instant { return a.at }

// noCopy may be embedded into structs which must not be copied
// after the first use.
//
// See https://golang.org/issues/8005#issuecomment-190753527
// for details.
type noCopy struct{}

// Lock is a no-op used by -copylocks checker from `go vet`.
func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
