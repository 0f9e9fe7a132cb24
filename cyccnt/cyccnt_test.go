package cyccnt

import (
	"math"
	"sync"
	"testing"
)

// noCopy must satisfy sync.Locker for vet's copylocks check to see it.
var _ sync.Locker = (*noCopy)(nil)

func TestInstantWrap(t *testing.T) {
	const near = Instant(math.MaxUint32 - 100)
	wrapped := near.Add(1000)
	if wrapped != 899 {
		t.Fatalf("wrapped add: got %d, want 899", wrapped)
	}
	if !wrapped.After(near) {
		t.Error("wrapped instant should be after the one near the counter maximum")
	}
	if near.Reached(wrapped) {
		t.Error("instant near maximum should not have reached the wrapped deadline")
	}
	if got := wrapped.Sub(near); got != 1000 {
		t.Errorf("Sub across wrap: got %d, want 1000", got)
	}
	if got := near.Sub(wrapped); got != -1000 {
		t.Errorf("Sub across wrap: got %d, want -1000", got)
	}
	if got := wrapped.Since(near); got != 1000 {
		t.Errorf("Since across wrap: got %d, want 1000", got)
	}
	if got := near.Since(wrapped); got != 0 {
		t.Errorf("Since of a future instant: got %d, want 0", got)
	}
}

func TestInstantCompare(t *testing.T) {
	var tests = []struct {
		t, u          Instant
		before, after bool
	}{
		{t: 10, u: 20, before: true},
		{t: 20, u: 10, after: true},
		{t: 5, u: 5},
		{t: math.MaxUint32, u: 0, before: true},
		{t: 0, u: math.MaxUint32, after: true},
		{t: Instant(MaxDuration), u: 0, after: true},
	}
	for _, tc := range tests {
		if got := tc.t.Before(tc.u); got != tc.before {
			t.Errorf("%d.Before(%d) = %v, want %v", tc.t, tc.u, got, tc.before)
		}
		if got := tc.t.After(tc.u); got != tc.after {
			t.Errorf("%d.After(%d) = %v, want %v", tc.t, tc.u, got, tc.after)
		}
		if got := tc.t.Reached(tc.u); got != !tc.before {
			t.Errorf("%d.Reached(%d) = %v, want %v", tc.t, tc.u, got, !tc.before)
		}
	}
}

func TestAlarmFiresOnce(t *testing.T) {
	var a Alarm
	if err := a.Arm(100, 3); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := a.Fire(99); ok {
		t.Fatal("alarm fired before its deadline")
	}
	at, payload, ok := a.Fire(100)
	if !ok || at != 100 || payload != 3 {
		t.Fatalf("Fire(100) = %d, %d, %v; want 100, 3, true", at, payload, ok)
	}
	if _, _, ok := a.Fire(200); ok {
		t.Error("alarm fired twice for a single Arm")
	}
	if a.Pending() {
		t.Error("alarm still pending after firing")
	}
}

func TestAlarmSecondArm(t *testing.T) {
	var a Alarm
	if err := a.Arm(10, 0); err != nil {
		t.Fatal(err)
	}
	if err := a.Arm(20, 1); err != ErrAlarmPending {
		t.Fatalf("second Arm: got %v, want ErrAlarmPending", err)
	}
	if a.Deadline() != 10 {
		t.Errorf("second Arm replaced the deadline: %d", a.Deadline())
	}
}

func TestAlarmPastDeadline(t *testing.T) {
	// Deadline already elapsed when armed: fires at the next poll.
	clk := NewSim(5000)
	var a Alarm
	if err := a.Arm(4000, 1); err != nil {
		t.Fatal(err)
	}
	if at, _, ok := a.Fire(clk.Now()); !ok || at != 4000 {
		t.Errorf("past deadline: got %d, %v; want 4000, true", at, ok)
	}
}

func TestAlarmWrappedDeadline(t *testing.T) {
	clk := NewSim(math.MaxUint32 - 10)
	var a Alarm
	deadline := clk.Now().Add(20)
	if err := a.Arm(deadline, 2); err != nil {
		t.Fatal(err)
	}
	if _, _, ok := a.Fire(clk.Now()); ok {
		t.Fatal("wrapped deadline treated as already passed")
	}
	clk.Advance(19)
	if _, _, ok := a.Fire(clk.Now()); ok {
		t.Fatal("fired one tick early")
	}
	clk.Advance(1)
	if _, p, ok := a.Fire(clk.Now()); !ok || p != 2 {
		t.Errorf("wrapped deadline did not fire: %d, %v", p, ok)
	}
}
