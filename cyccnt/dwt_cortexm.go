//go:build tinygo && cortexm

package cyccnt

import (
	"runtime/volatile"
	"unsafe"
)

// Cortex-M debug and trace registers.
const (
	demcrAddr     = 0xE000EDFC
	dwtCtrlAddr   = 0xE0001000
	dwtCyccntAddr = 0xE0001004
	dwtLarAddr    = 0xE0001FB0

	demcrTRCENA    = 1 << 24
	dwtCYCCNTENA   = 1 << 0
	dwtUnlockValue = 0xC5ACCE55
)

var (
	demcr   = (*volatile.Register32)(unsafe.Pointer(uintptr(demcrAddr)))
	dwtCtrl = (*volatile.Register32)(unsafe.Pointer(uintptr(dwtCtrlAddr)))
	cyccnt  = (*volatile.Register32)(unsafe.Pointer(uintptr(dwtCyccntAddr)))
	dwtLar  = (*volatile.Register32)(unsafe.Pointer(uintptr(dwtLarAddr)))
)

// DWT is the processor cycle counter. It increments once per core clock.
type DWT struct{}

// EnableDWT switches on the trace block and starts the cycle counter.
// Must be called once before the first Now.
func EnableDWT() DWT {
	demcr.SetBits(demcrTRCENA)
	// Cortex-M7 parts keep the DWT locked after reset.
	dwtLar.Set(dwtUnlockValue)
	cyccnt.Set(0)
	dwtCtrl.SetBits(dwtCYCCNTENA)
	return DWT{}
}

// Now returns the current cycle count.
func (DWT) Now() Instant {
	return Instant(cyccnt.Get())
}
