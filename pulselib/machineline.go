//go:build tinygo

package pulselib

import "machine"

// MachineLine drives a board pin as a heartbeat.Line.
type MachineLine struct {
	pin machine.Pin
}

// NewMachineLine configures pin as a push-pull output in the low state.
func NewMachineLine(pin machine.Pin) MachineLine {
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pin.Low()
	return MachineLine{pin: pin}
}

// Set drives the pin high or low. Writing a GPIO cannot fail.
func (l MachineLine) Set(high bool) error {
	l.pin.Set(high)
	return nil
}
