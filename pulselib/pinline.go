//go:build !tinygo

package pulselib

import (
	"errors"

	"periph.io/x/conn/v3/gpio"
)

var errNoPin = errors.New("pulselib: nil pin")

// PinLine drives a periph.io GPIO as a heartbeat.Line.
type PinLine struct {
	pin gpio.PinOut
}

// NewPinLine takes ownership of pin and drives it low.
func NewPinLine(pin gpio.PinOut) (*PinLine, error) {
	if pin == nil {
		return nil, errNoPin
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, err
	}
	return &PinLine{pin: pin}, nil
}

// Set drives the pin high or low.
func (l *PinLine) Set(high bool) error {
	return l.pin.Out(gpio.Level(high))
}

// String returns the name of the underlying pin.
func (l *PinLine) String() string {
	return l.pin.String()
}
