package pulselib

import (
	"image/color"

	"github.com/tinygo-org/heartbeat/cyccnt"
	"tinygo.org/x/drivers"
)

// Plot draws a recorded waveform as a strip chart on a display.
type Plot struct {
	disp drivers.Displayer
	// Rotation selects the time axis: Rotation0 and Rotation180 run time
	// along x, Rotation90 and Rotation270 along y. 180 and 270 run it
	// backwards.
	Rotation   drivers.Rotation
	Trace      color.RGBA
	Background color.RGBA
}

// NewPlot returns a green on black plot for disp.
func NewPlot(disp drivers.Displayer) *Plot {
	return &Plot{
		disp:       disp,
		Trace:      color.RGBA{G: 255, A: 255},
		Background: color.RGBA{A: 255},
	}
}

// Draw plots edges over the window [from, from+span) and flushes the display.
// The line is assumed low before the first edge.
func (p *Plot) Draw(edges []Edge, from cyccnt.Instant, span cyccnt.Duration) error {
	w, h := p.disp.Size()
	vertical := p.Rotation == drivers.Rotation90 || p.Rotation == drivers.Rotation270
	reverse := p.Rotation == drivers.Rotation180 || p.Rotation == drivers.Rotation270
	length, depth := w, h
	if vertical {
		length, depth = h, w
	}
	if length <= 0 || depth < 3 || span == 0 {
		return p.disp.Display()
	}
	hi, lo := depth/4, depth-1-depth/4

	prev := int16(-1)
	for t := int16(0); t < length; t++ {
		at := from.Add(cyccnt.Duration(uint64(span) * uint64(t) / uint64(length)))
		y := lo
		if levelAt(edges, at) {
			y = hi
		}
		for d := int16(0); d < depth; d++ {
			c := p.Background
			if d == y || (prev >= 0 && prev != y && between(d, prev, y)) {
				c = p.Trace
			}
			p.setPixel(t, d, length, vertical, reverse, c)
		}
		prev = y
	}
	return p.disp.Display()
}

func (p *Plot) setPixel(t, d, length int16, vertical, reverse bool, c color.RGBA) {
	if reverse {
		t = length - 1 - t
	}
	if vertical {
		p.disp.SetPixel(d, t, c)
		return
	}
	p.disp.SetPixel(t, d, c)
}

// levelAt returns the level set by the last edge at or before at.
func levelAt(edges []Edge, at cyccnt.Instant) bool {
	high := false
	for _, e := range edges {
		if e.At.After(at) {
			break
		}
		high = e.High
	}
	return high
}

func between(v, a, b int16) bool {
	if a > b {
		a, b = b, a
	}
	return v >= a && v <= b
}
