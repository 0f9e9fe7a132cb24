//go:build !tinygo

package pulselib

import (
	"io"

	"gopkg.in/yaml.v3"
)

// Trace is the YAML form of a recorded waveform.
type Trace struct {
	ClockHz uint32      `yaml:"clock_hz"`
	Edges   []TraceEdge `yaml:"edges"`
}

// TraceEdge is one edge with the time held until the following edge.
// Width is omitted on the last edge.
type TraceEdge struct {
	At    uint32 `yaml:"at"`
	Level string `yaml:"level"`
	Width uint32 `yaml:"width,omitempty"`
}

// NewTrace converts recorded edges into a Trace.
func NewTrace(clockHz uint32, edges []Edge) Trace {
	tr := Trace{ClockHz: clockHz, Edges: make([]TraceEdge, len(edges))}
	for i, e := range edges {
		te := TraceEdge{At: uint32(e.At), Level: "low"}
		if e.High {
			te.Level = "high"
		}
		if i+1 < len(edges) {
			te.Width = uint32(edges[i+1].At.Since(e.At))
		}
		tr.Edges[i] = te
	}
	return tr
}

// WriteYAML encodes the trace to w.
func (tr Trace) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tr); err != nil {
		return err
	}
	return enc.Close()
}

// ReadTrace decodes a trace written by WriteYAML.
func ReadTrace(r io.Reader) (Trace, error) {
	var tr Trace
	err := yaml.NewDecoder(r).Decode(&tr)
	return tr, err
}
