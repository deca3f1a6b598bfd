package telemetry

import (
	"time"

	"github.com/reflow-dev/reflow/pkg/reflow"
)

// Multi combines several instruments into one. Callbacks fan out in
// argument order. Nil entries are skipped.
func Multi(insts ...reflow.Instrument) reflow.Instrument {
	filtered := make([]reflow.Instrument, 0, len(insts))
	for _, in := range insts {
		if in != nil {
			filtered = append(filtered, in)
		}
	}
	return multi(filtered)
}

type multi []reflow.Instrument

func (m multi) WriteAccepted(listeners int) {
	for _, in := range m {
		in.WriteAccepted(listeners)
	}
}

func (m multi) WriteSuppressed() {
	for _, in := range m {
		in.WriteSuppressed()
	}
}

func (m multi) WaveDone(listeners int, elapsed time.Duration) {
	for _, in := range m {
		in.WaveDone(listeners, elapsed)
	}
}

func (m multi) Rebuild() {
	for _, in := range m {
		in.Rebuild()
	}
}

var (
	_ reflow.Instrument = (*Metrics)(nil)
	_ reflow.Instrument = (*Tracing)(nil)
	_ reflow.Instrument = (multi)(nil)
)
