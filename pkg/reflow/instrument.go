package reflow

import "time"

// Instrument receives callbacks from the reactive core as writes are
// accepted or suppressed, notification waves complete, and bindings
// re-render. The core never logs or records anything itself; hosts opt in
// per value via WithInstrument and per binding via WithRenderInstrument.
//
// Implementations must be fast and must not write to the value graph they
// observe: callbacks run inline on the writing goroutine.
type Instrument interface {
	// WriteAccepted fires when a write passes the equality gate, just
	// before the notification wave starts. listeners is the size of the
	// snapshot that will be delivered.
	WriteAccepted(listeners int)

	// WriteSuppressed fires when a write is dropped by the equality gate.
	WriteSuppressed()

	// WaveDone fires after a notification wave has fully settled,
	// including nested writes triggered by listeners.
	WaveDone(listeners int, elapsed time.Duration)

	// Rebuild fires when a binding's predicate accepts a change and the
	// render callback is invoked.
	Rebuild()
}
